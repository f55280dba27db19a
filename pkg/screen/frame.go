//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package screen

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/timburks/mote/pkg/types"
)

var (
	barStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#000000")).
			Background(lipgloss.Color("#B890F3"))
	fileNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#434659"))
)

type cell struct {
	ch    rune // 0 for the second half of a wide character
	style types.Style
}

// A Frame is an in-memory display. It is used to render without a terminal.
type Frame struct {
	size   types.Size
	cells  [][]cell
	cursor types.Point
}

func NewFrame(size types.Size) *Frame {
	f := &Frame{size: size}
	f.cells = make([][]cell, size.Rows)
	for i := range f.cells {
		f.cells[i] = make([]cell, size.Cols)
		for j := range f.cells[i] {
			f.cells[i][j] = cell{ch: ' '}
		}
	}
	return f
}

func (f *Frame) GetSize() types.Size {
	return f.size
}

func (f *Frame) SetCell(col, row int, c rune, style types.Style) {
	if row < 0 || row >= f.size.Rows || col < 0 || col >= f.size.Cols {
		return
	}
	f.cells[row][col] = cell{ch: c, style: style}
	if runewidth.RuneWidth(c) == 2 && col+1 < f.size.Cols {
		f.cells[row][col+1] = cell{ch: 0, style: style}
	}
}

func (f *Frame) SetCursor(p types.Point) {
	f.cursor = p
}

func (f *Frame) GetCursor() types.Point {
	return f.cursor
}

// Line returns the text of a row of the frame.
func (f *Frame) Line(row int) string {
	if row < 0 || row >= f.size.Rows {
		return ""
	}
	var sb strings.Builder
	for _, c := range f.cells[row] {
		if c.ch != 0 {
			sb.WriteRune(c.ch)
		}
	}
	return sb.String()
}

func (f *Frame) String() string {
	lines := make([]string, f.size.Rows)
	for i := range lines {
		lines[i] = f.Line(i)
	}
	return strings.Join(lines, "\n")
}

// Styled returns the frame with the status line colored for printing to a terminal.
func (f *Frame) Styled() string {
	lines := make([]string, f.size.Rows)
	for i, row := range f.cells {
		var sb strings.Builder
		var run strings.Builder
		style := types.StyleText
		flush := func() {
			sb.WriteString(render(style, run.String()))
			run.Reset()
		}
		for _, c := range row {
			if c.style != style {
				flush()
				style = c.style
			}
			if c.ch != 0 {
				run.WriteRune(c.ch)
			}
		}
		flush()
		lines[i] = sb.String()
	}
	return strings.Join(lines, "\n")
}

func render(style types.Style, s string) string {
	if s == "" {
		return s
	}
	switch style {
	case types.StyleMode, types.StylePosition:
		return barStyle.Render(s)
	case types.StyleFileName:
		return fileNameStyle.Render(s)
	default:
		return s
	}
}
