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
package editor

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/timburks/mote/pkg/types"
)

const noName = "No Name"

// Render draws the visible part of the buffer, the status line and the
// message line, then places the cursor.
func (e *Editor) Render(d types.Display) {
	viewport := e.GetViewportSize()
	for i := 0; i < viewport.Rows; i++ {
		drawText(d, 0, i, e.VisibleLine(i), types.StyleText)
	}
	// the status line is just below the viewport
	status := viewport.Rows
	col := 0
	for _, part := range e.statusParts(viewport.Cols) {
		col = drawText(d, col, status, part.text, part.style)
	}
	drawText(d, 0, status+1, e.messageText(viewport.Cols), types.StyleMessage)

	line, _ := e.Buffer.GetRow(e.GetLineNumber())
	prefix := []rune(displayText(line, e.Offset.Cols))
	if e.Cursor.Col < len(prefix) {
		prefix = prefix[:e.Cursor.Col]
	}
	d.SetCursor(types.Point{Row: e.Cursor.Row, Col: runewidth.StringWidth(string(prefix))})
}

// VisibleLine returns viewport row i as it appears on screen, padded to the width of the viewport.
func (e *Editor) VisibleLine(i int) string {
	width := e.GetViewportSize().Cols
	line, _ := e.Buffer.GetRow(e.Offset.Rows + i)
	return fit(displayText(line, e.Offset.Cols), width)
}

// StatusLine returns the text of the status line.
func (e *Editor) StatusLine() string {
	var s string
	for _, part := range e.statusParts(e.GetViewportSize().Cols) {
		s += part.text
	}
	return s
}

type statusPart struct {
	text  string
	style types.Style
}

func (e *Editor) statusParts(width int) []statusPart {
	mode := " " + e.mode.String() + " "
	position := fmt.Sprintf(" %d:%d ", e.Cursor.Col, e.Cursor.Row)
	name := e.Buffer.GetFileName()
	if name == "" {
		name = noName
	}
	fileWidth := width - runewidth.StringWidth(mode) - runewidth.StringWidth(position)
	if fileWidth < 0 {
		fileWidth = 0
	}
	return []statusPart{
		{text: mode, style: types.StyleMode},
		{text: fit(" "+name, fileWidth), style: types.StyleFileName},
		{text: position, style: types.StylePosition},
	}
}

func (e *Editor) messageText(width int) string {
	var s string
	if e.leader != 0 {
		s = string(e.leader)
	}
	return fit(s, width)
}

func displayText(line string, offset int) string {
	r := NewRow(line)
	text := []rune(r.DisplayText())
	if offset >= len(text) {
		return ""
	}
	return string(text[offset:])
}

// fit truncates or pads s to exactly width display cells.
func fit(s string, width int) string {
	return runewidth.FillRight(runewidth.Truncate(s, width, ""), width)
}

// drawText paints s starting at col and returns the column after it.
func drawText(d types.Display, col, row int, s string, style types.Style) int {
	for _, c := range s {
		w := runewidth.RuneWidth(c)
		if w == 0 {
			continue
		}
		d.SetCell(col, row, c, style)
		col += w
	}
	return col
}
