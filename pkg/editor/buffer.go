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
	"strings"
)

// A Buffer holds the lines of a file being edited.
// Row indices are not clamped: operations on rows that don't exist do nothing.
type Buffer struct {
	fileName string
	rows     []*Row
}

func NewBuffer() *Buffer {
	return &Buffer{rows: make([]*Row, 0)}
}

func (b *Buffer) GetFileName() string {
	return b.fileName
}

func (b *Buffer) SetFileName(name string) {
	b.fileName = name
}

// LoadBytes replaces the contents of the buffer with the lines of a text.
// A final newline ends the last line rather than starting an empty one.
func (b *Buffer) LoadBytes(bytes []byte) {
	b.rows = make([]*Row, 0)
	s := string(bytes)
	if s == "" {
		return
	}
	s = strings.TrimSuffix(s, "\n")
	for _, line := range strings.Split(s, "\n") {
		b.rows = append(b.rows, NewRow(strings.TrimSuffix(line, "\r")))
	}
}

// Bytes returns the contents of the buffer with each line terminated by a newline.
func (b *Buffer) Bytes() []byte {
	var sb strings.Builder
	for _, row := range b.rows {
		sb.WriteString(string(row.Text))
		sb.WriteByte('\n')
	}
	return []byte(sb.String())
}

func (b *Buffer) GetRowCount() int {
	return len(b.rows)
}

// GetRow returns the text of a row and false if there is no such row.
func (b *Buffer) GetRow(i int) (string, bool) {
	if i >= 0 && i < len(b.rows) {
		return b.rows[i].String(), true
	}
	return "", false
}

func (b *Buffer) GetRowLength(i int) int {
	if i >= 0 && i < len(b.rows) {
		return b.rows[i].Length()
	}
	return 0
}

func (b *Buffer) validRow(row int) bool {
	return row >= 0 && row < len(b.rows)
}

func (b *Buffer) InsertCharacter(row, col int, c rune) {
	if b.validRow(row) {
		b.rows[row].InsertChar(col, c)
	}
}

func (b *Buffer) DeleteCharacter(row, col int) rune {
	if b.validRow(row) {
		return b.rows[row].DeleteChar(col)
	}
	return 0
}

func (b *Buffer) DeleteRow(row int) {
	if b.validRow(row) {
		b.rows = append(b.rows[0:row], b.rows[row+1:]...)
	}
}

// InsertRow inserts text before an existing row.
func (b *Buffer) InsertRow(row int, text string) {
	if b.validRow(row) {
		b.rows = append(b.rows, nil)
		copy(b.rows[row+1:], b.rows[row:])
		b.rows[row] = NewRow(text)
	}
}

func (b *Buffer) AppendRow(text string) {
	b.rows = append(b.rows, NewRow(text))
}
