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

// A Row is one line of text in a buffer.
type Row struct {
	Text []rune
}

func NewRow(text string) *Row {
	return &Row{Text: []rune(text)}
}

// Tabs are displayed as single spaces so that display columns match text columns.
func (r *Row) DisplayText() string {
	return strings.Replace(string(r.Text), "\t", " ", -1)
}

func (r *Row) String() string {
	return string(r.Text)
}

func (r *Row) Length() int {
	return len(r.Text)
}

// insert a character at col, appending if col is past the end of the row
func (r *Row) InsertChar(col int, c rune) {
	if col < 0 {
		col = 0
	}
	line := make([]rune, 0, len(r.Text)+1)
	if col <= len(r.Text) {
		line = append(line, r.Text[0:col]...)
	} else {
		line = append(line, r.Text...)
	}
	line = append(line, c)
	if col < len(r.Text) {
		line = append(line, r.Text[col:]...)
	}
	r.Text = line
}

// delete character at col and return the deleted character
func (r *Row) DeleteChar(col int) rune {
	if col < 0 || col >= len(r.Text) {
		return 0
	}
	c := r.Text[col]
	r.Text = append(r.Text[0:col], r.Text[col+1:]...)
	return c
}
