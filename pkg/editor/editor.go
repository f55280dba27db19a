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
	"log"
	"os"

	"github.com/timburks/mote/pkg/types"
)

// The Editor manages the editing of text in a Buffer.
// Cursor is relative to the viewport; Offset is the position of the
// viewport in the buffer, so the cursor is on line Offset.Rows+Cursor.Row.
type Editor struct {
	Cursor types.Point       // cursor position in the viewport
	Offset types.Size        // display offset
	Buffer *Buffer          // buffer being edited
	size   types.Size        // size of the screen, including the status rows
	mode   types.Mode        // editor mode
	leader rune             // first key of a pending multi-key command
	undo   []types.Operation // stack of operations to undo
	quit   bool
}

func NewEditor() *Editor {
	e := &Editor{}
	e.Buffer = NewBuffer()
	e.size = types.Size{Rows: 24, Cols: 80}
	e.mode = types.ModeEdit
	e.undo = make([]types.Operation, 0)
	return e
}

func (e *Editor) ReadFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	e.Buffer.LoadBytes(b)
	e.Buffer.SetFileName(path)
	return nil
}

func (e *Editor) WriteFile(path string) error {
	return os.WriteFile(path, e.Buffer.Bytes(), 0644)
}

func (e *Editor) Perform(op types.Operation) {
	// perform the operation
	inverse := op.Perform(e)
	// save the inverse of the operation for undo
	if inverse != nil {
		e.undo = append(e.undo, inverse)
	}
}

func (e *Editor) PerformUndo() {
	if len(e.undo) > 0 {
		last := len(e.undo) - 1
		undo := e.undo[last]
		e.undo = e.undo[0:last]
		undo.Perform(e)
	}
}

func (e *Editor) UndoDepth() int {
	return len(e.undo)
}

func (e *Editor) GetMode() types.Mode {
	return e.mode
}

func (e *Editor) SetMode(m types.Mode) {
	e.mode = m
}

func (e *Editor) GetLeader() rune {
	return e.leader
}

func (e *Editor) SetLeader(leader rune) {
	e.leader = leader
}

func (e *Editor) Quit() {
	e.quit = true
}

func (e *Editor) IsRunning() bool {
	return !e.quit
}

func (e *Editor) GetLine(row int) (string, bool) {
	return e.Buffer.GetRow(row)
}

func (e *Editor) GetLineCount() int {
	return e.Buffer.GetRowCount()
}

// These primitives change the text of the buffer at the cursor.

func (e *Editor) InsertChar(c rune) {
	// an empty buffer has one implicit line; make it real before typing into it
	if e.Buffer.GetRowCount() == 0 {
		e.Buffer.AppendRow("")
	}
	e.Buffer.InsertCharacter(e.GetLineNumber(), e.GetColumnNumber(), c)
	e.Cursor.Col++
}

func (e *Editor) DeleteCharAtCursor() {
	e.Buffer.DeleteCharacter(e.GetLineNumber(), e.GetColumnNumber())
}

// DeleteLine removes a line and returns its text, or false if there was no such line.
func (e *Editor) DeleteLine(row int) (string, bool) {
	text, ok := e.Buffer.GetRow(row)
	if ok {
		log.Printf("Deleting line %d", row)
		e.Buffer.DeleteRow(row)
	}
	return text, ok
}

// InsertLine puts text back at row and parks the cursor on it.
// A row just past the end of the buffer appends.
func (e *Editor) InsertLine(row int, text string) {
	switch {
	case row == e.Buffer.GetRowCount():
		e.Buffer.AppendRow(text)
	case row >= 0 && row < e.Buffer.GetRowCount():
		e.Buffer.InsertRow(row, text)
	default:
		return
	}
	log.Printf("Inserted line %d", row)
	e.moveCursorToLine(row)
}

// NewLine moves the cursor to the start of the next row. It does not split the line.
func (e *Editor) NewLine() {
	e.Cursor.Col = 0
	e.Cursor.Row++
}
