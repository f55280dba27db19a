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
	"github.com/timburks/mote/pkg/types"
)

// The two bottom rows of the screen hold the status line and the message line.
const reservedRows = 2

func (e *Editor) SetSize(s types.Size) {
	e.size = s
}

func (e *Editor) GetSize() types.Size {
	return e.size
}

// GetViewportSize returns the size of the text area of the screen.
func (e *Editor) GetViewportSize() types.Size {
	s := types.Size{Rows: e.size.Rows - reservedRows, Cols: e.size.Cols}
	if s.Rows < 1 {
		s.Rows = 1
	}
	if s.Cols < 1 {
		s.Cols = 1
	}
	return s
}

func (e *Editor) GetCursor() types.Point {
	return e.Cursor
}

// GetLineNumber returns the buffer row of the cursor.
func (e *Editor) GetLineNumber() int {
	return e.Offset.Rows + e.Cursor.Row
}

// GetColumnNumber returns the buffer column of the cursor.
func (e *Editor) GetColumnNumber() int {
	return e.Offset.Cols + e.Cursor.Col
}

func (e *Editor) currentLineLength() int {
	return e.Buffer.GetRowLength(e.GetLineNumber())
}

// MoveCursor moves the cursor one step. Moves are not checked against the
// buffer here; KeepCursorInBounds pulls the cursor back before the next render.
func (e *Editor) MoveCursor(direction int) {
	switch direction {
	case types.MoveUp:
		if e.Cursor.Row == 0 {
			// scroll up
			if e.Offset.Rows > 0 {
				e.Offset.Rows--
			}
		} else {
			e.Cursor.Row--
		}
	case types.MoveDown:
		e.Cursor.Row++
		if e.Cursor.Row >= e.GetViewportSize().Rows {
			// scroll down
			e.Offset.Rows++
			e.Cursor.Row--
		}
	case types.MoveLeft:
		if e.Cursor.Col > 0 {
			e.Cursor.Col--
		}
		if e.Cursor.Col < e.Offset.Cols {
			e.Cursor.Col = e.Offset.Cols
		}
	case types.MoveRight:
		e.Cursor.Col++
	}
}

func (e *Editor) MoveToBeginningOfLine() {
	e.Cursor.Col = 0
}

func (e *Editor) MoveToEndOfLine() {
	e.Cursor.Col = e.currentLineLength() - 1
	if e.Cursor.Col < 0 {
		e.Cursor.Col = 0
	}
}

func (e *Editor) PageUp() {
	if e.Offset.Rows > 0 {
		e.Offset.Rows -= e.GetViewportSize().Rows
		if e.Offset.Rows < 0 {
			e.Offset.Rows = 0
		}
	}
}

// PageDown only scrolls if there are lines below the current page.
func (e *Editor) PageDown() {
	height := e.GetViewportSize().Rows
	if e.Buffer.GetRowCount() > e.Offset.Rows+height {
		e.Offset.Rows += height
	}
}

// CenterLine scrolls so that the cursor line is in the middle of the viewport.
// Near the top and bottom of the buffer, where a full page can't be
// centered, it leaves the viewport alone.
func (e *Editor) CenterLine() {
	center := e.GetViewportSize().Rows / 2
	distance := e.Cursor.Row - center
	if distance > 0 {
		// cursor is below the center
		if e.Offset.Rows > distance {
			e.Offset.Rows += distance
			e.Cursor.Row = center
		}
	} else if distance < 0 {
		// cursor is above the center
		distance = -distance
		top := e.Offset.Rows - distance
		if top < 0 {
			top = 0
		}
		if e.Buffer.GetRowCount() > e.Offset.Rows+distance && top != e.Offset.Rows {
			e.Offset.Rows = top
			e.Cursor.Row = center
		}
	}
}

// moveCursorToLine puts the cursor on a buffer row, scrolling only if the row is offscreen.
func (e *Editor) moveCursorToLine(row int) {
	height := e.GetViewportSize().Rows
	if row >= e.Offset.Rows && row < e.Offset.Rows+height {
		e.Cursor.Row = row - e.Offset.Rows
	} else {
		e.Offset.Rows = row
		e.Cursor.Row = 0
	}
}

// KeepCursorInBounds clamps the cursor to the buffer and the viewport.
// It runs once per input cycle, before rendering.
func (e *Editor) KeepCursorInBounds() {
	viewport := e.GetViewportSize()
	count := e.Buffer.GetRowCount()
	if count == 0 {
		// an empty buffer has one implicit empty line
		e.Offset.Rows = 0
		e.Cursor = types.Point{}
		return
	}
	if e.Cursor.Row >= viewport.Rows {
		e.Cursor.Row = viewport.Rows - 1
	}
	if e.Cursor.Row < 0 {
		e.Cursor.Row = 0
	}
	if e.Offset.Rows > count-1 {
		e.Offset.Rows = count - 1
	}
	// don't go past the end of the buffer
	if e.GetLineNumber() > count-1 {
		e.Cursor.Row = count - 1 - e.Offset.Rows
	}
	// don't go past the end of the current line
	length := e.currentLineLength()
	if e.Cursor.Col >= length {
		e.Cursor.Col = length - 1
	}
	if e.Cursor.Col >= viewport.Cols {
		e.Cursor.Col = viewport.Cols - 1
	}
	if e.Cursor.Col < 0 {
		e.Cursor.Col = 0
	}
}
