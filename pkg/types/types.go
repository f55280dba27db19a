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
package types

// Mode selects the keymap used to interpret input.
type Mode int

// Editor modes
const (
	ModeEdit   Mode = 0 // navigation
	ModeInsert Mode = 1
)

func (m Mode) String() string {
	switch m {
	case ModeEdit:
		return "NORMAL"
	case ModeInsert:
		return "INSERT"
	default:
		return "UNKNOWN"
	}
}

// Move directions
const (
	MoveUp    = 0
	MoveDown  = 1
	MoveRight = 2
	MoveLeft  = 3
)

type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

// Style names the role of a painted cell; displays map it to colors.
type Style int

const (
	StyleText     Style = 0
	StyleMode     Style = 1
	StyleFileName Style = 2
	StylePosition Style = 3
	StyleMessage  Style = 4
)

// An Operation is a unit of work performed by the editor.
type Operation interface {
	Perform(e Editor) Operation // performs the operation and returns its inverse
}

// Editor is the set of services that operations and commanders call.
type Editor interface {
	Perform(op Operation)
	PerformUndo()
	KeepCursorInBounds()
	Render(d Display)
	SetSize(size Size)
	GetSize() Size
	Quit()
	IsRunning() bool

	GetCursor() Point
	GetLineNumber() int
	GetColumnNumber() int
	GetLine(row int) (string, bool)
	GetLineCount() int

	GetMode() Mode
	SetMode(mode Mode)
	GetLeader() rune
	SetLeader(leader rune)

	MoveCursor(direction int)
	MoveToBeginningOfLine()
	MoveToEndOfLine()
	PageUp()
	PageDown()
	CenterLine()
	NewLine()

	InsertChar(c rune)
	DeleteCharAtCursor()
	DeleteLine(row int) (string, bool)
	InsertLine(row int, text string)

	WriteFile(path string) error
}

// A Display is a rectangular surface of character cells.
type Display interface {
	GetSize() Size
	SetCell(col, row int, c rune, style Style)
	SetCursor(p Point)
}
