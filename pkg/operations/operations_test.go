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
package operations_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/timburks/mote/pkg/editor"
	"github.com/timburks/mote/pkg/operations"
	"github.com/timburks/mote/pkg/types"
)

func setup(lines ...string) *editor.Editor {
	e := editor.NewEditor()
	e.Buffer.LoadBytes([]byte(strings.Join(lines, "\n")))
	e.SetSize(types.Size{Rows: 11, Cols: 80})
	return e
}

func contents(e *editor.Editor) []string {
	result := make([]string, 0)
	for i := 0; i < e.GetLineCount(); i++ {
		line, _ := e.GetLine(i)
		result = append(result, line)
	}
	return result
}

func TestDeleteLineAndUndo(t *testing.T) {
	e := setup("a", "b", "c")
	e.Cursor.Row = 1
	e.Perform(&operations.DeleteLine{})
	assert.Equal(t, []string{"a", "c"}, contents(e))
	assert.Equal(t, 1, e.UndoDepth())

	e.Perform(&operations.Undo{})
	assert.Equal(t, []string{"a", "b", "c"}, contents(e))
	assert.Equal(t, 1, e.GetLineNumber())
	assert.Equal(t, 0, e.UndoDepth())
}

func TestDeleteLastLineAndUndo(t *testing.T) {
	e := setup("a", "b", "c")
	e.Cursor.Row = 2
	e.Perform(&operations.DeleteLine{})
	e.KeepCursorInBounds()
	assert.Equal(t, []string{"a", "b"}, contents(e))
	e.Perform(&operations.Undo{})
	assert.Equal(t, []string{"a", "b", "c"}, contents(e))
	assert.Equal(t, 2, e.GetLineNumber())
}

func TestUndoRestoresInReverseOrder(t *testing.T) {
	e := setup("a", "b", "c", "d")
	e.Perform(&operations.DeleteLine{})
	e.Perform(&operations.DeleteLine{})
	assert.Equal(t, []string{"c", "d"}, contents(e))
	e.Perform(&operations.Undo{})
	assert.Equal(t, []string{"b", "c", "d"}, contents(e))
	e.Perform(&operations.Undo{})
	assert.Equal(t, []string{"a", "b", "c", "d"}, contents(e))
	e.Perform(&operations.Undo{})
	assert.Equal(t, []string{"a", "b", "c", "d"}, contents(e))
}

func TestDeleteLineInEmptyBuffer(t *testing.T) {
	e := setup()
	inverse := (&operations.DeleteLine{}).Perform(e)
	assert.Equal(t, &operations.InsertLine{Row: 0, Text: "", Present: false}, inverse)
	inverse.Perform(e)
	assert.Equal(t, 0, e.GetLineCount())
}

func TestOtherEditsAreNotUndoable(t *testing.T) {
	e := setup("bc")
	for _, op := range []types.Operation{
		&operations.InsertCharacter{Character: 'x'},
		&operations.DeleteCharacter{},
		&operations.NewLine{},
		&operations.MoveCursor{Direction: types.MoveRight},
		&operations.EnterMode{Mode: types.ModeInsert},
		&operations.SetLeader{Key: 'g'},
		&operations.CenterLine{},
		&operations.PageDown{},
		&operations.PageUp{},
		&operations.MoveToEndOfLine{},
		&operations.MoveToStartOfLine{},
	} {
		assert.Nil(t, op.Perform(e), "%T", op)
	}
	assert.Equal(t, 0, e.UndoDepth())
	assert.Equal(t, types.ModeInsert, e.GetMode())
	assert.Equal(t, 'g', e.GetLeader())
}

func TestInsertCharacter(t *testing.T) {
	e := setup("bc")
	e.Perform(&operations.InsertCharacter{Character: 'x'})
	assert.Equal(t, []string{"xbc"}, contents(e))
	assert.Equal(t, 1, e.Cursor.Col)
}

func TestDeleteCharacter(t *testing.T) {
	e := setup("abc")
	e.Cursor.Col = 1
	e.Perform(&operations.DeleteCharacter{})
	assert.Equal(t, []string{"ac"}, contents(e))
}

func TestQuit(t *testing.T) {
	e := setup("abc")
	e.Perform(&operations.Quit{})
	assert.False(t, e.IsRunning())
}

func TestProperty_UndoRestoresDeletedLine(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lines := rapid.SliceOfN(rapid.StringMatching(`[a-zA-Z0-9 ]{0,20}`), 1, 30).Draw(t, "lines")
		e := editor.NewEditor()
		for _, line := range lines {
			e.Buffer.AppendRow(line)
		}
		e.SetSize(types.Size{Rows: rapid.IntRange(3, 15).Draw(t, "rows"), Cols: 80})
		for i := rapid.IntRange(0, len(lines)-1).Draw(t, "line"); i > 0; i-- {
			e.MoveCursor(types.MoveDown)
			e.KeepCursorInBounds()
		}
		line := e.GetLineNumber()

		e.Perform(&operations.DeleteLine{})
		e.KeepCursorInBounds()
		e.Perform(&operations.Undo{})
		e.KeepCursorInBounds()

		assert.Equal(t, lines, contents(e))
		assert.Equal(t, line, e.GetLineNumber())
	})
}
