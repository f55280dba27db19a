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
package commander

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/timburks/mote/pkg/editor"
	"github.com/timburks/mote/pkg/types"
)

func setup(lines ...string) (*editor.Editor, *Commander) {
	e := editor.NewEditor()
	e.Buffer.LoadBytes([]byte(strings.Join(lines, "\n")))
	e.SetSize(types.Size{Rows: 11, Cols: 80})
	return e, NewCommander(e)
}

func contents(e *editor.Editor) []string {
	result := make([]string, 0)
	for i := 0; i < e.GetLineCount(); i++ {
		line, _ := e.GetLine(i)
		result = append(result, line)
	}
	return result
}

// typeKeys sends each character as a key event.
func typeKeys(t *testing.T, c *Commander, keys string) {
	for _, ch := range keys {
		assert.NoError(t, c.Cycle(types.CharEvent(ch)))
	}
}

func TestDeleteLineAndUndo(t *testing.T) {
	e, c := setup("a", "b", "c")
	typeKeys(t, c, "jdd")
	assert.Equal(t, []string{"a", "c"}, contents(e))
	typeKeys(t, c, "u")
	assert.Equal(t, []string{"a", "b", "c"}, contents(e))
	assert.Equal(t, 1, e.GetLineNumber())
}

func TestUnmatchedLeaderIsDropped(t *testing.T) {
	e, c := setup("abc")
	typeKeys(t, c, "dx")
	assert.Equal(t, []string{"abc"}, contents(e))
	assert.Equal(t, rune(0), e.GetLeader())
	// the next key is interpreted normally
	typeKeys(t, c, "x")
	assert.Equal(t, []string{"bc"}, contents(e))
}

func TestLeaderConsumesNextKey(t *testing.T) {
	e, c := setup("a", "b", "c")
	typeKeys(t, c, "gj")
	assert.Equal(t, 0, e.GetLineNumber())
	typeKeys(t, c, "j")
	assert.Equal(t, 1, e.GetLineNumber())
}

func TestResizeKeepsLeader(t *testing.T) {
	e, c := setup("a", "b")
	typeKeys(t, c, "d")
	assert.NoError(t, c.Cycle(types.ResizeEvent(20, 40)))
	assert.Equal(t, types.Size{Rows: 20, Cols: 40}, e.GetSize())
	assert.Equal(t, 'd', e.GetLeader())
	typeKeys(t, c, "d")
	assert.Equal(t, []string{"b"}, contents(e))
}

func TestInsertMode(t *testing.T) {
	e, c := setup("world")
	typeKeys(t, c, "ihello")
	assert.NoError(t, c.Cycle(types.KeyEvent(types.KeySpace)))
	assert.Equal(t, types.ModeInsert, e.GetMode())
	// in insert mode, commands are text
	typeKeys(t, c, "dd")
	assert.NoError(t, c.Cycle(types.KeyEvent(types.KeyEsc)))
	assert.Equal(t, types.ModeEdit, e.GetMode())
	assert.Equal(t, []string{"hello ddworld"}, contents(e))
}

func TestNewLineStaysInBuffer(t *testing.T) {
	e, c := setup("abc", "def")
	typeKeys(t, c, "ll")
	typeKeys(t, c, "i")
	assert.NoError(t, c.Cycle(types.KeyEvent(types.KeyEnter)))
	assert.Equal(t, types.Point{Row: 1, Col: 0}, e.GetCursor())
	assert.NoError(t, c.Cycle(types.KeyEvent(types.KeyEnter)))
	assert.Equal(t, types.Point{Row: 1, Col: 0}, e.GetCursor())
	assert.Equal(t, []string{"abc", "def"}, contents(e))
}

func TestPaging(t *testing.T) {
	lines := make([]string, 30)
	for i := range lines {
		lines[i] = "line"
	}
	e, c := setup(lines...)
	assert.NoError(t, c.Cycle(types.KeyEvent(types.KeyCtrlF)))
	assert.Equal(t, 9, e.GetLineNumber())
	assert.NoError(t, c.Cycle(types.KeyEvent(types.KeyPgdn)))
	assert.Equal(t, 18, e.GetLineNumber())
	assert.NoError(t, c.Cycle(types.KeyEvent(types.KeyPgdn)))
	assert.Equal(t, 27, e.GetLineNumber())
	// no full page below
	assert.NoError(t, c.Cycle(types.KeyEvent(types.KeyPgdn)))
	assert.Equal(t, 27, e.GetLineNumber())
	assert.NoError(t, c.Cycle(types.KeyEvent(types.KeyCtrlB)))
	assert.Equal(t, 18, e.GetLineNumber())
}

func TestMoveToEndsOfLine(t *testing.T) {
	e, c := setup("hello")
	typeKeys(t, c, "$")
	assert.Equal(t, 4, e.GetColumnNumber())
	typeKeys(t, c, "0")
	assert.Equal(t, 0, e.GetColumnNumber())
	assert.NoError(t, c.Cycle(types.KeyEvent(types.KeyEnd)))
	assert.Equal(t, 4, e.GetColumnNumber())
	typeKeys(t, c, "llll")
	assert.Equal(t, 4, e.GetColumnNumber())
}

func TestQuit(t *testing.T) {
	_, c := setup("a")
	assert.True(t, c.IsRunning())
	typeKeys(t, c, "q")
	assert.False(t, c.IsRunning())
}

func TestInterruptAndError(t *testing.T) {
	_, c := setup("a")
	assert.NoError(t, c.ProcessEvent(&types.Event{Type: types.EventInterrupt}))
	assert.False(t, c.IsRunning())

	_, c = setup("a")
	assert.Error(t, c.ProcessEvent(&types.Event{Type: types.EventError}))
	assert.False(t, c.IsRunning())
}

func TestEmptyBuffer(t *testing.T) {
	e, c := setup()
	typeKeys(t, c, "jjkldduxgg")
	assert.Equal(t, types.Point{}, e.GetCursor())
	typeKeys(t, c, "ia")
	assert.Equal(t, []string{"a"}, contents(e))
	assert.Equal(t, types.ModeInsert, e.GetMode())
}
