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
package operations

import (
	"github.com/timburks/mote/pkg/types"
)

// InsertCharacter inserts a character at the cursor and advances the cursor.
type InsertCharacter struct {
	Character rune
}

func (op *InsertCharacter) Perform(e types.Editor) types.Operation {
	e.InsertChar(op.Character)
	return nil
}

// NewLine moves the cursor to the start of the next row.
type NewLine struct{}

func (op *NewLine) Perform(e types.Editor) types.Operation {
	e.NewLine()
	return nil
}

// InsertLine puts a line of text back into the buffer.
// It is the inverse of DeleteLine; if Present is false there was no line to restore.
type InsertLine struct {
	Row     int
	Text    string
	Present bool
}

func (op *InsertLine) Perform(e types.Editor) types.Operation {
	if op.Present {
		e.InsertLine(op.Row, op.Text)
	}
	return nil
}
