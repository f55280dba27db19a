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

// DeleteCharacter deletes the character under the cursor.
type DeleteCharacter struct{}

func (op *DeleteCharacter) Perform(e types.Editor) types.Operation {
	e.DeleteCharAtCursor()
	return nil
}

// DeleteLine deletes the cursor line.
type DeleteLine struct{}

func (op *DeleteLine) Perform(e types.Editor) types.Operation {
	row := e.GetLineNumber()
	text, ok := e.DeleteLine(row)
	return &InsertLine{Row: row, Text: text, Present: ok}
}
