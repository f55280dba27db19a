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

// MoveCursor moves the cursor one row or column.
type MoveCursor struct {
	Direction int
}

func (op *MoveCursor) Perform(e types.Editor) types.Operation {
	e.MoveCursor(op.Direction)
	return nil
}

type MoveToStartOfLine struct{}

func (op *MoveToStartOfLine) Perform(e types.Editor) types.Operation {
	e.MoveToBeginningOfLine()
	return nil
}

type MoveToEndOfLine struct{}

func (op *MoveToEndOfLine) Perform(e types.Editor) types.Operation {
	e.MoveToEndOfLine()
	return nil
}

type PageUp struct{}

func (op *PageUp) Perform(e types.Editor) types.Operation {
	e.PageUp()
	return nil
}

type PageDown struct{}

func (op *PageDown) Perform(e types.Editor) types.Operation {
	e.PageDown()
	return nil
}

// CenterLine scrolls the cursor line to the middle of the viewport.
type CenterLine struct{}

func (op *CenterLine) Perform(e types.Editor) types.Operation {
	e.CenterLine()
	return nil
}
