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

// EnterMode switches between navigation and insertion.
type EnterMode struct {
	Mode types.Mode
}

func (op *EnterMode) Perform(e types.Editor) types.Operation {
	e.SetMode(op.Mode)
	return nil
}

// SetLeader arms a two-key command; the commander resolves it with the next key.
type SetLeader struct {
	Key rune
}

func (op *SetLeader) Perform(e types.Editor) types.Operation {
	e.SetLeader(op.Key)
	return nil
}

type Quit struct{}

func (op *Quit) Perform(e types.Editor) types.Operation {
	e.Quit()
	return nil
}
