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
	"github.com/timburks/mote/pkg/operations"
	"github.com/timburks/mote/pkg/types"
)

// Dispatch returns the operation for a key event, or nil if the event has
// no meaning in the current mode. If leader is set, the event completes a
// two-key command.
func Dispatch(mode types.Mode, leader rune, event *types.Event) types.Operation {
	if event.Type != types.EventKey {
		return nil
	}
	switch mode {
	case types.ModeEdit:
		if leader != 0 {
			return dispatchLeader(leader, event)
		}
		return dispatchEdit(event)
	case types.ModeInsert:
		return dispatchInsert(event)
	}
	return nil
}

func dispatchEdit(event *types.Event) types.Operation {
	if event.Key != 0 {
		switch event.Key {
		case types.KeyArrowUp:
			return &operations.MoveCursor{Direction: types.MoveUp}
		case types.KeyArrowDown:
			return &operations.MoveCursor{Direction: types.MoveDown}
		case types.KeyArrowLeft:
			return &operations.MoveCursor{Direction: types.MoveLeft}
		case types.KeyArrowRight:
			return &operations.MoveCursor{Direction: types.MoveRight}
		case types.KeyHome:
			return &operations.MoveToStartOfLine{}
		case types.KeyEnd:
			return &operations.MoveToEndOfLine{}
		case types.KeyCtrlB, types.KeyPgup:
			return &operations.PageUp{}
		case types.KeyCtrlF, types.KeyPgdn:
			return &operations.PageDown{}
		}
		return nil
	}
	switch event.Ch {
	case 'q':
		return &operations.Quit{}
	case 'u':
		return &operations.Undo{}
	case 'k':
		return &operations.MoveCursor{Direction: types.MoveUp}
	case 'j':
		return &operations.MoveCursor{Direction: types.MoveDown}
	case 'h':
		return &operations.MoveCursor{Direction: types.MoveLeft}
	case 'l':
		return &operations.MoveCursor{Direction: types.MoveRight}
	case 'i':
		return &operations.EnterMode{Mode: types.ModeInsert}
	case '0':
		return &operations.MoveToStartOfLine{}
	case '$':
		return &operations.MoveToEndOfLine{}
	case 'x':
		return &operations.DeleteCharacter{}
	//
	// a few keys open multi-key commands
	//
	case 'd', 'g':
		return &operations.SetLeader{Key: event.Ch}
	}
	return nil
}

// dispatchLeader resolves the second key of a two-key command.
// Unrecognized sequences are dropped.
func dispatchLeader(leader rune, event *types.Event) types.Operation {
	switch leader {
	case 'd':
		if event.Ch == 'd' {
			return &operations.DeleteLine{}
		}
	case 'g':
		if event.Ch == 'g' {
			return &operations.CenterLine{}
		}
	}
	return nil
}

func dispatchInsert(event *types.Event) types.Operation {
	switch event.Key {
	case types.KeyEsc:
		return &operations.EnterMode{Mode: types.ModeEdit}
	case types.KeyEnter:
		return &operations.NewLine{}
	case types.KeySpace:
		return &operations.InsertCharacter{Character: ' '}
	case 0:
		if event.Ch != 0 {
			return &operations.InsertCharacter{Character: event.Ch}
		}
	}
	return nil
}
