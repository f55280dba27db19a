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
	"errors"
	"io"
	"log"
	"os"

	"github.com/timburks/mote/pkg/types"
)

// The Commander converts user input into operations for the Editor.
type Commander struct {
	editor types.Editor
	output io.Writer // destination of script output
}

func NewCommander(e types.Editor) *Commander {
	return &Commander{editor: e, output: os.Stdout}
}

// SetOutput sets the writer used by scripts that print.
func (c *Commander) SetOutput(w io.Writer) {
	c.output = w
}

func (c *Commander) IsRunning() bool {
	return c.editor.IsRunning()
}

func (c *Commander) ProcessEvent(event *types.Event) error {
	switch event.Type {
	case types.EventKey:
		return c.processKey(event)
	case types.EventResize:
		return c.processResize(event)
	case types.EventInterrupt:
		c.editor.Quit()
		return nil
	case types.EventError:
		c.editor.Quit()
		return errors.New("error reading terminal input")
	default:
		return nil
	}
}

// Resizing doesn't consume a pending leader key.
func (c *Commander) processResize(event *types.Event) error {
	c.editor.SetSize(event.Size)
	return nil
}

func (c *Commander) processKey(event *types.Event) error {
	e := c.editor
	leader := e.GetLeader()
	op := Dispatch(e.GetMode(), leader, event)
	if leader != 0 {
		// a pending leader is used up by the next key, whether or not it made a command
		e.SetLeader(0)
		if op == nil {
			log.Printf("Dropped key sequence %c %+v", leader, event)
		}
	}
	if op != nil {
		e.Perform(op)
	}
	return nil
}

// Cycle processes one event and then keeps the cursor in bounds,
// leaving the editor ready to render.
func (c *Commander) Cycle(event *types.Event) error {
	err := c.ProcessEvent(event)
	c.editor.KeepCursorInBounds()
	return err
}
