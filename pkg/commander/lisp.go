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
	"fmt"
	"log"
	"os"

	"github.com/steelseries/golisp"

	"github.com/timburks/mote/pkg/operations"
	"github.com/timburks/mote/pkg/screen"
	"github.com/timburks/mote/pkg/types"
)

// the commander that lisp primitives act on
var scripted *Commander

var namedKeys = map[string]types.Key{
	"esc":    types.KeyEsc,
	"enter":  types.KeyEnter,
	"up":     types.KeyArrowUp,
	"down":   types.KeyArrowDown,
	"left":   types.KeyArrowLeft,
	"right":  types.KeyArrowRight,
	"home":   types.KeyHome,
	"end":    types.KeyEnd,
	"pgup":   types.KeyPgup,
	"pgdn":   types.KeyPgdn,
	"ctrl-b": types.KeyCtrlB,
	"ctrl-f": types.KeyCtrlF,
	"space":  types.KeySpace,
}

func init() {
	golisp.MakePrimitiveFunction("keys", "1", keysImpl)
	golisp.MakePrimitiveFunction("key", "1", keyImpl)
	golisp.MakePrimitiveFunction("resize", "2", resizeImpl)
	golisp.MakePrimitiveFunction("line", "1", lineImpl)
	golisp.MakePrimitiveFunction("line-count", "0", lineCountImpl)
	golisp.MakePrimitiveFunction("cursor-row", "0", cursorRowImpl)
	golisp.MakePrimitiveFunction("cursor-col", "0", cursorColImpl)
	golisp.MakePrimitiveFunction("mode", "0", modeImpl)
	golisp.MakePrimitiveFunction("undo", "0", undoImpl)
	golisp.MakePrimitiveFunction("write-file", "1", writeFileImpl)
	golisp.MakePrimitiveFunction("dump", "0", dumpImpl)
}

// Eval evaluates a lisp expression and returns its printed value.
func (c *Commander) Eval(command string) (string, error) {
	scripted = c
	value, err := golisp.ParseAndEval(command)
	if err != nil {
		return "", err
	}
	return golisp.String(value), nil
}

// ParseEval evaluates a lisp expression and returns its printed value or an error message.
func (c *Commander) ParseEval(command string) string {
	result, err := c.Eval(command)
	if err != nil {
		log.Printf("ERR %+v", err)
		return err.Error()
	}
	return result
}

// ParseEvalFile runs every expression in a script file.
func (c *Commander) ParseEvalFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	scripted = c
	_, err = golisp.ParseAndEval("(begin\n" + string(b) + "\n)")
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func stringArgument(args *golisp.Data, name string) (string, error) {
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return "", fmt.Errorf("%s requires a string argument", name)
	}
	return golisp.StringValue(val), nil
}

func integerArgument(val *golisp.Data, name string) (int, error) {
	if !golisp.IntegerP(val) {
		return 0, fmt.Errorf("%s requires an integer argument", name)
	}
	return int(golisp.IntegerValue(val)), nil
}

// keysImpl types each character of a string as a separate key event.
func keysImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	text, err := stringArgument(args, "keys")
	if err != nil {
		return nil, err
	}
	for _, ch := range text {
		var event *types.Event
		switch ch {
		case '\n':
			event = types.KeyEvent(types.KeyEnter)
		case 0x1b:
			event = types.KeyEvent(types.KeyEsc)
		default:
			event = types.CharEvent(ch)
		}
		if err = scripted.Cycle(event); err != nil {
			return nil, err
		}
	}
	return nil, nil
}

func keyImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	name, err := stringArgument(args, "key")
	if err != nil {
		return nil, err
	}
	k, ok := namedKeys[name]
	if !ok {
		return nil, fmt.Errorf("unknown key %q", name)
	}
	return nil, scripted.Cycle(types.KeyEvent(k))
}

func resizeImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	rows, err := integerArgument(golisp.Car(args), "resize")
	if err != nil {
		return nil, err
	}
	cols, err := integerArgument(golisp.Car(golisp.Cdr(args)), "resize")
	if err != nil {
		return nil, err
	}
	if rows < 1 || cols < 1 {
		return nil, errors.New("resize requires a positive size")
	}
	return nil, scripted.Cycle(types.ResizeEvent(rows, cols))
}

func lineImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	row, err := integerArgument(golisp.Car(args), "line")
	if err != nil {
		return nil, err
	}
	text, ok := scripted.editor.GetLine(row)
	if !ok {
		return nil, nil
	}
	return golisp.StringWithValue(text), nil
}

func lineCountImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	return golisp.IntegerWithValue(int64(scripted.editor.GetLineCount())), nil
}

func cursorRowImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	return golisp.IntegerWithValue(int64(scripted.editor.GetLineNumber())), nil
}

func cursorColImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	return golisp.IntegerWithValue(int64(scripted.editor.GetColumnNumber())), nil
}

func modeImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	return golisp.StringWithValue(scripted.editor.GetMode().String()), nil
}

func undoImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	e := scripted.editor
	e.Perform(&operations.Undo{})
	e.KeepCursorInBounds()
	return nil, nil
}

func writeFileImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	path, err := stringArgument(args, "write-file")
	if err != nil {
		return nil, err
	}
	return nil, scripted.editor.WriteFile(path)
}

// dumpImpl prints the screen as it would appear in a terminal.
func dumpImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	e := scripted.editor
	frame := screen.NewFrame(e.GetSize())
	e.Render(frame)
	_, err = fmt.Fprintln(scripted.output, frame.Styled())
	return nil, err
}
