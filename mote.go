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
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/timburks/mote/pkg/commander"
	"github.com/timburks/mote/pkg/editor"
	"github.com/timburks/mote/pkg/screen"
)

const usage = "usage: mote [--eval script.lisp | --exec expression] [file]"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "mote: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var filename, script, expression string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--eval": // run a script file
			i++
			if i == len(args) {
				return errors.New("no file specified for --eval option")
			}
			script = args[i]
		case "--exec": // evaluate one expression
			i++
			if i == len(args) {
				return errors.New("no expression specified for --exec option")
			}
			expression = args[i]
		default:
			if filename != "" {
				return errors.New(usage)
			}
			filename = args[i]
		}
	}

	// The editor manages all text manipulation.
	e := editor.NewEditor()
	if filename != "" {
		// A file that can't be read is fatal, before the terminal is touched.
		if err := e.ReadFile(filename); err != nil {
			return err
		}
	}

	// The commander converts user inputs into operations for the editor.
	c := commander.NewCommander(e)

	if script != "" || expression != "" {
		if script != "" {
			if err := c.ParseEvalFile(script); err != nil {
				return err
			}
		}
		if expression != "" {
			result, err := c.Eval(expression)
			if err != nil {
				return fmt.Errorf("--exec: %w", err)
			}
			fmt.Println(result)
		}
		return nil
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("standard input is not a terminal")
	}

	// Open a log file.
	f, err := os.OpenFile(os.Getenv("HOME")+"/.motelog", os.O_APPEND|os.O_CREATE|os.O_RDWR, 0666)
	if err != nil {
		return err
	}
	defer f.Close()
	log.SetOutput(f)

	// Create a screen to manage display.
	s, err := screen.NewScreen()
	if err != nil {
		return fmt.Errorf("unable to open terminal: %w", err)
	}
	defer s.Close()
	s.HandleSignals()
	e.SetSize(s.GetSize())
	e.KeepCursorInBounds()

	// Run the main event loop.
	for c.IsRunning() {
		s.Render(e)
		if err := c.Cycle(s.GetNextEvent()); err != nil {
			log.Printf("%+v", err)
		}
	}
	return nil
}
