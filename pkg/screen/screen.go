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
package screen

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/nsf/termbox-go"
	"golang.org/x/term"

	"github.com/timburks/mote/pkg/types"
)

// Colors from the 256-color palette, offset by one as termbox expects in Output256 mode.
const (
	colorBlack  = termbox.Attribute(16 + 1)
	colorWhite  = termbox.Attribute(231 + 1)
	colorPurple = termbox.Attribute(141 + 1)
	colorSlate  = termbox.Attribute(238 + 1)
)

// The Screen draws the state of an Editor on the terminal.
type Screen struct {
	fd    int
	state *term.State // terminal state before termbox took over
}

// NewScreen puts the terminal in raw mode on the alternate screen.
// Close must be called to give the terminal back.
func NewScreen() (*Screen, error) {
	s := &Screen{fd: int(os.Stdin.Fd())}
	state, err := term.GetState(s.fd)
	if err != nil {
		log.Printf("Unable to save terminal state: %+v", err)
	}
	s.state = state
	// Open the terminal.
	err = termbox.Init()
	if err != nil {
		return nil, err
	}
	termbox.SetInputMode(termbox.InputEsc)
	termbox.SetOutputMode(termbox.Output256)
	return s, nil
}

// Close restores the terminal. Failures are logged; the process is exiting anyway.
func (s *Screen) Close() {
	termbox.Close()
	if s.state != nil {
		if err := term.Restore(s.fd, s.state); err != nil {
			log.Printf("Unable to restore terminal state: %+v", err)
		}
	}
}

// HandleSignals turns termination signals into an interrupt event
// so that the event loop can exit and the terminal can be restored.
func (s *Screen) HandleSignals() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGTERM, syscall.SIGHUP, syscall.SIGINT)
	go func() {
		sig := <-c
		log.Printf("Received %s", sig)
		termbox.Interrupt()
	}()
}

func (s *Screen) GetSize() types.Size {
	cols, rows := termbox.Size()
	return types.Size{Rows: rows, Cols: cols}
}

func (s *Screen) Render(e types.Editor) {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	e.Render(s)
	if err := termbox.Flush(); err != nil {
		log.Printf("Flush failed: %+v", err)
	}
}

func (s *Screen) SetCell(col, row int, c rune, style types.Style) {
	fg, bg := attributes(style)
	termbox.SetCell(col, row, c, fg, bg)
}

func (s *Screen) SetCursor(p types.Point) {
	termbox.SetCursor(p.Col, p.Row)
}

func attributes(style types.Style) (fg, bg termbox.Attribute) {
	switch style {
	case types.StyleMode, types.StylePosition:
		return colorBlack | termbox.AttrBold, colorPurple
	case types.StyleFileName:
		return colorWhite | termbox.AttrBold, colorSlate
	default:
		return termbox.ColorDefault, termbox.ColorDefault
	}
}

func (s *Screen) GetNextEvent() *types.Event {
	event := termbox.PollEvent()
	switch event.Type {
	case termbox.EventKey:
		return &types.Event{Type: types.EventKey, Key: key(event.Key), Ch: event.Ch}
	case termbox.EventResize:
		return types.ResizeEvent(event.Height, event.Width)
	case termbox.EventInterrupt:
		return &types.Event{Type: types.EventInterrupt}
	case termbox.EventError:
		log.Printf("Event error: %+v", event.Err)
		return &types.Event{Type: types.EventError}
	default:
		return &types.Event{Type: types.EventKey, Key: types.KeyUnsupported}
	}
}

func key(k termbox.Key) types.Key {
	switch k {
	case 0:
		return 0
	case termbox.KeyArrowDown:
		return types.KeyArrowDown
	case termbox.KeyArrowLeft:
		return types.KeyArrowLeft
	case termbox.KeyArrowRight:
		return types.KeyArrowRight
	case termbox.KeyArrowUp:
		return types.KeyArrowUp
	case termbox.KeyBackspace2:
		return types.KeyBackspace
	case termbox.KeyCtrlB:
		return types.KeyCtrlB
	case termbox.KeyCtrlC:
		return types.KeyCtrlC
	case termbox.KeyCtrlF:
		return types.KeyCtrlF
	case termbox.KeyEnd:
		return types.KeyEnd
	case termbox.KeyEnter:
		return types.KeyEnter
	case termbox.KeyEsc:
		return types.KeyEsc
	case termbox.KeyHome:
		return types.KeyHome
	case termbox.KeyPgdn:
		return types.KeyPgdn
	case termbox.KeyPgup:
		return types.KeyPgup
	case termbox.KeySpace:
		return types.KeySpace
	case termbox.KeyTab:
		return types.KeyTab
	default:
		return types.KeyUnsupported
	}
}
