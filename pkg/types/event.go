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
package types

type EventType int

// Event types
const (
	EventKey       EventType = 0
	EventResize    EventType = 1
	EventInterrupt EventType = 2
	EventError     EventType = 3
)

type Key uint16

// Special keys. Printable input arrives as Key == 0 with Ch set.
const (
	KeyUnsupported Key = iota + 1
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyHome
	KeyEnd
	KeyPgup
	KeyPgdn
	KeyEsc
	KeyEnter
	KeySpace
	KeyTab
	KeyBackspace
	KeyCtrlB
	KeyCtrlC
	KeyCtrlF
)

// An Event is a terminal input event, independent of the terminal library.
type Event struct {
	Type EventType
	Key  Key
	Ch   rune
	Size Size // for EventResize, the new screen size
}

func KeyEvent(key Key) *Event {
	return &Event{Type: EventKey, Key: key}
}

func CharEvent(ch rune) *Event {
	return &Event{Type: EventKey, Ch: ch}
}

func ResizeEvent(rows, cols int) *Event {
	return &Event{Type: EventResize, Size: Size{Rows: rows, Cols: cols}}
}
