// Package events turns the terminal's message stream into the level-based
// input model the dialog loop polls: which keys and mouse buttons are
// down this frame, and where the pointer is.
package events

import tea "github.com/charmbracelet/bubbletea"

// Kind identifies an input event.
type Kind int

const (
	KeyPress Kind = iota
	MousePress
	MouseRelease
	MouseMove
	Resize
)

// Button is a mouse button the engine tracks.
type Button int

const (
	Left Button = iota
	Right
	numButtons
)

// Event is one queued input occurrence.
type Event struct {
	Kind   Kind
	Key    tea.KeyMsg
	Button Button
	X, Y   int
	W, H   int
}

// Name returns the key name for KeyPress events ("enter", "esc", "a").
func (e Event) Name() string {
	if e.Kind != KeyPress {
		return ""
	}
	return e.Key.String()
}

// Mouse is the sampled pointer state.
type Mouse struct {
	X, Y        int
	Left, Right bool
}

// Handler receives events while its context is on top of the stack.
type Handler interface {
	HandleEvent(e Event)
	Process()
	Draw()
}
