package ui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/justinpbarnett/modal/internal/ui/canvas"
	"github.com/justinpbarnett/modal/internal/ui/events"
)

// Headless is an off-screen display driven by a key script. Flips feed
// the scripted keys to the input manager one at a time, spaced so each
// key is released before the next is pressed. Once the script runs out
// it keeps pressing escape so every dialog ends. When Out is set the
// final frame is written there as plain text by Dump.
type Headless struct {
	s      *canvas.Surface
	in     *events.Manager
	script []tea.KeyMsg
	flips  int
	gap    int
	wait   int
	Out    io.Writer
}

// NewHeadless creates a w×h display and the manager its script feeds.
func NewHeadless(w, h int, script []tea.KeyMsg) (*Headless, *events.Manager) {
	in := events.NewManager()
	return &Headless{
		s:      canvas.NewSurface(w, h),
		in:     in,
		script: script,
		gap:    events.DefaultKeyHoldFrames + 1,
	}, in
}

func (h *Headless) Surface() *canvas.Surface { return h.s }
func (h *Headless) Locked() bool             { return false }

func (h *Headless) Flip() {
	h.flips++
	h.s.TakeDamage()
	if h.wait > 0 {
		h.wait--
		return
	}
	h.wait = h.gap
	key := tea.KeyMsg{Type: tea.KeyEsc}
	if len(h.script) > 0 {
		key = h.script[0]
		h.script = h.script[1:]
	}
	h.in.Feed(events.Event{Kind: events.KeyPress, Key: key})
}

// Flips returns how many frames were presented.
func (h *Headless) Flips() int { return h.flips }

// Remaining is the number of scripted keys not yet fed.
func (h *Headless) Remaining() int { return len(h.script) }

// Dump writes the current surface to Out.
func (h *Headless) Dump() error {
	if h.Out == nil {
		return nil
	}
	_, err := io.WriteString(h.Out, h.s.String()+"\n")
	return err
}
