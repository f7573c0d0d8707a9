// Package widgets holds the controls a dialog is assembled from: a
// selectable list, push and check buttons, and a single-line text box.
// Each one measures itself, is placed by the caller, draws onto a surface
// and is fed sampled input once per frame.
package widgets

import (
	"errors"

	"github.com/justinpbarnett/modal/internal/ui/canvas"
	"github.com/justinpbarnett/modal/internal/ui/font"
	"github.com/justinpbarnett/modal/internal/ui/styles"
)

// ErrEmptyLabel is returned when a button would have no visible label,
// usually because a string id did not resolve.
var ErrEmptyLabel = errors.New("button label is empty")

// ButtonKind selects push or check behaviour.
type ButtonKind int

const (
	Push ButtonKind = iota
	Check
)

type buttonState int

const (
	stateNormal buttonState = iota
	stateActive
	statePressed
)

// Button fires when the left button is pressed and released over it.
// Check buttons also flip their checked state when they fire.
type Button struct {
	label    string
	kind     ButtonKind
	x, y     int
	state    buttonState
	prevLeft bool
	checked  bool
}

// NewButton creates a button. An empty label is a construction failure.
func NewButton(label string, kind ButtonKind) (*Button, error) {
	if label == "" {
		return nil, ErrEmptyLabel
	}
	return &Button{label: label, kind: kind}, nil
}

func (b *Button) Label() string { return b.label }

func (b *Button) face() string {
	if b.kind == Check {
		if b.checked {
			return "[x] " + b.label
		}
		return "[ ] " + b.label
	}
	return "[ " + b.label + " ]"
}

func (b *Button) Width() int {
	// Check boxes share one width whatever their state.
	return font.Measure("[ ] " + b.label).W
}

func (b *Button) Height() int { return 1 }

func (b *Button) SetLocation(x, y int) { b.x, b.y = x, y }

func (b *Button) Location() canvas.Rect {
	return canvas.Rect{X: b.x, Y: b.y, W: b.Width(), H: b.Height()}
}

func (b *Button) Checked() bool { return b.checked }

func (b *Button) SetCheck(on bool) { b.checked = on }

// Process feeds the pointer position and the left button level. It
// reports whether the button fired this frame.
func (b *Button) Process(x, y int, left bool) bool {
	pressedNow := left && !b.prevLeft
	b.prevLeft = left

	if !b.Location().Contains(x, y) {
		b.state = stateNormal
		return false
	}

	switch {
	case pressedNow:
		b.state = statePressed
	case !left && b.state == statePressed:
		b.state = stateActive
		if b.kind == Check {
			b.checked = !b.checked
		}
		return true
	case !left:
		b.state = stateActive
	}
	return false
}

// Draw paints the button at its location.
func (b *Button) Draw(s *canvas.Surface) {
	ink := styles.ButtonInk
	switch b.state {
	case stateActive:
		ink = styles.ButtonActiveInk
	case statePressed:
		ink = styles.ButtonPressedInk
	}
	if b.kind == Check && b.checked && b.state == stateNormal {
		ink = styles.CheckedInk.Over(s.At(b.x, b.y).Ink)
	}
	r := b.Location()
	s.Fill(r, ' ', ink)
	font.Draw(s, r, b.face(), ink, b.x, b.y)
}
