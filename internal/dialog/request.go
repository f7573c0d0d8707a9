// Package dialog runs modal dialogs: it lays out a request, draws it and
// polls input once per frame until a button, key or hook ends the loop
// with an integer result.
package dialog

import "github.com/justinpbarnett/modal/internal/ui/canvas"

// Kind selects the response buttons a dialog offers and what the
// confirm and escape keys return.
type Kind int

const (
	Message Kind = iota
	OKOnly
	YesNo
	OKCancel
	CancelOnly
)

func (k Kind) String() string {
	switch k {
	case Message:
		return "message"
	case OKOnly:
		return "ok"
	case YesNo:
		return "yesno"
	case OKCancel:
		return "okcancel"
	case CancelOnly:
		return "cancel"
	}
	return "unknown"
}

// kindButtons maps each kind to the string ids of its response buttons,
// left to right.
var kindButtons = map[Kind][]string{
	Message:    nil,
	OKOnly:     {"ok_button"},
	YesNo:      {"yes_button", "no_button"},
	OKCancel:   {"ok_button", "cancel_button"},
	CancelOnly: {"cancel_button"},
}

// confirms reports whether the confirm key and list double clicks end
// dialogs of this kind.
func (k Kind) confirms() bool {
	return k == YesNo || k == OKCancel || k == OKOnly
}

const (
	// EscapeDialog is returned when escape closes a Message dialog.
	EscapeDialog = -3
	// ContinueDialog is the code an Action reports while it has more to
	// do. Show never returns it.
	ContinueDialog = -2
)

// Option is a checkable option. Checked is written back every frame.
type Option struct {
	Label   string
	Checked bool
}

// ButtonResult tells the dialog what an action button did.
type ButtonResult int

const (
	NoEffect ButtonResult = iota
	DeleteItem
)

// ButtonHandler is called when an action button is pressed, with the
// current list selection.
type ButtonHandler interface {
	ButtonPressed(selection int) ButtonResult
}

// ButtonHandlerFunc adapts a func to ButtonHandler.
type ButtonHandlerFunc func(selection int) ButtonResult

func (f ButtonHandlerFunc) ButtonPressed(selection int) ButtonResult { return f(selection) }

// ActionButton is an extra button stacked under the options.
type ActionButton struct {
	Label   string
	Handler ButtonHandler
}

// Detail is shown in a side panel while its list item is highlighted.
type Detail struct {
	Title string
	Image *canvas.Image
	Lines []string
}

// Action is polled once per frame. Returning done ends the dialog with
// code.
type Action interface {
	Do() (code int, done bool)
}

// ActionFunc adapts a func to Action.
type ActionFunc func() (int, bool)

func (f ActionFunc) Do() (int, bool) { return f() }

// Request describes one dialog.
type Request struct {
	Kind    Kind
	Image   *canvas.Image
	Caption string
	Message string

	// Items makes a selectable list. Commas split an item into columns.
	Items   []string
	Details []Detail

	// EntryText adds a text box seeded with its value; the final text is
	// written back when a confirm or button ends the dialog.
	EntryLabel string
	EntryText  *string

	Options       []Option
	ActionButtons []ActionButton

	// Position fixes the content origin; nil centers the dialog.
	Position *canvas.Point
	Style    string
	Action   Action
}
