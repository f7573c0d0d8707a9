package widgets

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/x/ansi"
	"github.com/justinpbarnett/modal/internal/logging"
	"github.com/justinpbarnett/modal/internal/ui/canvas"
	"github.com/justinpbarnett/modal/internal/ui/clipboard"
	"github.com/justinpbarnett/modal/internal/ui/events"
	"github.com/justinpbarnett/modal/internal/ui/styles"
)

// TextBox is a single-line editor. It receives keys as an events.Handler
// while joined to the dialog's event context; editing is delegated to a
// bubbles textinput. ctrl+v pastes and ctrl+y copies the whole value.
type TextBox struct {
	s     *canvas.Surface
	input textinput.Model
	width int
	x, y  int
	board clipboard.Board
}

// TextBoxOption configures a TextBox.
type TextBoxOption func(*TextBox)

// WithClipboard replaces the system clipboard.
func WithClipboard(b clipboard.Board) TextBoxOption {
	return func(t *TextBox) { t.board = b }
}

func NewTextBox(s *canvas.Surface, width int, value string, opts ...TextBoxOption) *TextBox {
	in := textinput.New()
	in.Prompt = ""
	in.CharLimit = 0
	in.KeyMap.Paste.SetEnabled(false)
	in.SetValue(value)
	in.Focus()

	t := &TextBox{s: s, input: in, width: max(width, 1), board: clipboard.System{}}
	for _, o := range opts {
		o(t)
	}
	return t
}

func (t *TextBox) Text() string { return t.input.Value() }

func (t *TextBox) Width() int  { return t.width }
func (t *TextBox) Height() int { return 1 }

func (t *TextBox) SetLocation(x, y int) { t.x, t.y = x, y }

func (t *TextBox) Location() canvas.Rect {
	return canvas.Rect{X: t.x, Y: t.y, W: t.width, H: 1}
}

// HandleEvent edits the value. Keys the dialog itself reacts to are left
// alone.
func (t *TextBox) HandleEvent(e events.Event) {
	if e.Kind != events.KeyPress {
		return
	}
	switch e.Name() {
	case "enter", "esc", "up", "down", "pgup", "pgdown", "tab":
		return
	case "ctrl+v":
		t.paste()
	case "ctrl+y":
		if err := t.board.Write(t.Text()); err != nil {
			logging.ForComponent(logging.CompDialog).Debug("copy failed", "error", err)
		}
	default:
		t.input, _ = t.input.Update(e.Key)
	}
	t.Draw()
}

func (t *TextBox) paste() {
	clip, err := t.board.Read()
	if err != nil {
		logging.ForComponent(logging.CompDialog).Debug("paste failed", "error", err)
		return
	}
	ins := []rune(clip)
	for i, r := range ins {
		if r == '\n' || r == '\r' {
			ins = ins[:i]
			break
		}
	}
	value := []rune(t.input.Value())
	pos := min(t.input.Position(), len(value))
	out := make([]rune, 0, len(value)+len(ins))
	out = append(out, value[:pos]...)
	out = append(out, ins...)
	out = append(out, value[pos:]...)
	t.input.SetValue(string(out))
	t.input.SetCursor(pos + len(ins))
}

// Process is part of events.Handler; the box has no per-frame work.
func (t *TextBox) Process() {}

// Draw paints the visible window of the value with the cursor shown as a
// highlighted cell. Wide runes take their full cell width, so the window
// ending at the cursor is measured in cells rather than runes.
func (t *TextBox) Draw() {
	if t.s == nil {
		return
	}
	r := t.Location()
	t.s.Fill(r, ' ', styles.EntryInk)

	value := []rune(t.input.Value())
	pos := min(t.input.Position(), len(value))
	cells := func(i int) int {
		if i >= len(value) {
			return 1
		}
		return ansi.StringWidth(string(value[i]))
	}

	start, used := pos, cells(pos)
	for start > 0 && used+cells(start-1) <= t.width {
		start--
		used += cells(start)
	}

	cx := t.x
	for i := start; i <= len(value); i++ {
		w := cells(i)
		if w == 0 {
			continue
		}
		if cx+w > r.Right() {
			break
		}
		ch := ' '
		if i < len(value) {
			ch = value[i]
		}
		ink := styles.EntryInk
		if i == pos {
			ink = styles.SelectedInk
		}
		t.s.Set(cx, t.y, canvas.Cell{Rune: ch, Ink: ink})
		for j := 1; j < w; j++ {
			t.s.Set(cx+j, t.y, canvas.Cell{Rune: canvas.Continuation, Ink: ink})
		}
		cx += w
	}
	t.s.Update(r)
}
