package dialog

import (
	"strings"
	"testing"

	"github.com/justinpbarnett/modal/internal/ui/canvas"
	"github.com/justinpbarnett/modal/internal/ui/clipboard"
	"github.com/justinpbarnett/modal/internal/ui/events"
)

type fakeDisplay struct {
	s      *canvas.Surface
	flips  int
	locked bool
}

func newFakeDisplay(w, h int) *fakeDisplay {
	return &fakeDisplay{s: canvas.NewSurface(w, h)}
}

func (d *fakeDisplay) Surface() *canvas.Surface { return d.s }
func (d *fakeDisplay) Flip()                    { d.flips++ }
func (d *fakeDisplay) Locked() bool             { return d.locked }

// step mutates the input state at the start of one frame.
type step func(f *fakeInput)

// fakeInput replays a script, one step per Pump. It panics when the
// dialog keeps running well past the end of the script.
type fakeInput struct {
	t        *testing.T
	disp     *fakeDisplay
	script   []step
	frames   int
	keys     map[string]bool
	mouse    events.Mouse
	contexts [][]events.Handler
	locks    int
	draws    int
}

func newFakeInput(t *testing.T, disp *fakeDisplay, script ...step) *fakeInput {
	return &fakeInput{
		t:        t,
		disp:     disp,
		script:   script,
		keys:     make(map[string]bool),
		contexts: [][]events.Handler{nil},
	}
}

const idleFrames = 50

func (f *fakeInput) Pump() {
	if f.frames < len(f.script) {
		f.script[f.frames](f)
	}
	f.frames++
	if f.frames > len(f.script)+idleFrames {
		panic("dialog still running after script ended")
	}
}

func (f *fakeInput) Mouse() events.Mouse      { return f.mouse }
func (f *fakeInput) KeyDown(name string) bool { return f.keys[name] }

func (f *fakeInput) NewContext() func() {
	f.contexts = append(f.contexts, nil)
	n := len(f.contexts)
	return func() { f.contexts = f.contexts[:n-1] }
}

func (f *fakeInput) Join(h events.Handler) {
	top := len(f.contexts) - 1
	f.contexts[top] = append(f.contexts[top], h)
}

func (f *fakeInput) top() []events.Handler { return f.contexts[len(f.contexts)-1] }

func (f *fakeInput) RaiseProcess() {
	for _, h := range f.top() {
		h.Process()
	}
}

func (f *fakeInput) RaiseDraw() {
	f.draws++
	for _, h := range f.top() {
		h.Draw()
	}
}

func (f *fakeInput) LockResize() func() {
	f.locks++
	return func() { f.locks-- }
}

func (f *fakeInput) send(e events.Event) {
	for _, h := range f.top() {
		h.HandleEvent(e)
	}
}

func hold(keys ...string) step {
	return func(f *fakeInput) {
		for _, k := range keys {
			f.keys[k] = true
		}
	}
}

func release(keys ...string) step {
	return func(f *fakeInput) {
		for _, k := range keys {
			delete(f.keys, k)
		}
	}
}

func idle(*fakeInput) {}

// press puts the left button down over the first cell of label.
func press(label string) step {
	return func(f *fakeInput) {
		x, y, ok := find(f.disp.s, label)
		if !ok {
			f.t.Fatalf("%q not on screen:\n%s", label, f.disp.s.String())
		}
		f.mouse = events.Mouse{X: x, Y: y, Left: true}
	}
}

func lift(f *fakeInput) { f.mouse.Left = false }

// click is a press followed by a release on the next frame.
func click(label string) []step {
	return []step{press(label), lift}
}

func steps(groups ...[]step) []step {
	var out []step
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// find returns the position of the first occurrence of text on s.
func find(s *canvas.Surface, text string) (int, int, bool) {
	for y := range s.Height() {
		var row []rune
		var xs []int
		for x := range s.Width() {
			c := s.At(x, y)
			if c.Rune == canvas.Continuation {
				continue
			}
			row = append(row, c.Rune)
			xs = append(xs, x)
		}
		if i := strings.Index(string(row), text); i >= 0 {
			return xs[len([]rune(string(row)[:i]))], y, true
		}
	}
	return 0, 0, false
}

func newTestEngine(t *testing.T, script ...step) (*Engine, *fakeDisplay, *fakeInput) {
	t.Helper()
	disp := newFakeDisplay(100, 40)
	in := newFakeInput(t, disp, script...)
	e := NewEngine(disp, in, WithPacer(Unpaced{}), WithClipboard(&clipboard.Memory{}))
	return e, disp, in
}
