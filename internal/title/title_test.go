package title

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justinpbarnett/modal/internal/config"
	"github.com/justinpbarnett/modal/internal/dialog"
	"github.com/justinpbarnett/modal/internal/ui/canvas"
	"github.com/justinpbarnett/modal/internal/ui/events"
)

type fakeDisplay struct {
	s     *canvas.Surface
	flips int
}

func (d *fakeDisplay) Surface() *canvas.Surface { return d.s }
func (d *fakeDisplay) Flip()                    { d.flips++ }
func (d *fakeDisplay) Locked() bool             { return false }

// scriptPacer runs one step per frame and gives up after the script.
type scriptPacer struct {
	steps []func()
	n     int
}

func (p *scriptPacer) Wait() {
	if p.n < len(p.steps) {
		p.steps[p.n]()
	}
	p.n++
	if p.n > len(p.steps)+50 {
		panic("title screen still running after script ended")
	}
}

type harness struct {
	disp  *fakeDisplay
	in    *events.Manager
	e     *dialog.Engine
	pacer *scriptPacer
}

func newHarness(t *testing.T, faded bool) *harness {
	t.Helper()
	prev := fadedIn.Load()
	fadedIn.Store(faded)
	t.Cleanup(func() { fadedIn.Store(prev) })

	h := &harness{
		disp:  &fakeDisplay{s: canvas.NewSurface(120, 40)},
		in:    events.NewManager(),
		pacer: &scriptPacer{},
	}
	h.e = dialog.NewEngine(h.disp, h.in, dialog.WithPacer(h.pacer))
	return h
}

func (h *harness) screen(cfg config.TitleConfig) *Screen {
	return New(h.e, cfg, WithPacer(h.pacer))
}

func (h *harness) key(name string) func() {
	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
	switch name {
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	}
	return func() { h.in.Feed(events.Event{Kind: events.KeyPress, Key: msg}) }
}

func (h *harness) click(t *testing.T, label string) func() {
	return func() {
		x, y, ok := find(h.disp.s, label)
		require.True(t, ok, "%q not on screen", label)
		h.in.Feed(events.Event{Kind: events.MousePress, Button: events.Left, X: x, Y: y})
		h.in.Feed(events.Event{Kind: events.MouseRelease, Button: events.Left, X: x, Y: y})
	}
}

func (h *harness) wait(n int) []func() {
	out := make([]func(), n)
	for i := range out {
		out[i] = func() {}
	}
	return out
}

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

func TestShowEscapeQuits(t *testing.T) {
	h := newHarness(t, true)
	h.pacer.steps = []func(){h.key("esc")}
	assert.Equal(t, QuitID, h.screen(config.DefaultConfig().Title).Show())
}

func TestShowClickButton(t *testing.T) {
	h := newHarness(t, true)
	h.pacer.steps = []func(){h.click(t, "Campaign")}
	assert.Equal(t, "campaign_button", h.screen(config.DefaultConfig().Title).Show())
}

func TestShowKeyboard(t *testing.T) {
	h := newHarness(t, true)
	h.pacer.steps = append(append([]func(){h.key("down")}, h.wait(8)...), h.key("enter"))
	assert.Equal(t, "campaign_button", h.screen(config.DefaultConfig().Title).Show())
}

func TestShowDigit(t *testing.T) {
	h := newHarness(t, true)
	h.pacer.steps = []func(){h.key("3")}
	assert.Equal(t, "multiplayer_button", h.screen(config.DefaultConfig().Title).Show())
}

func TestShowDrawsScreen(t *testing.T) {
	h := newHarness(t, true)
	var screen string
	h.pacer.steps = []func(){func() { screen = h.disp.s.String() }, h.key("esc")}
	h.screen(config.DefaultConfig().Title).Show()

	lines := strings.Split(screen, "\n")
	assert.True(t, strings.HasPrefix(lines[len(lines)-1], "Version 0.1.0"))
	for _, label := range []string{"Tutorial", "Campaign", "Multiplayer", "Load", "Language", "Preferences", "About", "Quit"} {
		assert.Contains(t, screen, label)
	}
	assert.Contains(t, screen, "╔", "button column is framed")
	assert.Contains(t, screen, "|  \\/  |", "logo is drawn")
}

func TestShowCustomButtons(t *testing.T) {
	h := newHarness(t, true)
	cfg := config.DefaultConfig().Title
	cfg.Buttons = []string{"play", "quit_button"}
	h.pacer.steps = []func(){h.click(t, "play")}
	assert.Equal(t, "play", h.screen(cfg).Show())
}

func TestVersionString(t *testing.T) {
	h := newHarness(t, true)
	cfg := config.DefaultConfig().Title
	cfg.Version = "v1.2"
	assert.Equal(t, "Version 1.2.0", h.screen(cfg).versionString())

	cfg.Version = "nightly"
	assert.Equal(t, "Version nightly", h.screen(cfg).versionString())
}

func TestFadeLogoAnimatesOnce(t *testing.T) {
	h := newHarness(t, false)
	s := h.screen(config.DefaultConfig().Title)

	s.FadeLogo(2, 2)
	assert.Equal(t, 6, h.disp.flips, "one flip every five columns")
	assert.True(t, fadedIn.Load())
	_, _, ok := find(h.disp.s, "|_|  |_|")
	assert.True(t, ok)

	h.disp.flips = 0
	s.FadeLogo(2, 2)
	assert.Zero(t, h.disp.flips)
}

func TestFadeLogoSkip(t *testing.T) {
	h := newHarness(t, false)
	h.pacer.steps = []func(){h.key("enter")}

	h.screen(config.DefaultConfig().Title).FadeLogo(2, 2)
	assert.Equal(t, 2, h.disp.flips)
	_, _, ok := find(h.disp.s, "|_|  |_|")
	assert.True(t, ok, "the rest of the logo is drawn without pausing")
}

func TestFadeLogoSkipsWhenOffscreen(t *testing.T) {
	h := newHarness(t, false)
	h.screen(config.DefaultConfig().Title).FadeLogo(100, 2)
	assert.Zero(t, h.disp.flips)
	assert.False(t, fadedIn.Load())
	assert.Empty(t, strings.TrimSpace(h.disp.s.String()))
}

func TestFadeLogoMissing(t *testing.T) {
	h := newHarness(t, false)
	cfg := config.DefaultConfig().Title
	cfg.Logo = "misc/nope"
	h.screen(cfg).FadeLogo(2, 2)
	assert.Zero(t, h.disp.flips)
}

// closingX returns the column of the first "]" at or right of x on row y.
func closingX(s *canvas.Surface, x, y int) int {
	for ; x < s.Width(); x++ {
		if s.At(x, y).Rune == ']' {
			return x
		}
	}
	return -1
}

func TestShowButtonsShareWidth(t *testing.T) {
	h := newHarness(t, true)
	var ends []int
	h.pacer.steps = []func(){func() {
		for _, label := range []string{"Quit", "Multiplayer", "Load"} {
			x, y, ok := find(h.disp.s, label)
			require.True(t, ok, "%q not on screen", label)
			ends = append(ends, closingX(h.disp.s, x, y))
		}
	}, h.key("esc")}
	h.screen(config.DefaultConfig().Title).Show()

	require.Len(t, ends, 3)
	assert.Positive(t, ends[0])
	assert.Equal(t, ends[0], ends[1])
	assert.Equal(t, ends[0], ends[2])
}

func TestShowFocusOutlineFollowsKeys(t *testing.T) {
	h := newHarness(t, true)
	outline := func(label string) func() {
		return func() {
			_, want, ok := find(h.disp.s, label)
			require.True(t, ok)
			_, y, ok := find(h.disp.s, "┌")
			require.True(t, ok, "focused button is outlined")
			assert.Equal(t, want-1, y, "outline sits above %q", label)
			assert.Equal(t, 1, strings.Count(h.disp.s.String(), "┌"), "only one outline")
		}
	}
	h.pacer.steps = append(append([]func(){outline("Tutorial"), h.key("down")}, h.wait(8)...),
		outline("Campaign"), h.key("esc"))
	assert.Equal(t, QuitID, h.screen(config.DefaultConfig().Title).Show())
}
