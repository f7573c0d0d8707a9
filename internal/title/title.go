// Package title draws the title screen: a backdrop scaled to the screen,
// a logo that wipes in column by column, the version string and a framed
// column of menu buttons.
package title

import (
	"log/slog"
	"sync/atomic"

	"github.com/Masterminds/semver/v3"

	"github.com/justinpbarnett/modal/internal/config"
	"github.com/justinpbarnett/modal/internal/dialog"
	"github.com/justinpbarnett/modal/internal/logging"
	"github.com/justinpbarnett/modal/internal/ui/canvas"
	"github.com/justinpbarnett/modal/internal/ui/font"
	"github.com/justinpbarnett/modal/internal/ui/frame"
	"github.com/justinpbarnett/modal/internal/ui/image"
	"github.com/justinpbarnett/modal/internal/ui/styles"
	"github.com/justinpbarnett/modal/internal/ui/text"
	"github.com/justinpbarnett/modal/internal/ui/widgets"
)

// QuitID is returned when escape leaves the title screen.
const QuitID = "quit_button"

// Reference frame the configured positions are expressed in.
const (
	refWidth  = 1024
	refHeight = 768
)

// MenuStyle frames the button column.
const MenuStyle = "mainmenu"

// DefaultRowStep is the vertical distance between buttons in cells.
const DefaultRowStep = 2

// FrameRate paces the title loop.
const FrameRate = 50

// fadedIn is set once the logo has wiped in; later screens draw it at once.
var fadedIn atomic.Bool

// Screen is the title screen.
type Screen struct {
	e       *dialog.Engine
	cfg     config.TitleConfig
	rowStep int
	pacer   dialog.Pacer
	log     *slog.Logger

	// focusBox is the outline around the focused button and focusUnder
	// what it covered.
	focusBox   canvas.Rect
	focusUnder *canvas.Image
}

// Option configures a Screen.
type Option func(*Screen)

// WithRowStep sets the distance between button rows.
func WithRowStep(n int) Option {
	return func(t *Screen) {
		if n > 0 {
			t.rowStep = n
		}
	}
}

// WithPacer replaces the title loop pacer.
func WithPacer(p dialog.Pacer) Option {
	return func(t *Screen) { t.pacer = p }
}

func New(e *dialog.Engine, cfg config.TitleConfig, opts ...Option) *Screen {
	t := &Screen{
		e:       e,
		cfg:     cfg,
		rowStep: DefaultRowStep,
		pacer:   dialog.NewPacer(FrameRate),
		log:     logging.ForComponent(logging.CompTitle),
	}
	for _, o := range opts {
		o(t)
	}
	return t
}

func scale(v, screen, ref int) int { return v * screen / ref }

// Show draws the screen and waits for a button. It returns the chosen
// button's string id, or QuitID on escape.
func (t *Screen) Show() string {
	in := t.e.Input()
	unlock := in.LockResize()
	defer unlock()

	s := t.e.Display().Surface()
	w, h := s.Width(), s.Height()

	if img := t.e.Assets().Get(t.cfg.Image, image.Unscaled); img == nil {
		t.log.Warn("could not find title image", "name", t.cfg.Image)
	} else {
		s.Blit(0, 0, canvas.Scale(img, w, h))
		s.Update(s.Bounds())
		t.log.Debug("displayed title image")
	}

	t.FadeLogo(scale(t.cfg.LogoX, w, refWidth), scale(t.cfg.LogoY, h, refHeight))
	t.drawVersion()

	ids := t.cfg.Buttons
	if len(ids) == 0 {
		return QuitID
	}
	xbase := scale(t.cfg.ButtonsX, w, refWidth)
	ybase := scale(t.cfg.ButtonsY, h, refHeight)
	pad := t.cfg.Padding

	labels := make([]string, len(ids))
	labelW := 0
	for i, id := range ids {
		labels[i] = t.e.Strings().Get(id)
		if labels[i] == "" {
			labels[i] = id
		}
		labelW = max(labelW, font.Measure(labels[i]).W)
	}

	buttons := make([]*widgets.Button, 0, len(ids))
	maxW := 0
	for i, id := range ids {
		b, err := widgets.NewButton(text.Center(labels[i], labelW), widgets.Push)
		if err != nil {
			t.log.Warn("error initializing button", "id", id, "error", err)
			return QuitID
		}
		b.SetLocation(xbase, ybase+i*t.rowStep)
		maxW = max(maxW, b.Width())
		buttons = append(buttons, b)
	}

	menu := canvas.Rect{
		X: xbase - pad,
		Y: ybase - pad,
		W: maxW + 2*pad,
		H: t.rowStep*(len(buttons)-1) + buttons[len(buttons)-1].Height() + 2*pad,
	}
	frame.DrawDialogFrame(s, t.e.Assets(), menu, MenuStyle)
	for _, b := range buttons {
		b.Draw(s)
	}

	focus := 0
	t.focusBox, t.focusUnder = canvas.Rect{}, nil
	t.drawFocus(menu, buttons, focus)
	t.e.Display().Flip()

	prev := t.levels()
	for {
		m := in.Mouse()
		for i, b := range buttons {
			if b.Process(m.X, m.Y, m.Left) {
				return ids[i]
			}
			b.Draw(s)
		}

		cur := t.levels()
		switch {
		case cur.escape && !prev.escape:
			return QuitID
		case cur.confirm && !prev.confirm:
			return ids[focus]
		case cur.up && !prev.up:
			focus = (focus + len(buttons) - 1) % len(buttons)
		case cur.down && !prev.down:
			focus = (focus + 1) % len(buttons)
		}
		if cur.digit >= 0 && cur.digit < len(ids) && cur.digit != prev.digit {
			return ids[cur.digit]
		}
		prev = cur
		t.drawFocus(menu, buttons, focus)

		t.e.Display().Flip()
		in.Pump()
		t.pacer.Wait()
	}
}

type levels struct {
	escape, confirm, up, down bool
	digit                     int
}

func (t *Screen) levels() levels {
	k := t.e.Keys()
	l := levels{
		escape:  t.e.Down(k.Escape),
		confirm: t.e.Down(k.Confirm) || t.e.Down(k.Activate),
		up:      t.e.Down(k.Up),
		down:    t.e.Down(k.Down),
		digit:   -1,
	}
	for i, b := range k.Select {
		if t.e.Down(b) {
			l.digit = i
		}
	}
	return l
}

// drawFocus outlines the focused button across the column. The outline
// sits in the padding around it and the free row between buttons, so it
// needs both; what it covers is put back when the focus moves.
func (t *Screen) drawFocus(menu canvas.Rect, buttons []*widgets.Button, focus int) {
	if t.cfg.Padding < 1 || t.rowStep < 2 {
		return
	}
	r := buttons[focus].Location()
	box := canvas.Rect{X: menu.X, Y: r.Y - 1, W: menu.W, H: r.H + 2}
	if box == t.focusBox {
		return
	}

	s := t.e.Display().Surface()
	if t.focusUnder != nil {
		old, img := t.focusBox, t.focusUnder
		for y := range img.H {
			for x := range img.W {
				if y == 0 || y == img.H-1 || x == 0 || x == img.W-1 {
					s.Set(old.X+x, old.Y+y, img.At(x, y))
				}
			}
		}
		s.Update(old)
	}

	t.focusBox, t.focusUnder = box, nil
	under, at := s.Snapshot(box)
	if frame.DrawRectangle(s, box, styles.KeyInk) {
		t.focusBox, t.focusUnder = at, under
	}
}

// versionString is the localized "Version" label and the configured
// version, normalised through semver when it parses.
func (t *Screen) versionString() string {
	v := t.cfg.Version
	if sv, err := semver.NewVersion(v); err == nil {
		v = sv.String()
	} else {
		t.log.Warn("invalid version", "version", v, "error", err)
	}
	return t.e.Strings().Get("version") + " " + v
}

func (t *Screen) drawVersion() {
	s := t.e.Display().Surface()
	line := t.versionString()
	r := font.Measure(line)
	y := s.Height() - r.H
	if y < 0 {
		return
	}
	font.Draw(s, s.Bounds(), line, styles.SmallInk, 0, y)
	t.log.Debug("drew version number")
}

// FadeLogo wipes the logo in at (x, y) one column at a time. The first
// call animates; a fresh escape, space or enter finishes it at once and
// every later call draws the logo without pausing. A missing logo or one
// that would not fit on screen is skipped.
func (t *Screen) FadeLogo(x, y int) {
	logo := t.e.Assets().Get(t.cfg.Logo, image.Unscaled)
	if logo == nil {
		t.log.Warn("could not find logo", "name", t.cfg.Logo)
		return
	}
	s := t.e.Display().Surface()
	if x < 0 || y < 0 || x+logo.W > s.Width() || y+logo.H > s.Height() {
		return
	}

	in := t.e.Input()
	keys := t.e.Keys()
	pressed := func() bool {
		return t.e.Down(keys.Escape) || t.e.Down(keys.Activate) || t.e.Down(keys.Confirm)
	}
	last := pressed()

	for col := range logo.W {
		s.BlitRect(x+col, y, logo, canvas.Rect{X: col, W: 1, H: logo.H})
		s.Update(canvas.Rect{X: x + col, Y: y, W: 1, H: logo.H})

		if !fadedIn.Load() && col%5 == 0 {
			now := pressed()
			if now && !last {
				fadedIn.Store(true)
			}
			last = now

			t.e.Display().Flip()
			t.e.Pacer().Wait()
			in.Pump()
		}
	}
	fadedIn.Store(true)
}
