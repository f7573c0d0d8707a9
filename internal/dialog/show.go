package dialog

import (
	"fmt"
	"strings"

	"github.com/justinpbarnett/modal/internal/ui/canvas"
	"github.com/justinpbarnett/modal/internal/ui/font"
	"github.com/justinpbarnett/modal/internal/ui/frame"
	"github.com/justinpbarnett/modal/internal/ui/layout"
	"github.com/justinpbarnett/modal/internal/ui/styles"
	"github.com/justinpbarnett/modal/internal/ui/text"
	"github.com/justinpbarnett/modal/internal/ui/widgets"
)

// view is a request turned into placed widgets.
type view struct {
	req     Request
	style   string
	message string
	geom    layout.Geometry
	shadow  canvas.Rect

	menu    *widgets.Menu
	entry   *widgets.TextBox
	buttons []*widgets.Button
	checks  []*widgets.Button
}

func (v *view) hasMenu() bool { return v.menu.Height() > 0 }

// writeEntry copies the text box value out to the caller.
func (v *view) writeEntry() {
	if v.entry != nil && v.req.EntryText != nil {
		*v.req.EntryText = v.entry.Text()
	}
}

// levels is the input state sampled once per frame.
type levels struct {
	left, right bool
	x, y        int

	confirm, escape, activation bool
	up, down, pageUp, pageDown  bool
	digit                       int
}

func (e *Engine) sample() levels {
	m := e.in.Mouse()
	l := levels{
		left:     m.Left,
		right:    m.Right,
		x:        m.X,
		y:        m.Y,
		confirm:  e.Down(e.keys.Confirm),
		escape:   e.Down(e.keys.Escape),
		up:       e.Down(e.keys.Up),
		down:     e.Down(e.keys.Down),
		pageUp:   e.Down(e.keys.PageUp),
		pageDown: e.Down(e.keys.PageDown),
		digit:    -1,
	}
	l.activation = l.confirm || l.escape || e.Down(e.keys.Activate)
	for i, b := range e.keys.Select {
		if e.Down(b) {
			l.digit = i
		}
	}
	return l
}

// Show runs a dialog to completion and returns its result: a response
// button index or list selection, -1 for cancel, EscapeDialog when escape
// closes a Message dialog, or the code of a finished Action. The screen
// under the dialog is restored before it returns.
func (e *Engine) Show(req Request) int {
	if e.disp.Locked() {
		return -1
	}

	leaveContext := e.in.NewContext()
	defer leaveContext()
	manager := EnterModal()
	defer manager.Leave()
	unlock := e.in.LockResize()
	defer unlock()

	s := e.disp.Surface()
	v := e.build(req, s)

	area := v.geom.Frame.Union(v.shadow)
	if !v.geom.Detail.Empty() {
		m := e.metrics.BorderMargin
		d := v.geom.Detail
		area = area.Union(canvas.Rect{X: d.X - m, Y: d.Y - m, W: d.W + 2*m, H: d.H + 2*m})
	}
	saved, savedAt := s.Snapshot(area)
	defer func() {
		s.Restore(saved, savedAt)
		e.disp.Flip()
	}()

	e.draw(v, s)
	e.disp.Flip()

	return e.run(v, s)
}

// build measures the request, creates its widgets and places them.
func (e *Engine) build(req Request, s *canvas.Surface) *view {
	v := &view{req: req, style: req.Style}
	if v.style == "" {
		v.style = styles.DefaultStyle
	}

	v.message = req.Message
	text.Reflow(&v.message, e.metrics.MaxLineLength)

	for _, id := range kindButtons[req.Kind] {
		b, err := widgets.NewButton(e.strings.Get(id), widgets.Push)
		if err != nil {
			e.log.Warn("error initializing button", "id", id, "error", err)
			break
		}
		v.buttons = append(v.buttons, b)
	}

	for i, o := range req.Options {
		b, err := widgets.NewButton(o.Label, widgets.Check)
		if err != nil {
			panic(fmt.Sprintf("dialog: option %d: %v", i, err))
		}
		v.checks = append(v.checks, b)
	}
	for i, a := range req.ActionButtons {
		b, err := widgets.NewButton(a.Label, widgets.Push)
		if err != nil {
			panic(fmt.Sprintf("dialog: action button %d: %v", i, err))
		}
		v.checks = append(v.checks, b)
	}

	rows := e.menuRows
	if s.Height() > 0 {
		rows = max(min(rows, s.Height()/2), 1)
	}
	v.menu = widgets.NewMenu(req.Items, req.Kind == Message,
		widgets.WithMaxRows(rows),
		widgets.WithDoubleClickFrames(e.doubleClickFrames))

	if req.EntryText != nil {
		v.entry = widgets.NewTextBox(s, e.metrics.EntryWidth, *req.EntryText, widgets.WithClipboard(e.board))
	}

	in := layout.Input{
		ScreenW:    s.Width(),
		ScreenH:    s.Height(),
		Position:   req.Position,
		Caption:    size(font.Measure(req.Caption)),
		Message:    size(font.Measure(v.message)),
		Menu:       layout.Size{W: v.menu.Width(), H: v.menu.Height()},
		HasDetails: len(req.Details) > 0 && len(req.Items) > 0,
	}
	if req.Image != nil {
		in.HasImage = true
		in.Image = layout.Size{W: req.Image.W, H: req.Image.H}
	}
	if v.entry != nil {
		in.HasEntry = true
		in.EntryLabel = size(font.Measure(req.EntryLabel))
		in.Entry = layout.Size{W: v.entry.Width(), H: v.entry.Height()}
	}
	for _, b := range v.buttons {
		in.Buttons = append(in.Buttons, layout.Size{W: b.Width(), H: b.Height()})
	}
	for _, b := range v.checks {
		in.Checks = append(in.Checks, layout.Size{W: b.Width(), H: b.Height()})
	}

	v.geom = layout.Compute(in, e.metrics)
	g := v.geom
	v.shadow = shadowRect(g.Frame, s)

	v.menu.SetLocation(g.Menu.X, g.Menu.Y)
	if v.entry != nil {
		v.entry.SetLocation(g.Entry.X, g.Entry.Y)
	}
	for i, b := range v.buttons {
		b.SetLocation(g.Buttons[i].X, g.Buttons[i].Y)
	}
	for i, b := range v.checks {
		b.SetLocation(g.Checks[i].X, g.Checks[i].Y)
		if i < len(req.Options) {
			b.SetCheck(req.Options[i].Checked)
		}
	}
	return v
}

func size(r canvas.Rect) layout.Size { return layout.Size{W: r.W, H: r.H} }

// shadowRect is the frame dropped one cell down and right, kept off the
// last row and column the tint may not touch.
func shadowRect(f canvas.Rect, s *canvas.Surface) canvas.Rect {
	f.X++
	f.Y++
	return f.Intersect(canvas.Rect{W: s.Width() - 1, H: s.Height() - 1})
}

// draw paints the frame, the static content and every widget once.
func (e *Engine) draw(v *view, s *canvas.Surface) {
	g := v.geom
	if !v.shadow.Empty() {
		frame.DrawSolidTintedRectangle(s, v.shadow, styles.Shade, styles.ShadeAlpha)
	}
	frame.DrawDialogFrame(s, e.assets, g.Content(), v.style)
	bg := styles.ForStyle(v.style).Background

	if e.hints {
		frame.DrawHints(s, g.X+1, g.Y+g.H, g.W-2, e.hintsFor(v))
	}

	if v.req.Image != nil {
		s.Blit(g.Image.X, g.Image.Y, v.req.Image)
	}
	font.Draw(s, s.Bounds(), v.req.Caption, styles.CaptionInk.Over(bg), g.Caption.X, g.Caption.Y)
	font.Draw(s, s.Bounds(), v.message, styles.MessageInk.Over(bg), g.Message.X, g.Message.Y)

	v.menu.Draw(s)
	if v.entry != nil {
		font.Draw(s, s.Bounds(), v.req.EntryLabel, styles.MessageInk.Over(bg), g.EntryLabel.X, g.EntryLabel.Y)
		e.in.Join(v.entry)
		e.in.RaiseDraw()
	}
	for _, b := range v.buttons {
		b.Draw(s)
	}
	for _, b := range v.checks {
		b.Draw(s)
	}
}

func (e *Engine) hintsFor(v *view) []frame.Hint {
	var hints []frame.Hint
	label := func(id string) string { return strings.ToLower(e.strings.Get(id)) }
	if v.hasMenu() && v.req.Kind != Message {
		h := e.keys.Up.Help()
		hints = append(hints, frame.Hint{Key: h.Key, Label: h.Desc})
	}
	ids := kindButtons[v.req.Kind]
	if v.req.Kind.confirms() {
		hints = append(hints, frame.Hint{Key: e.keys.Confirm.Help().Key, Label: label(ids[0])})
	}
	esc := e.keys.Escape.Help()
	switch {
	case v.req.Kind == Message:
		hints = append(hints, frame.Hint{Key: esc.Key, Label: label("close_button")})
	case len(ids) > 0:
		hints = append(hints, frame.Hint{Key: esc.Key, Label: label(ids[len(ids)-1])})
	}
	return hints
}

// drawDetail frames the detail panel and fills it with d.
func (e *Engine) drawDetail(r canvas.Rect, d Detail) {
	s := e.disp.Surface()
	frame.DrawDialogFrame(s, e.assets, r, styles.DefaultStyle)
	bg := styles.ForStyle(styles.DefaultStyle).Background

	x := r.X + e.metrics.PadLeft
	y := r.Y + e.metrics.PadTop
	if d.Title != "" {
		y = frame.DrawDialogTitle(s, x-1, y, d.Title)
	}
	if d.Image != nil {
		s.Blit(x, y, d.Image)
		y += d.Image.H
	}
	for _, line := range d.Lines {
		y = font.Draw(s, r, line, styles.SmallInk.Over(bg), x, y).Bottom()
		if line == "" {
			y++
		}
	}
	s.Update(r)
}

// run is the frame loop.
func (e *Engine) run(v *view, s *canvas.Surface) int {
	req := v.req
	g := v.geom
	prev := e.sample()
	curSel := -1
	first := true

	for {
		e.in.Pump()
		cur := e.sample()

		confirmPressed := cur.confirm && !prev.activation
		if (confirmPressed || v.menu.DoubleClicked()) && req.Kind.confirms() {
			v.writeEntry()
			if !v.hasMenu() {
				return 0
			}
			return v.menu.Selection()
		}

		escapePressed := cur.escape && !prev.activation
		if escapePressed && req.Kind == Message {
			return EscapeDialog
		}
		if escapePressed {
			if !v.hasMenu() {
				return 1
			}
			return -1
		}

		if v.menu.Selection() != curSel || first {
			curSel = v.menu.Selection()
			sel := curSel
			if first {
				sel = 0
			}
			if !g.Detail.Empty() && sel >= 0 && sel < len(req.Details) {
				e.drawDetail(g.Detail, req.Details[sel])
			}
		}
		first = false

		if v.hasMenu() {
			res := v.menu.Process(widgets.MenuInput{
				X:        cur.x,
				Y:        cur.y,
				Left:     cur.left,
				Up:       cur.up && !prev.up,
				Down:     cur.down && !prev.down,
				PageUp:   cur.pageUp && !prev.pageUp,
				PageDown: cur.pageDown && !prev.pageDown,
				Digit:    cur.digit,
			})
			if res != -1 {
				return res
			}
			v.menu.Draw(s)
		}

		prev.up, prev.down = cur.up, cur.down
		prev.pageUp, prev.pageDown = cur.pageUp, cur.pageDown

		e.in.RaiseProcess()
		e.in.RaiseDraw()

		if len(v.buttons) == 0 && (cur.left && !prev.left || cur.right && !prev.right) {
			return -1
		}
		if len(v.buttons) < 2 && !v.hasMenu() && cur.activation && !prev.activation {
			return -1
		}

		prev.left, prev.right = cur.left, cur.right
		prev.activation = cur.activation

		for i, b := range v.buttons {
			fired := b.Process(cur.x, cur.y, cur.left)
			b.Draw(s)
			if !fired {
				continue
			}
			v.writeEntry()
			switch {
			case !v.hasMenu():
				return i
			case len(v.buttons) <= 1 || i != len(v.buttons)-1:
				return v.menu.Selection()
			default:
				return -1
			}
		}

		for n, b := range v.checks {
			pressed := b.Process(cur.x, cur.y, cur.left)
			b.Draw(s)

			if n < len(req.Options) {
				req.Options[n].Checked = b.Checked()
				continue
			}
			if !pressed {
				continue
			}
			i := n - len(req.Options)
			if i >= len(req.ActionButtons) || req.ActionButtons[i].Handler == nil {
				panic(fmt.Sprintf("dialog: action button %d has no handler", i))
			}
			if req.ActionButtons[i].Handler.ButtonPressed(v.menu.Selection()) == DeleteItem {
				old := v.menu.Location()
				v.menu.Erase(v.menu.Selection())
				if v.menu.NItems() == 0 {
					return -1
				}
				s.Fill(old, ' ', styles.ForStyle(v.style).Background)
				v.menu.Draw(s)
			}
		}

		if req.Action != nil {
			if code, done := req.Action.Do(); done {
				return code
			}
		}

		e.disp.Flip()
		e.pacer.Wait()
	}
}
