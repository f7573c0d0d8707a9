// Package layout sizes and positions the parts of a modal dialog from the
// measured sizes of its content.
package layout

import "github.com/justinpbarnett/modal/internal/ui/canvas"

// Size is a measured width and height.
type Size struct {
	W, H int
}

// Input is everything Compute needs; it holds sizes only, never content.
type Input struct {
	ScreenW, ScreenH int
	// Position fixes the content origin; nil centers the dialog.
	Position *canvas.Point

	HasImage bool
	Image    Size
	Caption  Size
	Message  Size
	Menu     Size

	HasEntry   bool
	EntryLabel Size
	Entry      Size

	Buttons []Size
	Checks  []Size

	HasDetails bool
}

// Geometry is the computed placement. X, Y, W and H describe the content
// rectangle; Frame adds the border margin around it.
type Geometry struct {
	X, Y, W, H int
	Frame      canvas.Rect

	Image      canvas.Point
	Caption    canvas.Point
	Message    canvas.Point
	Menu       canvas.Point
	EntryLabel canvas.Point
	Entry      canvas.Point
	Checks     []canvas.Point
	Buttons    []canvas.Point

	// Detail is empty unless the request carries detail records.
	Detail canvas.Rect
}

// Content returns the content rectangle.
func (g Geometry) Content() canvas.Rect {
	return canvas.Rect{X: g.X, Y: g.Y, W: g.W, H: g.H}
}

// Compute lays out a dialog. It is a pure function of its arguments.
func Compute(in Input, m Metrics) Geometry {
	imagePad := 0
	if in.HasImage {
		imagePad = m.ImagePad
	}
	menuPad := 0
	if in.Message.H > 0 && in.Menu.H > 0 {
		menuPad = m.MenuPad
	}
	padW := m.PadLeft + m.PadRight + imagePad
	padH := m.PadTop + m.PadBottom + menuPad

	buttonWidths, buttonH := 0, 0
	for _, b := range in.Buttons {
		buttonWidths += b.W
		buttonH = max(buttonH, b.H)
	}
	buttonRowH := 0
	if buttonH > 0 {
		buttonRowH = buttonH + m.ButtonVPad
	}

	checkW, checksH := 0, 0
	for _, c := range in.Checks {
		checkW = max(checkW, c.W)
		checksH += c.H + m.CheckPad
	}

	entryRowW, entryRowH := 0, 0
	if in.HasEntry {
		entryRowW = in.EntryLabel.W + in.Entry.W
		entryRowH = max(in.Entry.H, in.EntryLabel.H) + m.EntrySlack
	}

	imageW, imageH := 0, 0
	if in.HasImage {
		imageW, imageH = in.Image.W, in.Image.H
	}
	imageColW := max(in.Caption.W, imageW)
	textColW := max(in.Message.W, in.Menu.W)

	w := imageColW + textColW + padW
	w = max(w, buttonWidths+m.ButtonHPad*len(in.Buttons))
	w = max(w, entryRowW+m.PadLeft+m.PadRight)
	if checkW > 0 {
		w = max(w, checkW+m.PadLeft+m.PadRight)
	}

	upperH := max(imageH+m.ImageSlack, in.Message.H)
	if !in.HasImage {
		upperH = max(upperH, in.Caption.H)
	}
	h := upperH + padH + in.Menu.H + entryRowH + checksH + buttonRowH

	var x, y int
	if in.Position != nil {
		x, y = in.Position.X, in.Position.Y
	} else {
		x = in.ScreenW/2 - w/2
		y = in.ScreenH/2 - h/2
	}

	var detail canvas.Rect
	if in.HasDetails {
		x += in.ScreenW / 10
		detail = canvas.Rect{
			X: max(x-m.DetailOffset, m.BorderMargin),
			Y: y,
			W: m.DetailWidth,
			H: in.ScreenH / 2,
		}
	}

	margin := m.BorderMargin
	if x+w+2*margin > in.ScreenW {
		x = in.ScreenW - w - 2*margin
	}
	if y+h+2*margin > in.ScreenH {
		y = in.ScreenH - h - 2*margin
	}
	x = max(x, margin)
	y = max(y, margin)
	if in.HasDetails {
		detail.Y = y
	}

	g := Geometry{
		X: x, Y: y, W: w, H: h,
		Frame:  canvas.Rect{X: x - margin, Y: y - margin, W: w + 2*margin, H: h + 2*margin},
		Detail: detail,
	}

	g.Image = canvas.Point{X: x + m.PadLeft, Y: y + m.PadTop}
	if in.HasImage {
		center := 0
		if in.Caption.W < imageW {
			center = imageW/2 - in.Caption.W/2
		}
		g.Caption = canvas.Point{X: x + m.PadLeft + center, Y: y + m.PadTop + imageH - m.CaptionRaise}
	} else {
		g.Caption = canvas.Point{X: x + m.PadLeft, Y: y + m.PadTop}
	}

	textX := x + imageColW + m.PadLeft + imagePad
	g.Message = canvas.Point{X: textX, Y: y + m.PadTop}
	g.Menu = canvas.Point{X: textX, Y: y + m.PadTop + in.Message.H + menuPad}

	entryTop := y + m.PadTop + upperH + menuPad + in.Menu.H
	if in.HasEntry {
		entryY := entryTop + (entryRowH-in.Entry.H)/2
		g.EntryLabel = canvas.Point{X: x + m.PadLeft, Y: entryY}
		g.Entry = canvas.Point{X: x + m.PadLeft + in.EntryLabel.W, Y: entryY}
	}

	checkY := entryTop + entryRowH
	g.Checks = make([]canvas.Point, len(in.Checks))
	for i, c := range in.Checks {
		checkY += m.CheckPad
		g.Checks[i] = canvas.Point{X: x + w - m.PadRight - c.W, Y: checkY}
		checkY += c.H
	}

	g.Buttons = make([]canvas.Point, len(in.Buttons))
	spare := w - buttonWidths
	offset := 0
	for i, b := range in.Buttons {
		pad := spare / (len(in.Buttons) + 1)
		g.Buttons[i] = canvas.Point{X: x + pad*(i+1) + offset, Y: y + h - buttonRowH}
		offset += b.W
	}

	return g
}
