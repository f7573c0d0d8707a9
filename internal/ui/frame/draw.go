package frame

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/justinpbarnett/modal/internal/logging"
	"github.com/justinpbarnett/modal/internal/ui/canvas"
	"github.com/justinpbarnett/modal/internal/ui/font"
	"github.com/justinpbarnett/modal/internal/ui/styles"
	"github.com/lucasb-eyer/go-colorful"
)

// DrawDialogTitle draws a caption just inside (x, y) and returns the row
// below it.
func DrawDialogTitle(s *canvas.Surface, x, y int, text string) int {
	r := font.Draw(s, s.Bounds(), text, styles.CaptionInk, x+1, y)
	return r.Bottom()
}

// legal reports whether r lies strictly inside the surface, logging the
// rejected coordinates when it does not.
func legal(s *canvas.Surface, r canvas.Rect) bool {
	if r.X < 0 || r.Y < 0 || r.Right() >= s.Width() || r.Bottom() >= s.Height() {
		logging.ForComponent(logging.CompFrame).Warn("rectangle has illegal coordinates",
			"x", r.X, "y", r.Y, "w", r.W, "h", r.H)
		return false
	}
	return true
}

// DrawRectangle outlines r with single-line box characters.
func DrawRectangle(s *canvas.Surface, r canvas.Rect, ink canvas.Ink) bool {
	if !legal(s, r) || r.Empty() {
		return false
	}
	b := lipgloss.NormalBorder()
	set := func(x, y int, part string) {
		s.Set(x, y, canvas.Cell{Rune: []rune(part)[0], Ink: ink.Over(s.At(x, y).Ink)})
	}
	for x := r.X; x < r.Right(); x++ {
		set(x, r.Y, b.Top)
		set(x, r.Bottom()-1, b.Bottom)
	}
	for y := r.Y; y < r.Bottom(); y++ {
		set(r.X, y, b.Left)
		set(r.Right()-1, y, b.Right)
	}
	set(r.X, r.Y, b.TopLeft)
	set(r.Right()-1, r.Y, b.TopRight)
	set(r.X, r.Bottom()-1, b.BottomLeft)
	set(r.Right()-1, r.Bottom()-1, b.BottomRight)
	s.Update(r)
	return true
}

// DrawSolidTintedRectangle blends tint into the background of every cell
// in r with the given opacity.
func DrawSolidTintedRectangle(s *canvas.Surface, r canvas.Rect, tint lipgloss.Color, alpha float64) bool {
	if !legal(s, r) {
		return false
	}
	over, err := colorful.Hex(string(tint))
	if err != nil {
		logging.ForComponent(logging.CompFrame).Warn("invalid tint", "color", string(tint), "error", err)
		return false
	}
	alpha = min(max(alpha, 0), 1)
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			c := s.At(x, y)
			under := toRGB(c.Ink.Bg)
			c.Ink.Bg = lipgloss.Color(under.BlendRgb(over, alpha).Clamped().Hex())
			s.Set(x, y, c)
		}
	}
	s.Update(r)
	return true
}

// toRGB resolves a terminal color to RGB, treating anything that is not a
// hex value as black. Adaptive colors use their dark variant.
func toRGB(c lipgloss.TerminalColor) colorful.Color {
	var hex string
	switch c := c.(type) {
	case lipgloss.Color:
		hex = string(c)
	case lipgloss.AdaptiveColor:
		hex = c.Dark
	}
	col, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}
	}
	return col
}
