// Package font measures and draws text on a canvas.Surface. Terminal cells
// have a single glyph size, so the "font size" of a piece of text is
// expressed through its ink instead.
package font

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/justinpbarnett/modal/internal/ui/canvas"
)

// Measure returns the bounding box of text drawn at the origin: the widest
// line and the number of lines. Empty text measures zero.
func Measure(text string) canvas.Rect {
	if text == "" {
		return canvas.Rect{}
	}
	lines := strings.Split(text, "\n")
	w := 0
	for _, l := range lines {
		w = max(w, ansi.StringWidth(l))
	}
	return canvas.Rect{W: w, H: len(lines)}
}

// Draw writes text at (x, y), clipped to clip, and returns the area the
// text occupies (unclipped), like Measure offset to (x, y). A nil surface
// only measures.
func Draw(s *canvas.Surface, clip canvas.Rect, text string, ink canvas.Ink, x, y int) canvas.Rect {
	r := Measure(text)
	r.X, r.Y = x, y
	if s == nil || r.Empty() {
		return r
	}
	for dy, line := range strings.Split(ansi.Strip(text), "\n") {
		cx := x
		for _, ch := range line {
			w := ansi.StringWidth(string(ch))
			if w == 0 {
				continue
			}
			if clip.Contains(cx, y+dy) {
				s.Set(cx, y+dy, canvas.Cell{Rune: ch, Ink: ink})
				for i := 1; i < w; i++ {
					s.Set(cx+i, y+dy, canvas.Cell{Rune: canvas.Continuation, Ink: ink})
				}
			}
			cx += w
		}
	}
	s.Update(r.Intersect(clip))
	return r
}
