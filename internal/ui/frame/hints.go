package frame

import (
	"github.com/justinpbarnett/modal/internal/ui/canvas"
	"github.com/justinpbarnett/modal/internal/ui/font"
	"github.com/justinpbarnett/modal/internal/ui/styles"
)

// Hint is a single key hint: [esc] cancel.
type Hint struct {
	Key   string
	Label string
}

// HintWidth returns the cell width of a drawn hint: [key] label.
func HintWidth(h Hint) int {
	return 3 + font.Measure(h.Key).W + font.Measure(h.Label).W
}

// DrawHints writes hints left to right along row y starting at x, two
// cells apart, dropping any that would pass x+width. It returns how many
// were drawn.
func DrawHints(s *canvas.Surface, x, y, width int, hints []Hint) int {
	clip := canvas.Rect{X: x, Y: y, W: width, H: 1}.Intersect(s.Bounds())
	used, drawn := 0, 0
	for _, h := range hints {
		sep := 0
		if drawn > 0 {
			sep = 2
		}
		w := HintWidth(h)
		if used+sep+w > width {
			break
		}
		cx := x + used + sep
		cx = font.Draw(s, clip, "["+h.Key+"]", styles.KeyInk.Over(s.At(cx, y).Ink), cx, y).Right()
		font.Draw(s, clip, " "+h.Label, styles.LabelInk.Over(s.At(cx, y).Ink), cx, y)
		used += sep + w
		drawn++
	}
	return drawn
}
