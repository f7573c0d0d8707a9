package canvas

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Surface is the display buffer: a grid of cells plus the list of
// rectangles touched since the last flush.
type Surface struct {
	w, h   int
	cells  []Cell
	base   Ink
	damage []Rect
	styles map[Ink]lipgloss.Style
}

// NewSurface allocates a blank w×h surface.
func NewSurface(w, h int) *Surface {
	s := &Surface{styles: make(map[Ink]lipgloss.Style)}
	s.Resize(w, h)
	return s
}

func (s *Surface) Width() int   { return s.w }
func (s *Surface) Height() int  { return s.h }
func (s *Surface) Bounds() Rect { return Rect{W: s.w, H: s.h} }

// Resize reallocates the grid, keeping the overlapping content.
func (s *Surface) Resize(w, h int) {
	w, h = max(w, 0), max(h, 0)
	cells := make([]Cell, w*h)
	for i := range cells {
		cells[i] = Cell{Rune: ' ', Ink: s.base}
	}
	for y := range min(h, s.h) {
		copy(cells[y*w:y*w+min(w, s.w)], s.cells[y*s.w:])
	}
	s.w, s.h, s.cells = w, h, cells
	s.Update(s.Bounds())
}

// SetBase sets the ink used for cleared cells and unset colors.
func (s *Surface) SetBase(ink Ink) { s.base = ink }

func (s *Surface) At(x, y int) Cell {
	if x < 0 || y < 0 || x >= s.w || y >= s.h {
		return Cell{}
	}
	return s.cells[y*s.w+x]
}

// Set writes one cell; out-of-bounds writes are dropped.
func (s *Surface) Set(x, y int, c Cell) {
	if x < 0 || y < 0 || x >= s.w || y >= s.h {
		return
	}
	s.cells[y*s.w+x] = c
}

// Fill paints r (clipped to the surface) with rune and ink.
func (s *Surface) Fill(r Rect, ch rune, ink Ink) {
	r = r.Intersect(s.Bounds())
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.cells[y*s.w+x] = Cell{Rune: ch, Ink: ink}
		}
	}
}

// Clear blanks the whole surface.
func (s *Surface) Clear() {
	s.Fill(s.Bounds(), ' ', s.base)
	s.Update(s.Bounds())
}

// Blit copies the opaque cells of img with its top-left corner at (x, y).
func (s *Surface) Blit(x, y int, img *Image) {
	if img == nil {
		return
	}
	s.BlitRect(x, y, img, Rect{W: img.W, H: img.H})
}

// BlitRect copies the src sub-rectangle of img to (x, y).
func (s *Surface) BlitRect(x, y int, img *Image, src Rect) {
	if img == nil {
		return
	}
	src = src.Intersect(Rect{W: img.W, H: img.H})
	for dy := range src.H {
		for dx := range src.W {
			c := img.At(src.X+dx, src.Y+dy)
			if c.Rune == 0 {
				continue
			}
			c.Ink = c.Ink.Over(s.base)
			s.Set(x+dx, y+dy, c)
		}
	}
}

// Snapshot copies r (clipped) off the surface.
func (s *Surface) Snapshot(r Rect) (*Image, Rect) {
	r = r.Intersect(s.Bounds())
	img := NewImage(r.W, r.H)
	for y := range r.H {
		copy(img.Cells[y*r.W:(y+1)*r.W], s.cells[(r.Y+y)*s.w+r.X:])
	}
	return img, r
}

// Restore writes a snapshot back and marks it damaged.
func (s *Surface) Restore(img *Image, r Rect) {
	for y := range min(r.H, img.H) {
		for x := range min(r.W, img.W) {
			s.Set(r.X+x, r.Y+y, img.At(x, y))
		}
	}
	s.Update(r)
}

// Update records r as changed.
func (s *Surface) Update(r Rect) {
	r = r.Intersect(s.Bounds())
	if r.Empty() {
		return
	}
	s.damage = append(s.damage, r)
}

// TakeDamage returns the union of rects changed since the last call.
func (s *Surface) TakeDamage() Rect {
	var u Rect
	for _, r := range s.damage {
		u = u.Union(r)
	}
	s.damage = s.damage[:0]
	return u
}

// Row returns the plain text of row y.
func (s *Surface) Row(y int) string {
	if y < 0 || y >= s.h {
		return ""
	}
	var b strings.Builder
	for _, c := range s.cells[y*s.w : (y+1)*s.w] {
		switch c.Rune {
		case Continuation:
		case 0:
			b.WriteByte(' ')
		default:
			b.WriteRune(c.Rune)
		}
	}
	return b.String()
}

// String returns the plain text of the whole surface.
func (s *Surface) String() string {
	rows := make([]string, s.h)
	for y := range s.h {
		rows[y] = s.Row(y)
	}
	return strings.Join(rows, "\n")
}

// Render produces the styled frame, one lipgloss render per run of
// identical ink.
func (s *Surface) Render() string {
	if s.w == 0 {
		return strings.Repeat("\n", max(s.h-1, 0))
	}
	var b strings.Builder
	var run strings.Builder
	for y := range s.h {
		if y > 0 {
			b.WriteByte('\n')
		}
		cur := s.cells[y*s.w].Ink
		for _, c := range s.cells[y*s.w : (y+1)*s.w] {
			if c.Ink != cur {
				b.WriteString(s.style(cur).Render(run.String()))
				run.Reset()
				cur = c.Ink
			}
			switch c.Rune {
			case Continuation:
			case 0:
				run.WriteByte(' ')
			default:
				run.WriteRune(c.Rune)
			}
		}
		b.WriteString(s.style(cur).Render(run.String()))
		run.Reset()
	}
	return b.String()
}

func (s *Surface) style(ink Ink) lipgloss.Style {
	if st, ok := s.styles[ink]; ok {
		return st
	}
	st := ink.Style()
	s.styles[ink] = st
	return st
}
