package canvas

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Cell is one character position on a Surface or Image.
type Cell struct {
	Rune rune
	Ink  Ink
}

// Continuation marks the cells covered by the right half of a wide rune.
const Continuation rune = -1

// Image is an off-screen block of cells. A zero Rune is transparent when
// blitted.
type Image struct {
	W, H  int
	Cells []Cell
}

// NewImage allocates a transparent w×h image.
func NewImage(w, h int) *Image {
	w, h = max(w, 0), max(h, 0)
	return &Image{W: w, H: h, Cells: make([]Cell, w*h)}
}

// ImageFromText builds an image from newline-separated text art. Spaces
// are opaque; lines shorter than the widest are padded transparent.
func ImageFromText(art string, ink Ink) *Image {
	art = strings.TrimSuffix(art, "\n")
	lines := strings.Split(art, "\n")
	w := 0
	for _, l := range lines {
		w = max(w, ansi.StringWidth(l))
	}
	img := NewImage(w, len(lines))
	for y, l := range lines {
		x := 0
		for _, r := range l {
			if x >= w {
				break
			}
			img.Cells[y*w+x] = Cell{Rune: r, Ink: ink}
			x++
		}
	}
	return img
}

func (img *Image) At(x, y int) Cell {
	if x < 0 || y < 0 || x >= img.W || y >= img.H {
		return Cell{}
	}
	return img.Cells[y*img.W+x]
}

func (img *Image) Set(x, y int, c Cell) {
	if x < 0 || y < 0 || x >= img.W || y >= img.H {
		return
	}
	img.Cells[y*img.W+x] = c
}

// Tinted returns a copy whose cells take unset colors from ink.
func (img *Image) Tinted(ink Ink) *Image {
	out := &Image{W: img.W, H: img.H, Cells: make([]Cell, len(img.Cells))}
	for i, c := range img.Cells {
		c.Ink = c.Ink.Over(ink)
		out.Cells[i] = c
	}
	return out
}

// Scale resizes img to w×h with nearest-neighbour sampling. It returns nil
// for a nil image or a non-positive target size.
func Scale(img *Image, w, h int) *Image {
	if img == nil || w <= 0 || h <= 0 || img.W == 0 || img.H == 0 {
		return nil
	}
	out := NewImage(w, h)
	for y := range h {
		sy := y * img.H / h
		for x := range w {
			sx := x * img.W / w
			out.Cells[y*w+x] = img.Cells[sy*img.W+sx]
		}
	}
	return out
}
