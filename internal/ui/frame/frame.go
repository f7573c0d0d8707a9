// Package frame draws dialog chrome onto a canvas.Surface: tiled style
// backdrops, edge and corner borders, titles, outlines and tinted boxes.
package frame

import (
	"github.com/justinpbarnett/modal/internal/logging"
	"github.com/justinpbarnett/modal/internal/ui/canvas"
	"github.com/justinpbarnett/modal/internal/ui/image"
	"github.com/justinpbarnett/modal/internal/ui/styles"
)

func asset(style, part string) string {
	return "misc/" + style + "-" + part
}

// DrawDialogFrame paints the style's backdrop over r, the content
// rectangle, then the four edges scaled along r and the four corners
// outside it. A style missing any edge gets no border; one missing any
// corner gets no corners. It returns the damaged area.
func DrawDialogFrame(s *canvas.Surface, assets *image.Loader, r canvas.Rect, style string) canvas.Rect {
	if style == "" {
		style = styles.DefaultStyle
	}
	pal := styles.ForStyle(style)

	damage := DrawDialogBackground(s, assets, r, style)

	top := assets.Get(asset(style, "border-top"), image.Unscaled)
	bot := assets.Get(asset(style, "border-bottom"), image.Unscaled)
	left := assets.Get(asset(style, "border-left"), image.Unscaled)
	right := assets.Get(asset(style, "border-right"), image.Unscaled)
	if top == nil || bot == nil || left == nil || right == nil {
		return damage
	}

	if img := canvas.Scale(top, r.W, top.H); img != nil {
		s.Blit(r.X, r.Y-top.H, img.Tinted(pal.Border))
	}
	if img := canvas.Scale(bot, r.W, bot.H); img != nil {
		s.Blit(r.X, r.Bottom(), img.Tinted(pal.Border))
	}
	if img := canvas.Scale(left, left.W, r.H); img != nil {
		s.Blit(r.X-left.W, r.Y, img.Tinted(pal.Border))
	}
	if img := canvas.Scale(right, right.W, r.H); img != nil {
		s.Blit(r.Right(), r.Y, img.Tinted(pal.Border))
	}

	outer := canvas.Rect{
		X: r.X - left.W,
		Y: r.Y - top.H,
		W: r.W + left.W + right.W,
		H: r.H + top.H + bot.H,
	}
	s.Update(outer)
	damage = damage.Union(outer.Intersect(s.Bounds()))

	topLeft := assets.Get(asset(style, "border-topleft"), image.Unscaled)
	botLeft := assets.Get(asset(style, "border-botleft"), image.Unscaled)
	topRight := assets.Get(asset(style, "border-topright"), image.Unscaled)
	botRight := assets.Get(asset(style, "border-botright"), image.Unscaled)
	if topLeft == nil || botLeft == nil || topRight == nil || botRight == nil {
		return damage
	}

	s.Blit(r.X-topLeft.W, r.Y-topLeft.H, topLeft.Tinted(pal.Border))
	s.Blit(r.X-botLeft.W, r.Bottom(), botLeft.Tinted(pal.Border))
	s.Blit(r.Right(), r.Y-topRight.H, topRight.Tinted(pal.Border))
	s.Blit(r.Right(), r.Bottom(), botRight.Tinted(pal.Border))
	return damage
}

// DrawDialogBackground tiles the style's background image over r. The
// rectangle is clamped to the surface; one lying wholly off-screen draws
// nothing. A missing background is logged and skipped.
func DrawDialogBackground(s *canvas.Surface, assets *image.Loader, r canvas.Rect, style string) canvas.Rect {
	bg := assets.Get(asset(style, "background"), image.Unscaled)
	if bg == nil || bg.W == 0 || bg.H == 0 {
		logging.ForComponent(logging.CompFrame).Warn("could not find dialog background", "style", style)
		return canvas.Rect{}
	}

	if r.X < 0 {
		r.W += r.X
		r.X = 0
	}
	if r.Y < 0 {
		r.H += r.Y
		r.Y = 0
	}
	if r.X > s.Width() || r.Y > s.Height() {
		return canvas.Rect{}
	}
	r.W = min(r.W, s.Width()-r.X)
	r.H = min(r.H, s.Height()-r.Y)
	if r.Empty() {
		return canvas.Rect{}
	}

	tile := bg.Tinted(styles.ForStyle(style).Background)
	for i := 0; i < r.W; i += tile.W {
		for j := 0; j < r.H; j += tile.H {
			src := canvas.Rect{W: min(r.W-i, tile.W), H: min(r.H-j, tile.H)}
			s.BlitRect(r.X+i, r.Y+j, tile, src)
		}
	}
	s.Update(r)
	return r
}
