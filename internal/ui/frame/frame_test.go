package frame

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/charmbracelet/lipgloss"
	"github.com/justinpbarnett/modal/internal/ui/canvas"
	"github.com/justinpbarnett/modal/internal/ui/image"
)

func builtin() *image.Loader { return image.NewLoader(image.Builtin()) }

func TestDrawDialogFrameMenu(t *testing.T) {
	s := canvas.NewSurface(30, 12)
	r := canvas.Rect{X: 5, Y: 3, W: 10, H: 4}

	damage := DrawDialogFrame(s, builtin(), r, "")

	checks := []struct {
		x, y int
		want rune
	}{
		{4, 2, '╭'}, {15, 2, '╮'}, {4, 7, '╰'}, {15, 7, '╯'},
		{5, 2, '─'}, {14, 2, '─'}, {5, 7, '─'},
		{4, 3, '│'}, {4, 6, '│'}, {15, 4, '│'},
		{6, 4, ' '},
	}
	for _, c := range checks {
		if got := s.At(c.x, c.y).Rune; got != c.want {
			t.Errorf("cell (%d,%d): got %q, want %q", c.x, c.y, got, c.want)
		}
	}
	if want := (canvas.Rect{X: 4, Y: 2, W: 12, H: 6}); damage != want {
		t.Errorf("damage: got %+v, want %+v", damage, want)
	}
	if s.At(5, 3).Ink.Bg == nil {
		t.Error("backdrop should set a background color")
	}
}

func TestDrawDialogFrameMissingCorners(t *testing.T) {
	s := canvas.NewSurface(30, 12)
	r := canvas.Rect{X: 5, Y: 3, W: 10, H: 4}

	DrawDialogFrame(s, builtin(), r, "message")

	if got := s.At(5, 2).Rune; got != '┄' {
		t.Errorf("top edge: got %q, want %q", got, '┄')
	}
	if got := s.At(4, 2).Rune; got != ' ' {
		t.Errorf("corner should be untouched, got %q", got)
	}
}

func TestDrawDialogFrameMissingEdge(t *testing.T) {
	fsys := fstest.MapFS{
		"misc/bare-background.txt": {Data: []byte("..\n")},
		"misc/bare-border-top.txt": {Data: []byte("=\n")},
	}
	s := canvas.NewSurface(20, 10)
	r := canvas.Rect{X: 2, Y: 2, W: 6, H: 3}

	DrawDialogFrame(s, image.NewLoader(fsys), r, "bare")

	if got := s.At(2, 2).Rune; got != '.' {
		t.Errorf("backdrop not drawn: got %q", got)
	}
	if got := s.At(2, 1).Rune; got != ' ' {
		t.Errorf("border drawn despite missing edges: got %q", got)
	}
}

func TestDrawDialogBackgroundTiles(t *testing.T) {
	fsys := fstest.MapFS{
		"misc/grid-background.txt": {Data: []byte("ab\ncd\n")},
	}
	s := canvas.NewSurface(10, 6)
	DrawDialogBackground(s, image.NewLoader(fsys), canvas.Rect{X: 1, Y: 1, W: 5, H: 3}, "grid")

	want := []string{
		"          ",
		" ababa    ",
		" cdcdc    ",
		" ababa    ",
		"          ",
		"          ",
	}
	if got := s.String(); got != strings.Join(want, "\n") {
		t.Errorf("tiling mismatch:\n%s", got)
	}
}

func TestDrawDialogBackgroundClamps(t *testing.T) {
	fsys := fstest.MapFS{"misc/x-background.txt": {Data: []byte("#\n")}}
	l := image.NewLoader(fsys)
	s := canvas.NewSurface(6, 4)

	r := DrawDialogBackground(s, l, canvas.Rect{X: -2, Y: -1, W: 4, H: 3}, "x")
	if want := (canvas.Rect{W: 2, H: 2}); r != want {
		t.Errorf("negative origin: got %+v, want %+v", r, want)
	}

	r = DrawDialogBackground(s, l, canvas.Rect{X: 4, Y: 2, W: 10, H: 10}, "x")
	if want := (canvas.Rect{X: 4, Y: 2, W: 2, H: 2}); r != want {
		t.Errorf("over-edge: got %+v, want %+v", r, want)
	}

	r = DrawDialogBackground(s, l, canvas.Rect{X: 40, Y: 0, W: 3, H: 3}, "x")
	if !r.Empty() {
		t.Errorf("off-screen rect drew %+v", r)
	}
}

func TestDrawDialogBackgroundMissing(t *testing.T) {
	s := canvas.NewSurface(6, 4)
	r := DrawDialogBackground(s, image.NewLoader(fstest.MapFS{}), canvas.Rect{W: 3, H: 3}, "none")
	if !r.Empty() {
		t.Errorf("expected nothing drawn, got %+v", r)
	}
	if got := s.At(0, 0).Rune; got != ' ' {
		t.Errorf("surface changed: %q", got)
	}
}

func TestDrawDialogTitle(t *testing.T) {
	s := canvas.NewSurface(20, 5)
	below := DrawDialogTitle(s, 2, 1, "Settings")
	if below != 2 {
		t.Errorf("returned y: got %d, want 2", below)
	}
	if !strings.HasPrefix(s.Row(1), "   Settings") {
		t.Errorf("row 1: %q", s.Row(1))
	}
}

func TestDrawRectangle(t *testing.T) {
	s := canvas.NewSurface(10, 5)
	if !DrawRectangle(s, canvas.Rect{X: 1, Y: 1, W: 4, H: 3}, canvas.Ink{}) {
		t.Fatal("legal rectangle rejected")
	}
	want := []string{
		"          ",
		" ┌──┐     ",
		" │  │     ",
		" └──┘     ",
		"          ",
	}
	if got := s.String(); got != strings.Join(want, "\n") {
		t.Errorf("outline mismatch:\n%s", got)
	}
}

func TestDrawRectangleIllegal(t *testing.T) {
	s := canvas.NewSurface(10, 5)
	for _, r := range []canvas.Rect{
		{X: -1, Y: 0, W: 3, H: 3},
		{X: 0, Y: 0, W: 10, H: 3},
		{X: 2, Y: 2, W: 3, H: 3},
	} {
		if DrawRectangle(s, r, canvas.Ink{}) {
			t.Errorf("rectangle %+v should be rejected", r)
		}
	}
	if strings.TrimSpace(s.String()) != "" {
		t.Error("rejected rectangles must not draw")
	}
}

func TestDrawSolidTintedRectangle(t *testing.T) {
	s := canvas.NewSurface(6, 4)
	s.Fill(s.Bounds(), ' ', canvas.Ink{Bg: lipgloss.Color("#ffffff")})

	if !DrawSolidTintedRectangle(s, canvas.Rect{X: 1, Y: 1, W: 2, H: 2}, lipgloss.Color("#000000"), 0.5) {
		t.Fatal("legal rectangle rejected")
	}
	got, ok := s.At(1, 1).Ink.Bg.(lipgloss.Color)
	if !ok {
		t.Fatalf("tinted cell background is %T", s.At(1, 1).Ink.Bg)
	}
	if got != "#808080" && got != "#7f7f7f" {
		t.Errorf("blend: got %s, want mid grey", got)
	}
	if s.At(0, 0).Ink.Bg != lipgloss.Color("#ffffff") {
		t.Error("cell outside rectangle changed")
	}

	if DrawSolidTintedRectangle(s, canvas.Rect{X: 4, Y: 0, W: 4, H: 1}, lipgloss.Color("#000000"), 1) {
		t.Error("rectangle over the edge should be rejected")
	}
	if DrawSolidTintedRectangle(s, canvas.Rect{W: 1, H: 1}, lipgloss.Color("red"), 1) {
		t.Error("non-hex tint should be rejected")
	}
}

func TestDrawHints(t *testing.T) {
	s := canvas.NewSurface(40, 2)
	hints := []Hint{{Key: "enter", Label: "ok"}, {Key: "esc", Label: "cancel"}}

	if n := DrawHints(s, 1, 0, 38, hints); n != 2 {
		t.Errorf("drawn: got %d, want 2", n)
	}
	if !strings.HasPrefix(s.Row(0), " [enter] ok  [esc] cancel") {
		t.Errorf("row: %q", s.Row(0))
	}
	if w := HintWidth(hints[0]); w != 10 {
		t.Errorf("HintWidth: got %d, want 10", w)
	}
}

func TestDrawHintsDropsOverflow(t *testing.T) {
	s := canvas.NewSurface(40, 1)
	hints := []Hint{{Key: "enter", Label: "ok"}, {Key: "esc", Label: "cancel"}}
	if n := DrawHints(s, 0, 0, 14, hints); n != 1 {
		t.Errorf("drawn: got %d, want 1", n)
	}
	if strings.Contains(s.Row(0), "esc") {
		t.Error("overflowing hint should be dropped")
	}
}
