package widgets

import (
	"errors"
	"strings"
	"testing"

	"github.com/justinpbarnett/modal/internal/ui/canvas"
)

func TestNewButtonEmptyLabel(t *testing.T) {
	if _, err := NewButton("", Push); !errors.Is(err, ErrEmptyLabel) {
		t.Fatalf("expected ErrEmptyLabel, got %v", err)
	}
}

func TestButtonSize(t *testing.T) {
	b, _ := NewButton("OK", Push)
	if b.Width() != 6 || b.Height() != 1 {
		t.Errorf("size: got %dx%d, want 6x1", b.Width(), b.Height())
	}
	c, _ := NewButton("Sound", Check)
	if c.Width() != 9 {
		t.Errorf("check width: got %d, want 9", c.Width())
	}
}

func TestButtonClickFires(t *testing.T) {
	b, _ := NewButton("OK", Push)
	b.SetLocation(10, 5)

	steps := []struct {
		x, y int
		left bool
		want bool
	}{
		{11, 5, false, false}, // hover
		{11, 5, true, false},  // press
		{11, 5, true, false},  // hold
		{12, 5, false, true},  // release inside
		{12, 5, false, false},
	}
	for i, s := range steps {
		if got := b.Process(s.x, s.y, s.left); got != s.want {
			t.Errorf("step %d: got %v, want %v", i, got, s.want)
		}
	}
}

func TestButtonReleaseOutsideDoesNotFire(t *testing.T) {
	b, _ := NewButton("OK", Push)
	b.SetLocation(0, 0)

	b.Process(1, 0, true)
	if b.Process(30, 0, true) {
		t.Error("fired while dragged out")
	}
	if b.Process(30, 0, false) {
		t.Error("fired on release outside")
	}
	if b.Process(1, 0, false) {
		t.Error("fired on re-entry without a press")
	}
}

func TestButtonPressStartedOutside(t *testing.T) {
	b, _ := NewButton("OK", Push)
	b.SetLocation(0, 0)

	b.Process(20, 0, true)
	b.Process(1, 0, true)
	if b.Process(1, 0, false) {
		t.Error("press that began outside should not fire")
	}
}

func TestCheckButtonToggles(t *testing.T) {
	c, _ := NewButton("Music", Check)
	c.SetCheck(true)
	c.SetLocation(0, 0)

	c.Process(0, 0, true)
	if !c.Process(0, 0, false) {
		t.Fatal("check button should fire")
	}
	if c.Checked() {
		t.Error("expected unchecked after toggle")
	}
	c.Process(0, 0, true)
	c.Process(0, 0, false)
	if !c.Checked() {
		t.Error("expected checked after second toggle")
	}
}

func TestButtonDraw(t *testing.T) {
	s := canvas.NewSurface(20, 2)
	b, _ := NewButton("OK", Push)
	b.SetLocation(2, 0)
	b.Draw(s)
	if !strings.HasPrefix(s.Row(0), "  [ OK ]") {
		t.Errorf("push face: %q", s.Row(0))
	}

	c, _ := NewButton("Sound", Check)
	c.SetCheck(true)
	c.SetLocation(0, 1)
	c.Draw(s)
	if !strings.HasPrefix(s.Row(1), "[x] Sound") {
		t.Errorf("check face: %q", s.Row(1))
	}
}
