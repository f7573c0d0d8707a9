package widgets

import (
	"strings"
	"testing"

	"github.com/justinpbarnett/modal/internal/ui/canvas"
)

func noInput() MenuInput { return MenuInput{X: -1, Y: -1, Digit: -1} }

func TestMenuEmpty(t *testing.T) {
	m := NewMenu(nil, false)
	if m.Height() != 0 || m.Width() != 0 {
		t.Errorf("empty menu size: %dx%d", m.Width(), m.Height())
	}
	if got := m.Process(noInput()); got != -1 {
		t.Errorf("Process on empty menu: %d", got)
	}
}

func TestMenuSizeAndColumns(t *testing.T) {
	m := NewMenu([]string{"a,1", "bbbb,22"}, false)
	// widest row "bbbb  22" plus margins
	if m.Width() != 10 {
		t.Errorf("width: got %d, want 10", m.Width())
	}
	if m.Height() != 2 {
		t.Errorf("height: got %d, want 2", m.Height())
	}

	s := canvas.NewSurface(20, 3)
	m.SetLocation(0, 0)
	m.Draw(s)
	if !strings.HasPrefix(s.Row(0), " a     1") {
		t.Errorf("row 0: %q", s.Row(0))
	}
	if !strings.HasPrefix(s.Row(1), " bbbb  22") {
		t.Errorf("row 1: %q", s.Row(1))
	}
}

func TestMenuArrowKeys(t *testing.T) {
	m := NewMenu([]string{"a", "b", "c"}, false)

	in := noInput()
	in.Down = true
	m.Process(in)
	m.Process(in)
	m.Process(in)
	if m.Selection() != 2 {
		t.Errorf("after 3 downs: got %d, want 2 (clamped)", m.Selection())
	}

	in = noInput()
	in.Up = true
	m.Process(in)
	if m.Selection() != 1 {
		t.Errorf("after up: got %d, want 1", m.Selection())
	}
}

func TestMenuPaging(t *testing.T) {
	items := make([]string, 25)
	for i := range items {
		items[i] = "item"
	}
	m := NewMenu(items, false, WithMaxRows(5))
	if m.Height() != 5 {
		t.Fatalf("height: got %d, want 5", m.Height())
	}

	in := noInput()
	in.PageDown = true
	m.Process(in)
	if m.Selection() != 4 {
		t.Errorf("page down: got %d, want 4", m.Selection())
	}
	m.Process(in)
	if m.Selection() != 8 {
		t.Errorf("second page down: got %d, want 8", m.Selection())
	}

	m.SetLocation(0, 0)
	if got := m.hit(1, 0); got != 4 {
		t.Errorf("first visible row: got %d, want 4 after scrolling", got)
	}

	in = noInput()
	in.PageUp = true
	m.Process(in)
	m.Process(in)
	m.Process(in)
	if m.Selection() != 0 {
		t.Errorf("page up: got %d, want 0", m.Selection())
	}
}

func TestMenuDigitSelects(t *testing.T) {
	m := NewMenu([]string{"a", "b", "c"}, false)
	in := noInput()
	in.Digit = 2
	if got := m.Process(in); got != 2 {
		t.Errorf("digit 2: got %d", got)
	}
	if m.Selection() != 2 {
		t.Errorf("selection: got %d", m.Selection())
	}

	in.Digit = 7
	if got := m.Process(in); got != -1 {
		t.Errorf("digit past the end: got %d, want -1", got)
	}
}

func TestMenuClickSelectsAndDoubleClick(t *testing.T) {
	m := NewMenu([]string{"a", "b", "c"}, false, WithDoubleClickFrames(10))
	m.SetLocation(5, 5)

	click := func(row int) int {
		in := MenuInput{X: 6, Y: 5 + row, Left: true, Digit: -1}
		res := m.Process(in)
		in.Left = false
		m.Process(in)
		return res
	}

	if got := click(1); got != -1 {
		t.Errorf("single click returned %d", got)
	}
	if m.Selection() != 1 {
		t.Errorf("selection: got %d, want 1", m.Selection())
	}
	if m.DoubleClicked() {
		t.Error("one click is not a double click")
	}

	click(1)
	if !m.DoubleClicked() {
		t.Error("expected double click")
	}
	if m.DoubleClicked() {
		t.Error("DoubleClicked should clear itself")
	}
}

func TestMenuSlowClicksAreNotDoubleClick(t *testing.T) {
	m := NewMenu([]string{"a", "b"}, false, WithDoubleClickFrames(3))
	m.SetLocation(0, 0)

	m.Process(MenuInput{X: 1, Y: 0, Left: true, Digit: -1})
	for range 5 {
		m.Process(MenuInput{X: 1, Y: 0, Digit: -1})
	}
	m.Process(MenuInput{X: 1, Y: 0, Left: true, Digit: -1})
	if m.DoubleClicked() {
		t.Error("clicks too far apart counted as a double click")
	}
}

func TestMenuClickSelectsMode(t *testing.T) {
	m := NewMenu([]string{"a", "b"}, true)
	m.SetLocation(0, 0)

	in := noInput()
	in.Down = true
	m.Process(in)
	if m.Selection() != 0 {
		t.Error("arrow keys should not move a click-selects menu")
	}

	if got := m.Process(MenuInput{X: 1, Y: 1, Left: true, Digit: -1}); got != 1 {
		t.Errorf("click: got %d, want 1", got)
	}
}

func TestMenuErase(t *testing.T) {
	m := NewMenu([]string{"a", "b", "c"}, false)
	m.SetSelection(2)
	m.Erase(2)
	if m.NItems() != 2 {
		t.Fatalf("items: got %d", m.NItems())
	}
	if m.Selection() != 1 {
		t.Errorf("selection after erasing last: got %d, want 1", m.Selection())
	}
	m.Erase(0)
	m.Erase(0)
	if m.NItems() != 0 || m.Height() != 0 {
		t.Errorf("expected empty menu, got %d items", m.NItems())
	}
	m.Erase(0)
}

func TestMenuItemsCopied(t *testing.T) {
	items := []string{"a", "b"}
	m := NewMenu(items, false)
	m.Erase(0)
	if items[0] != "a" {
		t.Error("Erase mutated the caller's slice")
	}
}
