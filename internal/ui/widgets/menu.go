package widgets

import (
	"strings"

	"github.com/justinpbarnett/modal/internal/ui/canvas"
	"github.com/justinpbarnett/modal/internal/ui/font"
	"github.com/justinpbarnett/modal/internal/ui/styles"
	"github.com/justinpbarnett/modal/internal/ui/text"
)

const (
	DefaultMaxRows           = 10
	DefaultDoubleClickFrames = 40
)

// MenuInput is one frame of input for a Menu. Up, Down, PageUp and
// PageDown are edges, not levels; Left is the current button level.
// Digit is a direct selection 0-9, or -1.
type MenuInput struct {
	X, Y     int
	Left     bool
	Up, Down bool
	PageUp   bool
	PageDown bool
	Digit    int
}

// Menu is a scrolling list of rows. Commas in an item split it into
// aligned columns. In click-selects mode a single click returns the item.
type Menu struct {
	items        []string
	widths       []int
	clickSelects bool

	maxRows           int
	doubleClickFrames int

	x, y     int
	selected int
	first    int

	prevLeft      bool
	frame         int
	lastClick     int
	lastClickItem int
	doubleClicked bool
}

// MenuOption configures a Menu.
type MenuOption func(*Menu)

// WithMaxRows caps the number of rows shown at once.
func WithMaxRows(n int) MenuOption {
	return func(m *Menu) {
		if n > 0 {
			m.maxRows = n
		}
	}
}

// WithDoubleClickFrames sets how many frames may separate the two clicks
// of a double click.
func WithDoubleClickFrames(n int) MenuOption {
	return func(m *Menu) {
		if n > 0 {
			m.doubleClickFrames = n
		}
	}
}

func NewMenu(items []string, clickSelects bool, opts ...MenuOption) *Menu {
	m := &Menu{
		items:             append([]string(nil), items...),
		clickSelects:      clickSelects,
		maxRows:           DefaultMaxRows,
		doubleClickFrames: DefaultDoubleClickFrames,
		lastClickItem:     -1,
	}
	for _, o := range opts {
		o(m)
	}
	m.widths = text.ColumnWidths(m.items)
	return m
}

func (m *Menu) NItems() int { return len(m.items) }

func (m *Menu) Selection() int { return m.selected }

func (m *Menu) rows() int { return min(len(m.items), m.maxRows) }

func (m *Menu) scrolls() bool { return len(m.items) > m.maxRows }

func (m *Menu) rowWidth() int {
	w := 0
	for _, item := range m.items {
		w = max(w, font.Measure(text.Columns(item, m.widths)).W)
	}
	return w
}

// Width is the row width plus a one-cell margin each side and, when the
// list scrolls, a scroll column.
func (m *Menu) Width() int {
	if len(m.items) == 0 {
		return 0
	}
	w := m.rowWidth() + 2
	if m.scrolls() {
		w++
	}
	return w
}

// Height is zero for an empty menu.
func (m *Menu) Height() int { return m.rows() }

func (m *Menu) SetLocation(x, y int) { m.x, m.y = x, y }

func (m *Menu) Location() canvas.Rect {
	return canvas.Rect{X: m.x, Y: m.y, W: m.Width(), H: m.Height()}
}

// DoubleClicked reports a double click since the last call and clears it.
func (m *Menu) DoubleClicked() bool {
	d := m.doubleClicked
	m.doubleClicked = false
	return d
}

// SetSelection moves the highlight, scrolling it into view.
func (m *Menu) SetSelection(i int) {
	if len(m.items) == 0 {
		m.selected, m.first = 0, 0
		return
	}
	m.selected = min(max(i, 0), len(m.items)-1)
	if m.selected < m.first {
		m.first = m.selected
	}
	if m.selected >= m.first+m.rows() {
		m.first = m.selected - m.rows() + 1
	}
}

// Erase removes item i, keeping the selection in range.
func (m *Menu) Erase(i int) {
	if i < 0 || i >= len(m.items) {
		return
	}
	m.items = append(m.items[:i], m.items[i+1:]...)
	m.widths = text.ColumnWidths(m.items)
	m.first = min(m.first, max(len(m.items)-m.rows(), 0))
	m.SetSelection(m.selected)
}

func (m *Menu) hit(x, y int) int {
	if !m.Location().Contains(x, y) {
		return -1
	}
	i := m.first + y - m.y
	if i >= len(m.items) {
		return -1
	}
	return i
}

// Process applies one frame of input. It returns the index of an item
// chosen outright (a digit key, or a click in click-selects mode) and -1
// otherwise.
func (m *Menu) Process(in MenuInput) int {
	m.frame++
	if len(m.items) == 0 {
		m.prevLeft = in.Left
		return -1
	}

	if !m.clickSelects {
		page := max(m.rows()-1, 1)
		switch {
		case in.Up:
			m.SetSelection(m.selected - 1)
		case in.Down:
			m.SetSelection(m.selected + 1)
		case in.PageUp:
			m.SetSelection(m.selected - page)
		case in.PageDown:
			m.SetSelection(m.selected + page)
		}
	}

	if in.Digit >= 0 && in.Digit < len(m.items) {
		m.SetSelection(in.Digit)
		m.prevLeft = in.Left
		return in.Digit
	}

	pressed := in.Left && !m.prevLeft
	m.prevLeft = in.Left
	if !pressed {
		return -1
	}
	hit := m.hit(in.X, in.Y)
	if hit < 0 {
		return -1
	}
	if m.clickSelects {
		return hit
	}
	if hit == m.lastClickItem && m.frame-m.lastClick <= m.doubleClickFrames {
		m.doubleClicked = true
		m.lastClickItem = -1
	} else {
		m.lastClickItem = hit
	}
	m.lastClick = m.frame
	m.SetSelection(hit)
	return -1
}

// Draw paints the visible rows.
func (m *Menu) Draw(s *canvas.Surface) {
	r := m.Location()
	if r.Empty() {
		return
	}
	base := s.At(m.x, m.y).Ink
	s.Fill(r, ' ', base)
	rowW := m.rowWidth()
	for row := range m.rows() {
		i := m.first + row
		ink := styles.MessageInk.Over(base)
		if i == m.selected && !m.clickSelects {
			ink = styles.SelectedInk
			s.Fill(canvas.Rect{X: m.x, Y: m.y + row, W: rowW + 2, H: 1}, ' ', ink)
		}
		line := text.PadRight(text.Columns(m.items[i], m.widths), rowW)
		font.Draw(s, r, line, ink, m.x+1, m.y+row)
	}
	if m.scrolls() {
		m.drawScroll(s, base)
	}
	s.Update(r)
}

func (m *Menu) drawScroll(s *canvas.Surface, base canvas.Ink) {
	x := m.x + m.Width() - 1
	ink := styles.SmallInk.Over(base)
	rows := m.rows()
	var col strings.Builder
	for row := range rows {
		switch {
		case row == 0 && m.first > 0:
			col.WriteString("▲")
		case row == rows-1 && m.first+rows < len(m.items):
			col.WriteString("▼")
		default:
			col.WriteString("│")
		}
		if row < rows-1 {
			col.WriteByte('\n')
		}
	}
	font.Draw(s, s.Bounds(), col.String(), ink, x, m.y)
}
