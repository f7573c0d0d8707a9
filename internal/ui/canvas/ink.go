package canvas

import "github.com/charmbracelet/lipgloss"

// Ink is the styling of a single cell. It is comparable so runs of equal
// ink can be rendered with one lipgloss style.
type Ink struct {
	Fg   lipgloss.TerminalColor
	Bg   lipgloss.TerminalColor
	Bold bool
}

// Over returns i with any unset color taken from base.
func (i Ink) Over(base Ink) Ink {
	if i.Fg == nil {
		i.Fg = base.Fg
	}
	if i.Bg == nil {
		i.Bg = base.Bg
	}
	return i
}

// Style converts the ink into a lipgloss style.
func (i Ink) Style() lipgloss.Style {
	st := lipgloss.NewStyle()
	if i.Fg != nil {
		st = st.Foreground(i.Fg)
	}
	if i.Bg != nil {
		st = st.Background(i.Bg)
	}
	if i.Bold {
		st = st.Bold(true)
	}
	return st
}
