package dialog

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Confirm  key.Binding
	Escape   key.Binding
	Activate key.Binding
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Select   [10]key.Binding
}

func DefaultKeyMap() KeyMap {
	km := KeyMap{
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "cancel"),
		),
		Activate: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "close"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑/↓", "select"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
		),
	}
	// '1'..'9' then '0' pick list rows 0..9.
	for i := range km.Select {
		k := string(rune('1' + i))
		if i == 9 {
			k = "0"
		}
		km.Select[i] = key.NewBinding(key.WithKeys(k))
	}
	return km
}
