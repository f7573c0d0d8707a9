package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

var namedKeys = map[string]tea.KeyType{
	"enter":     tea.KeyEnter,
	"esc":       tea.KeyEsc,
	"space":     tea.KeySpace,
	"tab":       tea.KeyTab,
	"backspace": tea.KeyBackspace,
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
	"left":      tea.KeyLeft,
	"right":     tea.KeyRight,
	"pgup":      tea.KeyPgUp,
	"pgdown":    tea.KeyPgDown,
	"home":      tea.KeyHome,
	"end":       tea.KeyEnd,
	"ctrl+c":    tea.KeyCtrlC,
	"ctrl+v":    tea.KeyCtrlV,
	"ctrl+y":    tea.KeyCtrlY,
}

// ParseKey turns a key name as printed by tea.KeyMsg.String back into a
// message. Any other single character is typed as itself.
func ParseKey(name string) (tea.KeyMsg, error) {
	if t, ok := namedKeys[strings.ToLower(name)]; ok {
		return tea.KeyMsg{Type: t}, nil
	}
	if r := []rune(name); len(r) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: r}, nil
	}
	return tea.KeyMsg{}, fmt.Errorf("unknown key %q", name)
}

// ParseKeys splits a comma separated script such as "down,down,enter".
func ParseKeys(script string) ([]tea.KeyMsg, error) {
	var keys []tea.KeyMsg
	for _, name := range strings.Split(script, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		k, err := ParseKey(name)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}
