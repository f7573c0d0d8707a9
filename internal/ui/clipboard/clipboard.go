package clipboard

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
)

// Board is the clipboard a text box pastes from and copies to.
type Board interface {
	Read() (string, error)
	Write(text string) error
}

// System is the desktop clipboard, with OSC 52 as the write fallback.
type System struct {
	// OSC52 receives the fallback escape sequence; nil means stderr, which
	// a terminal program still shares with the tty.
	OSC52 io.Writer
}

// Read returns the clipboard contents.
func (s System) Read() (string, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("reading clipboard: %w", err)
	}
	return text, nil
}

// Write copies text to the system clipboard. It tries the native
// clipboard first (wl-copy, xclip, pbcopy, etc.) then falls back
// to OSC52 for SSH/tmux environments.
func (s System) Write(text string) error {
	if err := clipboard.WriteAll(text); err == nil {
		return nil
	}
	w := s.OSC52
	if w == nil {
		w = os.Stderr
	}
	return writeOSC52(w, text)
}

// writeOSC52 writes text to the clipboard using the OSC 52 escape sequence.
func writeOSC52(w io.Writer, text string) error {
	encoded := base64.StdEncoding.EncodeToString([]byte(text))
	_, err := fmt.Fprintf(w, "\x1b]52;c;%s\x07", encoded)
	return err
}

// Memory is an in-process clipboard.
type Memory struct {
	Text string
}

func (m *Memory) Read() (string, error) { return m.Text, nil }

func (m *Memory) Write(text string) error {
	m.Text = text
	return nil
}
