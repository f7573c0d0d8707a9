package ui

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
)

const waitDuration = 3 * time.Second

// newTestProgram runs body inside a teatest program. The body starts only
// after the test model exists so its frames have somewhere to go.
func newTestProgram(tb testing.TB, body Body, opts ...AppOption) (*App, *teatest.TestModel) {
	tb.Helper()
	ready := make(chan struct{})
	var tm *teatest.TestModel

	app := NewApp(context.Background(), func(ctx context.Context, s Session) error {
		<-ready
		return body(ctx, s)
	}, func(m tea.Msg) { tm.Send(m) }, opts...)

	tm = teatest.NewTestModel(tb, app, teatest.WithInitialTermSize(80, 24))
	tm.Send(tea.WindowSizeMsg{Width: 80, Height: 24})
	close(ready)
	return app, tm
}

// waitForContains waits until the output contains every given substring.
// WaitFor consumes what it reads, so substrings drawn in the same frame must
// be awaited together.
func waitForContains(tb testing.TB, tm *teatest.TestModel, substrs ...string) {
	tb.Helper()
	teatest.WaitFor(
		tb,
		tm.Output(),
		func(bts []byte) bool {
			for _, substr := range substrs {
				if !bytes.Contains(bts, []byte(substr)) {
					return false
				}
			}
			return true
		},
		teatest.WithDuration(waitDuration),
	)
}

// waitLocked polls until the terminal's lock matches want.
func waitLocked(term *Terminal, want bool) error {
	deadline := time.Now().Add(waitDuration)
	for term.Locked() != want {
		if time.Now().After(deadline) {
			return fmt.Errorf("terminal locked=%v never reached", want)
		}
		time.Sleep(time.Millisecond)
	}
	return nil
}
