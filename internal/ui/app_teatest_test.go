package ui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justinpbarnett/modal/internal/dialog"
)

func showBody(req dialog.Request, result chan<- int) Body {
	return func(_ context.Context, s Session) error {
		e := dialog.NewEngine(s.Display, s.Input, dialog.WithPacer(dialog.NewPacer(200)))
		result <- e.Show(req)
		return nil
	}
}

func TestAppYesNoConfirm(t *testing.T) {
	result := make(chan int, 1)
	app, tm := newTestProgram(t, showBody(dialog.Request{Kind: dialog.YesNo, Message: "Continue?"}, result))

	waitForContains(t, tm, "Continue?", "Yes")
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})

	tm.WaitFinished(t, teatest.WithFinalTimeout(waitDuration))
	assert.Equal(t, 0, <-result)
	assert.NoError(t, app.Err())
	assert.Positive(t, app.term.Flips())
}

func TestAppMessageEscape(t *testing.T) {
	result := make(chan int, 1)
	_, tm := newTestProgram(t, showBody(dialog.Request{Kind: dialog.Message, Caption: "Note", Message: "Done."}, result))

	waitForContains(t, tm, "Done.")
	tm.Send(tea.KeyMsg{Type: tea.KeyEsc})

	tm.WaitFinished(t, teatest.WithFinalTimeout(waitDuration))
	assert.Equal(t, dialog.EscapeDialog, <-result)
}

func TestAppListSelection(t *testing.T) {
	result := make(chan int, 1)
	req := dialog.Request{Kind: dialog.OKCancel, Caption: "Pick", Items: []string{"alpha", "beta", "gamma"}}
	_, tm := newTestProgram(t, showBody(req, result))

	waitForContains(t, tm, "gamma")
	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("2")})

	tm.WaitFinished(t, teatest.WithFinalTimeout(waitDuration))
	assert.Equal(t, 1, <-result)
}

func TestAppBodyError(t *testing.T) {
	boom := errors.New("boom")
	app, tm := newTestProgram(t, func(context.Context, Session) error { return boom })

	tm.WaitFinished(t, teatest.WithFinalTimeout(waitDuration))
	assert.ErrorIs(t, app.Err(), boom)
}

func TestAppBodyPanic(t *testing.T) {
	app, tm := newTestProgram(t, func(context.Context, Session) error { panic("bad handler") })

	tm.WaitFinished(t, teatest.WithFinalTimeout(waitDuration))
	require.Error(t, app.Err())
	assert.Contains(t, app.Err().Error(), "bad handler")
}

func TestAppFocusLockCancelsDialogs(t *testing.T) {
	results := make(chan int, 2)
	body := func(_ context.Context, s Session) error {
		e := dialog.NewEngine(s.Display, s.Input, dialog.WithPacer(dialog.NewPacer(200)))
		if err := waitLocked(s.Display, true); err != nil {
			return err
		}
		results <- e.Show(dialog.Request{Kind: dialog.YesNo, Message: "Unseen?"})
		if err := waitLocked(s.Display, false); err != nil {
			return err
		}
		results <- e.Show(dialog.Request{Kind: dialog.YesNo, Message: "Continue?"})
		return nil
	}
	app, tm := newTestProgram(t, body, WithFocusLock())

	tm.Send(tea.BlurMsg{})
	select {
	case res := <-results:
		assert.Equal(t, -1, res, "a dialog opened while unfocused returns at once")
	case <-time.After(waitDuration):
		t.Fatal("dialog did not return while the terminal was locked")
	}

	tm.Send(tea.FocusMsg{})
	waitForContains(t, tm, "Continue?")
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})

	tm.WaitFinished(t, teatest.WithFinalTimeout(waitDuration))
	require.NoError(t, app.Err())
	assert.Equal(t, 0, <-results)
}
