package netxfer

import (
	"errors"
	"time"

	"github.com/justinpbarnett/modal/internal/dialog"
	"github.com/justinpbarnett/modal/internal/ui/text"
)

// Codes ReceiveAction ends a dialog with.
const (
	ConnectionComplete   = 1
	ConnectionContinuing = 2
)

// DefaultPollTimeout is how long each frame waits for a document.
const DefaultPollTimeout = 100 * time.Millisecond

// ErrCanceled is returned by DataDialog when the user cancels.
var ErrCanceled = errors.New("netxfer: canceled")

// Source is where ReceiveAction pulls documents from. *Conn implements it.
type Source interface {
	Receive(timeout time.Duration) (Document, error)
	Stats() Stats
}

// ReceiveAction is a dialog.Action that polls a Source once per frame.
// It ends the dialog with ConnectionComplete when a document (or an error)
// arrives and with ConnectionContinuing when more bytes came in, so the
// caller can redraw the progress.
type ReceiveAction struct {
	src     Source
	timeout time.Duration
	stats   Stats

	doc Document
	err error
}

// NewReceiveAction remembers the current stats to compare against.
func NewReceiveAction(src Source, timeout time.Duration) *ReceiveAction {
	return &ReceiveAction{src: src, timeout: timeout, stats: src.Stats()}
}

func (a *ReceiveAction) Do() (int, bool) {
	doc, err := a.src.Receive(a.timeout)
	switch {
	case err != nil:
		a.err = err
		return ConnectionComplete, true
	case doc != nil:
		a.doc = doc
		return ConnectionComplete, true
	}
	if a.src.Stats().Done != a.stats.Done {
		return ConnectionContinuing, true
	}
	return dialog.ContinueDialog, false
}

// Result is the received document or the receive error; both are nil
// until the action completes.
func (a *ReceiveAction) Result() (Document, error) {
	return a.doc, a.err
}

// Caption formats the progress line: "msg: 10/40 kilobytes" while a
// transfer is active and msg alone otherwise.
func Caption(msg string, st Stats, kilobytes string) string {
	if !st.Active {
		return msg
	}
	return msg + ": " + text.FormatKilobytes(st.Done, st.Total) + " " + kilobytes
}

// DataDialog shows a cancel-only dialog until src delivers a document,
// re-issuing it with fresh progress text whenever more data arrives.
func DataDialog(e *dialog.Engine, msg string, src Source, timeout time.Duration) (Document, error) {
	kilobytes := e.Strings().Get("kilobytes")
	for {
		st := src.Stats()
		recv := NewReceiveAction(src, timeout)
		res := e.Show(dialog.Request{
			Kind:    dialog.CancelOnly,
			Message: Caption(msg, st, kilobytes),
			Action:  recv,
		})
		if res == ConnectionContinuing {
			continue
		}
		doc, err := recv.Result()
		if doc == nil && err == nil {
			return nil, ErrCanceled
		}
		return doc, err
	}
}
