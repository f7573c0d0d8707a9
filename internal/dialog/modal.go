package dialog

import "sync"

var (
	modalMu  sync.Mutex
	inDialog bool
)

// InDialog reports whether a modal dialog is running.
func InDialog() bool {
	modalMu.Lock()
	defer modalMu.Unlock()
	return inDialog
}

// Manager marks a modal dialog as active until Leave restores the state
// it found, so nested dialogs unwind correctly.
type Manager struct {
	resetTo bool
	left    bool
}

// EnterModal sets the in-dialog flag.
func EnterModal() *Manager {
	modalMu.Lock()
	defer modalMu.Unlock()
	m := &Manager{resetTo: inDialog}
	inDialog = true
	return m
}

// Leave restores the flag. Extra calls are ignored.
func (m *Manager) Leave() {
	modalMu.Lock()
	defer modalMu.Unlock()
	if m.left {
		return
	}
	m.left = true
	inDialog = m.resetTo
}
