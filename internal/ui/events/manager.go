package events

import "sync"

// DefaultKeyHoldFrames is how many pumps a key stays down after its last
// press event. Terminals report presses only, never releases, so the level
// is synthesised: once auto-repeat is running its presses arrive well
// inside the hold and keep the level up. The first repeat comes only after
// the OS repeat delay (about half a second), longer than the hold, so a
// key held through that delay rises twice. A hold long enough to bridge
// the delay would merge two quick taps of the same key into one; short
// taps win here. ui.key_hold_frames raises it where holds matter more.
const DefaultKeyHoldFrames = 6

// Manager queues events fed from the terminal goroutine and applies them
// on Pump, which the dialog loop calls once per frame. Everything except
// Feed must be called from the loop goroutine.
type Manager struct {
	mu    sync.Mutex
	queue []Event

	holdFrames int
	keys       map[string]int
	mouse      Mouse
	deferred   []Event

	contexts [][]Handler

	resizeLocks   int
	pendingResize *Event
	onResize      func(w, h int)
}

// NewManager creates a manager with one base context.
func NewManager() *Manager {
	return &Manager{
		holdFrames: DefaultKeyHoldFrames,
		keys:       make(map[string]int),
		contexts:   [][]Handler{nil},
	}
}

// SetKeyHoldFrames changes how long a key press stays down.
func (m *Manager) SetKeyHoldFrames(n int) {
	if n > 0 {
		m.holdFrames = n
	}
}

// OnResize registers the callback applied for resize events.
func (m *Manager) OnResize(fn func(w, h int)) { m.onResize = fn }

// Feed queues an event. Safe for concurrent use.
func (m *Manager) Feed(e Event) {
	m.mu.Lock()
	m.queue = append(m.queue, e)
	m.mu.Unlock()
}

// Pump drains the queue without blocking. Key levels decay first so a key
// pressed in this batch gets its full hold time. A mouse release that
// arrives in the same batch as its press is held back one pump so the
// press is observable for at least one frame.
func (m *Manager) Pump() {
	m.mu.Lock()
	batch := m.queue
	m.queue = nil
	m.mu.Unlock()

	for k, n := range m.keys {
		if n <= 1 {
			delete(m.keys, k)
		} else {
			m.keys[k] = n - 1
		}
	}

	for _, e := range m.deferred {
		m.setButton(e.Button, false)
	}
	m.deferred = m.deferred[:0]

	var pressed [numButtons]bool
	for _, e := range batch {
		switch e.Kind {
		case KeyPress:
			m.keys[e.Name()] = m.holdFrames
		case MousePress:
			m.mouse.X, m.mouse.Y = e.X, e.Y
			m.setButton(e.Button, true)
			if e.Button >= 0 && e.Button < numButtons {
				pressed[e.Button] = true
			}
		case MouseRelease:
			m.mouse.X, m.mouse.Y = e.X, e.Y
			if e.Button >= 0 && e.Button < numButtons && pressed[e.Button] {
				m.deferred = append(m.deferred, e)
			} else {
				m.setButton(e.Button, false)
			}
		case MouseMove:
			m.mouse.X, m.mouse.Y = e.X, e.Y
		case Resize:
			if m.resizeLocks > 0 {
				ev := e
				m.pendingResize = &ev
				continue
			}
			m.applyResize(e)
			continue
		}
		m.dispatch(e)
	}
}

func (m *Manager) setButton(b Button, down bool) {
	switch b {
	case Left:
		m.mouse.Left = down
	case Right:
		m.mouse.Right = down
	}
}

func (m *Manager) applyResize(e Event) {
	if m.onResize != nil {
		m.onResize(e.W, e.H)
	}
}

func (m *Manager) dispatch(e Event) {
	for _, h := range m.top() {
		h.HandleEvent(e)
	}
}

// KeyDown reports whether the named key is currently down.
func (m *Manager) KeyDown(name string) bool { return m.keys[name] > 0 }

// Mouse returns the pointer position and button levels.
func (m *Manager) Mouse() Mouse { return m.mouse }

func (m *Manager) top() []Handler { return m.contexts[len(m.contexts)-1] }

// NewContext pushes an empty handler context; only handlers joined to the
// top context receive events and notifications. The returned func pops it.
func (m *Manager) NewContext() (leave func()) {
	m.contexts = append(m.contexts, nil)
	depth := len(m.contexts)
	return func() {
		if len(m.contexts) == depth {
			m.contexts = m.contexts[:depth-1]
		}
	}
}

// Join adds h to the top context.
func (m *Manager) Join(h Handler) {
	i := len(m.contexts) - 1
	m.contexts[i] = append(m.contexts[i], h)
}

// Leave removes h from the top context.
func (m *Manager) Leave(h Handler) {
	i := len(m.contexts) - 1
	hs := m.contexts[i]
	for j, other := range hs {
		if other == h {
			m.contexts[i] = append(hs[:j:j], hs[j+1:]...)
			return
		}
	}
}

// RaiseProcess notifies the top context's handlers once per frame.
func (m *Manager) RaiseProcess() {
	for _, h := range m.top() {
		h.Process()
	}
}

// RaiseDraw asks the top context's handlers to redraw.
func (m *Manager) RaiseDraw() {
	for _, h := range m.top() {
		h.Draw()
	}
}

// LockResize defers resize events until every lock is released; the last
// unlock applies the most recent deferred resize.
func (m *Manager) LockResize() (unlock func()) {
	m.resizeLocks++
	var once sync.Once
	return func() {
		once.Do(func() {
			m.resizeLocks--
			if m.resizeLocks == 0 && m.pendingResize != nil {
				e := *m.pendingResize
				m.pendingResize = nil
				m.applyResize(e)
			}
		})
	}
}
