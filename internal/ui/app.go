// Package ui hosts the dialog engine in a terminal: a bubbletea program
// turns terminal messages into input events and presents the frames the
// engine flips.
package ui

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/justinpbarnett/modal/internal/logging"
	"github.com/justinpbarnett/modal/internal/ui/canvas"
	"github.com/justinpbarnett/modal/internal/ui/events"
)

// Terminal is the display of a running program. Its surface belongs to the
// engine goroutine; Flip hands a rendered copy to the program.
type Terminal struct {
	s      *canvas.Surface
	send   func(tea.Msg)
	locked atomic.Bool
	flips  atomic.Int64
}

func newTerminal(send func(tea.Msg)) *Terminal {
	return &Terminal{s: canvas.NewSurface(0, 0), send: send}
}

func (t *Terminal) Surface() *canvas.Surface { return t.s }

// Flip presents the surface if anything changed since the last flip.
func (t *Terminal) Flip() {
	if t.s.TakeDamage().Empty() {
		return
	}
	t.flips.Add(1)
	t.send(FrameMsg{View: t.s.Render()})
}

// Locked reports whether screen updates are suspended.
func (t *Terminal) Locked() bool { return t.locked.Load() }

// SetLocked suspends or resumes screen updates.
func (t *Terminal) SetLocked(on bool) { t.locked.Store(on) }

// Flips returns how many frames were presented.
func (t *Terminal) Flips() int { return int(t.flips.Load()) }

func (t *Terminal) resize(w, h int) { t.s.Resize(w, h) }

// Session is what a program body gets to draw and read input with.
type Session struct {
	Display *Terminal
	Input   *events.Manager
}

// Body runs on its own goroutine once the terminal size is known.
type Body func(ctx context.Context, s Session) error

// App is the bubbletea model. It feeds input to the event manager and
// shows the most recent frame.
type App struct {
	term  *Terminal
	in    *events.Manager
	body  Body
	ctx   context.Context
	start sync.Once

	focusLock bool
	width     int
	height    int
	view      string
	err       error
}

// AppOption configures an App.
type AppOption func(*App)

// WithFocusLock suspends drawing while the terminal window is unfocused.
// The program must report focus (tea.WithReportFocus).
func WithFocusLock() AppOption {
	return func(a *App) { a.focusLock = true }
}

// NewApp builds the model; send delivers messages to the program running
// it.
func NewApp(ctx context.Context, body Body, send func(tea.Msg), opts ...AppOption) *App {
	a := &App{
		term: newTerminal(send),
		in:   events.NewManager(),
		body: body,
		ctx:  ctx,
	}
	for _, o := range opts {
		o(a)
	}
	a.in.OnResize(a.term.resize)
	return a
}

// Session returns the display and input the body runs against.
func (a *App) Session() Session { return Session{Display: a.term, Input: a.in} }

// Err is the body's error once the program has finished.
func (a *App) Err() error { return a.err }

func (a *App) Init() tea.Cmd { return nil }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		started := false
		a.start.Do(func() {
			a.term.resize(msg.Width, msg.Height)
			started = true
			go a.run()
		})
		if !started {
			a.in.Feed(events.Event{Kind: events.Resize, W: msg.Width, H: msg.Height})
		}
		return a, nil

	case tea.KeyMsg:
		a.in.Feed(events.Event{Kind: events.KeyPress, Key: msg})
		return a, nil

	case tea.MouseMsg:
		if e, ok := mouseEvent(msg); ok {
			a.in.Feed(e)
		}
		return a, nil

	case tea.BlurMsg:
		if a.focusLock {
			a.term.SetLocked(true)
		}
		return a, nil

	case tea.FocusMsg:
		if a.focusLock {
			a.term.SetLocked(false)
		}
		return a, nil

	case FrameMsg:
		a.view = msg.View
		return a, nil

	case DoneMsg:
		a.err = msg.Err
		return a, tea.Quit
	}
	return a, nil
}

func (a *App) run() {
	log := logging.ForComponent(logging.CompTerm)
	err := func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("dialog panicked: %v", r)
			}
		}()
		return a.body(a.ctx, a.Session())
	}()
	if err != nil {
		log.Error("session ended", "error", err)
	}
	a.term.send(DoneMsg{Err: err})
}

func (a *App) View() string {
	if a.view == "" {
		return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, "")
	}
	return a.view
}

func mouseEvent(msg tea.MouseMsg) (events.Event, bool) {
	e := events.Event{X: msg.X, Y: msg.Y}
	switch msg.Button {
	case tea.MouseButtonLeft:
		e.Button = events.Left
	case tea.MouseButtonRight:
		e.Button = events.Right
	}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft && msg.Button != tea.MouseButtonRight {
			return e, false
		}
		e.Kind = events.MousePress
	case tea.MouseActionRelease:
		e.Kind = events.MouseRelease
	case tea.MouseActionMotion:
		e.Kind = events.MouseMove
	default:
		return e, false
	}
	return e, true
}

// Run starts a full-screen program and runs body against it. It returns
// the body's error, or the program's if it failed first.
func Run(ctx context.Context, body Body, mouse bool, opts ...AppOption) error {
	var p *tea.Program
	app := NewApp(ctx, body, func(m tea.Msg) { p.Send(m) }, opts...)

	popts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if mouse {
		popts = append(popts, tea.WithMouseCellMotion())
	}
	if app.focusLock {
		popts = append(popts, tea.WithReportFocus())
	}
	p = tea.NewProgram(app, popts...)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running terminal program: %w", err)
	}
	return app.Err()
}
