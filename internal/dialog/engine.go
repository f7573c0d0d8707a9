package dialog

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/justinpbarnett/modal/internal/lang"
	"github.com/justinpbarnett/modal/internal/logging"
	"github.com/justinpbarnett/modal/internal/ui/canvas"
	"github.com/justinpbarnett/modal/internal/ui/clipboard"
	"github.com/justinpbarnett/modal/internal/ui/events"
	"github.com/justinpbarnett/modal/internal/ui/image"
	"github.com/justinpbarnett/modal/internal/ui/layout"
	"github.com/justinpbarnett/modal/internal/ui/widgets"
)

// Display is the screen a dialog draws on.
type Display interface {
	Surface() *canvas.Surface
	// Flip presents the surface.
	Flip()
	// Locked reports that the screen must not be updated.
	Locked() bool
}

// Input is the per-frame view of the keyboard and pointer plus the
// handler stack widgets join. events.Manager implements it.
type Input interface {
	Pump()
	Mouse() events.Mouse
	KeyDown(name string) bool
	NewContext() (leave func())
	Join(h events.Handler)
	RaiseProcess()
	RaiseDraw()
	LockResize() (unlock func())
}

// Engine shows dialogs on one display. It is not safe for concurrent use.
type Engine struct {
	disp    Display
	in      Input
	assets  *image.Loader
	strings *lang.Table
	metrics layout.Metrics
	keys    KeyMap
	pacer   Pacer
	board   clipboard.Board

	menuRows          int
	doubleClickFrames int
	hints             bool

	log *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

func WithAssets(l *image.Loader) EngineOption {
	return func(e *Engine) { e.assets = l }
}

func WithStrings(t *lang.Table) EngineOption {
	return func(e *Engine) { e.strings = t }
}

func WithMetrics(m layout.Metrics) EngineOption {
	return func(e *Engine) { e.metrics = m }
}

func WithKeyMap(k KeyMap) EngineOption {
	return func(e *Engine) { e.keys = k }
}

func WithPacer(p Pacer) EngineOption {
	return func(e *Engine) { e.pacer = p }
}

func WithClipboard(b clipboard.Board) EngineOption {
	return func(e *Engine) { e.board = b }
}

// WithMenuRows caps how many list rows are visible before scrolling.
func WithMenuRows(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.menuRows = n
		}
	}
}

func WithDoubleClickFrames(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.doubleClickFrames = n
		}
	}
}

// WithHints draws key hints along the bottom border.
func WithHints(on bool) EngineOption {
	return func(e *Engine) { e.hints = on }
}

// NewEngine creates an engine. Without options it uses the builtin
// assets, the English string table, cell metrics and a 100 fps pacer.
func NewEngine(disp Display, in Input, opts ...EngineOption) *Engine {
	e := &Engine{
		disp:              disp,
		in:                in,
		metrics:           layout.CellMetrics(),
		keys:              DefaultKeyMap(),
		board:             clipboard.System{},
		menuRows:          widgets.DefaultMaxRows,
		doubleClickFrames: widgets.DefaultDoubleClickFrames,
		log:               logging.ForComponent(logging.CompDialog),
	}
	for _, o := range opts {
		o(e)
	}
	if e.assets == nil {
		e.assets = image.NewLoader(image.Builtin())
	}
	if e.strings == nil {
		t, err := lang.Load(lang.DefaultLanguage, "")
		if err != nil {
			e.log.Warn("loading builtin strings", "error", err)
			t = lang.New(lang.DefaultLanguage, nil)
		}
		e.strings = t
	}
	if e.pacer == nil {
		e.pacer = NewPacer(DefaultFrameRate)
	}
	return e
}

// Display returns the engine's display.
func (e *Engine) Display() Display { return e.disp }

// Input returns the engine's input source.
func (e *Engine) Input() Input { return e.in }

// Assets returns the image loader the engine draws with.
func (e *Engine) Assets() *image.Loader { return e.assets }

// Strings returns the engine's string table.
func (e *Engine) Strings() *lang.Table { return e.strings }

// Keys returns the engine's key map.
func (e *Engine) Keys() KeyMap { return e.keys }

// Pacer returns the frame pacer.
func (e *Engine) Pacer() Pacer { return e.pacer }

// Down reports whether any key of b is held.
func (e *Engine) Down(b key.Binding) bool {
	if !b.Enabled() {
		return false
	}
	for _, k := range b.Keys() {
		if e.in.KeyDown(k) {
			return true
		}
	}
	return false
}
