// Package app wires the editor components together and runs the event
// loop for one editing session.
package app

import (
	"errors"
	"runtime/debug"
	"sync/atomic"

	"github.com/dshills/recoilless/internal/config"
	"github.com/dshills/recoilless/internal/dispatcher"
	"github.com/dshills/recoilless/internal/editor"
	"github.com/dshills/recoilless/internal/engine/buffer"
	"github.com/dshills/recoilless/internal/input/keymap"
	"github.com/dshills/recoilless/internal/input/mode"
	"github.com/dshills/recoilless/internal/persist"
	"github.com/dshills/recoilless/internal/renderer"
	"github.com/dshills/recoilless/internal/renderer/backend"
)

// Application owns the components of one editing session.
type Application struct {
	config *config.Config
	log    *Logger

	buf        *buffer.Buffer
	modes      *mode.Manager
	keymaps    *keymap.Registry
	gate       *persist.Gate
	dispatcher *dispatcher.Dispatcher

	backend  backend.Backend
	renderer *renderer.Renderer

	state   editor.State
	running atomic.Bool

	opts Options
}

// Options configures the application.
type Options struct {
	// Path is the file to edit. It is made absolute during startup.
	Path string

	// ConfigPath overrides the configuration file location.
	ConfigPath string

	// LogFile and LogLevel override the [log] configuration section.
	LogFile  string
	LogLevel string

	// Logger replaces the logger built from configuration.
	Logger *Logger
}

// New creates an Application for opts.Path. The file must exist.
func New(opts Options) (*Application, error) {
	app := &Application{opts: opts}

	if err := newBootstrapper(app, opts).bootstrap(); err != nil {
		return nil, err
	}
	return app, nil
}

// SetBackend sets the terminal backend. Without one, Run opens the
// terminal itself.
func (app *Application) SetBackend(b backend.Backend) error {
	if app.running.Load() {
		return ErrAlreadyRunning
	}
	app.backend = b
	return nil
}

// Run takes over the terminal and processes events until the session
// ends. A normal quit returns nil. The terminal is restored on every
// return path, including panics.
func (app *Application) Run() (err error) {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if app.backend == nil {
		term, err := backend.NewTerminal()
		if err != nil {
			return NewComponentError("backend", "create", err)
		}
		app.backend = term
	}

	if err := app.backend.Init(); err != nil {
		return NewComponentError("backend", "init", err)
	}
	defer app.backend.Shutdown()

	defer func() {
		if r := recover(); r != nil {
			perr := NewRecoveredPanicError(r, string(debug.Stack()))
			app.log.WithField("stack", perr.Stack).Error("event loop panicked: %v", r)
			err = perr
		}
	}()

	settings := app.config.Main()
	app.renderer = renderer.New(app.backend, renderer.Options{
		LineNumbers: settings.LineNumbers,
		TabWidth:    settings.TabWidth,
		Title:       app.state.FilePath,
	})
	app.renderer.Resize()

	app.log.Info("session started")
	err = app.eventLoop()
	app.logSummary()

	if errors.Is(err, ErrQuit) {
		app.log.Info("session ended")
		return nil
	}
	if err != nil {
		app.log.WithField("error", err.Error()).Error("session aborted")
	}
	return err
}

// Close releases resources held after Run returns. A logger passed in
// Options is left open.
func (app *Application) Close() error {
	if app.opts.Logger != nil {
		return nil
	}
	return app.log.Close()
}

// State returns the current editor state.
func (app *Application) State() editor.State {
	return app.state
}

// Buffer returns the text buffer.
func (app *Application) Buffer() *buffer.Buffer {
	return app.buf
}

// Config returns the configuration.
func (app *Application) Config() *config.Config {
	return app.config
}

// ModeManager returns the mode controller.
func (app *Application) ModeManager() *mode.Manager {
	return app.modes
}

// Keymaps returns the binding registry.
func (app *Application) Keymaps() *keymap.Registry {
	return app.keymaps
}

// Dispatcher returns the action dispatcher.
func (app *Application) Dispatcher() *dispatcher.Dispatcher {
	return app.dispatcher
}

// IsRunning reports whether Run is executing.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

func (app *Application) logSummary() {
	m := app.dispatcher.Metrics()
	if m == nil {
		return
	}
	fields := map[string]any{
		"dispatches": m.TotalDispatches(),
		"errors":     m.TotalErrors(),
	}
	if top := m.TopActions(1); len(top) > 0 {
		fields["top_action"] = top[0].Name
	}
	app.log.WithFields(fields).Debug("dispatch summary")
}
