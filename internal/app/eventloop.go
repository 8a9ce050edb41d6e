package app

import (
	"github.com/dshills/recoilless/internal/renderer/backend"
)

// eventLoop draws the initial frame and then blocks on the backend,
// fully processing one event before reading the next.
func (app *Application) eventLoop() error {
	app.render()

	for {
		ev := app.backend.PollEvent()
		if err := app.handleBackendEvent(ev); err != nil {
			return err
		}
		app.render()
	}
}

// handleBackendEvent processes a backend event and routes it appropriately.
// Returns ErrQuit if the application should exit.
func (app *Application) handleBackendEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventResize:
		return app.handleResize(ev)
	case backend.EventKey:
		return app.handleKeyEvent(ev)
	default:
		return nil
	}
}

// handleResize processes terminal resize events.
func (app *Application) handleResize(ev backend.Event) error {
	app.log.WithFields(map[string]any{
		"width":  ev.Width,
		"height": ev.Height,
	}).Debug("resize")
	app.renderer.Resize()
	return nil
}

// handleKeyEvent resolves the key against the active mode's bindings and
// dispatches the result. Persistence and buffer failures end the
// session; other action errors are logged and the session continues.
func (app *Application) handleKeyEvent(ev backend.Event) error {
	current := app.modes.Current()
	action := app.keymaps.Resolve(current, ev.Key)

	app.log.WithFields(map[string]any{
		"key":    ev.Key.String(),
		"mode":   current.Name(),
		"action": action.Name,
	}).Debug("key")

	res, err := app.dispatcher.Dispatch(app.state, action)
	app.state = res.State
	if err != nil {
		if op := fatalOp(err); op != "" {
			return NewOperationError(op, app.state.FilePath, err)
		}
		app.log.WithField("error", err.Error()).Warn("action failed")
		return nil
	}

	if res.Quit {
		return ErrQuit
	}
	return nil
}

func (app *Application) render() {
	app.renderer.Render(app.buf, app.state)
}
