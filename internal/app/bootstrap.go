package app

import (
	"os"
	"path/filepath"

	"github.com/dshills/recoilless/internal/config"
	"github.com/dshills/recoilless/internal/dispatcher"
	"github.com/dshills/recoilless/internal/editor"
	"github.com/dshills/recoilless/internal/engine/buffer"
	"github.com/dshills/recoilless/internal/filetype"
	"github.com/dshills/recoilless/internal/input"
	"github.com/dshills/recoilless/internal/input/mode"
	"github.com/dshills/recoilless/internal/persist"
)

// bootstrapper handles component initialization with proper cleanup on failure.
type bootstrapper struct {
	app  *Application
	opts Options
}

// newBootstrapper creates a new bootstrapper for the application.
func newBootstrapper(app *Application, opts Options) *bootstrapper {
	return &bootstrapper{app: app, opts: opts}
}

// bootstrap initializes all components in dependency order.
// On failure, it releases what was already opened.
func (b *bootstrapper) bootstrap() error {
	steps := []func() error{
		b.initConfig,
		b.initLogger,
		b.initDocument,
		b.initModeManager,
		b.initKeymaps,
		b.initDispatcher,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			b.cleanup()
			return err
		}
	}
	return nil
}

// initConfig loads the layered configuration. A broken config file is
// not an error; its problems are logged once the logger exists.
func (b *bootstrapper) initConfig() error {
	var opts []config.Option
	if b.opts.ConfigPath != "" {
		opts = append(opts, config.WithPath(b.opts.ConfigPath))
	}
	cfg := config.New(opts...)
	cfg.Load()

	if b.opts.LogFile != "" {
		if err := cfg.Set("log.file", b.opts.LogFile); err != nil {
			return NewComponentError("config", "set log.file", err)
		}
	}
	if b.opts.LogLevel != "" {
		if err := cfg.Set("log.level", b.opts.LogLevel); err != nil {
			return NewComponentError("config", "set log.level", err)
		}
	}

	b.app.config = cfg
	return nil
}

func (b *bootstrapper) initLogger() error {
	log := b.opts.Logger
	if log == nil {
		lc := b.app.config.Log()
		var err error
		log, err = OpenLogger(lc.File, ParseLogLevel(lc.Level))
		if err != nil {
			return err
		}
	}
	b.app.log = log
	SetLogger(log)

	cfgLog := log.WithComponent("config")
	cfgLog.WithField("path", b.app.config.Path()).Debug("configuration loaded")
	b.app.config.Main()
	for path, err := range b.app.config.ConfigErrors() {
		cfgLog.WithFields(map[string]any{
			"setting": path,
			"error":   err.Error(),
		}).Warn("invalid configuration, using default")
	}
	return nil
}

// initDocument reads the file into the buffer and builds the initial
// editor state.
func (b *bootstrapper) initDocument() error {
	path, err := filepath.Abs(b.opts.Path)
	if err != nil {
		return NewOperationError("open", b.opts.Path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return NewOperationError("open", path, err)
	}
	defer f.Close()

	settings := b.app.config.Main()
	buf, err := buffer.NewFromReader(f,
		buffer.WithTabWidth(settings.TabWidth),
		buffer.WithHardTab(settings.HardTab),
		buffer.WithRegister(buffer.NewRegister(settings.Clipboard)),
	)
	if err != nil {
		return NewOperationError("read", path, err)
	}
	if settings.CursorStart == config.CursorBottom {
		buf.MoveCursor(input.UnitDocument, input.DirBottom)
	}

	size, err := persist.SizeLabel(path)
	if err != nil {
		return NewOperationError("stat", path, err)
	}

	st := editor.New(path, size, filetype.Label(path))
	b.app.buf = buf
	b.app.state = st.WithCursor(buf.Cursor())

	b.app.log.WithFields(map[string]any{
		"path":  path,
		"lines": buf.LineCount(),
		"type":  st.FileType,
	}).Info("file opened")
	return nil
}

func (b *bootstrapper) initModeManager() error {
	b.app.modes = mode.NewManager()

	log := b.app.log.WithComponent("mode")
	b.app.modes.OnChange(func(from, to mode.Mode) {
		log.WithFields(map[string]any{
			"from":   from.Name(),
			"to":     to.Name(),
			"cursor": b.app.modes.CursorStyle().String(),
		}).Debug("mode changed")
	})
	return nil
}

func (b *bootstrapper) initKeymaps() error {
	reg, err := LoadKeymaps(b.app.config, b.app.log)
	if err != nil {
		return err
	}
	b.app.keymaps = reg
	return nil
}

func (b *bootstrapper) initDispatcher() error {
	b.app.gate = persist.New(
		persist.WithLogger(b.app.log.WithComponent("persist").Entry()),
	)

	d := dispatcher.New(b.app.buf, b.app.modes, b.app.gate, dispatcher.DefaultConfig().WithMetrics())
	d.SetLogger(b.app.log.WithComponent("dispatcher").Entry())
	b.app.dispatcher = d
	return nil
}

func (b *bootstrapper) cleanup() {
	if b.app.log != nil && b.opts.Logger == nil {
		_ = b.app.log.Close()
		SetLogger(nil)
	}
}
