package app

import (
	"github.com/dshills/recoilless/internal/config"
	"github.com/dshills/recoilless/internal/input/keymap"
)

// LoadKeymaps builds the binding registry: the default tables, then the
// override file named by [main] keymap, if any. A bad override file is
// logged and skipped, leaving the defaults in place.
func LoadKeymaps(cfg *config.Config, log *Logger) (*keymap.Registry, error) {
	reg := keymap.NewRegistry()
	if err := keymap.LoadDefaults(reg); err != nil {
		return nil, NewComponentError("keymap", "load defaults", err)
	}

	path := cfg.Main().Keymap
	if path == "" {
		return reg, nil
	}

	log = log.WithComponent("keymap").WithField("path", path)
	if err := keymap.NewLoader().LoadAndRegister(path, reg); err != nil {
		log.WithField("error", err.Error()).Warn("keymap overrides skipped")
		return reg, nil
	}
	log.Info("keymap overrides loaded")
	return reg, nil
}
