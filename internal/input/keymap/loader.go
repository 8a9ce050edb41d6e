package keymap

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dshills/recoilless/internal/input/key"
	"github.com/dshills/recoilless/internal/input/mode"
)

// ErrUnknownAction is returned for override bindings naming an action
// outside the built-in vocabulary.
var ErrUnknownAction = errors.New("unknown action")

// Loader loads user binding overrides from YAML.
//
//	bindings:
//	  - mode: command
//	    keys: Ctrl+D
//	    action: edit.deleteWord
//	    label: "| DEL-WORD"
//	  - mode: command
//	    keys: x
//	    ignore: Shift
//	    action: edit.deleteChar
type Loader struct{}

// NewLoader creates a loader validating against the built-in actions.
func NewLoader() *Loader {
	return &Loader{}
}

// LoadFile loads override keymaps from path. A missing file yields no
// keymaps and no error.
func (l *Loader) LoadFile(path string) ([]*Keymap, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening keymap file: %w", err)
	}
	defer f.Close()

	kms, err := l.LoadReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return kms, nil
}

// LoadReader decodes overrides and returns one keymap per mode that has
// any, named "user-<mode>". Every binding is validated; the first invalid
// one fails the whole load.
func (l *Loader) LoadReader(r io.Reader) ([]*Keymap, error) {
	var config keymapConfig
	if err := yaml.NewDecoder(r).Decode(&config); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decoding keymap: %w", err)
	}

	actions := Actions()
	byMode := make(map[mode.Mode]*Keymap)

	for i, bc := range config.Bindings {
		m, err := mode.FromName(strings.ToLower(strings.TrimSpace(bc.Mode)))
		if err != nil {
			return nil, fmt.Errorf("binding %d: %w", i, err)
		}

		action, ok := actions[bc.Action]
		if !ok {
			return nil, fmt.Errorf("binding %d (%s): %w %q", i, bc.Keys, ErrUnknownAction, bc.Action)
		}
		if bc.Label != nil {
			action.Label = *bc.Label
		}

		b := NewBinding(bc.Keys, action).
			WithIgnore(key.ParseModifiers(bc.Ignore)).
			WithDescription(bc.Description).
			WithCategory("User")
		if _, err := b.Compile(); err != nil {
			return nil, fmt.Errorf("binding %d: %w", i, err)
		}

		km, ok := byMode[m]
		if !ok {
			km = NewKeymap("user-"+m.Name(), m).WithSource("user")
			byMode[m] = km
		}
		km.AddBinding(b)
	}

	var out []*Keymap
	for _, m := range mode.All() {
		if km, ok := byMode[m]; ok {
			out = append(out, km)
		}
	}
	return out, nil
}

// LoadAndRegister loads overrides from path and registers them above the
// existing keymaps. Nothing is registered if loading fails.
func (l *Loader) LoadAndRegister(path string, registry *Registry) error {
	keymaps, err := l.LoadFile(path)
	if err != nil {
		return err
	}

	for _, km := range keymaps {
		if err := registry.RegisterOverride(km); err != nil {
			return fmt.Errorf("registering keymap %q: %w", km.Name, err)
		}
	}
	return nil
}

// keymapConfig is the YAML structure for keymap files.
type keymapConfig struct {
	Bindings []bindingConfig `yaml:"bindings"`
}

type bindingConfig struct {
	Mode        string  `yaml:"mode"`
	Keys        string  `yaml:"keys"`
	Ignore      string  `yaml:"ignore,omitempty"`
	Action      string  `yaml:"action"`
	Label       *string `yaml:"label,omitempty"`
	Description string  `yaml:"description,omitempty"`
}
