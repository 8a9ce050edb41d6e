package keymap

import (
	"fmt"

	"github.com/dshills/recoilless/internal/input/mode"
)

// Keymap holds the ordered key bindings for one mode.
// Earlier bindings take precedence.
type Keymap struct {
	// Name is the keymap identifier.
	Name string

	// Mode is the mode this keymap applies to.
	Mode mode.Mode

	// Bindings are the key-to-action mappings in priority order.
	Bindings []Binding

	// Source indicates where this keymap was defined.
	// Examples: "default", "user"
	Source string
}

// NewKeymap creates a new keymap with the given name.
func NewKeymap(name string, m mode.Mode) *Keymap {
	return &Keymap{
		Name:     name,
		Mode:     m,
		Bindings: make([]Binding, 0),
	}
}

// WithSource sets the source for this keymap.
func (k *Keymap) WithSource(source string) *Keymap {
	k.Source = source
	return k
}

// AddBinding appends a binding at the lowest priority.
func (k *Keymap) AddBinding(binding Binding) *Keymap {
	k.Bindings = append(k.Bindings, binding)
	return k
}

// Validate checks that all bindings in the keymap are valid.
func (k *Keymap) Validate() error {
	for i, b := range k.Bindings {
		if b.Keys == "" {
			return fmt.Errorf("binding %d: empty keys", i)
		}
		if b.Action.Name == "" {
			return fmt.Errorf("binding %d (%s): empty action", i, b.Keys)
		}
		if _, err := b.Compile(); err != nil {
			return fmt.Errorf("binding %d: %w", i, err)
		}
	}
	return nil
}

// ParsedKeymap is a keymap with compiled patterns.
type ParsedKeymap struct {
	*Keymap
	ParsedBindings []ParsedBinding
}

// Parse compiles all bindings in the keymap.
func (k *Keymap) Parse() (*ParsedKeymap, error) {
	parsed := &ParsedKeymap{
		Keymap:         k,
		ParsedBindings: make([]ParsedBinding, 0, len(k.Bindings)),
	}

	for _, b := range k.Bindings {
		p, err := b.Compile()
		if err != nil {
			return nil, fmt.Errorf("keymap %q: %w", k.Name, err)
		}
		parsed.ParsedBindings = append(parsed.ParsedBindings, ParsedBinding{
			Binding: b,
			Pattern: p,
		})
	}

	return parsed, nil
}

// Clone creates a copy of the keymap.
func (k *Keymap) Clone() *Keymap {
	clone := &Keymap{
		Name:     k.Name,
		Mode:     k.Mode,
		Source:   k.Source,
		Bindings: make([]Binding, len(k.Bindings)),
	}
	copy(clone.Bindings, k.Bindings)
	return clone
}
