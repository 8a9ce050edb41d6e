package keymap

import (
	"fmt"
	"sync"

	"github.com/dshills/recoilless/internal/input"
	"github.com/dshills/recoilless/internal/input/key"
	"github.com/dshills/recoilless/internal/input/mode"
)

// Registry holds the keymaps of every mode and resolves key events.
// Within a mode, keymaps are searched in order and the first matching
// binding wins.
type Registry struct {
	mu sync.RWMutex

	// keymaps holds each mode's keymaps in precedence order.
	keymaps map[mode.Mode][]*ParsedKeymap
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		keymaps: make(map[mode.Mode][]*ParsedKeymap),
	}
}

// NewDefaultRegistry creates a registry loaded with the default keymaps.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	if err := LoadDefaults(r); err != nil {
		panic("default keymaps: " + err.Error())
	}
	return r
}

// Register adds a keymap below the keymaps already registered for its mode.
// A keymap with the same name is replaced in place.
func (r *Registry) Register(km *Keymap) error {
	return r.register(km, false)
}

// RegisterOverride adds a keymap above the keymaps already registered for
// its mode. A keymap with the same name is removed first.
func (r *Registry) RegisterOverride(km *Keymap) error {
	return r.register(km, true)
}

func (r *Registry) register(km *Keymap, front bool) error {
	if km == nil {
		return fmt.Errorf("cannot register nil keymap")
	}
	if !km.Mode.Valid() {
		return fmt.Errorf("keymap %q: unknown mode %d", km.Name, km.Mode)
	}

	parsed, err := km.Parse()
	if err != nil {
		return fmt.Errorf("parsing keymap %q: %w", km.Name, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.keymaps[km.Mode]
	for i, existing := range list {
		if existing.Name != km.Name {
			continue
		}
		if !front {
			list[i] = parsed
			return nil
		}
		list = append(list[:i:i], list[i+1:]...)
		break
	}

	if front {
		list = append([]*ParsedKeymap{parsed}, list...)
	} else {
		list = append(list, parsed)
	}
	r.keymaps[km.Mode] = list
	return nil
}

// Unregister removes a keymap from every mode.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for m, list := range r.keymaps {
		kept := list[:0:0]
		for _, km := range list {
			if km.Name != name {
				kept = append(kept, km)
			}
		}
		r.keymaps[m] = kept
	}
}

// Get returns a keymap by name, or nil.
func (r *Registry) Get(name string) *ParsedKeymap {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, list := range r.keymaps {
		for _, km := range list {
			if km.Name == name {
				return km
			}
		}
	}
	return nil
}

// Lookup returns the first binding of mode m matching ev, or nil.
func (r *Registry) Lookup(m mode.Mode, ev key.Event) *Binding {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, km := range r.keymaps[m] {
		for i := range km.ParsedBindings {
			pb := &km.ParsedBindings[i]
			if pb.Match(ev) {
				b := pb.Binding
				return &b
			}
		}
	}
	return nil
}

// Resolve returns the action for ev in mode m. Keys without a binding
// resolve to a buffer edit in Insert mode and to Unhandled in Command mode.
func (r *Registry) Resolve(m mode.Mode, ev key.Event) input.Action {
	if b := r.Lookup(m, ev); b != nil {
		return b.Action.WithEvent(ev)
	}
	if m == mode.Insert {
		return input.BufferEdit(ev)
	}
	return input.Unhandled(ev)
}

// Bindings returns the bindings of mode m in precedence order.
func (r *Registry) Bindings(m mode.Mode) []Binding {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Binding
	for _, km := range r.keymaps[m] {
		for _, pb := range km.ParsedBindings {
			out = append(out, pb.Binding)
		}
	}
	return out
}

// Keymaps returns the keymaps of mode m in precedence order.
func (r *Registry) Keymaps(m mode.Mode) []*ParsedKeymap {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*ParsedKeymap, len(r.keymaps[m]))
	copy(out, r.keymaps[m])
	return out
}
