package keymap

import (
	"fmt"
	"unicode"

	"github.com/dshills/recoilless/internal/input"
	"github.com/dshills/recoilless/internal/input/key"
)

// Binding represents a single key-to-action mapping.
type Binding struct {
	// Keys is the key that triggers this binding.
	// Formats: "j", "End", "Ctrl+Alt+S", "<A-w>"
	Keys string

	// Ignore lists modifier flags the binding does not constrain.
	// Flags named in Keys must be pressed; flags neither named nor
	// ignored must be released.
	Ignore key.Modifier

	// Action is executed when the binding matches.
	Action input.Action

	// Description provides documentation for the binding.
	Description string

	// Category groups bindings for display purposes.
	Category string
}

// NewBinding creates a binding with exact modifier matching.
func NewBinding(keys string, action input.Action) Binding {
	return Binding{Keys: keys, Action: action}
}

// WithIgnore sets the unconstrained modifier flags.
func (b Binding) WithIgnore(mods key.Modifier) Binding {
	b.Ignore = mods
	return b
}

// WithDescription sets the description for this binding.
func (b Binding) WithDescription(desc string) Binding {
	b.Description = desc
	return b
}

// WithCategory sets the category for this binding.
func (b Binding) WithCategory(category string) Binding {
	b.Category = category
	return b
}

// Pattern matches key events by key identity and constrained modifiers.
type Pattern struct {
	Key  key.Key
	Rune rune

	// Mods holds the required state of the flags in Mask.
	Mods key.Modifier

	// Mask holds the constrained flags. The rest are wildcards.
	Mask key.Modifier
}

// Compile parses the binding's keys into a Pattern.
func (b Binding) Compile() (Pattern, error) {
	ev, err := key.Parse(b.Keys)
	if err != nil {
		return Pattern{}, fmt.Errorf("binding %q: %w", b.Keys, err)
	}
	mask := key.ModAll &^ b.Ignore
	return Pattern{
		Key:  ev.Key,
		Rune: ev.Rune,
		Mods: ev.Modifiers & mask,
		Mask: mask,
	}, nil
}

// Matches reports whether ev has the pattern's key and agrees with it on
// every constrained flag. When Shift is unconstrained a letter matches in
// either case.
func (p Pattern) Matches(ev key.Event) bool {
	if ev.Key != p.Key {
		return false
	}
	if p.Key == key.KeyRune && ev.Rune != p.Rune {
		if p.Mask.HasShift() || unicode.ToLower(ev.Rune) != unicode.ToLower(p.Rune) {
			return false
		}
	}
	return ev.Modifiers&p.Mask == p.Mods
}

// String renders the pattern, marking wildcard flags with "*".
func (p Pattern) String() string {
	s := key.Event{Key: p.Key, Rune: p.Rune, Modifiers: p.Mods}.String()
	if wild := key.ModAll &^ p.Mask; wild != key.ModNone {
		s += " (any " + wild.String() + ")"
	}
	return s
}

// ParsedBinding is a binding with a compiled pattern.
type ParsedBinding struct {
	Binding
	Pattern Pattern
}

// Match checks if this binding's pattern matches the event.
func (pb *ParsedBinding) Match(ev key.Event) bool {
	if pb == nil {
		return false
	}
	return pb.Pattern.Matches(ev)
}

// BindingCategory represents a category of bindings for display.
type BindingCategory struct {
	Name     string
	Bindings []Binding
}

// GroupByCategory groups bindings by their category.
func GroupByCategory(bindings []Binding) []BindingCategory {
	categoryMap := make(map[string][]Binding)
	order := make([]string, 0)

	for _, b := range bindings {
		cat := b.Category
		if cat == "" {
			cat = "Other"
		}
		if _, exists := categoryMap[cat]; !exists {
			order = append(order, cat)
		}
		categoryMap[cat] = append(categoryMap[cat], b)
	}

	result := make([]BindingCategory, 0, len(order))
	for _, name := range order {
		result = append(result, BindingCategory{
			Name:     name,
			Bindings: categoryMap[name],
		})
	}
	return result
}
