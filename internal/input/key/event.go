package key

import (
	"strings"
	"unicode"
)

// Event represents a single key press.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(key Key, mods Modifier) Event {
	return Event{Key: key, Modifiers: mods}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsChar returns true if this is a printable character without Ctrl or Alt.
func (e Event) IsChar() bool {
	return e.IsRune() && unicode.IsPrint(e.Rune) && !e.Modifiers.Has(ModCtrl|ModAlt)
}

// IsModified returns true if any modifier is pressed.
// For character events Shift alone is not considered modified.
func (e Event) IsModified() bool {
	if e.IsRune() {
		return e.Modifiers.Has(ModCtrl | ModAlt)
	}
	return e.Modifiers != ModNone
}

// String returns a canonical, parseable representation such as
// "a", "Space", "Ctrl+S", "Ctrl+Alt+Backspace" or "Alt+Shift+E".
func (e Event) String() string {
	var name string
	switch e.Key {
	case KeyRune:
		if e.Rune == ' ' {
			name = "Space"
		} else {
			name = string(e.Rune)
		}
	default:
		name = e.Key.String()
	}

	mods := e.Modifiers
	if e.IsRune() && unicode.IsLetter(e.Rune) {
		if mods == ModShift {
			// Shift is implied by the character itself.
			return name
		}
		if mods != ModNone {
			name = string(unicode.ToUpper(e.Rune))
		}
	}
	if mods == ModNone {
		return name
	}
	return mods.String() + "+" + name
}

// Equals returns true if two events represent the same key press.
func (e Event) Equals(other Event) bool {
	return e.Key == other.Key &&
		e.Rune == other.Rune &&
		e.Modifiers == other.Modifiers
}

// Matches checks if this event matches a key specification string.
func (e Event) Matches(spec string) bool {
	parsed, err := Parse(spec)
	if err != nil {
		return false
	}
	return e.Equals(parsed)
}

// IsEscape returns true if this is the Escape key (with no modifiers).
func (e Event) IsEscape() bool {
	return e.Key == KeyEscape && e.Modifiers == ModNone
}

// WithModifier returns a copy with the specified modifier added.
func (e Event) WithModifier(mod Modifier) Event {
	e.Modifiers = e.Modifiers.With(mod)
	return e
}

// Label returns the key as shown in the key reference, e.g. "Ctrl + Alt + S".
func (e Event) Label() string {
	return strings.ReplaceAll(e.String(), "+", " + ")
}
