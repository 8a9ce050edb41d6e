package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Parse parses a key specification string into an Event.
//
// Supported formats:
//   - Single character: "a", "E", "1", "@"
//   - Named keys: "Enter", "Esc", "Tab", "Backspace", "Space", "End"
//   - With modifiers: "Ctrl+S", "Ctrl+Alt+Backspace", "Alt+Shift+E"
//   - Vim-style: "<C-s>", "<A-w>", "<C-A-p>", "<CR>", "<Esc>"
//
// Letters are normalized so that Parse agrees with what the terminal
// delivers: an uppercase letter carries Shift, and "Shift+e" becomes "E".
func Parse(spec string) (Event, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Event{}, ErrEmptySpec
	}

	if len(spec) > 2 && strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") {
		return parseVimStyle(spec[1 : len(spec)-1])
	}

	// "+" on its own, or as the final key ("Ctrl++"), is a character.
	if strings.Contains(spec, "+") && spec != "+" {
		return parseModifierStyle(spec)
	}

	return parseKeyWithModifiers(spec, ModNone)
}

// parseVimStyle parses Vim-style notation like "C-s", "A-w", "CR", "Esc"
func parseVimStyle(inner string) (Event, error) {
	inner = strings.TrimSpace(inner)
	parts := strings.Split(inner, "-")

	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		switch strings.ToLower(strings.TrimSpace(p)) {
		case "c":
			mods = mods.With(ModCtrl)
		case "a", "m":
			mods = mods.With(ModAlt)
		case "s":
			mods = mods.With(ModShift)
		default:
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
	}
	return parseKeyWithModifiers(parts[len(parts)-1], mods)
}

// parseModifierStyle parses "Ctrl+S" style notation
func parseModifierStyle(spec string) (Event, error) {
	keyPart := spec[strings.LastIndex(spec, "+")+1:]
	modPart := spec[:strings.LastIndex(spec, "+")]
	if keyPart == "" {
		// Trailing "+" is the key itself: "Ctrl++".
		if !strings.HasSuffix(modPart, "+") {
			return Event{}, fmt.Errorf("%w: missing key in %q", ErrInvalidSpec, spec)
		}
		keyPart = "+"
		modPart = strings.TrimSuffix(modPart, "+")
	}

	var mods Modifier
	for _, p := range strings.Split(modPart, "+") {
		mod := ModifierFromName(p)
		if mod == ModNone {
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods = mods.With(mod)
	}
	return parseKeyWithModifiers(keyPart, mods)
}

// parseKeyWithModifiers parses a key part with already-known modifiers
func parseKeyWithModifiers(keyPart string, mods Modifier) (Event, error) {
	keyPart = strings.TrimSpace(keyPart)
	if keyPart == "" {
		return Event{}, ErrInvalidSpec
	}

	switch strings.ToLower(keyPart) {
	case "space":
		return NewRuneEvent(' ', mods), nil
	case "lt":
		return NewRuneEvent('<', mods), nil
	case "gt":
		return NewRuneEvent('>', mods), nil
	case "bar":
		return NewRuneEvent('|', mods), nil
	}

	runes := []rune(keyPart)
	if len(runes) == 1 {
		return normalizeRune(runes[0], mods), nil
	}

	if k := KeyFromName(keyPart); k != KeyNone {
		return NewSpecialEvent(k, mods), nil
	}

	return Event{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, keyPart)
}

// normalizeRune folds letter case and Shift together so that Shift is set
// exactly when the letter is uppercase. A bare "E" means Shift+e, while
// "Ctrl+E" means Ctrl+e unless Shift is named explicitly.
func normalizeRune(r rune, mods Modifier) Event {
	if !unicode.IsLetter(r) {
		return NewRuneEvent(r, mods)
	}
	switch {
	case mods.HasShift():
		return NewRuneEvent(unicode.ToUpper(r), mods)
	case mods == ModNone && unicode.IsUpper(r):
		return NewRuneEvent(r, ModShift)
	default:
		return NewRuneEvent(unicode.ToLower(r), mods)
	}
}

// MustParse parses a key specification and panics on error.
// Use only for known-valid specs in initialization code.
func MustParse(spec string) Event {
	event, err := Parse(spec)
	if err != nil {
		panic("invalid key specification: " + spec + ": " + err.Error())
	}
	return event
}

// NormalizeSpec parses and re-formats a key specification to its canonical form.
func NormalizeSpec(spec string) (string, error) {
	event, err := Parse(spec)
	if err != nil {
		return "", err
	}
	return event.String(), nil
}
