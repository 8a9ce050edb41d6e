package backend

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/recoilless/internal/input/key"
)

var specialKeys = map[tcell.Key]key.Key{
	tcell.KeyEscape:     key.KeyEscape,
	tcell.KeyEnter:      key.KeyEnter,
	tcell.KeyTab:        key.KeyTab,
	tcell.KeyBackspace:  key.KeyBackspace,
	tcell.KeyBackspace2: key.KeyBackspace,
	tcell.KeyDelete:     key.KeyDelete,
	tcell.KeyInsert:     key.KeyInsert,
	tcell.KeyHome:       key.KeyHome,
	tcell.KeyEnd:        key.KeyEnd,
	tcell.KeyPgUp:       key.KeyPageUp,
	tcell.KeyPgDn:       key.KeyPageDown,
	tcell.KeyUp:         key.KeyUp,
	tcell.KeyDown:       key.KeyDown,
	tcell.KeyLeft:       key.KeyLeft,
	tcell.KeyRight:      key.KeyRight,
	tcell.KeyF1:         key.KeyF1,
	tcell.KeyF2:         key.KeyF2,
	tcell.KeyF3:         key.KeyF3,
	tcell.KeyF4:         key.KeyF4,
	tcell.KeyF5:         key.KeyF5,
	tcell.KeyF6:         key.KeyF6,
	tcell.KeyF7:         key.KeyF7,
	tcell.KeyF8:         key.KeyF8,
	tcell.KeyF9:         key.KeyF9,
	tcell.KeyF10:        key.KeyF10,
	tcell.KeyF11:        key.KeyF11,
	tcell.KeyF12:        key.KeyF12,
}

// convertKey normalizes a tcell key press. Control keys, reported either
// as KeyCtrlA..KeyCtrlZ or as raw ASCII control codes, become the letter
// with Ctrl. With Ctrl held a letter is uppercase exactly when Shift is
// set, the same form key.Parse gives "Ctrl+Shift+E". Uppercase runes
// without Ctrl carry Shift, both backspace codes are Backspace and
// Backtab is Shift+Tab. Keys with no editor meaning report false.
func convertKey(k tcell.Key, r rune, m tcell.ModMask) (key.Event, bool) {
	mods := convertMod(m)

	switch {
	case k == tcell.KeyRune:
		if mods.HasCtrl() {
			r = ctrlLetter(r, mods)
		} else if unicode.IsUpper(r) {
			mods |= key.ModShift
		}
		return key.NewRuneEvent(r, mods), true
	case k == tcell.KeyBacktab:
		return key.NewSpecialEvent(key.KeyTab, mods|key.ModShift), true
	case k == tcell.KeyCtrlSpace:
		return key.NewRuneEvent(' ', mods|key.ModCtrl), true
	}

	if sk, ok := specialKeys[k]; ok {
		return key.NewSpecialEvent(sk, mods), true
	}
	mods |= key.ModCtrl
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return key.NewRuneEvent(ctrlLetter(rune('a'+(k-tcell.KeyCtrlA)), mods), mods), true
	}
	if k >= tcell.KeySOH && k <= tcell.KeySUB {
		return key.NewRuneEvent(ctrlLetter(rune('a'+(k-tcell.KeySOH)), mods), mods), true
	}
	return key.Event{}, false
}

func ctrlLetter(r rune, mods key.Modifier) rune {
	if mods.HasShift() {
		return unicode.ToUpper(r)
	}
	return unicode.ToLower(r)
}

func convertMod(m tcell.ModMask) key.Modifier {
	var mods key.Modifier
	if m&tcell.ModShift != 0 {
		mods |= key.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mods |= key.ModCtrl
	}
	if m&tcell.ModAlt != 0 || m&tcell.ModMeta != 0 {
		mods |= key.ModAlt
	}
	return mods
}

// toTcellKey converts a key event back into tcell terms for PostEvent.
func toTcellKey(ev key.Event) (tcell.Key, rune, tcell.ModMask) {
	var m tcell.ModMask
	if ev.Modifiers.HasShift() {
		m |= tcell.ModShift
	}
	if ev.Modifiers.HasCtrl() {
		m |= tcell.ModCtrl
	}
	if ev.Modifiers.HasAlt() {
		m |= tcell.ModAlt
	}

	if ev.Key == key.KeyRune {
		if ev.Modifiers.HasCtrl() {
			if lower := unicode.ToLower(ev.Rune); lower >= 'a' && lower <= 'z' {
				return tcell.KeyCtrlA + tcell.Key(lower-'a'), 0, m
			}
		}
		return tcell.KeyRune, ev.Rune, m
	}
	if ev.Key == key.KeyBackspace {
		return tcell.KeyBackspace, 0, m
	}
	for tk, k := range specialKeys {
		if k == ev.Key {
			return tk, 0, m
		}
	}
	return tcell.KeyRune, 0, m
}
