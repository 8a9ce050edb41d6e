// Package keymap maps key events to actions for each editing mode.
//
// # Key Concepts
//
// Binding: a key specification, the modifier flags it ignores, and the
// action it triggers.
//
// Keymap: an ordered list of bindings for one mode.
//
// Registry: the keymaps of every mode, searched in order. The first
// binding whose key matches and whose constrained modifiers agree with
// the event wins.
//
// # Modifier Matching
//
// A binding constrains every modifier flag except those in Ignore:
//
//	{Keys: "Ctrl+S", Ignore: key.ModShift}  // Ctrl on, Alt off, Shift any
//	{Keys: "h", Ignore: key.ModAll}         // h with any modifiers
//	{Keys: "Ctrl+E"}                        // exactly Ctrl
//
// # Unbound Keys
//
// Resolve falls back to a buffer edit in Insert mode and to an Unhandled
// action in Command mode.
//
// # Usage
//
//	registry := keymap.NewDefaultRegistry()
//	action := registry.Resolve(mode.Command, ev)
package keymap
