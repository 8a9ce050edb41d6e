// Package key defines the key events the editor reacts to.
//
//   - Key: a named key (Escape, End, arrows, ...) or KeyRune for characters
//   - Modifier: the Ctrl, Alt and Shift flags, independent of each other
//   - Event: one key press as delivered by the terminal backend
//
// # Key Specifications
//
// Bindings and user overrides name keys with a small text syntax:
//
//   - Simple keys: "a", "E", "Space", "End", "Esc"
//   - With modifiers: "Ctrl+S", "Ctrl+Alt+Backspace", "Alt+Shift+E"
//   - Vim-style: "<C-s>", "<A-w>", "<C-A-p>", "<Esc>"
package key
