// Package input defines the actions that key events resolve to.
//
// A key event is resolved by the keymap package against the binding
// table of the current mode. The result is an Action: a tagged variant
// whose Kind selects which operands apply.
//
//   - KindModeChange: switch to Insert or Command mode
//   - KindMotion: move the cursor by a Unit in a Direction
//   - KindMutation: delete, open a line, cut or paste
//   - KindHistory: undo or redo
//   - KindBufferEdit: forward the raw key to the buffer (Insert mode)
//   - KindPersist: save, or save and exit
//   - KindTerminate, KindSelectAll, KindCancelSelection
//   - KindUnhandled: a Command-mode key with no binding
//
// The dispatcher package executes actions.
package input
