// Package mode provides the two editing modes and the Manager that
// switches between them.
//
//   - Command ("Ovr"): keys are commands; the cursor is a block
//   - Insert ("Ins"): keys are text; the cursor is a bar
//
// # Mode Lifecycle
//
//	┌─────────┐     i     ┌─────────┐
//	│ Command │ ────────▶ │ Insert  │
//	└─────────┘           └─────────┘
//	     ▲        Esc          │
//	     └─────────────────────┘
//
// Switching to the mode already active is a no-op and does not notify
// change callbacks.
package mode
