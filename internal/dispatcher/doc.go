// Package dispatcher executes resolved input actions against the buffer,
// the mode manager and the persistence gate.
//
// The dispatcher receives the current editor.State and an input.Action and
// returns the next state. It keeps no copy of the state itself, so the
// caller decides when a new state takes effect.
//
// # Execution
//
// When an action is dispatched:
//
//  1. Motions cancel the active selection, then move the cursor
//  2. Mutations and forwarded keys run on the buffer and mark it modified
//  3. Undo and redo run on the buffer and leave the modified flag alone
//  4. Save and save-and-exit are delegated to the persist.Gate
//  5. The action label, cursor position and mode are copied into the state
//  6. Metrics are recorded (if enabled)
//
// Paste, undo and redo keep the selection. Command-mode keys without a
// binding leave the state unchanged apart from the cursor refresh.
//
// # Errors
//
// Buffer and persistence failures are returned wrapped in an ActionError.
// The editor loop treats them as fatal.
//
// # Basic Usage
//
//	d := dispatcher.New(buf, modes, gate, dispatcher.DefaultConfig())
//	res, err := d.Dispatch(st, action)
//	if err != nil {
//	    return err
//	}
//	st = res.State
//	if res.Quit {
//	    return nil
//	}
package dispatcher
