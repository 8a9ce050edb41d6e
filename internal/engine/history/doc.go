// Package history provides undo/redo for the text buffer.
//
// Each undoable edit records a Snapshot of the buffer taken just before
// the edit. Undo swaps the current content for the most recent snapshot
// and keeps the current content for Redo.
//
//	history := NewHistory(1000) // Max 1000 undo entries
//
//	history.Push("delete word", buf.Snapshot())
//	// ... edit ...
//	prev, err := history.Undo(buf.Snapshot())
package history
