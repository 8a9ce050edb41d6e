package history

import (
	"slices"
	"time"
)

// Snapshot is a restorable copy of buffer content and cursor position.
type Snapshot struct {
	Lines  []string
	Line   int
	Column int
}

// Clone returns a snapshot that shares no storage with s.
func (s Snapshot) Clone() Snapshot {
	s.Lines = slices.Clone(s.Lines)
	return s
}

// Equal reports whether two snapshots have the same content and cursor.
func (s Snapshot) Equal(other Snapshot) bool {
	return s.Line == other.Line && s.Column == other.Column && slices.Equal(s.Lines, other.Lines)
}

// OperationInfo provides read-only info about an undo entry.
type OperationInfo struct {
	Description string    // Human-readable description
	Timestamp   time.Time // When the edit occurred
}
