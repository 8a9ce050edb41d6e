// Package editor holds the state the input engine owns between key events.
package editor

import "github.com/dshills/recoilless/internal/input/mode"

// State is the editor state threaded through the dispatcher. It is a plain
// value: each dispatch returns the next State rather than mutating shared
// fields.
type State struct {
	// Mode is the current editing mode.
	Mode mode.Mode

	// Modified is true when the buffer differs from the last saved content.
	Modified bool

	// LastCommand is the label of the last labelled command, e.g. "| UNDO".
	LastCommand string

	// Line and Column are the 0-indexed cursor position.
	Line   int
	Column int

	// FilePath is the absolute path of the edited file.
	FilePath string

	// FileSize is the size label, e.g. "120 Bytes Saved".
	FileSize string

	// FileType is the file type label, e.g. "Go Source File".
	FileType string
}

// New returns the initial state for a file. The session starts in Command
// mode with an unmodified buffer.
func New(path, sizeLabel, typeLabel string) State {
	return State{
		Mode:     mode.Command,
		FilePath: path,
		FileSize: sizeLabel,
		FileType: typeLabel,
	}
}

// WithCursor returns a copy of s with the cursor position replaced.
func (s State) WithCursor(line, col int) State {
	s.Line = line
	s.Column = col
	return s
}

// WithLabel returns a copy of s with LastCommand set to label. An empty
// label leaves the previous one in place.
func (s State) WithLabel(label string) State {
	if label != "" {
		s.LastCommand = label
	}
	return s
}
