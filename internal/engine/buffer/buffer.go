package buffer

import (
	"io"
	"strings"

	"github.com/dshills/recoilless/internal/engine/history"
)

// Relative selects where InsertNewline opens the new line.
type Relative uint8

const (
	// Below opens a line after the cursor line.
	Below Relative = iota
	// Above opens a line before the cursor line.
	Above
)

// Buffer is an editable sequence of lines with a cursor.
type Buffer struct {
	lines  [][]rune
	cursor Point

	// anchor is the fixed end of the selection; nil when none is active.
	anchor *Point

	history  *history.History
	yank     Register
	hardTab  bool
	tabWidth int
	maxUndo  int
}

// New creates a buffer holding one empty line.
func New(opts ...Option) *Buffer {
	b := &Buffer{
		lines:    [][]rune{{}},
		yank:     &MemoryRegister{},
		tabWidth: DefaultTabWidth,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.history = history.NewHistory(b.maxUndo)
	return b
}

// NewFromString creates a buffer with initial content and the cursor at
// the start.
func NewFromString(s string, opts ...Option) *Buffer {
	b := New(opts...)
	b.setText(s)
	return b
}

// NewFromReader creates a buffer from an io.Reader.
func NewFromReader(r io.Reader, opts ...Option) (*Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return NewFromString(string(data), opts...), nil
}

func (b *Buffer) setText(s string) {
	s = strings.TrimSuffix(s, "\n")
	parts := strings.Split(s, "\n")
	b.lines = make([][]rune, len(parts))
	for i, p := range parts {
		b.lines[i] = []rune(p)
	}
	b.cursor = Point{}
	b.anchor = nil
}

// Cursor returns the cursor position.
func (b *Buffer) Cursor() (line, col int) {
	return b.cursor.Line, b.cursor.Column
}

// SetTab configures Tab handling for Insert-mode input.
func (b *Buffer) SetTab(hard bool, width int) {
	b.hardTab = hard
	if width > 0 {
		b.tabWidth = width
	}
}

// TabWidth returns the configured tab width.
func (b *Buffer) TabWidth() int {
	return b.tabWidth
}

// LineCount returns the number of lines. It is never zero.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Line returns line i, or "" when out of range.
func (b *Buffer) Line(i int) string {
	if i < 0 || i >= len(b.lines) {
		return ""
	}
	return string(b.lines[i])
}

// Lines returns a copy of every line.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	for i, l := range b.lines {
		out[i] = string(l)
	}
	return out
}

// Text returns the lines joined with line feeds.
func (b *Buffer) Text() string {
	return strings.Join(b.Lines(), "\n")
}

// Snapshot captures the content and cursor for undo.
func (b *Buffer) Snapshot() history.Snapshot {
	return history.Snapshot{
		Lines:  b.Lines(),
		Line:   b.cursor.Line,
		Column: b.cursor.Column,
	}
}

func (b *Buffer) restore(s history.Snapshot) {
	b.lines = make([][]rune, max(len(s.Lines), 1))
	for i := range b.lines {
		if i < len(s.Lines) {
			b.lines[i] = []rune(s.Lines[i])
		} else {
			b.lines[i] = []rune{}
		}
	}
	b.anchor = nil
	b.setCursor(Point{Line: s.Line, Column: s.Column})
}

// record saves the current state before an edit.
func (b *Buffer) record(desc string) {
	b.history.Push(desc, b.Snapshot())
}

// setCursor moves the cursor, clamping it into the buffer.
func (b *Buffer) setCursor(p Point) {
	p.Line = min(max(p.Line, 0), len(b.lines)-1)
	p.Column = min(max(p.Column, 0), len(b.lines[p.Line]))
	b.cursor = p
}

func (b *Buffer) lastPoint() Point {
	last := len(b.lines) - 1
	return Point{Line: last, Column: len(b.lines[last])}
}

// Undo restores the state before the last edit.
// Returns false when there is nothing to undo.
func (b *Buffer) Undo() bool {
	prev, err := b.history.Undo(b.Snapshot())
	if err != nil {
		return false
	}
	b.restore(prev)
	return true
}

// Redo reapplies the last undone edit.
// Returns false when there is nothing to redo.
func (b *Buffer) Redo() bool {
	next, err := b.history.Redo(b.Snapshot())
	if err != nil {
		return false
	}
	b.restore(next)
	return true
}

// CanUndo returns true if undo is available.
func (b *Buffer) CanUndo() bool {
	return b.history.CanUndo()
}
