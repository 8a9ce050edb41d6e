package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dshills/recoilless/internal/input/mode"
)

func TestNew(t *testing.T) {
	st := New("/tmp/a.go", "12 Bytes Saved", "Go Source File")

	assert.Equal(t, mode.Command, st.Mode)
	assert.False(t, st.Modified)
	assert.Empty(t, st.LastCommand)
	assert.Equal(t, "/tmp/a.go", st.FilePath)
	assert.Equal(t, "12 Bytes Saved", st.FileSize)
	assert.Equal(t, "Go Source File", st.FileType)
}

func TestWithLabel(t *testing.T) {
	st := State{}.WithLabel("| UNDO")
	assert.Equal(t, "| UNDO", st.LastCommand)

	st = st.WithLabel("")
	assert.Equal(t, "| UNDO", st.LastCommand)
}

func TestWithCursorCopies(t *testing.T) {
	orig := State{Line: 1, Column: 2}
	moved := orig.WithCursor(5, 6)

	assert.Equal(t, 1, orig.Line)
	assert.Equal(t, 5, moved.Line)
	assert.Equal(t, 6, moved.Column)
}
