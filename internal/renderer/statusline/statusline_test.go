package statusline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dshills/recoilless/internal/editor"
	"github.com/dshills/recoilless/internal/input/mode"
	"github.com/dshills/recoilless/internal/renderer/backend"
)

func TestProject(t *testing.T) {
	tests := []struct {
		name  string
		state editor.State
		want  string
	}{
		{
			name: "command mode with label",
			state: editor.State{
				Line: 3, Column: 7, Mode: mode.Command,
				FileType: "Rust Source File", FileSize: "120 Bytes Saved",
				LastCommand: "| UNDO",
			},
			want: "4:8 | Ovr | Rust Source File | 120 Bytes Saved | | UNDO",
		},
		{
			name: "insert mode without label",
			state: editor.State{
				Mode: mode.Insert, FileType: "Go Source File", FileSize: "0 Bytes Saved",
			},
			want: "1:1 | Ins | Go Source File | 0 Bytes Saved | ",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Project(tt.state))
		})
	}
}

func TestProjectIsDeterministic(t *testing.T) {
	st := editor.State{Line: 9, Column: 1, FileType: "File", FileSize: "1 Bytes Saved"}
	assert.Equal(t, Project(st), Project(st))

	// Modified is not part of the projection.
	modified := st
	modified.Modified = true
	assert.Equal(t, Project(st), Project(modified))
}

func TestRender(t *testing.T) {
	b := backend.NewNullBackend(20, 3)
	s := New()
	s.Resize(12)
	assert.Equal(t, 1, s.Height())

	st := editor.State{Line: 0, Column: 4, FileType: "Go", FileSize: "3 Bytes Saved"}
	s.Render(b, 0, 2, st)

	got := make([]rune, 0, 12)
	for x := 0; x < 12; x++ {
		got = append(got, b.GetCell(x, 2).Rune)
	}
	assert.Equal(t, "1:5 | Ovr | ", string(got))
	assert.Equal(t, ' ', b.GetCell(12, 2).Rune)
}
