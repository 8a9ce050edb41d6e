package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/recoilless/internal/input"
	"github.com/dshills/recoilless/internal/input/keymap"
	"github.com/dshills/recoilless/internal/input/mode"
)

func TestTargetResolve(t *testing.T) {
	cwd := t.TempDir()
	file := filepath.Join(cwd, "notes.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(cwd, "dir"), 0o755))

	tests := []struct {
		name    string
		target  Target
		want    string
		wantErr error
	}{
		{"positional relative", Target{Arg: "notes.txt"}, file, nil},
		{"positional absolute", Target{Arg: file}, file, nil},
		{"path relative", Target{Path: "./dir/../notes.txt"}, file, nil},
		{"path absolute", Target{Path: file}, file, nil},
		{"name", Target{Name: "notes.txt"}, file, nil},
		{"path wins over arg", Target{Path: file, Arg: "absent"}, file, nil},
		{"missing", Target{Arg: "absent.txt"}, "", ErrFileNotFound},
		{"empty", Target{}, "", ErrFileNotFound},
		{"directory", Target{Arg: "dir"}, "", ErrNotAFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.target.Resolve(cwd)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTargetEmpty(t *testing.T) {
	assert.True(t, Target{}.Empty())
	assert.False(t, Target{Name: "a"}.Empty())
}

func TestErrFileNotFoundMessage(t *testing.T) {
	assert.Equal(t, "Couldn't find the file! Try using -h OR --help", ErrFileNotFound.Error())
}

func defaultRegistry(t *testing.T) *keymap.Registry {
	t.Helper()
	reg := keymap.NewRegistry()
	require.NoError(t, keymap.LoadDefaults(reg))
	return reg
}

func TestHelp(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Help(&out, defaultRegistry(t)))

	text := out.String()
	assert.Contains(t, text, "recoilless -p PATH")
	assert.Contains(t, text, "without saving, press End or Ctrl+Alt+Backspace.")
	assert.Contains(t, text, "with saving, press Ctrl+Alt+S.")
	assert.Contains(t, text, "-k or --keys")
}

func TestHelpFollowsOverrides(t *testing.T) {
	reg := defaultRegistry(t)
	km := keymap.NewKeymap("user-command", mode.Command).
		AddBinding(keymap.NewBinding("Ctrl+Q", input.Simple("editor.quit", input.KindTerminate)))
	require.NoError(t, reg.RegisterOverride(km))

	var out bytes.Buffer
	require.NoError(t, Help(&out, reg))
	assert.Contains(t, out.String(), "press Ctrl+Q or End or Ctrl+Alt+Backspace.")
}

func TestKeyReference(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, KeyReference(&out, defaultRegistry(t)))

	text := out.String()
	assert.Contains(t, text, "Command mode")
	assert.Contains(t, text, "Insert mode")
	for _, cat := range []string{keymap.CategoryModes, keymap.CategoryMovement, keymap.CategoryEditing, keymap.CategoryEditor} {
		assert.Contains(t, text, cat)
	}

	assert.Contains(t, text, "h, Left")
	assert.Contains(t, text, "End, Ctrl+Alt+Backspace")
	assert.Contains(t, text, "Save file and exit program")
	assert.Contains(t, text, "Every other key is typed into the file.")

	// Every command binding is listed.
	for _, b := range keymap.DefaultCommandKeymap().Bindings {
		assert.True(t, strings.Contains(text, b.Keys), "missing %s", b.Keys)
	}
}
