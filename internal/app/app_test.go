package app

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/recoilless/internal/dispatcher"
	"github.com/dshills/recoilless/internal/engine/buffer"
	"github.com/dshills/recoilless/internal/input/key"
	"github.com/dshills/recoilless/internal/input/mode"
	"github.com/dshills/recoilless/internal/persist"
	"github.com/dshills/recoilless/internal/renderer/backend"
	"github.com/dshills/recoilless/internal/renderer/statusline"
)

type session struct {
	app     *Application
	backend *backend.NullBackend
	path    string
	logs    *bytes.Buffer
}

// newSession creates an application editing a file with content. toml is
// written to a config file unless empty.
func newSession(t *testing.T, content, toml string) *session {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "notes.go")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfgPath := filepath.Join(dir, "rcl_config.toml")
	if toml != "" {
		require.NoError(t, os.WriteFile(cfgPath, []byte(toml), 0o644))
	}

	logs := &bytes.Buffer{}
	app, err := New(Options{
		Path:       path,
		ConfigPath: cfgPath,
		Logger:     NewLogger(LoggerConfig{Level: LogLevelDebug, Output: logs, Session: "test"}),
	})
	require.NoError(t, err)

	nb := backend.NewNullBackend(60, 8)
	require.NoError(t, app.SetBackend(nb))

	return &session{app: app, backend: nb, path: path, logs: logs}
}

func (s *session) press(specs ...string) {
	for _, spec := range specs {
		s.backend.PostEvent(backend.KeyEvent(key.MustParse(spec)))
	}
}

func (s *session) run(t *testing.T) error {
	t.Helper()
	err := s.app.Run()
	assert.True(t, s.backend.IsShutdown(), "terminal must be restored")
	return err
}

func (s *session) file(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(s.path)
	require.NoError(t, err)
	return string(data)
}

const topConfig = "[main]\ncursorstart = \"top\"\n"

func TestNewInitialState(t *testing.T) {
	s := newSession(t, "package main\n\nfunc main() {}\n", "")

	st := s.app.State()
	assert.Equal(t, mode.Command, st.Mode)
	assert.False(t, st.Modified)
	assert.Equal(t, s.path, st.FilePath)
	assert.Equal(t, "Go Source File", st.FileType)
	assert.Equal(t, persist.FormatSize(29), st.FileSize)
	assert.Empty(t, st.LastCommand)

	// Cursor starts at the end of the file by default.
	assert.Equal(t, 2, st.Line)
	assert.Equal(t, 14, st.Column)
}

func TestNewCursorTop(t *testing.T) {
	s := newSession(t, "a\nb\n", topConfig)
	st := s.app.State()
	assert.Equal(t, 0, st.Line)
	assert.Equal(t, 0, st.Column)
}

func TestNewMissingFile(t *testing.T) {
	_, err := New(Options{
		Path:       filepath.Join(t.TempDir(), "absent.txt"),
		ConfigPath: filepath.Join(t.TempDir(), "none.toml"),
		Logger:     NullLogger,
	})
	require.Error(t, err)

	var opErr *OperationError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "open", opErr.Op)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunInsertAndSave(t *testing.T) {
	s := newSession(t, "hello\nworld\n", topConfig)
	s.press("i", "a", "b", "Esc", "Ctrl+S", "End")

	require.NoError(t, s.run(t))

	assert.Equal(t, "abhello\nworld\n", s.file(t))
	st := s.app.State()
	assert.False(t, st.Modified)
	assert.Equal(t, mode.Command, st.Mode)
	assert.Equal(t, persist.FormatSize(14), st.FileSize)
	assert.Equal(t, 0, st.Line)
	assert.Equal(t, 2, st.Column)
}

func TestRunQuitWithoutSaving(t *testing.T) {
	s := newSession(t, "hello\n", topConfig)
	s.press("i", "x", "Esc", "End")

	require.NoError(t, s.run(t))

	assert.Equal(t, "hello\n", s.file(t))
	assert.True(t, s.app.State().Modified)
}

func TestRunSaveAndExitAlwaysWrites(t *testing.T) {
	// No trailing newline on disk; the write adds one.
	s := newSession(t, "one\ntwo", topConfig)
	s.press("Ctrl+Alt+S")

	require.NoError(t, s.run(t))

	assert.Equal(t, "one\ntwo\n", s.file(t))
	assert.False(t, s.app.State().Modified)
}

func TestRunSaveUnmodifiedDoesNotWrite(t *testing.T) {
	s := newSession(t, "one\ntwo", topConfig)
	s.press("Ctrl+S", "End")

	require.NoError(t, s.run(t))
	assert.Equal(t, "one\ntwo", s.file(t))
}

func TestRunCommandModeEditing(t *testing.T) {
	s := newSession(t, "alpha beta\ngamma\n", topConfig)
	s.press("Ctrl+Alt+W", "u", "r", "Ctrl+S", "End")

	require.NoError(t, s.run(t))

	assert.Equal(t, "beta\ngamma\n", s.file(t))
	assert.Equal(t, "| REDO", s.app.State().LastCommand)
}

func TestRunUnboundCommandKeyLeavesBufferClean(t *testing.T) {
	s := newSession(t, "hello\n", topConfig)
	s.press("z", "Ctrl+S", "End")

	require.NoError(t, s.run(t))

	assert.False(t, s.app.State().Modified)
	assert.Equal(t, "hello\n", s.file(t))
}

func TestRunStatusLine(t *testing.T) {
	s := newSession(t, "hello\nworld\n", topConfig)
	s.press("j", "l", "End")

	require.NoError(t, s.run(t))

	st := s.app.State()
	assert.Equal(t, 1, st.Line)
	assert.Equal(t, 1, st.Column)
	assert.Equal(t, "| l", st.LastCommand)

	_, h := s.backend.Size()
	row := strings.TrimRight(s.backend.Row(h-1), " ")
	assert.Equal(t, statusline.Project(st), row)
	assert.Equal(t, "2:2 | Ovr | Go Source File | 12 Bytes Saved | | l", row)
}

func TestRunTitleAndGutter(t *testing.T) {
	s := newSession(t, "hello\n", topConfig+"linenumber = true\n")
	s.press("End")

	require.NoError(t, s.run(t))

	assert.True(t, strings.HasPrefix(s.backend.Row(0), "╭/"))
	assert.Contains(t, s.backend.Row(1), "  1 hello")
}

func TestRunCommandModeHidesTerminalCursor(t *testing.T) {
	s := newSession(t, "hello\n", topConfig)
	s.press("i", "Esc", "End")

	require.NoError(t, s.run(t))

	assert.Equal(t, mode.Command, s.app.ModeManager().Current())
	_, _, visible := s.backend.CursorPosition()
	assert.False(t, visible)
	assert.Contains(t, s.logs.String(), "msg=\"mode changed\"")
	assert.Contains(t, s.logs.String(), "cursor=bar")
	assert.Contains(t, s.logs.String(), "cursor=block")
}

func TestRunResize(t *testing.T) {
	s := newSession(t, "hello\n", topConfig)
	s.backend.Resize(30, 5)
	s.press("End")

	require.NoError(t, s.run(t))

	assert.Equal(t, 30, len([]rune(s.backend.Row(0))))
	assert.True(t, strings.HasPrefix(s.backend.Row(4), "1:1 | Ovr"))
	assert.Contains(t, s.logs.String(), "msg=resize")
}

func TestRunKeymapOverrides(t *testing.T) {
	dir := t.TempDir()
	keys := filepath.Join(dir, "keys.yaml")
	require.NoError(t, os.WriteFile(keys, []byte(`
bindings:
  - mode: command
    keys: x
    action: edit.deleteChar
    label: "| X"
`), 0o644))

	s := newSession(t, "abc\n", fmt.Sprintf("%skeymap = '%s'\n", topConfig, keys))
	s.press("x", "Ctrl+S", "End")

	require.NoError(t, s.run(t))

	assert.Equal(t, "bc\n", s.file(t))
	assert.Equal(t, "| X", s.app.State().LastCommand)
	assert.Contains(t, s.logs.String(), "keymap overrides loaded")
}

func TestRunBadKeymapOverridesKeepDefaults(t *testing.T) {
	dir := t.TempDir()
	keys := filepath.Join(dir, "keys.yaml")
	require.NoError(t, os.WriteFile(keys, []byte(`
bindings:
  - mode: command
    keys: x
    action: no.such.action
`), 0o644))

	s := newSession(t, "abc\n", fmt.Sprintf("%skeymap = '%s'\n", topConfig, keys))
	s.press("Ctrl+Alt+C", "Ctrl+S", "End")

	require.NoError(t, s.run(t))

	assert.Equal(t, "bc\n", s.file(t))
	assert.Contains(t, s.logs.String(), "keymap overrides skipped")
}

func TestRunMalformedConfigUsesDefaults(t *testing.T) {
	s := newSession(t, "a\nb\n", "[main\ncursorstart = ")
	assert.Equal(t, 1, s.app.State().Line)
	assert.Contains(t, s.logs.String(), "invalid configuration, using default")
}

func TestRunSaveFailureEndsSession(t *testing.T) {
	s := newSession(t, "hello\n", topConfig)
	require.NoError(t, os.RemoveAll(filepath.Dir(s.path)))
	s.press("i", "x", "Esc", "Ctrl+S", "End")

	err := s.run(t)
	require.Error(t, err)

	var we *persist.WriteError
	assert.ErrorAs(t, err, &we)
	var opErr *OperationError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "save", opErr.Op)
	assert.True(t, s.app.State().Modified)
}

type brokenRegister struct{}

func (brokenRegister) Get() (string, error) { return "", errors.New("no clipboard") }
func (brokenRegister) Set(string) error     { return errors.New("no clipboard") }

func TestRunBufferFailureEndsSession(t *testing.T) {
	s := newSession(t, "alpha beta\n", topConfig)
	buf := buffer.NewFromString("alpha beta", buffer.WithRegister(brokenRegister{}))
	s.app.buf = buf
	s.app.dispatcher = dispatcher.New(buf, s.app.modes, s.app.gate, dispatcher.DefaultConfig())
	s.press("Ctrl+Alt+W", "End")

	err := s.run(t)
	require.Error(t, err)

	var be *dispatcher.BufferError
	assert.ErrorAs(t, err, &be)
	var opErr *OperationError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "edit", opErr.Op)
	assert.True(t, s.app.State().Modified)
	assert.Equal(t, "alpha beta\n", s.file(t))
}

func TestRunAlreadyRunning(t *testing.T) {
	s := newSession(t, "hello\n", topConfig)
	s.app.running.Store(true)
	assert.ErrorIs(t, s.app.Run(), ErrAlreadyRunning)
	assert.ErrorIs(t, s.app.SetBackend(s.backend), ErrAlreadyRunning)
}

type panicBackend struct {
	*backend.NullBackend
}

func (panicBackend) PollEvent() backend.Event {
	panic("poll failed")
}

func TestRunRestoresTerminalOnPanic(t *testing.T) {
	s := newSession(t, "hello\n", topConfig)
	pb := panicBackend{NullBackend: s.backend}
	require.NoError(t, s.app.SetBackend(pb))

	err := s.app.Run()

	var perr *RecoveredPanicError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "poll failed", perr.Value)
	assert.True(t, s.backend.IsShutdown())
}

func TestRunLogsDispatchSummary(t *testing.T) {
	s := newSession(t, "hello\n", topConfig)
	s.press("l", "l", "End")

	require.NoError(t, s.run(t))

	logs := s.logs.String()
	assert.Contains(t, logs, "session=test")
	assert.Contains(t, logs, "dispatches=3")
	assert.Contains(t, logs, "top_action=cursor.right")
}
