package loader

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/recoilless/internal/config/layer"
)

// memFS is an in-memory file system for testing.
type memFS struct {
	files map[string][]byte
}

func newMemFS() *memFS {
	return &memFS{files: make(map[string][]byte)}
}

func (m *memFS) add(path, content string) {
	m.files[path] = []byte(content)
}

func (m *memFS) ReadFile(path string) ([]byte, error) {
	data, ok := m.files[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return data, nil
}

func (m *memFS) Stat(path string) (fs.FileInfo, error) {
	if _, ok := m.files[path]; ok {
		return &memFileInfo{name: path}, nil
	}
	return nil, fs.ErrNotExist
}

type memFileInfo struct {
	name string
}

func (f *memFileInfo) Name() string       { return f.name }
func (f *memFileInfo) Size() int64        { return 0 }
func (f *memFileInfo) Mode() fs.FileMode  { return 0o644 }
func (f *memFileInfo) ModTime() time.Time { return time.Time{} }
func (f *memFileInfo) IsDir() bool        { return false }
func (f *memFileInfo) Sys() any           { return nil }

type failFS struct{}

func (failFS) ReadFile(string) ([]byte, error)    { return nil, fs.ErrPermission }
func (failFS) Stat(string) (fs.FileInfo, error) { return nil, fs.ErrPermission }

func TestTOMLLoaderLoad(t *testing.T) {
	memfs := newMemFS()
	memfs.add("/rcl_config.toml", `
[main]
linenumber = false
tabwidth = 8
cursorstart = "top"

[log]
level = "debug"
`)

	l := NewTOMLLoaderWithFS(memfs, "/rcl_config.toml")
	assert.Equal(t, "/rcl_config.toml", l.Path())

	cfg, err := l.Load()
	require.NoError(t, err)

	v, ok := layer.GetByPath(cfg, "main.linenumber")
	require.True(t, ok)
	assert.Equal(t, false, v)

	v, _ = layer.GetByPath(cfg, "main.tabwidth")
	assert.Equal(t, int64(8), v)

	v, _ = layer.GetByPath(cfg, "log.level")
	assert.Equal(t, "debug", v)

	_, ok = layer.GetByPath(cfg, "main.missing")
	assert.False(t, ok)
	_, ok = layer.GetByPath(cfg, "main.tabwidth.deeper")
	assert.False(t, ok)
}

func TestTOMLLoaderMissingFile(t *testing.T) {
	cfg, err := NewTOMLLoaderWithFS(newMemFS(), "/nope.toml").Load()
	assert.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestTOMLLoaderReadError(t *testing.T) {
	_, err := NewTOMLLoaderWithFS(failFS{}, "/x.toml").Load()
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrPermission))
}

func TestTOMLLoaderParseError(t *testing.T) {
	l := NewTOMLLoader("")
	_, err := l.LoadFromReader(strings.NewReader("[main]\ncursorstart = top\n"))
	require.Error(t, err)

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "<reader>", pe.Path)
	assert.Equal(t, 2, pe.Line)
	assert.Contains(t, pe.Error(), "<reader>:2:")
}

func TestINILoaderLoad(t *testing.T) {
	memfs := newMemFS()
	memfs.add("/cfg/rcl_config.txt", `
; written by an older release
top = level
[Main]
LineNumber = false
hardtab: "true"
# trailing comment
`)

	path := LegacyPath("/cfg/rcl_config.toml")
	assert.Equal(t, "/cfg/rcl_config.txt", path)

	l := NewINILoaderWithFS(memfs, path)
	assert.Equal(t, path, l.Path())

	cfg, err := l.Load()
	require.NoError(t, err)

	v, _ := layer.GetByPath(cfg, "main.linenumber")
	assert.Equal(t, "false", v)
	v, _ = layer.GetByPath(cfg, "main.hardtab")
	assert.Equal(t, "true", v)
	v, _ = layer.GetByPath(cfg, "default.top")
	assert.Equal(t, "level", v)
}

func TestINILoaderErrors(t *testing.T) {
	cfg, err := NewINILoaderWithFS(newMemFS(), "/none.txt").Load()
	assert.NoError(t, err)
	assert.Nil(t, cfg)

	_, err = NewINILoaderWithFS(failFS{}, "/x.txt").Load()
	assert.ErrorIs(t, err, fs.ErrPermission)

	for _, content := range []string{"[main\nhardtab = true\n", "[main]\nhardtab\n", "[]\n"} {
		memfs := newMemFS()
		memfs.add("/bad.txt", content)
		_, err := NewINILoaderWithFS(memfs, "/bad.txt").Load()
		var pe *ParseError
		require.ErrorAs(t, err, &pe, content)
		assert.Equal(t, "/bad.txt", pe.Path)
		assert.NotNil(t, pe.Unwrap())
	}
}

func TestEnvLoader(t *testing.T) {
	t.Setenv("RCL_TABWIDTH", "2")
	t.Setenv("RCL_HARDTAB", "Yes")
	t.Setenv("RCL_LOG_FILE", "/tmp/rcl.log")
	t.Setenv("RCL_MAIN_CURSORSTART", "top")
	t.Setenv("RCL_CONFIG", "/elsewhere.toml")
	t.Setenv("RCL_NOSECTION", "x")

	cfg, err := NewEnvLoader("RCL_").Load()
	require.NoError(t, err)

	v, _ := layer.GetByPath(cfg, "main.tabwidth")
	assert.Equal(t, int64(2), v)
	v, _ = layer.GetByPath(cfg, "main.hardtab")
	assert.Equal(t, true, v)
	v, _ = layer.GetByPath(cfg, "log.file")
	assert.Equal(t, "/tmp/rcl.log", v)
	v, _ = layer.GetByPath(cfg, "main.cursorstart")
	assert.Equal(t, "top", v)

	_, ok := cfg["config"]
	assert.False(t, ok, "RCL_CONFIG names the file, it is not a setting")
	_, ok = cfg["nosection"]
	assert.False(t, ok)
}

func TestEnvLoaderCustomMapping(t *testing.T) {
	t.Setenv("EDIT_WIDTH", "6")

	l := NewEnvLoaderWithMapping("EDIT_", nil)
	l.AddMapping("EDIT_WIDTH", "main.tabwidth")

	cfg, err := l.Load()
	require.NoError(t, err)
	v, _ := layer.GetByPath(cfg, "main.tabwidth")
	assert.Equal(t, int64(6), v)
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		in     string
		value  bool
		wantOK bool
	}{
		{"true", true, true},
		{"ON", true, true},
		{" yes ", true, true},
		{"false", false, true},
		{"Off", false, true},
		{"no", false, true},
		{"1", false, false},
		{"maybe", false, false},
	}
	for _, tt := range tests {
		v, ok := ParseBool(tt.in)
		assert.Equal(t, tt.wantOK, ok, tt.in)
		assert.Equal(t, tt.value, v, tt.in)
	}
}
