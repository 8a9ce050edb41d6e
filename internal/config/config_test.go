package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	cfg := New(WithPath(filepath.Join(t.TempDir(), "missing.toml")))
	cfg.Load()

	assert.Equal(t, MainConfig{
		LineNumbers: true,
		HardTab:     false,
		TabWidth:    4,
		CursorStart: CursorBottom,
	}, cfg.Main())
	assert.Equal(t, LogConfig{Level: "info"}, cfg.Log())
	assert.Empty(t, cfg.ConfigErrors())
	assert.Equal(t, "defaults", cfg.Source("main.tabwidth"))
}

func TestLoadSettingsFile(t *testing.T) {
	path := writeSettings(t, `
[main]
linenumber = false
hardtab = true
tabwidth = 8
cursorstart = "top"
clipboard = true
keymap = "/tmp/keys.yaml"

[log]
file = "/tmp/rcl.log"
level = "debug"
`)
	cfg := New(WithPath(path))
	cfg.Load()

	assert.Equal(t, MainConfig{
		LineNumbers: false,
		HardTab:     true,
		TabWidth:    8,
		CursorStart: CursorTop,
		Clipboard:   true,
		Keymap:      "/tmp/keys.yaml",
	}, cfg.Main())
	assert.Equal(t, LogConfig{File: "/tmp/rcl.log", Level: "debug"}, cfg.Log())
	assert.Equal(t, "user", cfg.Source("main.hardtab"))
}

func TestLenientValues(t *testing.T) {
	path := writeSettings(t, `
[main]
linenumber = "no"
hardtab = "on"
tabwidth = "2"
cursorstart = "TOP"
`)
	cfg := New(WithPath(path))
	cfg.Load()

	m := cfg.Main()
	assert.False(t, m.LineNumbers)
	assert.True(t, m.HardTab)
	assert.Equal(t, 2, m.TabWidth)
	assert.Equal(t, CursorTop, m.CursorStart)
	assert.Empty(t, cfg.ConfigErrors())
}

func TestInvalidValuesFallBack(t *testing.T) {
	path := writeSettings(t, `
[main]
linenumber = "maybe"
tabwidth = 0
cursorstart = "middle"
`)
	cfg := New(WithPath(path))
	cfg.Load()

	m := cfg.Main()
	assert.True(t, m.LineNumbers)
	assert.Equal(t, DefaultTabWidth, m.TabWidth)
	assert.Equal(t, CursorBottom, m.CursorStart)

	errs := cfg.ConfigErrors()
	require.Len(t, errs, 3)
	assert.True(t, errors.Is(errs["main.linenumber"], ErrTypeMismatch))
	assert.True(t, errors.Is(errs["main.tabwidth"], ErrInvalidValue))
	assert.True(t, errors.Is(errs["main.cursorstart"], ErrInvalidValue))

	cfg.ClearConfigErrors()
	assert.Nil(t, cfg.ConfigErrors())
}

func TestMalformedFileUsesDefaults(t *testing.T) {
	path := writeSettings(t, "[main\ntabwidth = 8\n")
	cfg := New(WithPath(path))
	cfg.Load()

	assert.Equal(t, DefaultTabWidth, cfg.Main().TabWidth)

	var pe *ParseError
	require.ErrorAs(t, cfg.ConfigErrors()[path], &pe)
	assert.Equal(t, path, pe.Path)
}

func TestLegacySettingsFile(t *testing.T) {
	dir := t.TempDir()
	legacy := filepath.Join(dir, "rcl_config.txt")
	require.NoError(t, os.WriteFile(legacy, []byte("[main]\nlinenumber = false\nhardtab = true\n"), 0o644))

	cfg := New(WithPath(filepath.Join(dir, FileName)))
	cfg.Load()

	assert.False(t, cfg.Main().LineNumbers)
	assert.True(t, cfg.Main().HardTab)
	assert.Empty(t, cfg.ConfigErrors())

	// The TOML file wins once it exists.
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("[main]\nhardtab = false\n"), 0o644))
	cfg = New(WithPath(filepath.Join(dir, FileName)))
	cfg.Load()
	assert.True(t, cfg.Main().LineNumbers)
	assert.False(t, cfg.Main().HardTab)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := writeSettings(t, "[main]\ntabwidth = 8\nhardtab = true\n")
	t.Setenv("RCL_TABWIDTH", "3")
	t.Setenv("RCL_LOG_LEVEL", "warn")

	cfg := New(WithPath(path))
	cfg.Load()

	assert.Equal(t, 3, cfg.Main().TabWidth)
	assert.True(t, cfg.Main().HardTab)
	assert.Equal(t, "warn", cfg.Log().Level)
	assert.Equal(t, "environment", cfg.Source("main.tabwidth"))
}

func TestSetOverridesEverything(t *testing.T) {
	t.Setenv("RCL_LOG_FILE", "/tmp/env.log")
	cfg := New(WithPath(filepath.Join(t.TempDir(), "missing.toml")))
	cfg.Load()

	require.NoError(t, cfg.Set("log.file", "/tmp/flag.log"))
	assert.Equal(t, "/tmp/flag.log", cfg.Log().File)
	assert.Equal(t, "arguments", cfg.Source("log.file"))

	assert.ErrorIs(t, cfg.Set("", 1), ErrInvalidPath)
	assert.ErrorIs(t, cfg.Set("main.", 1), ErrInvalidPath)
}

func TestConfigPathFromEnvironment(t *testing.T) {
	path := writeSettings(t, "[main]\ntabwidth = 6\n")
	t.Setenv(EnvConfigPath, path)

	cfg := New()
	assert.Equal(t, path, cfg.Path())
	cfg.Load()
	assert.Equal(t, 6, cfg.Main().TabWidth)
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	assert.Equal(t, filepath.Join("/xdg", "recoilless", FileName), DefaultPath())
}

func TestGetTypeErrors(t *testing.T) {
	cfg := New(WithPath(filepath.Join(t.TempDir(), "missing.toml")))

	_, err := cfg.GetString("main.tabwidth")
	var te *TypeError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "int", te.Actual)

	_, err = cfg.GetInt("main.nothing")
	assert.ErrorIs(t, err, ErrSettingNotFound)

	_, err = cfg.GetBool("main")
	assert.ErrorIs(t, err, ErrTypeMismatch)
}
