package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/dshills/recoilless/internal/config/layer"
	"github.com/dshills/recoilless/internal/config/loader"
)

const (
	// FileName is the settings file name inside the config directory.
	FileName = "rcl_config.toml"

	// EnvPrefix prefixes every environment override.
	EnvPrefix = "RCL_"

	// EnvConfigPath names the variable that overrides the settings path.
	EnvConfigPath = EnvPrefix + "CONFIG"
)

// Config provides unified access to the recoilless settings.
type Config struct {
	mu sync.RWMutex

	// Layer manager for merged configuration
	layers *layer.Manager

	fs   loader.FileSystem
	path string
	log  logrus.FieldLogger

	// configErrors stores errors encountered while loading or reading
	// settings, keyed by setting path (or file path for parse errors).
	configErrors map[string]error
}

// Option configures a Config instance.
type Option func(*Config)

// WithPath sets the settings file path.
func WithPath(path string) Option {
	return func(c *Config) {
		if path != "" {
			c.path = path
		}
	}
}

// WithFileSystem sets the file system used to read the settings file.
func WithFileSystem(fsys loader.FileSystem) Option {
	return func(c *Config) {
		c.fs = fsys
	}
}

// WithLogger sets the logger used to report configuration problems.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Config) {
		if l != nil {
			c.log = l
		}
	}
}

// New creates a Config holding only the built-in defaults. Call Load to
// read the settings file and the environment.
func New(opts ...Option) *Config {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	c := &Config{
		layers: layer.NewManager(),
		fs:     loader.DefaultFS(),
		path:   os.Getenv(EnvConfigPath),
		log:    discard,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.path == "" {
		c.path = DefaultPath()
	}

	c.layers.AddLayer(layer.New(layer.SourceBuiltin, defaultConfig()))
	return c
}

// Path returns the settings file path.
func (c *Config) Path() string {
	return c.path
}

// Load reads the settings file and environment overrides. It never fails:
// an unreadable or malformed file is logged, recorded in ConfigErrors and
// skipped.
func (c *Config) Load() {
	path := c.path
	var src loader.Loader = loader.NewTOMLLoaderWithFS(c.fs, path)
	if filepath.Base(path) == FileName && !c.exists(path) {
		if legacy := loader.LegacyPath(path); c.exists(legacy) {
			path = legacy
			src = loader.NewINILoaderWithFS(c.fs, legacy)
		}
	}

	user, err := src.Load()
	if err != nil {
		c.log.WithError(err).WithField("path", path).Warn("settings file ignored, using defaults")
		c.recordConfigError(path, err)
		user = nil
	}
	if user != nil {
		l := layer.New(layer.SourceUser, user)
		l.Path = path
		c.layers.AddLayer(l)
	}

	env, _ := loader.NewEnvLoader(EnvPrefix).Load()
	if len(env) > 0 {
		c.layers.AddLayer(layer.New(layer.SourceEnv, env))
	}

	c.log.WithFields(logrus.Fields{
		"path":   c.path,
		"layers": len(c.layers.Layers()),
	}).Debug("configuration loaded")
}

// Get returns the value at the given path from the merged configuration.
func (c *Config) Get(path string) (any, bool) {
	v, _, ok := c.layers.Get(path)
	return v, ok
}

// GetString returns a string value at the given path.
func (c *Config) GetString(path string) (string, error) {
	v, ok := c.Get(path)
	if !ok {
		return "", ErrSettingNotFound
	}
	s, ok := v.(string)
	if !ok {
		return "", &TypeError{Path: path, Expected: "string", Actual: typeName(v)}
	}
	return s, nil
}

// GetInt returns an integer value at the given path. Strings holding a
// decimal integer are accepted.
func (c *Config) GetInt(path string) (int, error) {
	v, ok := c.Get(path)
	if !ok {
		return 0, ErrSettingNotFound
	}
	switch val := v.(type) {
	case int:
		return val, nil
	case int64:
		return int(val), nil
	case float64:
		if val == float64(int(val)) {
			return int(val), nil
		}
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(val)); err == nil {
			return n, nil
		}
	}
	return 0, &TypeError{Path: path, Expected: "int", Actual: typeName(v)}
}

// GetBool returns a boolean value at the given path. The strings
// true/false, yes/no and on/off are accepted.
func (c *Config) GetBool(path string) (bool, error) {
	v, ok := c.Get(path)
	if !ok {
		return false, ErrSettingNotFound
	}
	switch val := v.(type) {
	case bool:
		return val, nil
	case string:
		if b, ok := loader.ParseBool(val); ok {
			return b, nil
		}
	}
	return false, &TypeError{Path: path, Expected: "bool", Actual: typeName(v)}
}

// Set sets a value in the command line layer, overriding every other
// source.
func (c *Config) Set(path string, value any) error {
	if path == "" || strings.HasPrefix(path, ".") || strings.HasSuffix(path, ".") {
		return fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}
	c.layers.Set(layer.SourceArgs, path, value)
	return nil
}

// Source returns the name of the layer that provides path, or "".
func (c *Config) Source(path string) string {
	return c.layers.WhichLayer(path)
}

// DefaultPath returns the default settings file path, honoring
// XDG_CONFIG_HOME.
func DefaultPath() string {
	return filepath.Join(defaultUserConfigDir(), FileName)
}

// defaultUserConfigDir returns the default user configuration directory.
func defaultUserConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "recoilless")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "recoilless")
}

// defaultConfig returns the default configuration values.
func defaultConfig() map[string]any {
	return map[string]any{
		"main": map[string]any{
			"linenumber":  true,
			"hardtab":     false,
			"tabwidth":    int64(DefaultTabWidth),
			"cursorstart": string(CursorBottom),
			"clipboard":   false,
			"keymap":      "",
		},
		"log": map[string]any{
			"file":  "",
			"level": "info",
		},
	}
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "bool"
	case int, int64:
		return "int"
	case float64:
		return "float"
	case []any:
		return "array"
	case map[string]any:
		return "table"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func (c *Config) exists(path string) bool {
	_, err := c.fs.Stat(path)
	return err == nil
}

// isNotFound reports whether err only says the setting is absent.
func isNotFound(err error) bool {
	return errors.Is(err, ErrSettingNotFound)
}
