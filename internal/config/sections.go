package config

import (
	"strings"
)

// DefaultTabWidth is used when tabwidth is missing or not positive.
const DefaultTabWidth = 4

// CursorStart selects where the cursor is placed when a file opens.
type CursorStart string

const (
	CursorTop    CursorStart = "top"
	CursorBottom CursorStart = "bottom"
)

// MainConfig holds the [main] section.
type MainConfig struct {
	// LineNumbers shows the line-number gutter.
	LineNumbers bool
	// HardTab makes Tab insert a tab character instead of spaces.
	HardTab bool
	// TabWidth is the tab stop width in cells.
	TabWidth int
	// CursorStart is the initial cursor placement.
	CursorStart CursorStart
	// Clipboard routes cut and paste through the system clipboard.
	Clipboard bool
	// Keymap is the path of a YAML binding override file.
	Keymap string
}

// LogConfig holds the [log] section.
type LogConfig struct {
	// File receives log output. Empty discards logs.
	File string
	// Level is a logrus level name.
	Level string
}

// Main returns the [main] section with defaults applied.
func (c *Config) Main() MainConfig {
	cfg := MainConfig{
		LineNumbers: c.getBoolOr("main.linenumber", true),
		HardTab:     c.getBoolOr("main.hardtab", false),
		TabWidth:    c.getIntOr("main.tabwidth", DefaultTabWidth),
		CursorStart: CursorStart(strings.ToLower(c.getStringOr("main.cursorstart", string(CursorBottom)))),
		Clipboard:   c.getBoolOr("main.clipboard", false),
		Keymap:      c.getStringOr("main.keymap", ""),
	}

	if cfg.TabWidth <= 0 {
		c.recordConfigError("main.tabwidth", &ValueError{
			Path: "main.tabwidth", Value: cfg.TabWidth, Message: "must be positive",
		})
		cfg.TabWidth = DefaultTabWidth
	}
	if cfg.CursorStart != CursorTop && cfg.CursorStart != CursorBottom {
		c.recordConfigError("main.cursorstart", &ValueError{
			Path: "main.cursorstart", Value: cfg.CursorStart, Message: "must be top or bottom",
		})
		cfg.CursorStart = CursorBottom
	}
	return cfg
}

// Log returns the [log] section with defaults applied.
func (c *Config) Log() LogConfig {
	return LogConfig{
		File:  c.getStringOr("log.file", ""),
		Level: c.getStringOr("log.level", "info"),
	}
}

// Getter helpers that return defaults on error.
// These methods only return the default for ErrSettingNotFound silently.
// Type errors are recorded and return the default to avoid breaking callers.

func (c *Config) getStringOr(path string, defaultValue string) string {
	v, err := c.GetString(path)
	if err != nil {
		if !isNotFound(err) {
			c.recordConfigError(path, err)
		}
		return defaultValue
	}
	return v
}

func (c *Config) getIntOr(path string, defaultValue int) int {
	v, err := c.GetInt(path)
	if err != nil {
		if !isNotFound(err) {
			c.recordConfigError(path, err)
		}
		return defaultValue
	}
	return v
}

func (c *Config) getBoolOr(path string, defaultValue bool) bool {
	v, err := c.GetBool(path)
	if err != nil {
		if !isNotFound(err) {
			c.recordConfigError(path, err)
		}
		return defaultValue
	}
	return v
}

// recordConfigError stores configuration errors for later retrieval.
// Only the first error for each path is recorded.
func (c *Config) recordConfigError(path string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.configErrors == nil {
		c.configErrors = make(map[string]error)
	}
	if _, exists := c.configErrors[path]; !exists {
		c.configErrors[path] = err
	}
}

// ConfigErrors returns any configuration errors encountered so far.
func (c *Config) ConfigErrors() map[string]error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.configErrors == nil {
		return nil
	}
	result := make(map[string]error, len(c.configErrors))
	for k, v := range c.configErrors {
		result[k] = v
	}
	return result
}

// ClearConfigErrors clears any stored configuration errors.
func (c *Config) ClearConfigErrors() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.configErrors = nil
}
