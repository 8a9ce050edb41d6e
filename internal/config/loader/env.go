package loader

import (
	"os"
	"strconv"
	"strings"

	"github.com/dshills/recoilless/internal/config/layer"
)

// EnvLoader loads configuration from environment variables.
type EnvLoader struct {
	prefix  string            // Environment variable prefix (e.g., "RCL_")
	mapping map[string]string // Env var -> config path
	skip    map[string]bool   // Prefixed variables that are not settings
}

// NewEnvLoader creates a new environment variable loader.
// The prefix should include the trailing underscore (e.g., "RCL_").
func NewEnvLoader(prefix string) *EnvLoader {
	return &EnvLoader{
		prefix:  prefix,
		mapping: defaultEnvMapping(prefix),
		skip:    map[string]bool{prefix + "CONFIG": true},
	}
}

// NewEnvLoaderWithMapping creates a loader with custom environment variable mappings.
func NewEnvLoaderWithMapping(prefix string, mapping map[string]string) *EnvLoader {
	return &EnvLoader{
		prefix:  prefix,
		mapping: mapping,
		skip:    map[string]bool{},
	}
}

func defaultEnvMapping(prefix string) map[string]string {
	return map[string]string{
		prefix + "LINENUMBER":  "main.linenumber",
		prefix + "HARDTAB":     "main.hardtab",
		prefix + "TABWIDTH":    "main.tabwidth",
		prefix + "CURSORSTART": "main.cursorstart",
		prefix + "CLIPBOARD":   "main.clipboard",
		prefix + "KEYMAP":      "main.keymap",
		prefix + "LOG_FILE":    "log.file",
		prefix + "LOG_LEVEL":   "log.level",
	}
}

// Load reads environment variables and returns a configuration map.
// Mapped variables are read first. Other prefixed variables of the form
// PREFIX_SECTION_KEY set section.key. Empty values count as set.
func (l *EnvLoader) Load() (map[string]any, error) {
	config := make(map[string]any)

	for env, path := range l.mapping {
		if val, ok := os.LookupEnv(env); ok {
			layer.SetByPath(config, path, parseValue(val))
		}
	}

	for _, env := range os.Environ() {
		name, value, ok := strings.Cut(env, "=")
		if !ok || !strings.HasPrefix(name, l.prefix) {
			continue
		}
		if _, mapped := l.mapping[name]; mapped || l.skip[name] {
			continue
		}
		if path, ok := l.envToPath(name); ok {
			layer.SetByPath(config, path, parseValue(value))
		}
	}

	return config, nil
}

// AddMapping adds a custom environment variable mapping.
func (l *EnvLoader) AddMapping(envVar, configPath string) {
	if l.mapping == nil {
		l.mapping = make(map[string]string)
	}
	l.mapping[envVar] = configPath
}

// envToPath converts RCL_MAIN_TABWIDTH to main.tabwidth.
func (l *EnvLoader) envToPath(env string) (string, bool) {
	name := strings.ToLower(strings.TrimPrefix(env, l.prefix))
	section, key, ok := strings.Cut(name, "_")
	if !ok || section == "" || key == "" {
		return "", false
	}
	return section + "." + key, true
}

// parseValue converts booleans and integers, leaving anything else as a
// string.
func parseValue(s string) any {
	if b, ok := ParseBool(s); ok {
		return b
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	return s
}

// ParseBool accepts the boolean spellings used in INI-style files:
// true/false, yes/no and on/off, in any case.
func ParseBool(s string) (value, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "on":
		return true, true
	case "false", "no", "off":
		return false, true
	}
	return false, false
}
