package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
)

// LegacyFileName is the INI settings file read by earlier releases.
const LegacyFileName = "rcl_config.txt"

// LegacyPath returns the INI settings path that sits next to path.
func LegacyPath(path string) string {
	return filepath.Join(filepath.Dir(path), LegacyFileName)
}

// INILoader reads the legacy rcl_config.txt file:
//
//	[main]
//	linenumber = false
//	hardtab = true
//
// Section and key names are case-insensitive. Values stay strings; the
// config package converts them. Keys before the first section header go
// to "default".
type INILoader struct {
	fs   FileSystem
	path string
}

// NewINILoaderWithFS creates a loader reading path from fsys.
func NewINILoaderWithFS(fsys FileSystem, path string) *INILoader {
	return &INILoader{fs: fsys, path: path}
}

// Path returns the settings file path.
func (l *INILoader) Path() string {
	return l.path
}

// Load reads and decodes the settings file.
func (l *INILoader) Load() (map[string]any, error) {
	data, err := l.fs.ReadFile(l.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", l.path, err)
	}
	return decodeINI(l.path, data)
}

func decodeINI(source string, data []byte) (map[string]any, error) {
	f, err := ini.LoadSources(ini.LoadOptions{Insensitive: true}, data)
	if err != nil {
		return nil, &ParseError{Path: source, Message: err.Error(), Err: err}
	}

	settings := map[string]any{}
	for _, sec := range f.Sections() {
		keys := sec.Keys()
		if len(keys) == 0 {
			continue
		}
		table := make(map[string]any, len(keys))
		for _, k := range keys {
			table[k.Name()] = k.Value()
		}
		settings[strings.ToLower(sec.Name())] = table
	}
	return settings, nil
}
