// Package loader reads raw configuration maps from files and the
// environment.
//
// Loaders return nested map[string]any values keyed by section and
// setting name. Typed access and defaults live in the config package.
package loader

import (
	"fmt"
	"io/fs"
	"os"
)

// Loader produces one configuration layer. A missing source yields
// nil, nil.
type Loader interface {
	Load() (map[string]any, error)
}

// FileSystem is the subset of file access the file loaders need.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	Stat(path string) (fs.FileInfo, error)
}

// OSFS reads from the real file system.
type OSFS struct{}

func (OSFS) ReadFile(path string) ([]byte, error) { return os.ReadFile(path) }

func (OSFS) Stat(path string) (fs.FileInfo, error) { return os.Stat(path) }

// DefaultFS returns OSFS.
func DefaultFS() FileSystem {
	return OSFS{}
}

// ParseError reports a malformed settings file. Line and Column are
// 1-based and zero when unknown.
type ParseError struct {
	Path    string
	Line    int
	Column  int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	switch {
	case e.Line > 0 && e.Column > 0:
		return fmt.Sprintf("%s:%d:%d: %s", e.Path, e.Line, e.Column, e.Message)
	case e.Line > 0:
		return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Message)
	default:
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
