// Package cli holds the command-line surface of the editor: locating the
// file to edit and printing help and the key reference.
package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrFileNotFound is reported when the file to edit does not exist. The
// message is printed to the user verbatim.
var ErrFileNotFound = errors.New("Couldn't find the file! Try using -h OR --help")

// ErrNotAFile is reported when the target exists but is a directory.
var ErrNotAFile = errors.New("not a regular file")

// Target names the file to edit. At most one of Path and Name is used;
// Arg is the positional argument.
type Target struct {
	// Path is taken as given, absolute or relative to the working directory.
	Path string
	// Name is a file name inside the working directory.
	Name string
	// Arg is the positional FILE argument.
	Arg string
}

// Empty reports whether no file was named.
func (t Target) Empty() bool {
	return t.Path == "" && t.Name == "" && t.Arg == ""
}

// Resolve returns the absolute path of the target file, relative to cwd.
// Path wins over Name, and Name over Arg.
func (t Target) Resolve(cwd string) (string, error) {
	var path string
	switch {
	case t.Path != "":
		path = t.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(cwd, path)
		}
	case t.Name != "":
		path = filepath.Join(cwd, t.Name)
	case t.Arg != "":
		path = t.Arg
		if !filepath.IsAbs(path) {
			path = filepath.Join(cwd, path)
		}
	default:
		return "", ErrFileNotFound
	}
	path = filepath.Clean(path)

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrFileNotFound
		}
		return "", fmt.Errorf("checking %s: %w", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s: %w", path, ErrNotAFile)
	}
	return path, nil
}
