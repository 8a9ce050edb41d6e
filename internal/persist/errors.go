package persist

import "fmt"

// WriteError is returned when the buffer cannot be written to its file.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("save %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *WriteError) Unwrap() error {
	return e.Err
}

// MetadataError is returned when the file size cannot be read.
type MetadataError struct {
	Path string
	Err  error
}

func (e *MetadataError) Error() string {
	return fmt.Sprintf("stat %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *MetadataError) Unwrap() error {
	return e.Err
}
