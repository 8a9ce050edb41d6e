package buffer

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// Register holds the text moved by cut, paste and the yanking deletes.
type Register interface {
	Get() (string, error)
	Set(text string) error
}

// MemoryRegister is a register private to the process.
type MemoryRegister struct {
	text string
}

// Get returns the stored text.
func (r *MemoryRegister) Get() (string, error) {
	return r.text, nil
}

// Set stores text.
func (r *MemoryRegister) Set(text string) error {
	r.text = text
	return nil
}

// ClipboardRegister reads and writes the system clipboard.
type ClipboardRegister struct{}

// Get returns the clipboard contents.
func (ClipboardRegister) Get() (string, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("reading clipboard: %w", err)
	}
	return text, nil
}

// Set replaces the clipboard contents.
func (ClipboardRegister) Set(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("writing clipboard: %w", err)
	}
	return nil
}

// NewRegister returns the system clipboard register when system is true
// and a clipboard is available, and a memory register otherwise.
func NewRegister(system bool) Register {
	if system && !clipboard.Unsupported {
		return ClipboardRegister{}
	}
	return &MemoryRegister{}
}
