package app

import (
	"errors"
	"fmt"

	"github.com/dshills/recoilless/internal/dispatcher"
	"github.com/dshills/recoilless/internal/persist"
)

var (
	// ErrQuit ends the event loop without an error.
	ErrQuit = errors.New("quit requested")

	// ErrAlreadyRunning is returned by Run and SetBackend during a session.
	ErrAlreadyRunning = errors.New("application already running")
)

// OperationError reports a failed file operation on the edited document.
type OperationError struct {
	Op     string // open, read, stat, save, edit
	Target string // absolute file path
	Err    error
}

// NewOperationError creates an OperationError.
func NewOperationError(op, target string, err error) *OperationError {
	return &OperationError{Op: op, Target: target, Err: err}
}

func (e *OperationError) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Op
	if e.Target != "" {
		msg += " " + e.Target
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *OperationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ComponentError reports a component that could not be set up.
type ComponentError struct {
	Component string // backend, config, keymap
	Action    string
	Err       error
}

// NewComponentError creates a ComponentError.
func NewComponentError(component, action string, err error) *ComponentError {
	return &ComponentError{Component: component, Action: action, Err: err}
}

func (e *ComponentError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return fmt.Sprintf("%s: %s failed", e.Component, e.Action)
	}
	return fmt.Sprintf("%s: %s failed: %v", e.Component, e.Action, e.Err)
}

func (e *ComponentError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// RecoveredPanicError is returned by Run when the event loop panicked.
// The terminal has been restored by the time the caller sees it.
type RecoveredPanicError struct {
	Value any
	Stack string
}

// NewRecoveredPanicError creates a RecoveredPanicError.
func NewRecoveredPanicError(value any, stack string) *RecoveredPanicError {
	return &RecoveredPanicError{Value: value, Stack: stack}
}

func (e *RecoveredPanicError) Error() string {
	return fmt.Sprintf("recovered from panic: %v", e.Value)
}

// IsFatal reports whether a dispatch error must end the session: a
// failure to persist the document or a failure inside the text buffer.
func IsFatal(err error) bool {
	return fatalOp(err) != ""
}

// fatalOp names the operation a fatal error belongs to, or returns "".
func fatalOp(err error) string {
	var we *persist.WriteError
	var me *persist.MetadataError
	var be *dispatcher.BufferError
	switch {
	case errors.As(err, &we), errors.As(err, &me):
		return "save"
	case errors.As(err, &be):
		return "edit"
	}
	return ""
}

// WrapError prefixes err with a formatted message. A nil err stays nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
