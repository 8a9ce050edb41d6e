package dispatcher

import (
	"errors"
	"fmt"
)

// Dispatcher errors.
var (
	// ErrPanic indicates execution panicked.
	ErrPanic = errors.New("dispatcher: action panic")

	// ErrInvalidAction indicates the action kind or operand is unknown.
	ErrInvalidAction = errors.New("dispatcher: invalid action")
)

// ActionError wraps a failure while executing an action.
type ActionError struct {
	Action string
	Err    error
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("%s: %v", e.Action, e.Err)
}

// Unwrap returns the underlying error.
func (e *ActionError) Unwrap() error {
	return e.Err
}

// BufferError reports a failed buffer operation, such as a yank register
// that cannot be written. The buffer may already hold the edit.
type BufferError struct {
	Op  string
	Err error
}

func (e *BufferError) Error() string {
	return fmt.Sprintf("buffer %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *BufferError) Unwrap() error {
	return e.Err
}
