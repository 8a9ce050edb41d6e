package config

import (
	"errors"
	"fmt"

	"github.com/dshills/recoilless/internal/config/loader"
)

// Errors returned by configuration operations.
var (
	// ErrSettingNotFound indicates the setting path doesn't exist.
	ErrSettingNotFound = errors.New("setting not found")

	// ErrTypeMismatch indicates the value type doesn't match the expected type.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrInvalidValue indicates a value of the right type outside the
	// allowed range.
	ErrInvalidValue = errors.New("invalid value")

	// ErrInvalidPath indicates an invalid setting path format.
	ErrInvalidPath = errors.New("invalid setting path")
)

// ParseError represents an error while parsing a configuration file.
type ParseError = loader.ParseError

// TypeError is returned when a type conversion fails.
type TypeError struct {
	// Path is the setting path.
	Path string
	// Expected is the expected type name.
	Expected string
	// Actual is the actual type name.
	Actual string
}

// Error implements the error interface.
func (e *TypeError) Error() string {
	return fmt.Sprintf("type error for %s: expected %s, got %s", e.Path, e.Expected, e.Actual)
}

// Is implements error matching for TypeError.
func (e *TypeError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// ValueError describes a setting whose value is not allowed.
type ValueError struct {
	Path    string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ValueError) Error() string {
	return fmt.Sprintf("invalid value for %s: %v (%s)", e.Path, e.Value, e.Message)
}

// Is implements error matching for ValueError.
func (e *ValueError) Is(target error) bool {
	return target == ErrInvalidValue
}
