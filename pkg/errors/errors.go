// Package errors provides structured error types for figwind.
//
// Every failure that can stop index construction or a CLI/API request carries
// a machine-readable [Code], so that the CLI can print a short message and the
// HTTP API can map it to a status code:
//   - INVALID_CONFIG: the theme source could not be decoded or resolved
//   - PLUGIN_NOT_FOUND: the plugin list names a plugin the catalog lacks
//   - INVALID_OVERRIDE: an override names a selector its plugin never emits
//   - INVALID_INPUT: request input failed validation
//
// Lookup misses and malformed declaration segments are not errors; the
// translator reports them through its return values.
//
// # Usage
//
//	err := errors.New(errors.ErrCodePluginNotFound, "unknown plugin %q", name)
//	if errors.Is(err, errors.ErrCodePluginNotFound) {
//	    // Handle a bad plugin list
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidConfig, origErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Theme and index construction errors
	ErrCodeInvalidConfig   Code = "INVALID_CONFIG"
	ErrCodePluginNotFound  Code = "PLUGIN_NOT_FOUND"
	ErrCodeInvalidOverride Code = "INVALID_OVERRIDE"

	// Input validation errors
	ErrCodeInvalidInput Code = "INVALID_INPUT"
	ErrCodeInvalidPath  Code = "INVALID_PATH"

	// Resource errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"
	ErrCodeUnsupported  Code = "UNSUPPORTED"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// IsConfigError reports whether err aborted theme resolution or index
// construction: a bad theme source, an unknown plugin or a broken override.
func IsConfigError(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidConfig, ErrCodePluginNotFound, ErrCodeInvalidOverride:
		return true
	}
	return false
}
