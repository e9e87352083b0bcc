// Package errors provides the coded error type shared by segplot's packages.
//
// Every failure that can abort a run carries one of a small set of codes:
//   - NOT_FOUND: an input file could not be opened at any candidate location
//   - INVALID_FORMAT: a segment or result file does not match its grammar
//   - EXTERNAL_PROCESS: the solver could not be launched or exited abnormally
//   - INVALID_CONFIG: segplot.toml holds an unusable value
//
// Errors are never translated on the way up; callers wrap with more context
// and the causes stay reachable through errors.Is and errors.As.
package errors

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error category.
type Code string

const (
	ErrCodeNotFound        Code = "NOT_FOUND"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeExternalProcess Code = "EXTERNAL_PROCESS"
	ErrCodeInvalidConfig   Code = "INVALID_CONFIG"
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
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns the message without the code prefix.
// For errors that are not *Error, it returns err.Error().
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Cause)
		}
		return e.Message
	}
	return err.Error()
}

// IsNotFound reports whether err is a NOT_FOUND error.
func IsNotFound(err error) bool { return Is(err, ErrCodeNotFound) }

// IsFormat reports whether err is an INVALID_FORMAT error.
func IsFormat(err error) bool { return Is(err, ErrCodeInvalidFormat) }

// IsExternalProcess reports whether err is an EXTERNAL_PROCESS error.
func IsExternalProcess(err error) bool { return Is(err, ErrCodeExternalProcess) }
