// Package errors provides standardized domain errors with codes for the book catalog.
//
// Usage:
//
//	// In the catalog - return typed errors
//	if idx < 0 {
//	    return errors.NotFoundf("record with title %q not found", title)
//	}
//
//	// In callers - check with errors.Is
//	if errors.Is(err, errors.ErrNotFound) {
//	    ...
//	}
//
//	// Or use the Code directly for switch statements
//	var domainErr *errors.Error
//	if errors.As(err, &domainErr) {
//	    os.Exit(domainErr.Code.ExitCode())
//	}
package errors

import (
	"errors"
	"fmt"
)

// Re-export standard library functions for convenience.
var (
	Is = errors.Is
	As = errors.As
)

// Code represents a machine-readable error code.
type Code string

// Error codes used throughout the application.
const (
	CodeNotFound     Code = "NOT_FOUND"
	CodeValidation   Code = "VALIDATION"
	CodeParse        Code = "PARSE"
	CodeInvalidField Code = "INVALID_FIELD"
	CodeInternal     Code = "INTERNAL" // I/O around the catalog, e.g. an unreadable seed file
)

// ExitCode returns the process exit status used by the CLI for an error code.
func (c Code) ExitCode() int {
	switch c {
	case CodeValidation:
		return 2
	case CodeNotFound:
		return 3
	case CodeParse:
		return 4
	case CodeInvalidField:
		return 5
	case CodeInternal:
		return 6
	default:
		return 1
	}
}

// Error is a domain error with a code, message, and optional details.
type Error struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
	cause   error  // unexported, for wrapping
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target matches this error.
// Matches if target is an *Error with the same Code.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// ExitCode returns the CLI exit status for this error.
func (e *Error) ExitCode() int {
	return e.Code.ExitCode()
}

// WithDetails returns a new error with additional details.
func (e *Error) WithDetails(details any) *Error {
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		cause:   e.cause,
	}
}

// Sentinel errors for use with errors.Is().
var (
	ErrNotFound     = &Error{Code: CodeNotFound, Message: "not found"}
	ErrValidation   = &Error{Code: CodeValidation, Message: "validation error"}
	ErrParse        = &Error{Code: CodeParse, Message: "parse error"}
	ErrInvalidField = &Error{Code: CodeInvalidField, Message: "invalid field"}
)

// Constructor functions for creating errors with custom messages.

// NotFoundf creates a not found error with formatted message.
func NotFoundf(format string, args ...any) *Error {
	return &Error{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

// Validation creates a validation error.
func Validation(msg string) *Error {
	return &Error{Code: CodeValidation, Message: msg}
}

// Validationf creates a validation error with formatted message.
func Validationf(format string, args ...any) *Error {
	return &Error{Code: CodeValidation, Message: fmt.Sprintf(format, args...)}
}

// ValidationWithDetails creates a validation error with details.
func ValidationWithDetails(msg string, details any) *Error {
	return &Error{Code: CodeValidation, Message: msg, Details: details}
}

// Parse creates a parse error.
func Parse(msg string) *Error {
	return &Error{Code: CodeParse, Message: msg}
}

// InvalidFieldf creates an invalid field error with formatted message.
func InvalidFieldf(format string, args ...any) *Error {
	return &Error{Code: CodeInvalidField, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an error with a code and message.
func Wrap(err error, code Code, msg string) *Error {
	return &Error{Code: code, Message: msg, cause: err}
}

// Wrapf wraps an error with a code and formatted message.
func Wrapf(err error, code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), cause: err}
}
