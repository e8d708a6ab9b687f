// Package errors provides coded application errors shared by the rules,
// storage and dialog layers.
//
// A coded error's Message is written for the player who caused it; the
// Discord layer shows the innermost one (see Root) and logs the full chain.
package errors

import (
	"errors"
	"fmt"
	"maps"
)

// Code categorizes an error
type Code string

const (
	CodeUnknown          Code = "unknown"
	CodeInvalidArgument  Code = "invalid_argument"
	CodeNotFound         Code = "not_found"
	CodeAlreadyExists    Code = "already_exists"
	CodePermissionDenied Code = "permission_denied"
	CodeInternal         Code = "internal"

	// CodeValidation is a dialog or command answer that could not be used,
	// e.g. a protection amount that is not a number
	CodeValidation Code = "validation"
)

// UserFacing reports whether errors with this code describe something the
// player did and can fix
func (c Code) UserFacing() bool {
	switch c {
	case CodeInvalidArgument, CodeNotFound, CodeAlreadyExists, CodePermissionDenied, CodeValidation:
		return true
	default:
		return false
	}
}

// Error is an application error with a code and optional metadata
type Error struct {
	Code    Code
	Message string
	Cause   error
	Meta    map[string]any
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// WithMeta attaches a key for logs
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New creates an error with the given code
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates an error with a formatted message
func Newf(code Code, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap adds context to err. The code and metadata of a wrapped *Error carry
// over; anything else becomes CodeUnknown.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := &Error{Code: CodeUnknown, Message: message, Cause: err}

	var appErr *Error
	if errors.As(err, &appErr) {
		wrapped.Code = appErr.Code
		wrapped.Meta = maps.Clone(appErr.Meta)
	}
	return wrapped
}

// Wrapf wraps an error with formatted message
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps err and replaces its code
func WrapWithCode(err error, code Code, message string) *Error {
	wrapped := Wrap(err, message)
	if wrapped != nil {
		wrapped.Code = code
	}
	return wrapped
}

func NotFound(message string) *Error { return New(CodeNotFound, message) }

func NotFoundf(format string, args ...any) *Error { return Newf(CodeNotFound, format, args...) }

func InvalidArgument(message string) *Error { return New(CodeInvalidArgument, message) }

func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

func AlreadyExistsf(format string, args ...any) *Error {
	return Newf(CodeAlreadyExists, format, args...)
}

func PermissionDenied(message string) *Error { return New(CodePermissionDenied, message) }

func Internalf(format string, args ...any) *Error { return Newf(CodeInternal, format, args...) }

func Validationf(format string, args ...any) *Error { return Newf(CodeValidation, format, args...) }

// GetCode returns the code of the outermost *Error in the chain
func GetCode(err error) Code {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeUnknown
}

// Is checks if the error is of a specific code
func Is(err error, code Code) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Code == code
}

func IsNotFound(err error) bool         { return Is(err, CodeNotFound) }
func IsInvalidArgument(err error) bool  { return Is(err, CodeInvalidArgument) }
func IsAlreadyExists(err error) bool    { return Is(err, CodeAlreadyExists) }
func IsPermissionDenied(err error) bool { return Is(err, CodePermissionDenied) }
func IsValidation(err error) bool       { return Is(err, CodeValidation) }

// GetMeta returns the metadata of the outermost *Error in the chain
func GetMeta(err error) map[string]any {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Meta
	}
	return nil
}

// Root returns the deepest *Error in the chain, or nil. Wrapping adds
// context for logs, so the root holds the message meant for the player.
func Root(err error) *Error {
	var found *Error
	for err != nil {
		if appErr, ok := err.(*Error); ok {
			found = appErr
		}
		err = errors.Unwrap(err)
	}
	return found
}
