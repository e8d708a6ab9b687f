package core

import (
	"errors"
	"fmt"

	apperr "github.com/KirkDiggler/succ-discord/internal/errors"
)

// HandlerError represents an error that occurred during handler execution
type HandlerError struct {
	// The underlying error
	Err error

	// User-friendly message to display
	UserMessage string

	// Whether this error should be shown to the user
	ShowToUser bool

	// HTTP-like status code for categorization
	Code int
}

// Error implements the error interface
func (e *HandlerError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.UserMessage
}

// Unwrap returns the underlying error
func (e *HandlerError) Unwrap() error {
	return e.Err
}

// Common error codes
const (
	ErrorCodeBadRequest = 400
	ErrorCodeForbidden  = 403
	ErrorCodeNotFound   = 404
	ErrorCodeConflict   = 409
	ErrorCodeInternal   = 500
)

// NewHandlerError creates a new handler error
func NewHandlerError(err error, userMessage string, code int) *HandlerError {
	return &HandlerError{
		Err:         err,
		UserMessage: userMessage,
		ShowToUser:  true,
		Code:        code,
	}
}

// NewInternalError creates an internal error with a generic user message
func NewInternalError(err error) *HandlerError {
	return &HandlerError{
		Err:         err,
		UserMessage: "An internal error occurred. Please try again later.",
		ShowToUser:  true,
		Code:        ErrorCodeInternal,
	}
}

// NewUserError creates an error with a user-friendly message
func NewUserError(message string, code int) *HandlerError {
	return &HandlerError{
		UserMessage: message,
		ShowToUser:  true,
		Code:        code,
	}
}

// NewNotFoundError creates a not found error
func NewNotFoundError(resource string) *HandlerError {
	return &HandlerError{
		UserMessage: fmt.Sprintf("%s not found", resource),
		ShowToUser:  true,
		Code:        ErrorCodeNotFound,
	}
}

// NewForbiddenError creates a forbidden error
func NewForbiddenError(message string) *HandlerError {
	return &HandlerError{
		UserMessage: message,
		ShowToUser:  true,
		Code:        ErrorCodeForbidden,
	}
}

// NewValidationError creates a validation error
func NewValidationError(message string) *HandlerError {
	return &HandlerError{
		UserMessage: message,
		ShowToUser:  true,
		Code:        ErrorCodeBadRequest,
	}
}

// FromError converts application errors into handler errors. Coded errors
// that describe a user mistake keep their message; anything else becomes an
// internal error.
func FromError(err error) *HandlerError {
	if err == nil {
		return nil
	}

	var handlerErr *HandlerError
	if errors.As(err, &handlerErr) {
		return handlerErr
	}

	root := apperr.Root(err)
	if root == nil || !apperr.GetCode(err).UserFacing() {
		return NewInternalError(err)
	}

	switch apperr.GetCode(err) {
	case apperr.CodeNotFound:
		return NewHandlerError(err, root.Message, ErrorCodeNotFound)
	case apperr.CodeAlreadyExists:
		return NewHandlerError(err, root.Message, ErrorCodeConflict)
	case apperr.CodePermissionDenied:
		return NewHandlerError(err, root.Message, ErrorCodeForbidden)
	default:
		return NewHandlerError(err, root.Message, ErrorCodeBadRequest)
	}
}
