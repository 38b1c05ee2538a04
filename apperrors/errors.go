package apperrors

import (
	"fmt"
	"net/http"
)

// Error is an application error carrying the HTTP status it should map to.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new Error
func New(code int, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// BadRequest builds a 400 error with the given message.
func BadRequest(message string) *Error {
	return New(http.StatusBadRequest, message, nil)
}

// NotFound builds a 404 error with the given message.
func NotFound(message string) *Error {
	return New(http.StatusNotFound, message, nil)
}

// Internal wraps err as a 500 error with the given message.
func Internal(message string, err error) *Error {
	return New(http.StatusInternalServerError, message, err)
}

// Common error types
var (
	ErrUnauthorized       = New(http.StatusUnauthorized, "Unauthorized", nil)
	ErrForbidden          = New(http.StatusForbidden, "Forbidden", nil)
	ErrInvalidCredentials = New(http.StatusUnauthorized, "Invalid email or password", nil)
	ErrEmailTaken         = New(http.StatusConflict, "Email already registered", nil)
)
