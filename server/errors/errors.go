package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is an application error carrying an HTTP status and context.
type AppError struct {
	Code    int    `json:"status_code"` // HTTP status code
	Message string `json:"message"`     // message shown to the user
	Err     error  `json:"-"`           // wrapped cause, logged but never serialized
	Context string `json:"-"`           // extra context (function, parameters)
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped cause for errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status code of the error.
func (e *AppError) StatusCode() int {
	return e.Code
}

// UserMessage returns the message intended for the user.
func (e *AppError) UserMessage() string {
	return e.Message
}

// WithContext attaches context to the error.
func (e *AppError) WithContext(context string) *AppError {
	e.Context = context
	return e
}

// NewNotFoundError creates a 404 Not Found error.
func NewNotFoundError(message string, err error) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Message: message,
		Err:     err,
	}
}

// NewValidationError creates a 400 Bad Request error.
func NewValidationError(message string, err error) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
		Err:     err,
	}
}

// NewUnsupportedMediaError creates a 415 Unsupported Media Type error.
func NewUnsupportedMediaError(message string, err error) *AppError {
	return &AppError{
		Code:    http.StatusUnsupportedMediaType,
		Message: message,
		Err:     err,
	}
}

// NewInternalError creates a 500 Internal Server Error. The user sees a
// generic message; details go to the logs only.
func NewInternalError(message string, err error) *AppError {
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: "internal server error",
		Err:     errors.Join(errors.New(message), err),
	}
}

// WrapError wraps an existing error with context. An AppError keeps its
// status code; anything else becomes an internal error.
func WrapError(err error, message string) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return &AppError{
			Code:    appErr.Code,
			Message: fmt.Sprintf("%s: %s", message, appErr.Message),
			Err:     appErr.Err,
			Context: appErr.Context,
		}
	}

	return NewInternalError(message, err)
}
