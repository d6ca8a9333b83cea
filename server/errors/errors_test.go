package errors

import (
	"errors"
	"net/http"
	"testing"
)

// TestAppError_Error checks message formatting with and without a cause.
func TestAppError_Error(t *testing.T) {
	err := &AppError{Code: http.StatusBadRequest, Message: "bad input"}
	if err.Error() != "bad input" {
		t.Errorf("Error() = %q, want %q", err.Error(), "bad input")
	}

	cause := errors.New("cause")
	err = &AppError{Code: http.StatusBadRequest, Message: "bad input", Err: cause}
	if err.Error() != "bad input: cause" {
		t.Errorf("Error() = %q, want %q", err.Error(), "bad input: cause")
	}
}

// TestAppError_Unwrap checks errors.Is through the wrapped cause.
func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("cause")
	err := NewValidationError("bad input", cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
	if err.StatusCode() != http.StatusBadRequest {
		t.Errorf("StatusCode() = %d, want 400", err.StatusCode())
	}
}

// TestNewInternalError checks that internal details are hidden from the user.
func TestNewInternalError(t *testing.T) {
	err := NewInternalError("db exploded", errors.New("details"))

	if err.UserMessage() != "internal server error" {
		t.Errorf("UserMessage() = %q, should be generic", err.UserMessage())
	}
	if err.StatusCode() != http.StatusInternalServerError {
		t.Errorf("StatusCode() = %d, want 500", err.StatusCode())
	}
}

// TestWrapError checks status preservation for AppError and promotion of
// plain errors.
func TestWrapError(t *testing.T) {
	if WrapError(nil, "context") != nil {
		t.Error("WrapError(nil) should be nil")
	}

	wrapped := WrapError(NewNotFoundError("missing", nil), "lookup failed")
	if wrapped.StatusCode() != http.StatusNotFound {
		t.Errorf("StatusCode() = %d, want 404 preserved", wrapped.StatusCode())
	}
	if wrapped.Message != "lookup failed: missing" {
		t.Errorf("Message = %q", wrapped.Message)
	}

	plain := WrapError(errors.New("boom"), "operation failed")
	if plain.StatusCode() != http.StatusInternalServerError {
		t.Errorf("StatusCode() = %d, want 500 for plain errors", plain.StatusCode())
	}
}
