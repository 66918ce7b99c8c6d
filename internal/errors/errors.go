package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents a tshegbar error code.
type ErrorCode string

const (
	ErrInvalidRequest ErrorCode = "INVALID_REQUEST" // 400
	ErrNotFound       ErrorCode = "NOT_FOUND"       // 404
	ErrInputTooLarge  ErrorCode = "INPUT_TOO_LARGE" // 413
	ErrInternal       ErrorCode = "INTERNAL"        // 500
)

// TshegError represents a structured error with code, status, and details.
type TshegError struct {
	Code    ErrorCode
	Status  int
	Message string
	Details map[string]any

	cause error
}

// Error implements the error interface.
func (e *TshegError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of an internal error.
func (e *TshegError) Unwrap() error { return e.cause }

// NewInvalidRequest creates a 400 error for invalid request parameters.
func NewInvalidRequest(msg string) *TshegError {
	return &TshegError{
		Code:    ErrInvalidRequest,
		Status:  400,
		Message: msg,
	}
}

// NewNotFound creates a 404 error for an input file that does not exist.
func NewNotFound(path string) *TshegError {
	return &TshegError{
		Code:    ErrNotFound,
		Status:  404,
		Message: fmt.Sprintf("file not found: %s", path),
		Details: map[string]any{"path": path},
	}
}

// NewInputTooLarge creates a 413 error when input exceeds the configured limit.
func NewInputTooLarge(max, actual int) *TshegError {
	return &TshegError{
		Code:    ErrInputTooLarge,
		Status:  413,
		Message: fmt.Sprintf("input exceeds maximum size: %d chars (max %d)", actual, max),
		Details: map[string]any{"max_chars": max, "actual_chars": actual},
	}
}

// NewInternal creates a 500 error for unexpected internal errors.
func NewInternal(err error) *TshegError {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &TshegError{
		Code:    ErrInternal,
		Status:  500,
		Message: msg,
		cause:   err,
	}
}

// As returns the TshegError in err's chain, if any.
func As(err error) (*TshegError, bool) {
	var tErr *TshegError
	if stderrors.As(err, &tErr) {
		return tErr, true
	}
	return nil, false
}

// Is checks if an error is a TshegError with the given code.
func Is(err error, code ErrorCode) bool {
	if tErr, ok := As(err); ok {
		return tErr.Code == code
	}
	return false
}
