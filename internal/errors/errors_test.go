package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"
)

func TestTshegError_Error(t *testing.T) {
	err := &TshegError{
		Code:    ErrNotFound,
		Status:  404,
		Message: "file not found",
	}

	expected := "NOT_FOUND: file not found"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestNewInvalidRequest(t *testing.T) {
	err := NewInvalidRequest("text is required")

	if err.Code != ErrInvalidRequest {
		t.Errorf("Code = %q, want %q", err.Code, ErrInvalidRequest)
	}
	if err.Status != 400 {
		t.Errorf("Status = %d, want 400", err.Status)
	}
	if err.Message != "text is required" {
		t.Errorf("Message = %q, want %q", err.Message, "text is required")
	}
}

func TestNewNotFound(t *testing.T) {
	err := NewNotFound("notes.md")

	if err.Code != ErrNotFound {
		t.Errorf("Code = %q, want %q", err.Code, ErrNotFound)
	}
	if err.Status != 404 {
		t.Errorf("Status = %d, want 404", err.Status)
	}
	if err.Details["path"] != "notes.md" {
		t.Errorf("Details[path] = %v, want %q", err.Details["path"], "notes.md")
	}
}

func TestNewInputTooLarge(t *testing.T) {
	err := NewInputTooLarge(12000, 15000)

	if err.Code != ErrInputTooLarge {
		t.Errorf("Code = %q, want %q", err.Code, ErrInputTooLarge)
	}
	if err.Status != 413 {
		t.Errorf("Status = %d, want 413", err.Status)
	}
	if err.Details["max_chars"] != 12000 {
		t.Errorf("Details[max_chars] = %v, want 12000", err.Details["max_chars"])
	}
	if err.Details["actual_chars"] != 15000 {
		t.Errorf("Details[actual_chars] = %v, want 15000", err.Details["actual_chars"])
	}
}

func TestNewInternal(t *testing.T) {
	cause := context.Canceled
	err := NewInternal(cause)

	if err.Code != ErrInternal {
		t.Errorf("Code = %q, want %q", err.Code, ErrInternal)
	}
	if err.Message != cause.Error() {
		t.Errorf("Message = %q, want %q", err.Message, cause.Error())
	}
	if !stderrors.Is(err, context.Canceled) {
		t.Error("internal error should unwrap to its cause")
	}

	if NewInternal(nil).Message != "internal error" {
		t.Errorf("nil cause message = %q", NewInternal(nil).Message)
	}
}

func TestIs(t *testing.T) {
	err := NewNotFound("a.txt")

	if !Is(err, ErrNotFound) {
		t.Error("Is(err, ErrNotFound) = false, want true")
	}
	if Is(err, ErrInternal) {
		t.Error("Is(err, ErrInternal) = true, want false")
	}
	if Is(fmt.Errorf("plain"), ErrNotFound) {
		t.Error("Is(plain error) = true, want false")
	}

	wrapped := fmt.Errorf("reading batch: %w", err)
	if !Is(wrapped, ErrNotFound) {
		t.Error("Is should see through wrapping")
	}
}
