package common

import (
	"errors"
	"fmt"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Common application errors
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
	ErrDatabase     = errors.New("database error")

	// ErrInvalidPage marks a page number outside the source document's
	// range. Callers must be able to tell it apart from ErrNotFound.
	ErrInvalidPage = errors.New("invalid page number")
)

// NewAppError builds an AppError with an optional cause.
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WrapError tags cause with one of the sentinel errors above plus a message.
// Both the sentinel and the cause stay on the chain for errors.Is checks.
func WrapError(sentinel error, message string, cause error) error {
	if cause == nil {
		return fmt.Errorf("%s: %w", message, sentinel)
	}
	return fmt.Errorf("%s: %w: %w", message, sentinel, cause)
}
