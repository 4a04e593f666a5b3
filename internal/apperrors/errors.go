package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrConflict indicates that the resource is not in a state that allows the
// requested transition (posting a non-draft entry, closing a closed period, ...).
var ErrConflict = errors.New("resource state conflict")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInternal indicates a persistence or infrastructure failure that the caller
// cannot recover from by re-editing input.
var ErrInternal = errors.New("internal error")

// AppError wraps a lower-level failure with an HTTP-ish status code and a
// human-readable message. The wrapped error is preserved for errors.Is/As.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInternal
}

// NewAppError creates an AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// ValidationErrors accumulates every validation failure found while checking a
// request, so the caller gets the complete list in a single round trip.
// It matches errors.Is(err, ErrValidation).
type ValidationErrors struct {
	Errors []string
}

func (v *ValidationErrors) Error() string {
	return "validation failed: " + strings.Join(v.Errors, "; ")
}

func (v *ValidationErrors) Is(target error) bool {
	return target == ErrValidation
}

// Add appends a formatted validation failure to the list.
func (v *ValidationErrors) Add(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}

// HasErrors reports whether any failure has been recorded.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}
