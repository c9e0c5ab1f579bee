package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors
var (
	// Resource errors
	ErrStudentNotFound = errors.New("Student not found")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")

	// Uniqueness errors
	ErrStudentIDAlreadyExists = errors.New("Student ID already exists")
	ErrEmailAlreadyExists     = errors.New("Email already exists")

	// Infrastructure errors
	ErrStoreUnavailable = errors.New("student store unavailable")
)

// FieldError describes a single violated constraint on a named field.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError carries the full list of violated constraints for a request.
// It unwraps to ErrValidationFailed so callers can match with errors.Is.
type ValidationError struct {
	Fields []FieldError
}

// Error implements the error interface, joining all field reasons.
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidationFailed.Error()
	}
	reasons := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		reasons = append(reasons, f.Reason)
	}
	return strings.Join(reasons, ", ")
}

// Unwrap implements the errors.Unwrap interface
func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// NewValidationError creates a ValidationError from field/reason pairs.
func NewValidationError(fields ...FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}

// Add appends a field violation and returns the error for chaining.
func (e *ValidationError) Add(field, reason string) *ValidationError {
	e.Fields = append(e.Fields, FieldError{Field: field, Reason: reason})
	return e
}

// HasErrors reports whether any violation was recorded.
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// NewStoreUnavailableError wraps an infrastructure failure so it maps to
// ErrStoreUnavailable while preserving the underlying cause in the message.
func NewStoreUnavailableError(err error) error {
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}
