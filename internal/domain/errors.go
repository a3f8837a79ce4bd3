package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when input or a domain entity fails validation.
	// It is usually wrapped by a *ValidationError naming the offending field.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidFormat is returned when data is not in the expected format.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")
)

// ValidationError reports the first field that violated a constraint.
// Message is safe to show to API clients.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError creates a ValidationError for field. The message is
// prefixed with the field name unless it already starts with it. If err is
// nil, ErrValidation is used.
func NewValidationError(field, message string, err error) *ValidationError {
	if err == nil {
		err = ErrValidation
	}
	if field != "" && !hasFieldPrefix(message, field) {
		message = fmt.Sprintf("%s %s", field, message)
	}
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}

func hasFieldPrefix(message, field string) bool {
	return len(message) >= len(field) && message[:len(field)] == field
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Is makes every ValidationError match ErrValidation, whatever its cause.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
