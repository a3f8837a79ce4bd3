package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/bloomtrack-api/internal/domain"
	"github.com/phrazzld/bloomtrack-api/internal/store"
)

// RecordServiceError wraps unexpected failures from the record service with
// the operation that failed.
type RecordServiceError struct {
	// Operation is the operation that failed (e.g., "create_cycle")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for RecordServiceError.
func (e *RecordServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("record service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("record service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *RecordServiceError) Unwrap() error {
	return e.Err
}

// NewRecordServiceError creates a new RecordServiceError.
// Validation errors and not-found sentinels are returned unwrapped so the
// API layer can classify them directly.
func NewRecordServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		return vErr
	}
	if errors.Is(err, store.ErrCycleNotFound) {
		return store.ErrCycleNotFound
	}

	return &RecordServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
