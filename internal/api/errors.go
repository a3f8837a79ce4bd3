package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/bloomtrack-api/internal/api/shared"
	"github.com/phrazzld/bloomtrack-api/internal/domain"
	"github.com/phrazzld/bloomtrack-api/internal/store"
)

const genericErrorMessage = "An unexpected error occurred"

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK

	// Bad request errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, shared.ErrMalformedRequest),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Not found errors
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, shared.ErrRequestTooLarge):
		return http.StatusRequestEntityTooLarge

	// Conflict errors
	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. Validation errors carry their own field message.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return genericErrorMessage
	}

	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		return vErr.Message

	case errors.Is(err, shared.ErrMalformedRequest):
		return "Invalid request format"

	case errors.Is(err, shared.ErrRequestTooLarge):
		return "Request body too large"

	case errors.Is(err, store.ErrCycleNotFound):
		return "Cycle not found"

	case errors.Is(err, store.ErrNotFound):
		return "Resource not found"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	case errors.Is(err, store.ErrDuplicate):
		return "Resource already exists"

	default:
		return genericErrorMessage
	}
}

// HandleAPIError writes the error response for err. For 500s the
// fallback message, when non-empty, replaces the generic one.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if status == http.StatusInternalServerError && fallback != "" {
		message = fallback
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
