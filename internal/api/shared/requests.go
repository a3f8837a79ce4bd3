package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"

	"github.com/phrazzld/bloomtrack-api/internal/domain"
)

// MaxBodyBytes caps request bodies.
const MaxBodyBytes = 1 << 20

// ErrMalformedRequest is returned for bodies that are not valid JSON.
var ErrMalformedRequest = fmt.Errorf("%w: malformed request body", domain.ErrInvalidFormat)

// ErrRequestTooLarge is returned for bodies longer than MaxBodyBytes.
var ErrRequestTooLarge = errors.New("request body too large")

// DecodeJSON decodes the request body into v. A value of the wrong JSON
// type for a field becomes a *domain.ValidationError naming that field, a
// body over MaxBodyBytes wraps ErrRequestTooLarge, and any other decoding
// failure wraps ErrMalformedRequest.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	body := http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	dec := json.NewDecoder(body)

	if err := dec.Decode(v); err != nil {
		if tooLarge(err) {
			return fmt.Errorf("%w: limit is %d bytes", ErrRequestTooLarge, MaxBodyBytes)
		}
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return domain.NewValidationError(typeErr.Field, typeMessage(typeErr.Type), domain.ErrValidation)
		}
		return fmt.Errorf("%w: %v", ErrMalformedRequest, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if tooLarge(err) {
			return fmt.Errorf("%w: limit is %d bytes", ErrRequestTooLarge, MaxBodyBytes)
		}
		return fmt.Errorf("%w: trailing data after JSON object", ErrMalformedRequest)
	}
	return nil
}

func tooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}

func typeMessage(t reflect.Type) string {
	if t == nil {
		return "has an invalid type"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "must be an integer"
	case reflect.Float32, reflect.Float64:
		return "must be a number"
	case reflect.String:
		return "must be a string"
	case reflect.Bool:
		return "must be a boolean"
	default:
		return "has an invalid type"
	}
}
