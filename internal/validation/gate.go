// Package validation checks request inputs against their declared
// constraints before a record is stored or a prediction is computed.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/bloomtrack-api/internal/domain"
	"github.com/phrazzld/bloomtrack-api/internal/domain/datemath"
)

// Gate validates input structs using their `validate` tags and reports the
// first violation as a *domain.ValidationError named after the JSON field.
type Gate struct {
	validate *validator.Validate
}

// NewGate creates a Gate.
func NewGate() *Gate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	return &Gate{validate: v}
}

// Check validates input. Only the first violated field is reported.
func (g *Gate) Check(input any) error {
	err := g.validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("validate input: %w", err)
	}

	fe := fieldErrs[0]
	return domain.NewValidationError(fe.Field(), messageFor(fe), domain.ErrValidation)
}

// ParseDate parses a YYYY-MM-DD value for field, reporting failures as a
// validation error.
func ParseDate(field, value string) (datemath.Date, error) {
	d, err := datemath.Parse(value)
	if err != nil {
		return datemath.Date{}, domain.NewValidationError(field, dateMessage, domain.ErrValidation)
	}
	return d, nil
}

// NotAfter rejects dates later than today.
func NotAfter(field string, d, today datemath.Date) error {
	if d.After(today) {
		return domain.NewValidationError(field, "cannot be in the future", domain.ErrValidation)
	}
	return nil
}

const dateMessage = "must be a valid date (YYYY-MM-DD)"

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "datetime":
		return dateMessage
	case "min", "gte":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max", "lte":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(fe.Param()), ", ")
	default:
		return "is invalid"
	}
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}
