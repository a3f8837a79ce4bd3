package domain

import (
	"time"

	"github.com/phrazzld/bloomtrack-api/internal/domain/datemath"
)

// PregnancyRecord stores a dated pregnancy and its derived due date.
type PregnancyRecord struct {
	ID                int64           `json:"id"`
	CalculationMethod datemath.Method `json:"calculationMethod"`
	ReferenceDate     datemath.Date   `json:"referenceDate"`
	DueDate           datemath.Date   `json:"dueDate"`
	CreatedAt         time.Time       `json:"createdAt"`
}

// NewPregnancyRecord derives the due date from the reference date and method.
func NewPregnancyRecord(method datemath.Method, reference datemath.Date, now time.Time) (*PregnancyRecord, error) {
	p := &PregnancyRecord{
		CalculationMethod: method,
		ReferenceDate:     reference,
		DueDate:           datemath.DueDate(reference, method),
		CreatedAt:         now.UTC(),
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks the record's invariants, including that DueDate matches
// the reference date and method.
func (p *PregnancyRecord) Validate() error {
	if !p.CalculationMethod.Valid() {
		return NewValidationError("calculationMethod", "must be one of: lmp, conception", ErrValidation)
	}
	if p.ReferenceDate.IsZero() {
		return NewValidationError("referenceDate", "is required", ErrValidation)
	}
	if !p.DueDate.Equal(datemath.DueDate(p.ReferenceDate, p.CalculationMethod)) {
		return NewValidationError("dueDate", "does not match the reference date", ErrValidation)
	}
	return nil
}
