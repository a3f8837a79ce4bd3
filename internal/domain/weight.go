package domain

import (
	"fmt"
	"time"

	"github.com/phrazzld/bloomtrack-api/internal/domain/datemath"
)

// Weight bounds, in kilograms.
const (
	MinWeightKg = 30
	MaxWeightKg = 300
)

// Height bounds for weight guidance, in centimetres.
const (
	MinHeightCm = 100
	MaxHeightCm = 250
)

// Pregnancy week bounds used by weight guidance.
const (
	MinPregnancyWeek = 1
	MaxPregnancyWeek = 40
)

// WeightRecord is a dated weight measurement.
type WeightRecord struct {
	ID        int64         `json:"id"`
	Weight    float64       `json:"weight"`
	Date      datemath.Date `json:"date"`
	Note      *string       `json:"note"`
	CreatedAt time.Time     `json:"createdAt"`
}

// NewWeightRecord builds a weight record stamped with now.
func NewWeightRecord(weightKg float64, date datemath.Date, note *string, now time.Time) (*WeightRecord, error) {
	w := &WeightRecord{
		Weight:    weightKg,
		Date:      date,
		Note:      note,
		CreatedAt: now.UTC(),
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return w, nil
}

// Validate checks the record's invariants.
func (w *WeightRecord) Validate() error {
	if w.Weight < MinWeightKg || w.Weight > MaxWeightKg {
		return NewValidationError("weight",
			fmt.Sprintf("must be between %d and %d kg", MinWeightKg, MaxWeightKg),
			ErrValidation)
	}
	if w.Date.IsZero() {
		return NewValidationError("date", "is required", ErrValidation)
	}
	return validateNote("note", w.Note)
}
