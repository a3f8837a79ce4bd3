package domain

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/phrazzld/bloomtrack-api/internal/domain/datemath"
)

// Cycle length bounds, in days.
const (
	MinCycleLength     = 20
	MaxCycleLength     = 45
	DefaultCycleLength = 28
)

// MaxNoteLength bounds free-text fields.
const MaxNoteLength = 500

// CycleRecord is one reported period start.
type CycleRecord struct {
	ID          int64         `json:"id"`
	StartDate   datemath.Date `json:"startDate"`
	CycleLength int           `json:"cycleLength"`
	Note        *string       `json:"note"`
	CreatedAt   time.Time     `json:"createdAt"`
}

// NewCycleRecord builds a cycle record stamped with now.
func NewCycleRecord(start datemath.Date, cycleLength int, note *string, now time.Time) (*CycleRecord, error) {
	c := &CycleRecord{
		StartDate:   start,
		CycleLength: cycleLength,
		Note:        note,
		CreatedAt:   now.UTC(),
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the record's invariants.
func (c *CycleRecord) Validate() error {
	if c.StartDate.IsZero() {
		return NewValidationError("startDate", "is required", ErrValidation)
	}
	if c.CycleLength < MinCycleLength || c.CycleLength > MaxCycleLength {
		return NewValidationError("cycleLength",
			fmt.Sprintf("must be between %d and %d", MinCycleLength, MaxCycleLength),
			ErrValidation)
	}
	return validateNote("note", c.Note)
}

func validateNote(field string, note *string) error {
	if note != nil && utf8.RuneCountInString(*note) > MaxNoteLength {
		return NewValidationError(field,
			fmt.Sprintf("must be at most %d characters", MaxNoteLength),
			ErrValidation)
	}
	return nil
}
