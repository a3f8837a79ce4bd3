package domain

import (
	"fmt"
	"time"

	"github.com/phrazzld/bloomtrack-api/internal/domain/datemath"
)

// Score bounds for mood and energy.
const (
	MinScore = 1
	MaxScore = 5
)

// PostpartumRecord is a postpartum check-in.
type PostpartumRecord struct {
	ID               int64         `json:"id"`
	CheckDate        datemath.Date `json:"checkDate"`
	Mood             int           `json:"mood"`
	Energy           int           `json:"energy"`
	PhysicalRecovery *string       `json:"physicalRecovery"`
	Note             *string       `json:"note"`
	CreatedAt        time.Time     `json:"createdAt"`
}

// NewPostpartumRecord builds a check-in stamped with now.
func NewPostpartumRecord(
	checkDate datemath.Date,
	mood, energy int,
	physicalRecovery, note *string,
	now time.Time,
) (*PostpartumRecord, error) {
	p := &PostpartumRecord{
		CheckDate:        checkDate,
		Mood:             mood,
		Energy:           energy,
		PhysicalRecovery: physicalRecovery,
		Note:             note,
		CreatedAt:        now.UTC(),
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks the record's invariants.
func (p *PostpartumRecord) Validate() error {
	if p.CheckDate.IsZero() {
		return NewValidationError("checkDate", "is required", ErrValidation)
	}
	if err := validateScore("mood", p.Mood); err != nil {
		return err
	}
	if err := validateScore("energy", p.Energy); err != nil {
		return err
	}
	if err := validateNote("physicalRecovery", p.PhysicalRecovery); err != nil {
		return err
	}
	return validateNote("note", p.Note)
}

func validateScore(field string, score int) error {
	if score < MinScore || score > MaxScore {
		return NewValidationError(field,
			fmt.Sprintf("must be between %d and %d", MinScore, MaxScore),
			ErrValidation)
	}
	return nil
}
