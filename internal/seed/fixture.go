// Package seed inserts sample records into an empty database at startup.
// The built-in fixture holds two past cycles; a YAML file may replace it
// and carry records for every entity.
package seed

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/phrazzld/bloomtrack-api/internal/domain"
	"github.com/phrazzld/bloomtrack-api/internal/domain/datemath"
	"gopkg.in/yaml.v3"
)

// Fixture is the seed file layout. Every dated entry takes either an
// absolute date or days_ago relative to the seeding day.
type Fixture struct {
	Cycles      []CycleSeed      `yaml:"cycles"`
	Pregnancies []PregnancySeed  `yaml:"pregnancies"`
	Weights     []WeightSeed     `yaml:"weights"`
	Postpartum  []PostpartumSeed `yaml:"postpartum"`
}

// When is an absolute date or an offset into the past.
type When struct {
	Date    string `yaml:"date"`
	DaysAgo *int   `yaml:"days_ago"`
}

// CycleSeed describes one cycle record.
type CycleSeed struct {
	When        `yaml:",inline"`
	CycleLength int     `yaml:"cycle_length"`
	Note        *string `yaml:"note"`
}

// PregnancySeed describes one pregnancy record.
type PregnancySeed struct {
	When              `yaml:",inline"`
	CalculationMethod string `yaml:"calculation_method"`
}

// WeightSeed describes one weight entry.
type WeightSeed struct {
	When   `yaml:",inline"`
	Weight float64 `yaml:"weight"`
	Note   *string `yaml:"note"`
}

// PostpartumSeed describes one postpartum check-in.
type PostpartumSeed struct {
	When             `yaml:",inline"`
	Mood             int     `yaml:"mood"`
	Energy           int     `yaml:"energy"`
	PhysicalRecovery *string `yaml:"physical_recovery"`
	Note             *string `yaml:"note"`
}

var errMissingDate = errors.New("one of date or days_ago is required")

// Resolve returns the absolute date relative to today.
func (w When) Resolve(today datemath.Date) (datemath.Date, error) {
	switch {
	case w.Date != "" && w.DaysAgo != nil:
		return datemath.Date{}, errors.New("date and days_ago are mutually exclusive")
	case w.Date != "":
		return datemath.Parse(w.Date)
	case w.DaysAgo != nil:
		if *w.DaysAgo < 0 {
			return datemath.Date{}, fmt.Errorf("days_ago must not be negative, got %d", *w.DaysAgo)
		}
		return today.SubDays(*w.DaysAgo), nil
	default:
		return datemath.Date{}, errMissingDate
	}
}

// Default returns the built-in fixture: last month's and the previous
// month's cycles.
func Default() *Fixture {
	lastMonth, twoMonths := 28, 57
	note1, note2 := "Last month's cycle", "Two months ago"
	return &Fixture{
		Cycles: []CycleSeed{
			{When: When{DaysAgo: &lastMonth}, CycleLength: 28, Note: &note1},
			{When: When{DaysAgo: &twoMonths}, CycleLength: 29, Note: &note2},
		},
	}
}

// Parse decodes a fixture. Unknown keys are rejected.
func Parse(r io.Reader) (*Fixture, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f Fixture
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("decode seed fixture: %w", err)
	}
	return &f, nil
}

// LoadFile reads and decodes the fixture at path.
func LoadFile(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(bytes.NewReader(data))
}

// Empty reports whether the fixture holds no records.
func (f *Fixture) Empty() bool {
	return len(f.Cycles)+len(f.Pregnancies)+len(f.Weights)+len(f.Postpartum) == 0
}

// batch is a fixture resolved into validated domain records.
type batch struct {
	cycles      []*domain.CycleRecord
	pregnancies []*domain.PregnancyRecord
	weights     []*domain.WeightRecord
	postpartum  []*domain.PostpartumRecord
}

// build resolves dates against today and validates every record. The
// first invalid entry aborts the whole fixture.
func (f *Fixture) build(today datemath.Date, now time.Time) (*batch, error) {
	b := &batch{}

	for i, c := range f.Cycles {
		start, err := c.Resolve(today)
		if err != nil {
			return nil, fmt.Errorf("cycles[%d]: %w", i, err)
		}
		length := c.CycleLength
		if length == 0 {
			length = domain.DefaultCycleLength
		}
		rec, err := domain.NewCycleRecord(start, length, c.Note, now)
		if err != nil {
			return nil, fmt.Errorf("cycles[%d]: %w", i, err)
		}
		b.cycles = append(b.cycles, rec)
	}

	for i, p := range f.Pregnancies {
		ref, err := p.Resolve(today)
		if err != nil {
			return nil, fmt.Errorf("pregnancies[%d]: %w", i, err)
		}
		rec, err := domain.NewPregnancyRecord(datemath.Method(p.CalculationMethod), ref, now)
		if err != nil {
			return nil, fmt.Errorf("pregnancies[%d]: %w", i, err)
		}
		b.pregnancies = append(b.pregnancies, rec)
	}

	for i, w := range f.Weights {
		date, err := w.Resolve(today)
		if err != nil {
			return nil, fmt.Errorf("weights[%d]: %w", i, err)
		}
		rec, err := domain.NewWeightRecord(w.Weight, date, w.Note, now)
		if err != nil {
			return nil, fmt.Errorf("weights[%d]: %w", i, err)
		}
		b.weights = append(b.weights, rec)
	}

	for i, p := range f.Postpartum {
		date, err := p.Resolve(today)
		if err != nil {
			return nil, fmt.Errorf("postpartum[%d]: %w", i, err)
		}
		rec, err := domain.NewPostpartumRecord(date, p.Mood, p.Energy, p.PhysicalRecovery, p.Note, now)
		if err != nil {
			return nil, fmt.Errorf("postpartum[%d]: %w", i, err)
		}
		b.postpartum = append(b.postpartum, rec)
	}

	return b, nil
}
