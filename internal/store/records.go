package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/bloomtrack-api/internal/domain"
)

// CycleStore persists cycle records.
type CycleStore interface {
	// Create inserts the record and sets its ID. CreatedAt is stored as given.
	Create(ctx context.Context, cycle *domain.CycleRecord) error

	// List returns all cycles, most recent StartDate first. Ties are broken
	// by ID, newest first. The result is never nil.
	List(ctx context.Context) ([]*domain.CycleRecord, error)

	// Delete removes a cycle by ID.
	// Returns ErrCycleNotFound if the cycle does not exist.
	Delete(ctx context.Context, id int64) error

	// Count returns the number of stored cycles.
	Count(ctx context.Context) (int, error)

	// WithTx returns a CycleStore bound to tx.
	WithTx(tx *sql.Tx) CycleStore
}

// PregnancyStore persists pregnancy records.
type PregnancyStore interface {
	// Create inserts the record and sets its ID.
	Create(ctx context.Context, pregnancy *domain.PregnancyRecord) error

	// List returns all pregnancies, most recent ReferenceDate first.
	List(ctx context.Context) ([]*domain.PregnancyRecord, error)

	// WithTx returns a PregnancyStore bound to tx.
	WithTx(tx *sql.Tx) PregnancyStore
}

// WeightStore persists weight records.
type WeightStore interface {
	// Create inserts the record and sets its ID.
	Create(ctx context.Context, weight *domain.WeightRecord) error

	// List returns all weight entries, most recent Date first.
	List(ctx context.Context) ([]*domain.WeightRecord, error)

	// WithTx returns a WeightStore bound to tx.
	WithTx(tx *sql.Tx) WeightStore
}

// PostpartumStore persists postpartum check-ins.
type PostpartumStore interface {
	// Create inserts the record and sets its ID.
	Create(ctx context.Context, checkIn *domain.PostpartumRecord) error

	// List returns all check-ins, most recent CheckDate first.
	List(ctx context.Context) ([]*domain.PostpartumRecord, error)

	// WithTx returns a PostpartumStore bound to tx.
	WithTx(tx *sql.Tx) PostpartumStore
}

// Records groups one store per entity.
type Records struct {
	Cycles      CycleStore
	Pregnancies PregnancyStore
	Weights     WeightStore
	Postpartum  PostpartumStore
}

// WithTx returns a Records whose stores are all bound to tx.
func (r Records) WithTx(tx *sql.Tx) Records {
	return Records{
		Cycles:      r.Cycles.WithTx(tx),
		Pregnancies: r.Pregnancies.WithTx(tx),
		Weights:     r.Weights.WithTx(tx),
		Postpartum:  r.Postpartum.WithTx(tx),
	}
}
