package seed

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/bloomtrack-api/internal/domain/datemath"
	"github.com/phrazzld/bloomtrack-api/internal/platform/logger"
	"github.com/phrazzld/bloomtrack-api/internal/store"
)

// Result counts the records a run inserted.
type Result struct {
	Skipped     bool
	Cycles      int
	Pregnancies int
	Weights     int
	Postpartum  int
}

// Seeder writes a fixture through the record stores.
type Seeder struct {
	db      *sql.DB
	records store.Records
	logger  *slog.Logger
	now     func() time.Time
}

// New creates a Seeder. now defaults to time.Now.
func New(db *sql.DB, records store.Records, logger *slog.Logger, now func() time.Time) *Seeder {
	if db == nil {
		// ALLOW-PANIC: constructor guard
		panic("db cannot be nil")
	}
	if records.Cycles == nil || records.Pregnancies == nil || records.Weights == nil || records.Postpartum == nil {
		// ALLOW-PANIC: constructor guard
		panic("records must have every store set")
	}
	if logger == nil {
		logger = slog.Default()
	}
	if now == nil {
		now = time.Now
	}
	return &Seeder{
		db:      db,
		records: records,
		logger:  logger.With(slog.String("component", "seeder")),
		now:     now,
	}
}

// Run inserts fixture when the cycles table is empty. All records go in
// one transaction; a failure leaves the database untouched.
func (s *Seeder) Run(ctx context.Context, fixture *Fixture) (Result, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	count, err := s.records.Cycles.Count(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("count cycles: %w", err)
	}
	if count > 0 {
		log.Info("database already seeded, skipping", slog.Int("cycles", count))
		return Result{Skipped: true}, nil
	}

	now := s.now()
	b, err := fixture.build(datemath.FromTime(now), now)
	if err != nil {
		return Result{}, fmt.Errorf("invalid seed fixture: %w", err)
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txRecords := s.records.WithTx(tx)
		for _, c := range b.cycles {
			if err := txRecords.Cycles.Create(ctx, c); err != nil {
				return err
			}
		}
		for _, p := range b.pregnancies {
			if err := txRecords.Pregnancies.Create(ctx, p); err != nil {
				return err
			}
		}
		for _, w := range b.weights {
			if err := txRecords.Weights.Create(ctx, w); err != nil {
				return err
			}
		}
		for _, p := range b.postpartum {
			if err := txRecords.Postpartum.Create(ctx, p); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return Result{}, fmt.Errorf("seed database: %w", err)
	}

	res := Result{
		Cycles:      len(b.cycles),
		Pregnancies: len(b.pregnancies),
		Weights:     len(b.weights),
		Postpartum:  len(b.postpartum),
	}
	log.Info("database seeded",
		slog.Int("cycles", res.Cycles),
		slog.Int("pregnancies", res.Pregnancies),
		slog.Int("weights", res.Weights),
		slog.Int("postpartum", res.Postpartum))
	return res, nil
}
