package sqlstore

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/phrazzld/bloomtrack-api/internal/domain"
	"github.com/phrazzld/bloomtrack-api/internal/platform/logger"
	"github.com/phrazzld/bloomtrack-api/internal/store"
)

// CycleStore implements store.CycleStore.
type CycleStore struct {
	db      store.DBTX
	dialect Dialect
	logger  *slog.Logger
}

// NewCycleStore creates a CycleStore. If logger is nil, a default logger
// will be used.
func NewCycleStore(db store.DBTX, dialect Dialect, logger *slog.Logger) *CycleStore {
	if db == nil {
		// ALLOW-PANIC: constructor guard
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CycleStore{
		db:      db,
		dialect: dialect,
		logger:  logger.With(slog.String("component", "cycle_store")),
	}
}

var _ store.CycleStore = (*CycleStore)(nil)

// Create implements store.CycleStore.Create.
func (s *CycleStore) Create(ctx context.Context, cycle *domain.CycleRecord) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := cycle.Validate(); err != nil {
		log.Warn("cycle validation failed during create", slog.String("error", err.Error()))
		return err
	}

	query := s.dialect.Rebind(`
		INSERT INTO cycles (start_date, cycle_length, note, created_at)
		VALUES (?, ?, ?, ?)
		RETURNING id
	`)
	err := s.db.QueryRowContext(ctx, query,
		cycle.StartDate,
		cycle.CycleLength,
		cycle.Note,
		s.dialect.timeArg(cycle.CreatedAt),
	).Scan(&cycle.ID)
	if err != nil {
		log.Error("failed to create cycle",
			slog.String("error", err.Error()),
			slog.String("start_date", cycle.StartDate.String()))
		return store.NewStoreError("cycle", "create", "insert failed", MapError(err))
	}

	log.Info("cycle created",
		slog.Int64("cycle_id", cycle.ID),
		slog.String("start_date", cycle.StartDate.String()),
		slog.Int("cycle_length", cycle.CycleLength))
	return nil
}

// List implements store.CycleStore.List.
func (s *CycleStore) List(ctx context.Context) ([]*domain.CycleRecord, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, start_date, cycle_length, note, created_at
		FROM cycles
		ORDER BY start_date DESC, id DESC
	`)
	if err != nil {
		log.Error("failed to list cycles", slog.String("error", err.Error()))
		return nil, store.NewStoreError("cycle", "list", "query failed", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	cycles := make([]*domain.CycleRecord, 0)
	for rows.Next() {
		c, err := scanCycle(rows)
		if err != nil {
			log.Error("failed to scan cycle", slog.String("error", err.Error()))
			return nil, store.NewStoreError("cycle", "list", "scan failed", err)
		}
		cycles = append(cycles, c)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("cycle", "list", "iteration failed", MapError(err))
	}

	log.Debug("listed cycles", slog.Int("count", len(cycles)))
	return cycles, nil
}

// Delete implements store.CycleStore.Delete.
func (s *CycleStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, s.dialect.Rebind(`DELETE FROM cycles WHERE id = ?`), id)
	if err != nil {
		log.Error("failed to delete cycle",
			slog.String("error", err.Error()),
			slog.Int64("cycle_id", id))
		return store.NewStoreError("cycle", "delete", "delete failed", MapError(err))
	}

	if err := CheckRowsAffected(result, store.ErrCycleNotFound); err != nil {
		log.Debug("cycle not found for delete", slog.Int64("cycle_id", id))
		return err
	}

	log.Info("cycle deleted", slog.Int64("cycle_id", id))
	return nil
}

// Count implements store.CycleStore.Count.
func (s *CycleStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM cycles`).Scan(&n); err != nil {
		return 0, store.NewStoreError("cycle", "count", "query failed", MapError(err))
	}
	return n, nil
}

// WithTx implements store.CycleStore.WithTx.
func (s *CycleStore) WithTx(tx *sql.Tx) store.CycleStore {
	return &CycleStore{db: tx, dialect: s.dialect, logger: s.logger}
}

func scanCycle(row rowScanner) (*domain.CycleRecord, error) {
	var c domain.CycleRecord
	if err := row.Scan(&c.ID, &c.StartDate, &c.CycleLength, &c.Note, scanInto(&c.CreatedAt)); err != nil {
		return nil, err
	}
	return &c, nil
}
