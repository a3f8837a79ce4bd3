package sqlstore

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/phrazzld/bloomtrack-api/internal/domain"
	"github.com/phrazzld/bloomtrack-api/internal/platform/logger"
	"github.com/phrazzld/bloomtrack-api/internal/store"
)

// WeightStore implements store.WeightStore.
type WeightStore struct {
	db      store.DBTX
	dialect Dialect
	logger  *slog.Logger
}

// NewWeightStore creates a WeightStore.
func NewWeightStore(db store.DBTX, dialect Dialect, logger *slog.Logger) *WeightStore {
	if db == nil {
		// ALLOW-PANIC: constructor guard
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &WeightStore{
		db:      db,
		dialect: dialect,
		logger:  logger.With(slog.String("component", "weight_store")),
	}
}

var _ store.WeightStore = (*WeightStore)(nil)

// Create implements store.WeightStore.Create.
func (s *WeightStore) Create(ctx context.Context, w *domain.WeightRecord) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := w.Validate(); err != nil {
		log.Warn("weight validation failed during create", slog.String("error", err.Error()))
		return err
	}

	query := s.dialect.Rebind(`
		INSERT INTO weights (weight, date, note, created_at)
		VALUES (?, ?, ?, ?)
		RETURNING id
	`)
	err := s.db.QueryRowContext(ctx, query,
		w.Weight,
		w.Date,
		w.Note,
		s.dialect.timeArg(w.CreatedAt),
	).Scan(&w.ID)
	if err != nil {
		log.Error("failed to create weight entry", slog.String("error", err.Error()))
		return store.NewStoreError("weight", "create", "insert failed", MapError(err))
	}

	log.Info("weight entry created",
		slog.Int64("weight_id", w.ID),
		slog.String("date", w.Date.String()))
	return nil
}

// List implements store.WeightStore.List.
func (s *WeightStore) List(ctx context.Context) ([]*domain.WeightRecord, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, weight, date, note, created_at
		FROM weights
		ORDER BY date DESC, id DESC
	`)
	if err != nil {
		log.Error("failed to list weight entries", slog.String("error", err.Error()))
		return nil, store.NewStoreError("weight", "list", "query failed", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	weights := make([]*domain.WeightRecord, 0)
	for rows.Next() {
		var w domain.WeightRecord
		if err := rows.Scan(&w.ID, &w.Weight, &w.Date, &w.Note, scanInto(&w.CreatedAt)); err != nil {
			log.Error("failed to scan weight entry", slog.String("error", err.Error()))
			return nil, store.NewStoreError("weight", "list", "scan failed", err)
		}
		weights = append(weights, &w)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("weight", "list", "iteration failed", MapError(err))
	}

	log.Debug("listed weight entries", slog.Int("count", len(weights)))
	return weights, nil
}

// WithTx implements store.WeightStore.WithTx.
func (s *WeightStore) WithTx(tx *sql.Tx) store.WeightStore {
	return &WeightStore{db: tx, dialect: s.dialect, logger: s.logger}
}
