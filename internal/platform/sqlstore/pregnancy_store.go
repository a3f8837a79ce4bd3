package sqlstore

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/phrazzld/bloomtrack-api/internal/domain"
	"github.com/phrazzld/bloomtrack-api/internal/domain/datemath"
	"github.com/phrazzld/bloomtrack-api/internal/platform/logger"
	"github.com/phrazzld/bloomtrack-api/internal/store"
)

// PregnancyStore implements store.PregnancyStore.
type PregnancyStore struct {
	db      store.DBTX
	dialect Dialect
	logger  *slog.Logger
}

// NewPregnancyStore creates a PregnancyStore.
func NewPregnancyStore(db store.DBTX, dialect Dialect, logger *slog.Logger) *PregnancyStore {
	if db == nil {
		// ALLOW-PANIC: constructor guard
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PregnancyStore{
		db:      db,
		dialect: dialect,
		logger:  logger.With(slog.String("component", "pregnancy_store")),
	}
}

var _ store.PregnancyStore = (*PregnancyStore)(nil)

// Create implements store.PregnancyStore.Create.
func (s *PregnancyStore) Create(ctx context.Context, p *domain.PregnancyRecord) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := p.Validate(); err != nil {
		log.Warn("pregnancy validation failed during create", slog.String("error", err.Error()))
		return err
	}

	query := s.dialect.Rebind(`
		INSERT INTO pregnancies (calculation_method, reference_date, due_date, created_at)
		VALUES (?, ?, ?, ?)
		RETURNING id
	`)
	err := s.db.QueryRowContext(ctx, query,
		string(p.CalculationMethod),
		p.ReferenceDate,
		p.DueDate,
		s.dialect.timeArg(p.CreatedAt),
	).Scan(&p.ID)
	if err != nil {
		log.Error("failed to create pregnancy", slog.String("error", err.Error()))
		return store.NewStoreError("pregnancy", "create", "insert failed", MapError(err))
	}

	log.Info("pregnancy created",
		slog.Int64("pregnancy_id", p.ID),
		slog.String("method", string(p.CalculationMethod)),
		slog.String("due_date", p.DueDate.String()))
	return nil
}

// List implements store.PregnancyStore.List.
func (s *PregnancyStore) List(ctx context.Context) ([]*domain.PregnancyRecord, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, calculation_method, reference_date, due_date, created_at
		FROM pregnancies
		ORDER BY reference_date DESC, id DESC
	`)
	if err != nil {
		log.Error("failed to list pregnancies", slog.String("error", err.Error()))
		return nil, store.NewStoreError("pregnancy", "list", "query failed", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	pregnancies := make([]*domain.PregnancyRecord, 0)
	for rows.Next() {
		var (
			p      domain.PregnancyRecord
			method string
		)
		if err := rows.Scan(&p.ID, &method, &p.ReferenceDate, &p.DueDate, scanInto(&p.CreatedAt)); err != nil {
			log.Error("failed to scan pregnancy", slog.String("error", err.Error()))
			return nil, store.NewStoreError("pregnancy", "list", "scan failed", err)
		}
		p.CalculationMethod = datemath.Method(method)
		pregnancies = append(pregnancies, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("pregnancy", "list", "iteration failed", MapError(err))
	}

	log.Debug("listed pregnancies", slog.Int("count", len(pregnancies)))
	return pregnancies, nil
}

// WithTx implements store.PregnancyStore.WithTx.
func (s *PregnancyStore) WithTx(tx *sql.Tx) store.PregnancyStore {
	return &PregnancyStore{db: tx, dialect: s.dialect, logger: s.logger}
}
