package sqlstore

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/phrazzld/bloomtrack-api/internal/domain"
	"github.com/phrazzld/bloomtrack-api/internal/platform/logger"
	"github.com/phrazzld/bloomtrack-api/internal/store"
)

// PostpartumStore implements store.PostpartumStore.
type PostpartumStore struct {
	db      store.DBTX
	dialect Dialect
	logger  *slog.Logger
}

// NewPostpartumStore creates a PostpartumStore.
func NewPostpartumStore(db store.DBTX, dialect Dialect, logger *slog.Logger) *PostpartumStore {
	if db == nil {
		// ALLOW-PANIC: constructor guard
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostpartumStore{
		db:      db,
		dialect: dialect,
		logger:  logger.With(slog.String("component", "postpartum_store")),
	}
}

var _ store.PostpartumStore = (*PostpartumStore)(nil)

// Create implements store.PostpartumStore.Create.
func (s *PostpartumStore) Create(ctx context.Context, p *domain.PostpartumRecord) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := p.Validate(); err != nil {
		log.Warn("postpartum validation failed during create", slog.String("error", err.Error()))
		return err
	}

	query := s.dialect.Rebind(`
		INSERT INTO postpartum_checks (check_date, mood, energy, physical_recovery, note, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id
	`)
	err := s.db.QueryRowContext(ctx, query,
		p.CheckDate,
		p.Mood,
		p.Energy,
		p.PhysicalRecovery,
		p.Note,
		s.dialect.timeArg(p.CreatedAt),
	).Scan(&p.ID)
	if err != nil {
		log.Error("failed to create postpartum check-in", slog.String("error", err.Error()))
		return store.NewStoreError("postpartum", "create", "insert failed", MapError(err))
	}

	log.Info("postpartum check-in created",
		slog.Int64("postpartum_id", p.ID),
		slog.String("check_date", p.CheckDate.String()))
	return nil
}

// List implements store.PostpartumStore.List.
func (s *PostpartumStore) List(ctx context.Context) ([]*domain.PostpartumRecord, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, check_date, mood, energy, physical_recovery, note, created_at
		FROM postpartum_checks
		ORDER BY check_date DESC, id DESC
	`)
	if err != nil {
		log.Error("failed to list postpartum check-ins", slog.String("error", err.Error()))
		return nil, store.NewStoreError("postpartum", "list", "query failed", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	checkIns := make([]*domain.PostpartumRecord, 0)
	for rows.Next() {
		var p domain.PostpartumRecord
		err := rows.Scan(&p.ID, &p.CheckDate, &p.Mood, &p.Energy,
			&p.PhysicalRecovery, &p.Note, scanInto(&p.CreatedAt))
		if err != nil {
			log.Error("failed to scan postpartum check-in", slog.String("error", err.Error()))
			return nil, store.NewStoreError("postpartum", "list", "scan failed", err)
		}
		checkIns = append(checkIns, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("postpartum", "list", "iteration failed", MapError(err))
	}

	log.Debug("listed postpartum check-ins", slog.Int("count", len(checkIns)))
	return checkIns, nil
}

// WithTx implements store.PostpartumStore.WithTx.
func (s *PostpartumStore) WithTx(tx *sql.Tx) store.PostpartumStore {
	return &PostpartumStore{db: tx, dialect: s.dialect, logger: s.logger}
}
