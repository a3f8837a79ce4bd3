package sqlstore

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationsFS embed.FS

// Migration commands accepted by Migrator.Run.
const (
	MigrateUp      = "up"
	MigrateDown    = "down"
	MigrateReset   = "reset"
	MigrateStatus  = "status"
	MigrateVersion = "version"
)

// MigrationFS returns the embedded migrations for d.
func MigrationFS(d Dialect) (fs.FS, error) {
	return fs.Sub(migrationsFS, "migrations/"+string(d))
}

// Migrator applies the embedded schema migrations with goose.
type Migrator struct {
	provider *goose.Provider
	logger   *slog.Logger
}

// NewMigrator creates a Migrator for db.
func NewMigrator(db *sql.DB, dialect Dialect, logger *slog.Logger) (*Migrator, error) {
	fsys, err := MigrationFS(dialect)
	if err != nil {
		return nil, fmt.Errorf("failed to load migrations: %w", err)
	}
	provider, err := goose.NewProvider(dialect.gooseDialect(), db, fsys)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration provider: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Migrator{
		provider: provider,
		logger: logger.With(
			slog.String("component", "migrations"),
			slog.String("dialect", string(dialect)),
		),
	}, nil
}

// Run executes one of the Migrate* commands.
func (m *Migrator) Run(ctx context.Context, command string) error {
	log := m.logger.With(
		slog.String("correlation_id", uuid.NewString()),
		slog.String("command", command),
	)
	start := time.Now()
	log.Info("starting migration operation")

	var err error
	switch command {
	case MigrateUp:
		err = m.Up(ctx)
	case MigrateDown:
		err = m.Down(ctx)
	case MigrateReset:
		err = m.Reset(ctx)
	case MigrateStatus:
		err = m.logStatus(ctx, log)
	case MigrateVersion:
		var version int64
		if version, err = m.Version(ctx); err == nil {
			log.Info("current database version", slog.Int64("version", version))
		}
	default:
		err = fmt.Errorf("unknown migration command %q", command)
	}

	log.Info("migration operation completed",
		slog.Int64("duration_ms", time.Since(start).Milliseconds()),
		slog.Bool("success", err == nil))
	return err
}

// Up applies all pending migrations.
func (m *Migrator) Up(ctx context.Context) error {
	results, err := m.provider.Up(ctx)
	m.logResults(results)
	if err != nil {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}

// Down rolls back the most recent migration. It is a no-op on an empty schema.
func (m *Migrator) Down(ctx context.Context) error {
	result, err := m.provider.Down(ctx)
	if errors.Is(err, goose.ErrNoNextVersion) {
		m.logger.Info("no migrations to roll back")
		return nil
	}
	if result != nil {
		m.logResults([]*goose.MigrationResult{result})
	}
	if err != nil {
		return fmt.Errorf("migrate down: %w", err)
	}
	return nil
}

// Reset rolls back every applied migration.
func (m *Migrator) Reset(ctx context.Context) error {
	results, err := m.provider.DownTo(ctx, 0)
	m.logResults(results)
	if err != nil {
		return fmt.Errorf("migrate reset: %w", err)
	}
	return nil
}

// Version returns the latest applied migration version.
func (m *Migrator) Version(ctx context.Context) (int64, error) {
	version, err := m.provider.GetDBVersion(ctx)
	if err != nil {
		return 0, fmt.Errorf("get migration version: %w", err)
	}
	return version, nil
}

// Status returns the state of every known migration.
func (m *Migrator) Status(ctx context.Context) ([]*goose.MigrationStatus, error) {
	statuses, err := m.provider.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("get migration status: %w", err)
	}
	return statuses, nil
}

func (m *Migrator) logStatus(ctx context.Context, log *slog.Logger) error {
	statuses, err := m.Status(ctx)
	if err != nil {
		return err
	}
	for _, s := range statuses {
		attrs := []any{
			slog.Int64("version", s.Source.Version),
			slog.String("path", s.Source.Path),
			slog.String("state", string(s.State)),
		}
		if !s.AppliedAt.IsZero() {
			attrs = append(attrs, slog.Time("applied_at", s.AppliedAt))
		}
		log.Info("migration status", attrs...)
	}
	return nil
}

func (m *Migrator) logResults(results []*goose.MigrationResult) {
	for _, r := range results {
		if r == nil || r.Source == nil {
			continue
		}
		attrs := []any{
			slog.Int64("version", r.Source.Version),
			slog.String("path", r.Source.Path),
			slog.String("direction", r.Direction),
			slog.Int64("duration_ms", r.Duration.Milliseconds()),
		}
		if r.Error != nil {
			m.logger.Error("migration failed", append(attrs, slog.String("error", r.Error.Error()))...)
			continue
		}
		m.logger.Info("migration applied", attrs...)
	}
}
