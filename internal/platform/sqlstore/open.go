package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the pgx driver
	"github.com/phrazzld/bloomtrack-api/internal/config"
	_ "modernc.org/sqlite" // registers the sqlite driver
)

const pingTimeout = 5 * time.Second

var sqlitePragmas = []string{
	"PRAGMA foreign_keys = ON",
	"PRAGMA journal_mode = WAL",
	"PRAGMA busy_timeout = 5000",
}

// Open connects to the configured database, applies pool settings and
// verifies the connection with a ping. SQLite runs on a single connection.
func Open(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*sql.DB, Dialect, error) {
	dialect, err := ParseDialect(cfg.Driver)
	if err != nil {
		return nil, "", err
	}
	if logger == nil {
		logger = slog.Default()
	}
	log := logger.With(slog.String("component", "database"), slog.String("driver", string(dialect)))

	db, err := sql.Open(dialect.DriverName(), cfg.URL)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open database: %w", err)
	}

	switch dialect {
	case SQLite:
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)
		for _, pragma := range sqlitePragmas {
			if _, err := db.ExecContext(ctx, pragma); err != nil {
				closeQuietly(db, log)
				return nil, "", fmt.Errorf("failed to apply %q: %w", pragma, err)
			}
		}
	default:
		db.SetMaxOpenConns(cfg.MaxOpenConns)
		db.SetMaxIdleConns(cfg.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetimeMinutes) * time.Minute)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		closeQuietly(db, log)
		return nil, "", fmt.Errorf("database ping failed: %w", err)
	}

	log.Info("database connection established")
	return db, dialect, nil
}

func closeQuietly(db *sql.DB, log *slog.Logger) {
	if err := db.Close(); err != nil {
		log.Error("error closing database", slog.String("error", err.Error()))
	}
}
