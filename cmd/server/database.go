package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/bloomtrack-api/internal/config"
	"github.com/phrazzld/bloomtrack-api/internal/platform/sqlstore"
)

// setupAppDatabase opens and pings the configured database.
func setupAppDatabase(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
) (*sql.DB, sqlstore.Dialect, error) {
	db, dialect, err := sqlstore.Open(ctx, cfg.Database, logger)
	if err != nil {
		return nil, "", fmt.Errorf("failed to set up database: %w", err)
	}
	return db, dialect, nil
}

func closeDatabase(db *sql.DB, logger *slog.Logger) {
	if err := db.Close(); err != nil {
		logger.Error("failed to close database connection", slog.String("error", err.Error()))
	}
}
