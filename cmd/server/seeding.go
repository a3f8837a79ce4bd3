package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/bloomtrack-api/internal/seed"
	"github.com/phrazzld/bloomtrack-api/internal/store"
)

// seed loads the configured fixture, or the built-in sample, into an empty
// database.
func (app *application) seed(ctx context.Context, records store.Records) error {
	fixture := seed.Default()
	if path := app.config.Seed.File; path != "" {
		loaded, err := seed.LoadFile(path)
		if err != nil {
			return fmt.Errorf("failed to load seed fixture: %w", err)
		}
		fixture = loaded
	}

	result, err := seed.New(app.db, records, app.logger, nil).Run(ctx, fixture)
	if err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}
	if !result.Skipped {
		app.logger.Debug("seed fixture applied", slog.String("source", seedSource(app.config.Seed.File)))
	}
	return nil
}

func seedSource(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}
