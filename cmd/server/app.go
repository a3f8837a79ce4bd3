package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/bloomtrack-api/internal/config"
	"github.com/phrazzld/bloomtrack-api/internal/platform/metrics"
	"github.com/phrazzld/bloomtrack-api/internal/platform/sqlstore"
	"github.com/phrazzld/bloomtrack-api/internal/service"
	"github.com/phrazzld/bloomtrack-api/internal/validation"
)

// application holds the server's dependencies.
type application struct {
	config      *config.Config
	logger      *slog.Logger
	db          *sql.DB
	dialect     sqlstore.Dialect
	metrics     *metrics.Recorder
	records     *service.RecordService
	predictions *service.PredictionService
}

// newApplication migrates and optionally seeds db, then builds the services.
// opts are passed to every service; tests use them to pin the clock.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
	dialect sqlstore.Dialect,
	opts ...service.Option,
) (*application, error) {
	if cfg.Database.AutoMigrate {
		migrator, err := sqlstore.NewMigrator(db, dialect, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create migrator: %w", err)
		}
		if err := migrator.Up(ctx); err != nil {
			return nil, fmt.Errorf("failed to apply migrations: %w", err)
		}
	}

	app := &application{
		config:  cfg,
		logger:  logger,
		db:      db,
		dialect: dialect,
	}

	if cfg.Metrics.Enabled {
		app.metrics = metrics.New()
		opts = append([]service.Option{service.WithObserver(app.metrics)}, opts...)
	}

	records := sqlstore.NewStores(db, dialect, logger).Records()
	gate := validation.NewGate()

	var err error
	app.records, err = service.NewRecordService(records, gate, logger, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create record service: %w", err)
	}
	app.predictions, err = service.NewPredictionService(gate, logger, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create prediction service: %w", err)
	}

	if cfg.Seed.Enabled {
		if err := app.seed(ctx, records); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Run serves HTTP until ctx is canceled, then releases resources.
func (app *application) Run(ctx context.Context) error {
	defer app.cleanup()
	return app.startHTTPServer(ctx, app.setupRouter())
}

func (app *application) cleanup() {
	app.logger.Info("closing database connection")
	closeDatabase(app.db, app.logger)
}
