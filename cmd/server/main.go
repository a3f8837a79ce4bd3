// Package main implements the entry point for the bloomtrack API server,
// which stores cycle, pregnancy, weight and postpartum records and serves
// calendar-based predictions.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	migrateCmd := flag.String("migrate", "", "run a migration command and exit (up, down, status, version, reset)")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *migrateCmd, *verbose); err != nil {
		slog.Error("bloomtrack exited with error", slog.String("error", err.Error()))
		stop()
		os.Exit(1)
	}
}

// run wires configuration, logging and the database, then either executes a
// migration command or serves HTTP until ctx is canceled.
func run(ctx context.Context, migrateCmd string, verbose bool) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}
	if verbose {
		cfg.Server.LogLevel = "debug"
	}

	log, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}
	log.Info("server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.String("database_driver", cfg.Database.Driver))

	db, dialect, err := setupAppDatabase(ctx, cfg, log)
	if err != nil {
		return err
	}

	if migrateCmd != "" {
		defer closeDatabase(db, log)
		return handleMigrations(ctx, db, dialect, migrateCmd, log)
	}

	app, err := newApplication(ctx, cfg, log, db, dialect)
	if err != nil {
		closeDatabase(db, log)
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	return app.Run(ctx)
}
