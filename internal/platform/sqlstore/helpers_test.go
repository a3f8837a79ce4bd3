package sqlstore

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/phrazzld/bloomtrack-api/internal/config"
	"github.com/phrazzld/bloomtrack-api/internal/domain"
	"github.com/phrazzld/bloomtrack-api/internal/domain/datemath"
	"github.com/phrazzld/bloomtrack-api/internal/platform/logger"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 3, 15, 9, 30, 0, 123456789, time.UTC)

// newTestDB opens a migrated in-memory SQLite database.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()
	log, _ := logger.GetTestLogger(t)

	db, dialect, err := Open(ctx, config.DatabaseConfig{Driver: "sqlite", URL: ":memory:"}, log)
	require.NoError(t, err)
	require.Equal(t, SQLite, dialect)
	t.Cleanup(func() { _ = db.Close() })

	migrator, err := NewMigrator(db, SQLite, log)
	require.NoError(t, err)
	require.NoError(t, migrator.Up(ctx))
	return db
}

func newTestStores(t *testing.T) (*sql.DB, *Stores) {
	t.Helper()
	db := newTestDB(t)
	log, _ := logger.GetTestLogger(t)
	return db, NewStores(db, SQLite, log)
}

func mustCycle(t *testing.T, start string, length int, note *string) *domain.CycleRecord {
	t.Helper()
	c, err := domain.NewCycleRecord(datemath.MustParse(start), length, note, testNow)
	require.NoError(t, err)
	return c
}

func strPtr(s string) *string { return &s }
