package seed

import (
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/phrazzld/bloomtrack-api/internal/config"
	"github.com/phrazzld/bloomtrack-api/internal/domain"
	"github.com/phrazzld/bloomtrack-api/internal/domain/datemath"
	"github.com/phrazzld/bloomtrack-api/internal/platform/logger"
	"github.com/phrazzld/bloomtrack-api/internal/platform/sqlstore"
	"github.com/phrazzld/bloomtrack-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var seedNow = time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)

func newSeedDB(t *testing.T) (*sql.DB, store.Records) {
	t.Helper()
	ctx := context.Background()
	log, _ := logger.GetTestLogger(t)

	db, dialect, err := sqlstore.Open(ctx, config.DatabaseConfig{Driver: config.DriverSQLite, URL: ":memory:"}, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	m, err := sqlstore.NewMigrator(db, dialect, log)
	require.NoError(t, err)
	require.NoError(t, m.Up(ctx))

	return db, sqlstore.NewStores(db, dialect, log).Records()
}

func newSeeder(t *testing.T) (*Seeder, store.Records, *logger.TestLogBuffer) {
	t.Helper()
	db, records := newSeedDB(t)
	log, buf := logger.GetTestLogger(t)
	return New(db, records, log, func() time.Time { return seedNow }), records, buf
}

func TestRunDefaultFixture(t *testing.T) {
	ctx := context.Background()
	s, records, buf := newSeeder(t)

	res, err := s.Run(ctx, Default())
	require.NoError(t, err)
	assert.Equal(t, Result{Cycles: 2}, res)
	logger.AssertLogContains(t, buf, "database seeded")

	cycles, err := records.Cycles.List(ctx)
	require.NoError(t, err)
	require.Len(t, cycles, 2)
	assert.Equal(t, "2024-02-16", cycles[0].StartDate.String())
	assert.Equal(t, 28, cycles[0].CycleLength)
	assert.Equal(t, "Last month's cycle", *cycles[0].Note)
	assert.Equal(t, "2024-01-18", cycles[1].StartDate.String())
	assert.Equal(t, 29, cycles[1].CycleLength)
	assert.Equal(t, "Two months ago", *cycles[1].Note)

	again, err := s.Run(ctx, Default())
	require.NoError(t, err)
	assert.True(t, again.Skipped)
	logger.AssertLogContains(t, buf, "database already seeded")

	count, err := records.Cycles.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestRunFixtureFile(t *testing.T) {
	ctx := context.Background()
	s, records, _ := newSeeder(t)

	fixture, err := LoadFile(filepath.Join("testdata", "fixture.yaml"))
	require.NoError(t, err)

	res, err := s.Run(ctx, fixture)
	require.NoError(t, err)
	assert.Equal(t, Result{Cycles: 2, Pregnancies: 1, Weights: 2, Postpartum: 1}, res)

	cycles, err := records.Cycles.List(ctx)
	require.NoError(t, err)
	require.Len(t, cycles, 2)
	assert.Equal(t, "2024-03-05", cycles[0].StartDate.String())
	assert.Equal(t, domain.DefaultCycleLength, cycles[0].CycleLength)
	assert.Equal(t, 30, cycles[1].CycleLength)

	pregnancies, err := records.Pregnancies.List(ctx)
	require.NoError(t, err)
	require.Len(t, pregnancies, 1)
	assert.Equal(t, "2024-10-07", pregnancies[0].DueDate.String())

	weights, err := records.Weights.List(ctx)
	require.NoError(t, err)
	require.Len(t, weights, 2)
	assert.Equal(t, "2024-03-08", weights[0].Date.String())

	checkIns, err := records.Postpartum.List(ctx)
	require.NoError(t, err)
	require.Len(t, checkIns, 1)
	assert.Equal(t, "2024-03-15", checkIns[0].CheckDate.String())
}

func TestRunInvalidFixtureWritesNothing(t *testing.T) {
	ctx := context.Background()
	s, records, _ := newSeeder(t)

	fixture, err := Parse(strings.NewReader(`
cycles:
  - days_ago: 3
postpartum:
  - date: "2024-03-01"
    mood: 9
    energy: 3
`))
	require.NoError(t, err)

	_, err = s.Run(ctx, fixture)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "postpartum[0]")

	count, err := records.Cycles.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{name: "empty document", input: ""},
		{name: "unknown key", input: "cycles:\n  - days_ago: 1\n    colour: red\n", wantErr: "field colour not found"},
		{name: "bad type", input: "weights:\n  - days_ago: 1\n    weight: heavy\n", wantErr: "decode seed fixture"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse(strings.NewReader(tt.input))
			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.True(t, f.Empty())
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	_, err := LoadFile(filepath.Join("testdata", "missing.yaml"))
	assert.ErrorContains(t, err, "read seed file")
}

func TestWhenResolve(t *testing.T) {
	today := datemath.FromTime(seedNow)
	three, negative := 3, -1

	got, err := When{DaysAgo: &three}.Resolve(today)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-12", got.String())

	got, err = When{Date: "2023-12-31"}.Resolve(today)
	require.NoError(t, err)
	assert.Equal(t, "2023-12-31", got.String())

	_, err = When{}.Resolve(today)
	assert.ErrorIs(t, err, errMissingDate)

	_, err = When{Date: "2024-01-01", DaysAgo: &three}.Resolve(today)
	assert.ErrorContains(t, err, "mutually exclusive")

	_, err = When{DaysAgo: &negative}.Resolve(today)
	assert.ErrorContains(t, err, "must not be negative")
}
