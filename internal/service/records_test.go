package service

import (
	"context"
	"errors"
	"testing"

	"github.com/phrazzld/bloomtrack-api/internal/domain"
	"github.com/phrazzld/bloomtrack-api/internal/domain/datemath"
	"github.com/phrazzld/bloomtrack-api/internal/platform/logger"
	"github.com/phrazzld/bloomtrack-api/internal/store"
	"github.com/phrazzld/bloomtrack-api/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recordFixture struct {
	svc         *RecordService
	cycles      *MockCycleStore
	pregnancies *MockPregnancyStore
	weights     *MockWeightStore
	postpartum  *MockPostpartumStore
	observer    *recordingObserver
}

func newRecordFixture(t *testing.T) *recordFixture {
	t.Helper()
	f := &recordFixture{
		cycles:      new(MockCycleStore),
		pregnancies: new(MockPregnancyStore),
		weights:     new(MockWeightStore),
		postpartum:  new(MockPostpartumStore),
		observer:    newRecordingObserver(),
	}
	log, _ := logger.GetTestLogger(t)
	svc, err := NewRecordService(store.Records{
		Cycles:      f.cycles,
		Pregnancies: f.pregnancies,
		Weights:     f.weights,
		Postpartum:  f.postpartum,
	}, validation.NewGate(), log, WithClock(fixedClock), WithObserver(f.observer))
	require.NoError(t, err)
	f.svc = svc
	t.Cleanup(func() {
		f.cycles.AssertExpectations(t)
		f.pregnancies.AssertExpectations(t)
		f.weights.AssertExpectations(t)
		f.postpartum.AssertExpectations(t)
	})
	return f
}

func TestNewRecordService_NilDependencies(t *testing.T) {
	gate := validation.NewGate()
	full := store.Records{
		Cycles:      new(MockCycleStore),
		Pregnancies: new(MockPregnancyStore),
		Weights:     new(MockWeightStore),
		Postpartum:  new(MockPostpartumStore),
	}

	tests := []struct {
		name      string
		repos     store.Records
		validator Validator
		msg       string
	}{
		{"nil cycles", store.Records{Pregnancies: full.Pregnancies, Weights: full.Weights, Postpartum: full.Postpartum}, gate, "cycle store cannot be nil"},
		{"nil pregnancies", store.Records{Cycles: full.Cycles, Weights: full.Weights, Postpartum: full.Postpartum}, gate, "pregnancy store cannot be nil"},
		{"nil weights", store.Records{Cycles: full.Cycles, Pregnancies: full.Pregnancies, Postpartum: full.Postpartum}, gate, "weight store cannot be nil"},
		{"nil postpartum", store.Records{Cycles: full.Cycles, Pregnancies: full.Pregnancies, Weights: full.Weights}, gate, "postpartum store cannot be nil"},
		{"nil validator", full, nil, "validator cannot be nil"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewRecordService(tt.repos, tt.validator, nil)
			assert.Nil(t, svc)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}

	svc, err := NewRecordService(full, gate, nil)
	require.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestCreateCycle(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults cycle length and stamps createdAt", func(t *testing.T) {
		f := newRecordFixture(t)
		f.cycles.On("Create", ctx, mock.MatchedBy(func(c *domain.CycleRecord) bool {
			return c.StartDate.String() == "2024-03-01" && c.CycleLength == domain.DefaultCycleLength
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.CycleRecord).ID = 7
		}).Return(nil).Once()

		cycle, err := f.svc.CreateCycle(ctx, domain.CycleInput{StartDate: "2024-03-01", Note: strPtr("light")})
		require.NoError(t, err)
		assert.Equal(t, int64(7), cycle.ID)
		assert.Equal(t, fixedNow, cycle.CreatedAt)
		assert.Equal(t, "light", *cycle.Note)
		assert.Equal(t, []string{EntityCycle}, f.observer.created)
		assert.Equal(t, []bool{true}, f.observer.operations["create_cycle"])
	})

	t.Run("rejects out of range length without touching the store", func(t *testing.T) {
		f := newRecordFixture(t)
		_, err := f.svc.CreateCycle(ctx, domain.CycleInput{StartDate: "2024-03-01", CycleLength: intPtr(19)})

		var vErr *domain.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "cycleLength", vErr.Field)
		assert.Empty(t, f.observer.created)
		assert.Equal(t, []bool{false}, f.observer.operations["create_cycle"])
	})

	t.Run("rejects impossible calendar date", func(t *testing.T) {
		f := newRecordFixture(t)
		_, err := f.svc.CreateCycle(ctx, domain.CycleInput{StartDate: "2024-02-30"})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("wraps store failure", func(t *testing.T) {
		f := newRecordFixture(t)
		dbErr := errors.New("disk I/O error")
		f.cycles.On("Create", ctx, mock.Anything).Return(dbErr).Once()

		_, err := f.svc.CreateCycle(ctx, domain.CycleInput{StartDate: "2024-03-01"})
		var svcErr *RecordServiceError
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, "create_cycle", svcErr.Operation)
		assert.ErrorIs(t, err, dbErr)
		assert.NotErrorIs(t, err, domain.ErrValidation)
	})
}

func TestListAndDeleteCycles(t *testing.T) {
	ctx := context.Background()
	f := newRecordFixture(t)

	stored := []*domain.CycleRecord{{ID: 2, StartDate: datemath.MustParse("2024-02-01"), CycleLength: 28}}
	f.cycles.On("List", ctx).Return(stored, nil).Once()
	f.cycles.On("Delete", ctx, int64(2)).Return(nil).Once()
	f.cycles.On("Delete", ctx, int64(99)).Return(store.ErrCycleNotFound).Once()

	list, err := f.svc.ListCycles(ctx)
	require.NoError(t, err)
	assert.Equal(t, stored, list)

	require.NoError(t, f.svc.DeleteCycle(ctx, 2))
	err = f.svc.DeleteCycle(ctx, 99)
	assert.ErrorIs(t, err, store.ErrCycleNotFound)
	assert.ErrorIs(t, err, store.ErrNotFound)

	assert.Equal(t, []string{EntityCycle}, f.observer.deleted)
	assert.Equal(t, []bool{true, false}, f.observer.operations["delete_cycle"])
}

func TestCreatePregnancyDerivesDueDate(t *testing.T) {
	ctx := context.Background()
	f := newRecordFixture(t)

	f.pregnancies.On("Create", ctx, mock.AnythingOfType("*domain.PregnancyRecord")).Return(nil).Once()

	p, err := f.svc.CreatePregnancy(ctx, domain.PregnancyInput{CalculationMethod: "conception", ReferenceDate: "2024-01-01"})
	require.NoError(t, err)
	assert.Equal(t, "2024-09-23", p.DueDate.String())
	assert.Equal(t, datemath.MethodConception, p.CalculationMethod)

	_, err = f.svc.CreatePregnancy(ctx, domain.PregnancyInput{CalculationMethod: "ivf", ReferenceDate: "2024-01-01"})
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "calculationMethod", vErr.Field)
}

func TestCreateWeightAndPostpartum(t *testing.T) {
	ctx := context.Background()
	f := newRecordFixture(t)

	f.weights.On("Create", ctx, mock.AnythingOfType("*domain.WeightRecord")).Return(nil).Once()
	f.postpartum.On("Create", ctx, mock.AnythingOfType("*domain.PostpartumRecord")).Return(nil).Once()

	w, err := f.svc.CreateWeight(ctx, domain.WeightInput{Weight: 64.2, Date: "2024-03-10"})
	require.NoError(t, err)
	assert.InDelta(t, 64.2, w.Weight, 1e-9)

	_, err = f.svc.CreateWeight(ctx, domain.WeightInput{Weight: 25, Date: "2024-03-10"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	p, err := f.svc.CreatePostpartum(ctx, domain.PostpartumInput{
		CheckDate:        "2024-03-10",
		Mood:             3,
		Energy:           2,
		PhysicalRecovery: strPtr("sore"),
	})
	require.NoError(t, err)
	assert.Equal(t, 3, p.Mood)
	assert.Nil(t, p.Note)

	_, err = f.svc.CreatePostpartum(ctx, domain.PostpartumInput{CheckDate: "2024-03-10", Mood: 6, Energy: 2})
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "mood", vErr.Field)

	assert.Equal(t, []string{EntityWeight, EntityPostpartum}, f.observer.created)
}

func TestListFailuresAreWrapped(t *testing.T) {
	ctx := context.Background()
	f := newRecordFixture(t)
	dbErr := errors.New("connection refused")

	f.pregnancies.On("List", ctx).Return(nil, dbErr).Once()
	f.weights.On("List", ctx).Return(nil, dbErr).Once()
	f.postpartum.On("List", ctx).Return([]*domain.PostpartumRecord{}, nil).Once()

	_, err := f.svc.ListPregnancies(ctx)
	var svcErr *RecordServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "list_pregnancies", svcErr.Operation)

	_, err = f.svc.ListWeights(ctx)
	assert.ErrorIs(t, err, dbErr)

	checkIns, err := f.svc.ListPostpartum(ctx)
	require.NoError(t, err)
	assert.NotNil(t, checkIns)
}
