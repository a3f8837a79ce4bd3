package sqlstore

import (
	"context"
	"testing"

	"github.com/phrazzld/bloomtrack-api/internal/domain"
	"github.com/phrazzld/bloomtrack-api/internal/domain/datemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPregnancyStore_CreateAndList(t *testing.T) {
	ctx := context.Background()
	_, stores := newTestStores(t)

	older, err := domain.NewPregnancyRecord(datemath.MethodLMP, datemath.MustParse("2023-05-01"), testNow)
	require.NoError(t, err)
	newer, err := domain.NewPregnancyRecord(datemath.MethodConception, datemath.MustParse("2024-01-01"), testNow)
	require.NoError(t, err)

	require.NoError(t, stores.Pregnancies.Create(ctx, newer))
	require.NoError(t, stores.Pregnancies.Create(ctx, older))

	list, err := stores.Pregnancies.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, newer.ID, list[0].ID)
	assert.Equal(t, datemath.MethodConception, list[0].CalculationMethod)
	assert.Equal(t, "2024-01-01", list[0].ReferenceDate.String())
	assert.Equal(t, "2024-09-23", list[0].DueDate.String())
	assert.Equal(t, older.ID, list[1].ID)
	assert.Equal(t, "2024-02-05", list[1].DueDate.String())
}

func TestWeightStore_CreateAndList(t *testing.T) {
	ctx := context.Background()
	_, stores := newTestStores(t)

	dates := []string{"2024-03-02", "2024-03-09", "2024-02-24"}
	for i, d := range dates {
		w, err := domain.NewWeightRecord(60.5+float64(i), datemath.MustParse(d), nil, testNow)
		require.NoError(t, err)
		require.NoError(t, stores.Weights.Create(ctx, w))
	}
	withNote, err := domain.NewWeightRecord(30, datemath.MustParse("2024-01-01"), strPtr("after flu"), testNow)
	require.NoError(t, err)
	require.NoError(t, stores.Weights.Create(ctx, withNote))

	list, err := stores.Weights.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 4)

	assert.Equal(t, "2024-03-09", list[0].Date.String())
	assert.InDelta(t, 61.5, list[0].Weight, 1e-9)
	assert.Equal(t, "2024-03-02", list[1].Date.String())
	assert.Equal(t, "2024-02-24", list[2].Date.String())
	assert.Equal(t, withNote.ID, list[3].ID)
	require.NotNil(t, list[3].Note)
	assert.Equal(t, "after flu", *list[3].Note)
}

func TestPostpartumStore_CreateAndList(t *testing.T) {
	ctx := context.Background()
	_, stores := newTestStores(t)

	first, err := domain.NewPostpartumRecord(datemath.MustParse("2024-03-01"), 2, 3, strPtr("stitches sore"), nil, testNow)
	require.NoError(t, err)
	second, err := domain.NewPostpartumRecord(datemath.MustParse("2024-03-08"), 4, 4, nil, strPtr("walked 20 min"), testNow)
	require.NoError(t, err)
	require.NoError(t, stores.Postpartum.Create(ctx, first))
	require.NoError(t, stores.Postpartum.Create(ctx, second))

	list, err := stores.Postpartum.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, 4, list[0].Mood)
	assert.Nil(t, list[0].PhysicalRecovery)
	require.NotNil(t, list[0].Note)
	assert.Equal(t, "walked 20 min", *list[0].Note)

	assert.Equal(t, first.ID, list[1].ID)
	require.NotNil(t, list[1].PhysicalRecovery)
	assert.Equal(t, "stitches sore", *list[1].PhysicalRecovery)
	assert.True(t, testNow.Equal(list[1].CreatedAt))
}

func TestStores_ListsAreIndependent(t *testing.T) {
	ctx := context.Background()
	_, stores := newTestStores(t)

	require.NoError(t, stores.Cycles.Create(ctx, mustCycle(t, "2024-01-01", 28, nil)))

	pregnancies, err := stores.Pregnancies.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, pregnancies)

	weights, err := stores.Weights.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, weights)

	checkIns, err := stores.Postpartum.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, checkIns)
}
