package api

import (
	"context"

	"github.com/phrazzld/bloomtrack-api/internal/domain"
)

type fakeRecordService struct {
	createCycle      func(context.Context, domain.CycleInput) (*domain.CycleRecord, error)
	listCycles       func(context.Context) ([]*domain.CycleRecord, error)
	deleteCycle      func(context.Context, int64) error
	createPregnancy  func(context.Context, domain.PregnancyInput) (*domain.PregnancyRecord, error)
	listPregnancies  func(context.Context) ([]*domain.PregnancyRecord, error)
	createWeight     func(context.Context, domain.WeightInput) (*domain.WeightRecord, error)
	listWeights      func(context.Context) ([]*domain.WeightRecord, error)
	createPostpartum func(context.Context, domain.PostpartumInput) (*domain.PostpartumRecord, error)
	listPostpartum   func(context.Context) ([]*domain.PostpartumRecord, error)
}

func (f *fakeRecordService) CreateCycle(ctx context.Context, in domain.CycleInput) (*domain.CycleRecord, error) {
	return f.createCycle(ctx, in)
}

func (f *fakeRecordService) ListCycles(ctx context.Context) ([]*domain.CycleRecord, error) {
	return f.listCycles(ctx)
}

func (f *fakeRecordService) DeleteCycle(ctx context.Context, id int64) error {
	return f.deleteCycle(ctx, id)
}

func (f *fakeRecordService) CreatePregnancy(ctx context.Context, in domain.PregnancyInput) (*domain.PregnancyRecord, error) {
	return f.createPregnancy(ctx, in)
}

func (f *fakeRecordService) ListPregnancies(ctx context.Context) ([]*domain.PregnancyRecord, error) {
	return f.listPregnancies(ctx)
}

func (f *fakeRecordService) CreateWeight(ctx context.Context, in domain.WeightInput) (*domain.WeightRecord, error) {
	return f.createWeight(ctx, in)
}

func (f *fakeRecordService) ListWeights(ctx context.Context) ([]*domain.WeightRecord, error) {
	return f.listWeights(ctx)
}

func (f *fakeRecordService) CreatePostpartum(ctx context.Context, in domain.PostpartumInput) (*domain.PostpartumRecord, error) {
	return f.createPostpartum(ctx, in)
}

func (f *fakeRecordService) ListPostpartum(ctx context.Context) ([]*domain.PostpartumRecord, error) {
	return f.listPostpartum(ctx)
}

type fakePredictionService struct {
	cycle      func(context.Context, domain.CyclePredictionInput) (*domain.CyclePrediction, error)
	pregnancy  func(context.Context, domain.PregnancyPredictionInput) (*domain.PregnancyPrediction, error)
	weight     func(context.Context, domain.WeightPredictionInput) (*domain.WeightPrediction, error)
	postpartum func(context.Context, domain.PostpartumPredictionInput) (*domain.PostpartumPrediction, error)
}

func (f *fakePredictionService) Cycle(ctx context.Context, in domain.CyclePredictionInput) (*domain.CyclePrediction, error) {
	return f.cycle(ctx, in)
}

func (f *fakePredictionService) Pregnancy(ctx context.Context, in domain.PregnancyPredictionInput) (*domain.PregnancyPrediction, error) {
	return f.pregnancy(ctx, in)
}

func (f *fakePredictionService) Weight(ctx context.Context, in domain.WeightPredictionInput) (*domain.WeightPrediction, error) {
	return f.weight(ctx, in)
}

func (f *fakePredictionService) Postpartum(ctx context.Context, in domain.PostpartumPredictionInput) (*domain.PostpartumPrediction, error) {
	return f.postpartum(ctx, in)
}

type fakePinger struct{ err error }

func (p fakePinger) PingContext(context.Context) error { return p.err }
