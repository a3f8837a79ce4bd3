package api

import (
	"context"

	"github.com/phrazzld/bloomtrack-api/internal/domain"
)

// RecordService is the persistence use case set consumed by RecordHandler.
type RecordService interface {
	CreateCycle(ctx context.Context, in domain.CycleInput) (*domain.CycleRecord, error)
	ListCycles(ctx context.Context) ([]*domain.CycleRecord, error)
	DeleteCycle(ctx context.Context, id int64) error

	CreatePregnancy(ctx context.Context, in domain.PregnancyInput) (*domain.PregnancyRecord, error)
	ListPregnancies(ctx context.Context) ([]*domain.PregnancyRecord, error)

	CreateWeight(ctx context.Context, in domain.WeightInput) (*domain.WeightRecord, error)
	ListWeights(ctx context.Context) ([]*domain.WeightRecord, error)

	CreatePostpartum(ctx context.Context, in domain.PostpartumInput) (*domain.PostpartumRecord, error)
	ListPostpartum(ctx context.Context) ([]*domain.PostpartumRecord, error)
}

// PredictionService is the calculator set consumed by PredictionHandler.
type PredictionService interface {
	Cycle(ctx context.Context, in domain.CyclePredictionInput) (*domain.CyclePrediction, error)
	Pregnancy(ctx context.Context, in domain.PregnancyPredictionInput) (*domain.PregnancyPrediction, error)
	Weight(ctx context.Context, in domain.WeightPredictionInput) (*domain.WeightPrediction, error)
	Postpartum(ctx context.Context, in domain.PostpartumPredictionInput) (*domain.PostpartumPrediction, error)
}
