package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/phrazzld/bloomtrack-api/internal/domain"
	"github.com/phrazzld/bloomtrack-api/internal/domain/datemath"
	"github.com/phrazzld/bloomtrack-api/internal/platform/logger"
	"github.com/phrazzld/bloomtrack-api/internal/store"
	"github.com/phrazzld/bloomtrack-api/internal/validation"
)

// Entity names used in logs and metrics.
const (
	EntityCycle      = "cycle"
	EntityPregnancy  = "pregnancy"
	EntityWeight     = "weight"
	EntityPostpartum = "postpartum"
)

func validateRecords(r store.Records) error {
	switch {
	case r.Cycles == nil:
		return errors.New("cycle store cannot be nil")
	case r.Pregnancies == nil:
		return errors.New("pregnancy store cannot be nil")
	case r.Weights == nil:
		return errors.New("weight store cannot be nil")
	case r.Postpartum == nil:
		return errors.New("postpartum store cannot be nil")
	}
	return nil
}

// RecordService validates inputs and persists records.
type RecordService struct {
	repos     store.Records
	validator Validator
	logger    *slog.Logger
	opts      options
}

// NewRecordService creates a RecordService.
// It returns an error if any store or the validator is nil.
func NewRecordService(
	repos store.Records,
	validator Validator,
	logger *slog.Logger,
	opts ...Option,
) (*RecordService, error) {
	if err := validateRecords(repos); err != nil {
		return nil, &RecordServiceError{Operation: "create_service", Message: err.Error()}
	}
	if validator == nil {
		return nil, &RecordServiceError{Operation: "create_service", Message: "validator cannot be nil"}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &RecordService{
		repos:     repos,
		validator: validator,
		logger:    logger.With(slog.String("component", "record_service")),
		opts:      buildOptions(opts),
	}, nil
}

func (s *RecordService) now() time.Time {
	return s.opts.clock()
}

// CreateCycle validates in and stores a new cycle. An omitted cycle length
// defaults to 28 days.
func (s *RecordService) CreateCycle(ctx context.Context, in domain.CycleInput) (_ *domain.CycleRecord, err error) {
	defer s.opts.observe(ctx, "create_cycle", time.Now(), &err)
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.validator.Check(in); err != nil {
		return nil, err
	}
	start, err := validation.ParseDate("startDate", in.StartDate)
	if err != nil {
		return nil, err
	}
	cycle, err := domain.NewCycleRecord(start, in.Length(), in.Note, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.repos.Cycles.Create(ctx, cycle); err != nil {
		log.Error("failed to save cycle", slog.String("error", err.Error()))
		return nil, NewRecordServiceError("create_cycle", "failed to save cycle", err)
	}
	s.opts.observer.RecordCreated(EntityCycle)
	return cycle, nil
}

// ListCycles returns every cycle, most recent first.
func (s *RecordService) ListCycles(ctx context.Context) (_ []*domain.CycleRecord, err error) {
	defer s.opts.observe(ctx, "list_cycles", time.Now(), &err)

	cycles, err := s.repos.Cycles.List(ctx)
	if err != nil {
		return nil, NewRecordServiceError("list_cycles", "failed to list cycles", err)
	}
	return cycles, nil
}

// DeleteCycle removes a cycle. Unknown ids yield store.ErrCycleNotFound.
func (s *RecordService) DeleteCycle(ctx context.Context, id int64) (err error) {
	defer s.opts.observe(ctx, "delete_cycle", time.Now(), &err)

	if err := s.repos.Cycles.Delete(ctx, id); err != nil {
		return NewRecordServiceError("delete_cycle", "failed to delete cycle", err)
	}
	s.opts.observer.RecordDeleted(EntityCycle)
	return nil
}

// CreatePregnancy validates in and stores a pregnancy with its derived due
// date.
func (s *RecordService) CreatePregnancy(ctx context.Context, in domain.PregnancyInput) (_ *domain.PregnancyRecord, err error) {
	defer s.opts.observe(ctx, "create_pregnancy", time.Now(), &err)
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.validator.Check(in); err != nil {
		return nil, err
	}
	ref, err := validation.ParseDate("referenceDate", in.ReferenceDate)
	if err != nil {
		return nil, err
	}
	pregnancy, err := domain.NewPregnancyRecord(datemath.Method(in.CalculationMethod), ref, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.repos.Pregnancies.Create(ctx, pregnancy); err != nil {
		log.Error("failed to save pregnancy", slog.String("error", err.Error()))
		return nil, NewRecordServiceError("create_pregnancy", "failed to save pregnancy", err)
	}
	s.opts.observer.RecordCreated(EntityPregnancy)
	return pregnancy, nil
}

// ListPregnancies returns every pregnancy, most recent reference date first.
func (s *RecordService) ListPregnancies(ctx context.Context) (_ []*domain.PregnancyRecord, err error) {
	defer s.opts.observe(ctx, "list_pregnancies", time.Now(), &err)

	pregnancies, err := s.repos.Pregnancies.List(ctx)
	if err != nil {
		return nil, NewRecordServiceError("list_pregnancies", "failed to list pregnancies", err)
	}
	return pregnancies, nil
}

// CreateWeight validates in and stores a weight entry.
func (s *RecordService) CreateWeight(ctx context.Context, in domain.WeightInput) (_ *domain.WeightRecord, err error) {
	defer s.opts.observe(ctx, "create_weight", time.Now(), &err)
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.validator.Check(in); err != nil {
		return nil, err
	}
	date, err := validation.ParseDate("date", in.Date)
	if err != nil {
		return nil, err
	}
	weight, err := domain.NewWeightRecord(in.Weight, date, in.Note, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.repos.Weights.Create(ctx, weight); err != nil {
		log.Error("failed to save weight", slog.String("error", err.Error()))
		return nil, NewRecordServiceError("create_weight", "failed to save weight", err)
	}
	s.opts.observer.RecordCreated(EntityWeight)
	return weight, nil
}

// ListWeights returns every weight entry, most recent first.
func (s *RecordService) ListWeights(ctx context.Context) (_ []*domain.WeightRecord, err error) {
	defer s.opts.observe(ctx, "list_weights", time.Now(), &err)

	weights, err := s.repos.Weights.List(ctx)
	if err != nil {
		return nil, NewRecordServiceError("list_weights", "failed to list weights", err)
	}
	return weights, nil
}

// CreatePostpartum validates in and stores a postpartum check-in.
func (s *RecordService) CreatePostpartum(ctx context.Context, in domain.PostpartumInput) (_ *domain.PostpartumRecord, err error) {
	defer s.opts.observe(ctx, "create_postpartum", time.Now(), &err)
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.validator.Check(in); err != nil {
		return nil, err
	}
	checkDate, err := validation.ParseDate("checkDate", in.CheckDate)
	if err != nil {
		return nil, err
	}
	checkIn, err := domain.NewPostpartumRecord(checkDate, in.Mood, in.Energy, in.PhysicalRecovery, in.Note, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.repos.Postpartum.Create(ctx, checkIn); err != nil {
		log.Error("failed to save postpartum check-in", slog.String("error", err.Error()))
		return nil, NewRecordServiceError("create_postpartum", "failed to save postpartum check-in", err)
	}
	s.opts.observer.RecordCreated(EntityPostpartum)
	return checkIn, nil
}

// ListPostpartum returns every check-in, most recent first.
func (s *RecordService) ListPostpartum(ctx context.Context) (_ []*domain.PostpartumRecord, err error) {
	defer s.opts.observe(ctx, "list_postpartum", time.Now(), &err)

	checkIns, err := s.repos.Postpartum.List(ctx)
	if err != nil {
		return nil, NewRecordServiceError("list_postpartum", "failed to list postpartum check-ins", err)
	}
	return checkIns, nil
}
