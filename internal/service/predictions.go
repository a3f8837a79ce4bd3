package service

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/phrazzld/bloomtrack-api/internal/domain"
	"github.com/phrazzld/bloomtrack-api/internal/domain/datemath"
	"github.com/phrazzld/bloomtrack-api/internal/platform/logger"
	"github.com/phrazzld/bloomtrack-api/internal/validation"
)

// PredictionService computes calculator results. It never persists.
type PredictionService struct {
	validator Validator
	logger    *slog.Logger
	opts      options
}

// NewPredictionService creates a PredictionService.
func NewPredictionService(validator Validator, logger *slog.Logger, opts ...Option) (*PredictionService, error) {
	if validator == nil {
		return nil, &RecordServiceError{Operation: "create_service", Message: "validator cannot be nil"}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PredictionService{
		validator: validator,
		logger:    logger.With(slog.String("component", "prediction_service")),
		opts:      buildOptions(opts),
	}, nil
}

// today returns the override date when given, else the clock's date.
func (s *PredictionService) today(override string) (datemath.Date, error) {
	if override == "" {
		return datemath.FromTime(s.opts.clock()), nil
	}
	return validation.ParseDate("today", override)
}

func (s *PredictionService) made(ctx context.Context, kind domain.PredictionKind) {
	s.opts.observer.PredictionMade(string(kind))
	logger.FromContextOrDefault(ctx, s.logger).Debug("prediction computed",
		slog.String("kind", string(kind)))
}

// Cycle projects the next period, ovulation and fertile window, plus the
// low-fertility span before the window opens.
func (s *PredictionService) Cycle(ctx context.Context, in domain.CyclePredictionInput) (_ *domain.CyclePrediction, err error) {
	defer s.opts.observe(ctx, "predict_cycle", time.Now(), &err)

	if err := s.validator.Check(in); err != nil {
		return nil, err
	}
	start, err := validation.ParseDate("startDate", in.StartDate)
	if err != nil {
		return nil, err
	}

	length := in.Length()
	proj := datemath.CycleProjection(start, length)
	safeStart, safeEnd := datemath.SafePeriod(start, proj)

	s.made(ctx, domain.KindCycle)
	return &domain.CyclePrediction{
		Kind:          domain.KindCycle,
		StartDate:     start,
		CycleLength:   length,
		NextPeriod:    proj.NextPeriod,
		OvulationDate: proj.Ovulation,
		FertileStart:  proj.FertileStart,
		FertileEnd:    proj.FertileEnd,
		SafePeriod: domain.SafePeriod{
			Start:    safeStart,
			End:      safeEnd,
			Reliable: false,
			Notice:   domain.SafePeriodNotice,
		},
	}, nil
}

// Pregnancy computes the due date, gestational age and trimester as of
// today. The reference date may not be in the future.
func (s *PredictionService) Pregnancy(ctx context.Context, in domain.PregnancyPredictionInput) (_ *domain.PregnancyPrediction, err error) {
	defer s.opts.observe(ctx, "predict_pregnancy", time.Now(), &err)

	if err := s.validator.Check(in); err != nil {
		return nil, err
	}
	ref, err := validation.ParseDate("referenceDate", in.ReferenceDate)
	if err != nil {
		return nil, err
	}
	today, err := s.today(in.Today)
	if err != nil {
		return nil, err
	}
	if err := validation.NotAfter("referenceDate", ref, today); err != nil {
		return nil, err
	}

	method := datemath.Method(in.CalculationMethod)
	due := datemath.DueDate(ref, method)
	age := datemath.GestationalAge(datemath.LMPEquivalent(ref, method), today)

	s.made(ctx, domain.KindPregnancy)
	return &domain.PregnancyPrediction{
		Kind:              domain.KindPregnancy,
		CalculationMethod: method,
		ReferenceDate:     ref,
		DueDate:           due,
		GestationalWeeks:  age.Weeks,
		GestationalDays:   age.Days,
		Trimester:         age.Trimester,
		DaysUntilDue:      today.DaysUntil(due),
	}, nil
}

// Weight computes BMI, the recommended gain band and, when a week is given,
// the gain expected by that week. Weeks outside 1..40 are clamped.
func (s *PredictionService) Weight(ctx context.Context, in domain.WeightPredictionInput) (_ *domain.WeightPrediction, err error) {
	defer s.opts.observe(ctx, "predict_weight", time.Now(), &err)

	if err := s.validator.Check(in); err != nil {
		return nil, err
	}

	week := in.ClampedWeek()
	guidance := datemath.WeightGuidance(in.PrePregnancyWeight, in.HeightCm, week)

	result := &domain.WeightPrediction{
		Kind:             domain.KindWeight,
		BMI:              round2(guidance.BMI),
		RecommendedRange: guidance.RecommendedRange,
		WeeklyRateKg:     guidance.WeeklyRateKg,
		CurrentWeek:      week,
	}
	if guidance.ExpectedGainKg != nil {
		gain := round2(*guidance.ExpectedGainKg)
		result.ExpectedGainKg = &gain
	}

	s.made(ctx, domain.KindWeight)
	return result, nil
}

// Postpartum computes time since delivery and the expected return of
// periods for the feeding mode. The delivery date may not be in the future.
func (s *PredictionService) Postpartum(ctx context.Context, in domain.PostpartumPredictionInput) (_ *domain.PostpartumPrediction, err error) {
	defer s.opts.observe(ctx, "predict_postpartum", time.Now(), &err)

	if err := s.validator.Check(in); err != nil {
		return nil, err
	}
	delivery, err := validation.ParseDate("deliveryDate", in.DeliveryDate)
	if err != nil {
		return nil, err
	}
	today, err := s.today(in.Today)
	if err != nil {
		return nil, err
	}
	if err := validation.NotAfter("deliveryDate", delivery, today); err != nil {
		return nil, err
	}

	mode := datemath.FeedingMode(in.Breastfeeding)
	timeline := datemath.PostpartumTimeline(delivery, today, mode)

	s.made(ctx, domain.KindPostpartum)
	return &domain.PostpartumPrediction{
		Kind:                 domain.KindPostpartum,
		DeliveryDate:         delivery,
		Breastfeeding:        mode,
		WeeksSinceDelivery:   timeline.Weeks,
		DaysSinceDelivery:    timeline.Days,
		ExpectedPeriodReturn: timeline.ExpectedPeriodReturn,
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
