package domain

import "github.com/phrazzld/bloomtrack-api/internal/domain/datemath"

// PredictionKind tags a prediction result.
type PredictionKind string

// Prediction kinds, one per calculator.
const (
	KindCycle      PredictionKind = "cycle"
	KindPregnancy  PredictionKind = "pregnancy"
	KindWeight     PredictionKind = "weight"
	KindPostpartum PredictionKind = "postpartum"
)

// SafePeriodNotice accompanies every safe-period estimate.
const SafePeriodNotice = "Calendar estimates are not reliable for contraception."

// Prediction is implemented by every prediction result.
type Prediction interface {
	PredictionKind() PredictionKind
}

// SafePeriod is the low-fertility span between the start of a period and
// the opening of the fertile window. It is never reliable contraception.
type SafePeriod struct {
	Start    datemath.Date `json:"start"`
	End      datemath.Date `json:"end"`
	Reliable bool          `json:"reliable"`
	Notice   string        `json:"notice"`
}

// CyclePrediction is the fertility calculator result.
type CyclePrediction struct {
	Kind          PredictionKind `json:"kind"`
	StartDate     datemath.Date  `json:"startDate"`
	CycleLength   int            `json:"cycleLength"`
	NextPeriod    datemath.Date  `json:"nextPeriod"`
	OvulationDate datemath.Date  `json:"ovulationDate"`
	FertileStart  datemath.Date  `json:"fertileStart"`
	FertileEnd    datemath.Date  `json:"fertileEnd"`
	SafePeriod    SafePeriod     `json:"safePeriod"`
}

// PredictionKind implements Prediction.
func (CyclePrediction) PredictionKind() PredictionKind { return KindCycle }

// PregnancyPrediction is the due-date calculator result.
type PregnancyPrediction struct {
	Kind              PredictionKind     `json:"kind"`
	CalculationMethod datemath.Method    `json:"calculationMethod"`
	ReferenceDate     datemath.Date      `json:"referenceDate"`
	DueDate           datemath.Date      `json:"dueDate"`
	GestationalWeeks  int                `json:"gestationalWeeks"`
	GestationalDays   int                `json:"gestationalDays"`
	Trimester         datemath.Trimester `json:"trimester"`
	DaysUntilDue      int                `json:"daysUntilDue"`
}

// PredictionKind implements Prediction.
func (PregnancyPrediction) PredictionKind() PredictionKind { return KindPregnancy }

// WeightPrediction is the weight-gain calculator result. CurrentWeek is the
// clamped week used for ExpectedGainKg.
type WeightPrediction struct {
	Kind             PredictionKind `json:"kind"`
	BMI              float64        `json:"bmi"`
	RecommendedRange string         `json:"recommendedRange"`
	WeeklyRateKg     float64        `json:"weeklyRateKg"`
	CurrentWeek      *int           `json:"currentWeek,omitempty"`
	ExpectedGainKg   *float64       `json:"expectedGainKg,omitempty"`
}

// PredictionKind implements Prediction.
func (WeightPrediction) PredictionKind() PredictionKind { return KindWeight }

// PostpartumPrediction is the recovery calculator result.
type PostpartumPrediction struct {
	Kind                 PredictionKind       `json:"kind"`
	DeliveryDate         datemath.Date        `json:"deliveryDate"`
	Breastfeeding        datemath.FeedingMode `json:"breastfeeding"`
	WeeksSinceDelivery   int                  `json:"weeksSinceDelivery"`
	DaysSinceDelivery    int                  `json:"daysSinceDelivery"`
	ExpectedPeriodReturn string               `json:"expectedPeriodReturn"`
}

// PredictionKind implements Prediction.
func (PostpartumPrediction) PredictionKind() PredictionKind { return KindPostpartum }
