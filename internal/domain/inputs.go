package domain

// Request payloads accepted by the API. Field order matters: the validation
// gate reports the first violated field in declaration order.

// CycleInput creates a CycleRecord. CycleLength defaults to
// DefaultCycleLength when omitted.
type CycleInput struct {
	StartDate   string  `json:"startDate"   validate:"required,datetime=2006-01-02"`
	CycleLength *int    `json:"cycleLength" validate:"omitnil,min=20,max=45"`
	Note        *string `json:"note"        validate:"omitnil,max=500"`
}

// Length returns the requested cycle length or the default.
func (in CycleInput) Length() int {
	if in.CycleLength == nil {
		return DefaultCycleLength
	}
	return *in.CycleLength
}

// PregnancyInput creates a PregnancyRecord. Any client-supplied due date is
// ignored; it is always derived.
type PregnancyInput struct {
	CalculationMethod string `json:"calculationMethod" validate:"required,oneof=lmp conception"`
	ReferenceDate     string `json:"referenceDate"     validate:"required,datetime=2006-01-02"`
}

// WeightInput creates a WeightRecord.
type WeightInput struct {
	Weight float64 `json:"weight" validate:"required,min=30,max=300"`
	Date   string  `json:"date"   validate:"required,datetime=2006-01-02"`
	Note   *string `json:"note"   validate:"omitnil,max=500"`
}

// PostpartumInput creates a PostpartumRecord.
type PostpartumInput struct {
	CheckDate        string  `json:"checkDate"        validate:"required,datetime=2006-01-02"`
	Mood             int     `json:"mood"             validate:"required,min=1,max=5"`
	Energy           int     `json:"energy"           validate:"required,min=1,max=5"`
	PhysicalRecovery *string `json:"physicalRecovery" validate:"omitnil,max=500"`
	Note             *string `json:"note"             validate:"omitnil,max=500"`
}

// CyclePredictionInput requests a fertility projection.
type CyclePredictionInput struct {
	StartDate   string `json:"startDate"   validate:"required,datetime=2006-01-02"`
	CycleLength *int   `json:"cycleLength" validate:"omitnil,min=20,max=45"`
}

// Length returns the requested cycle length or the default.
func (in CyclePredictionInput) Length() int {
	if in.CycleLength == nil {
		return DefaultCycleLength
	}
	return *in.CycleLength
}

// PregnancyPredictionInput requests a due date and gestational age. Today
// overrides the server clock when set.
type PregnancyPredictionInput struct {
	CalculationMethod string `json:"calculationMethod" validate:"required,oneof=lmp conception"`
	ReferenceDate     string `json:"referenceDate"     validate:"required,datetime=2006-01-02"`
	Today             string `json:"today,omitempty"   validate:"omitempty,datetime=2006-01-02"`
}

// WeightPredictionInput requests weight-gain guidance. CurrentWeek is
// clamped to [MinPregnancyWeek, MaxPregnancyWeek] rather than rejected.
type WeightPredictionInput struct {
	PrePregnancyWeight float64 `json:"prePregnancyWeight" validate:"required,min=30,max=300"`
	HeightCm           float64 `json:"heightCm"           validate:"required,min=100,max=250"`
	CurrentWeek        *int    `json:"currentWeek"`
}

// ClampedWeek returns CurrentWeek limited to the supported range, or nil.
func (in WeightPredictionInput) ClampedWeek() *int {
	if in.CurrentWeek == nil {
		return nil
	}
	week := min(max(*in.CurrentWeek, MinPregnancyWeek), MaxPregnancyWeek)
	return &week
}

// PostpartumPredictionInput requests a recovery timeline. Today overrides
// the server clock when set.
type PostpartumPredictionInput struct {
	DeliveryDate  string `json:"deliveryDate"    validate:"required,datetime=2006-01-02"`
	Breastfeeding string `json:"breastfeeding"   validate:"required,oneof=exclusive partial none"`
	Today         string `json:"today,omitempty" validate:"omitempty,datetime=2006-01-02"`
}
