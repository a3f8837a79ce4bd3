package datemath

import "math"

// Gain assumptions for weight guidance.
const (
	// FirstTrimesterGainKg is the expected total gain through week 12.
	FirstTrimesterGainKg = 2.0

	// FirstTrimesterLastWeek is the last week covered by FirstTrimesterGainKg.
	FirstTrimesterLastWeek = 12
)

// BMIBand maps a pre-pregnancy BMI range to a recommended total gain.
type BMIBand struct {
	// UpperBound is exclusive; the last band is unbounded.
	UpperBound   float64
	RangeLabel   string
	WeeklyRateKg float64
}

var bmiBands = []BMIBand{
	{UpperBound: 18.5, RangeLabel: "12.5–18 kg", WeeklyRateKg: 0.5},
	{UpperBound: 25, RangeLabel: "11.5–16 kg", WeeklyRateKg: 0.4},
	{UpperBound: 30, RangeLabel: "7–11.5 kg", WeeklyRateKg: 0.3},
	{UpperBound: math.Inf(1), RangeLabel: "5–9 kg", WeeklyRateKg: 0.2},
}

// GainGuidance is the weight-gain recommendation for a pregnancy.
type GainGuidance struct {
	BMI              float64
	RecommendedRange string
	WeeklyRateKg     float64

	// ExpectedGainKg is set only when a current week was supplied.
	ExpectedGainKg *float64
}

// BMI computes body-mass index from kilograms and centimetres.
func BMI(weightKg, heightCm float64) float64 {
	m := heightCm / 100
	return weightKg / (m * m)
}

// BandFor returns the band containing bmi.
func BandFor(bmi float64) BMIBand {
	for _, band := range bmiBands {
		if bmi < band.UpperBound {
			return band
		}
	}
	return bmiBands[len(bmiBands)-1]
}

// WeightGuidance computes BMI, the recommended total gain and, when
// currentWeek is non-nil, the gain expected by that week.
func WeightGuidance(prePregnancyKg, heightCm float64, currentWeek *int) GainGuidance {
	bmi := BMI(prePregnancyKg, heightCm)
	band := BandFor(bmi)

	guidance := GainGuidance{
		BMI:              bmi,
		RecommendedRange: band.RangeLabel,
		WeeklyRateKg:     band.WeeklyRateKg,
	}
	if currentWeek != nil {
		gain := ExpectedGain(*currentWeek, band.WeeklyRateKg)
		guidance.ExpectedGainKg = &gain
	}
	return guidance
}

// ExpectedGain returns the expected total gain by week.
func ExpectedGain(week int, weeklyRateKg float64) float64 {
	if week <= FirstTrimesterLastWeek {
		return FirstTrimesterGainKg
	}
	return FirstTrimesterGainKg + float64(week-FirstTrimesterLastWeek)*weeklyRateKg
}
