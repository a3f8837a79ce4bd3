package datemath

// Cycle offsets, in days.
const (
	// LutealPhaseDays is the assumed span from ovulation to the next period.
	LutealPhaseDays = 14

	// FertileDaysBeforeOvulation opens the fertile window before ovulation.
	FertileDaysBeforeOvulation = 5

	// FertileDaysAfterOvulation closes the fertile window after ovulation.
	FertileDaysAfterOvulation = 1
)

// CycleDates holds the dates projected from the start of a period.
type CycleDates struct {
	NextPeriod   Date
	Ovulation    Date
	FertileStart Date
	FertileEnd   Date
}

// CycleProjection projects the next period, ovulation day and fertile window
// from the first day of the last period and the average cycle length.
//
//	nextPeriod   = start + cycleLength
//	ovulation    = nextPeriod - 14
//	fertileStart = ovulation - 5
//	fertileEnd   = ovulation + 1
func CycleProjection(start Date, cycleLength int) CycleDates {
	next := start.AddDays(cycleLength)
	ovulation := next.SubDays(LutealPhaseDays)
	return CycleDates{
		NextPeriod:   next,
		Ovulation:    ovulation,
		FertileStart: ovulation.SubDays(FertileDaysBeforeOvulation),
		FertileEnd:   ovulation.AddDays(FertileDaysAfterOvulation),
	}
}

// SafePeriod returns the span between the day after the period started and the
// day before the fertile window opens. The window is an estimate only and is
// not a reliable basis for contraception.
func SafePeriod(start Date, projection CycleDates) (Date, Date) {
	return start.AddDays(1), projection.FertileStart.SubDays(1)
}
