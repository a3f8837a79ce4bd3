package datemath

// Method identifies which anchor date a pregnancy was dated from.
type Method string

// Supported calculation methods.
const (
	MethodLMP        Method = "lmp"
	MethodConception Method = "conception"
)

// Gestation offsets, in days.
const (
	LMPGestationDays        = 280
	ConceptionGestationDays = 266

	// ConceptionOffsetDays converts a conception date to its LMP equivalent.
	ConceptionOffsetDays = 14
)

// Gestational thresholds, in completed weeks.
const (
	SecondTrimesterWeek = 13
	ThirdTrimesterWeek  = 27
)

// Trimester names a third of the pregnancy.
type Trimester string

// Trimesters.
const (
	TrimesterFirst  Trimester = "first"
	TrimesterSecond Trimester = "second"
	TrimesterThird  Trimester = "third"
)

// Valid reports whether m is a supported method.
func (m Method) Valid() bool {
	return m == MethodLMP || m == MethodConception
}

// DueDate returns the estimated due date. Any method other than conception is
// treated as LMP.
func DueDate(reference Date, method Method) Date {
	if method == MethodConception {
		return reference.AddDays(ConceptionGestationDays)
	}
	return reference.AddDays(LMPGestationDays)
}

// LMPEquivalent normalizes a reference date to the LMP it implies.
func LMPEquivalent(reference Date, method Method) Date {
	if method == MethodConception {
		return reference.SubDays(ConceptionOffsetDays)
	}
	return reference
}

// Gestation is the elapsed time since the LMP-equivalent date.
type Gestation struct {
	Weeks     int
	Days      int
	Trimester Trimester
}

// GestationalAge returns completed weeks and remaining days between lmp and
// today, and the trimester those weeks fall in.
func GestationalAge(lmp, today Date) Gestation {
	weeks, days := weeksAndDays(lmp.DaysUntil(today))
	return Gestation{
		Weeks:     weeks,
		Days:      days,
		Trimester: trimesterFor(weeks),
	}
}

func trimesterFor(weeks int) Trimester {
	switch {
	case weeks >= ThirdTrimesterWeek:
		return TrimesterThird
	case weeks >= SecondTrimesterWeek:
		return TrimesterSecond
	default:
		return TrimesterFirst
	}
}

// weeksAndDays splits a day count using floored division so that days is
// always in [0, 6].
func weeksAndDays(total int) (int, int) {
	weeks := total / 7
	days := total % 7
	if days < 0 {
		weeks--
		days += 7
	}
	return weeks, days
}
