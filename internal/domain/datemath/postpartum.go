package datemath

// FeedingMode describes how a baby is being fed, which drives when periods
// are expected to return.
type FeedingMode string

// Feeding modes.
const (
	FeedingExclusive FeedingMode = "exclusive"
	FeedingPartial   FeedingMode = "partial"
	FeedingNone      FeedingMode = "none"
)

var periodReturnLabels = map[FeedingMode]string{
	FeedingExclusive: "6–18 months",
	FeedingPartial:   "3–9 months",
	FeedingNone:      "6–12 weeks",
}

// Valid reports whether m is a supported feeding mode.
func (m FeedingMode) Valid() bool {
	_, ok := periodReturnLabels[m]
	return ok
}

// RecoveryTimeline is the time elapsed since delivery and when the first
// period is likely to return.
type RecoveryTimeline struct {
	Weeks                int
	Days                 int
	ExpectedPeriodReturn string
}

// PostpartumTimeline returns weeks and days since delivery and the expected
// return-of-period window for the feeding mode. Unknown modes get the
// not-breastfeeding window.
func PostpartumTimeline(delivery, today Date, mode FeedingMode) RecoveryTimeline {
	weeks, days := weeksAndDays(delivery.DaysUntil(today))
	label, ok := periodReturnLabels[mode]
	if !ok {
		label = periodReturnLabels[FeedingNone]
	}
	return RecoveryTimeline{
		Weeks:                weeks,
		Days:                 days,
		ExpectedPeriodReturn: label,
	}
}
