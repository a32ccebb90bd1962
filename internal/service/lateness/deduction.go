package lateness

import "time"

// Deduction thresholds: the first half-day of leave is charged once
// cumulative lateness reaches six hours; every further four hours
// charges another half day.
const (
	firstDeductionMinutes = 360
	stepDeductionMinutes  = 240
)

// DeductedDays converts a cumulative late-minutes total into leave days
// charged against the staff member.
func DeductedDays(totalLateMinutes int) float64 {
	if totalLateMinutes < firstDeductionMinutes {
		return 0
	}
	steps := (totalLateMinutes - firstDeductionMinutes) / stepDeductionMinutes
	return 0.5 + 0.5*float64(steps)
}

// ResetDate returns the academic half-year boundary the accumulator
// counts from: January 1 of the current year before June 1, June 1
// afterwards.
func ResetDate(today time.Time) time.Time {
	june1 := time.Date(today.Year(), time.June, 1, 0, 0, 0, 0, today.Location())
	if today.Before(june1) {
		return time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, today.Location())
	}
	return june1
}
