package lateness

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/campus-mis/attendance-backend-go/internal/domain/category"
	"github.com/campus-mis/attendance-backend-go/internal/domain/report"
)

// MaxDisplayedPunches caps the number of scans shown per day. Three
// in/out pairs are supported; anything beyond the sixth scan is dropped
// from display (never from storage).
const MaxDisplayedPunches = 6

// DisplayNA is rendered instead of an attendance code when punches
// cannot establish both entry and exit.
const DisplayNA = "N/A"

// SortPunches returns the punch times in ascending order. Times are
// "15:04:05" strings, so lexicographic order is chronological order.
func SortPunches(times []string) []string {
	sorted := make([]string, len(times))
	copy(sorted, times)
	sort.Strings(sorted)
	return sorted
}

// DisplayPunches returns the punches shown on a daily row: sorted
// ascending and capped at MaxDisplayedPunches.
func DisplayPunches(times []string) []string {
	sorted := SortPunches(times)
	if len(sorted) > MaxDisplayedPunches {
		sorted = sorted[:MaxDisplayedPunches]
	}
	return sorted
}

// WorkingMinutes estimates time on premises for one day:
// last punch minus first punch minus that day's total late minutes,
// floored at zero. Fewer than two punches cannot establish a span.
func WorkingMinutes(times []string, lateMinutes int) int {
	if len(times) < 2 {
		return 0
	}
	sorted := SortPunches(times)

	first, err := parseClockMinutes(sorted[0])
	if err != nil {
		return 0
	}
	last, err := parseClockMinutes(sorted[len(sorted)-1])
	if err != nil {
		return 0
	}

	minutes := last - first - lateMinutes
	if minutes < 0 {
		return 0
	}
	return minutes
}

// FormatWorkingHours renders a minute count as "HHhrs MMmins".
func FormatWorkingHours(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%02dhrs %02dmins", minutes/60, minutes%60)
}

// Breakdown carries the day's lateness split into its two components,
// so session-scoped exemptions can waive one without the other.
type Breakdown struct {
	ArrivalMinutes  int
	OverstayMinutes int
}

// Total sums the components.
func (b Breakdown) Total() int {
	return b.ArrivalMinutes + b.OverstayMinutes
}

// LateBreakdown derives the day's lateness from the punch log and the
// staff member's shift category: arrival beyond in_time plus grace,
// plus break overstay beyond the category's allowance when a second
// in/out pair exists (the OUT1 to IN2 gap).
func LateBreakdown(times []string, cat category.ShiftCategory) Breakdown {
	sorted := SortPunches(times)
	if len(sorted) < 2 {
		return Breakdown{}
	}

	var b Breakdown

	first, err := parseClockMinutes(sorted[0])
	if err != nil {
		return Breakdown{}
	}
	expectedIn, err := parseClockMinutes(cat.InTime)
	if err == nil {
		if arrival := first - expectedIn - cat.GraceMinutes; arrival > 0 {
			b.ArrivalMinutes = arrival
		}
	}

	// Break overstay needs a completed first pair and a second entry.
	if len(sorted) >= 4 {
		breakOut, errOut := parseClockMinutes(sorted[1])
		breakIn, errIn := parseClockMinutes(sorted[2])
		if errOut == nil && errIn == nil {
			if excess := breakIn - breakOut - cat.BreakAllowanceMinutes; excess > 0 {
				b.OverstayMinutes = excess
			}
		}
	}

	return b
}

// LateMinutes is the total lateness for the day.
func LateMinutes(times []string, cat category.ShiftCategory) int {
	return LateBreakdown(times, cat).Total()
}

// DisplayCode resolves the attendance code shown for a daily row.
// Code "I" always renders as N/A. A single punch with code "P" or no
// code also renders as N/A, since one scan proves neither entry nor
// exit. Stored "A" and "H" are never overridden.
func DisplayCode(code string, punchCount int) string {
	if code == report.CodeIncomplete {
		return DisplayNA
	}
	if punchCount == 1 && (code == report.CodePresent || code == "") {
		return DisplayNA
	}
	if code == "" && punchCount >= 2 {
		return report.CodePresent
	}
	return code
}

// parseClockMinutes converts "15:04" or "15:04:05" to minutes past
// midnight, truncating seconds.
func parseClockMinutes(t string) (int, error) {
	parts := strings.Split(t, ":")
	if len(parts) < 2 {
		return 0, fmt.Errorf("invalid time %q", t)
	}
	hh, err := strconv.Atoi(parts[0])
	if err != nil || hh < 0 || hh > 23 {
		return 0, fmt.Errorf("invalid hour in %q", t)
	}
	mm, err := strconv.Atoi(parts[1])
	if err != nil || mm < 0 || mm > 59 {
		return 0, fmt.Errorf("invalid minute in %q", t)
	}
	return hh*60 + mm, nil
}
