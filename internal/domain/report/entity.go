package report

import "time"

// Attendance codes stored on daily report rows.
const (
	CodePresent    = "P"
	CodeAbsent     = "A"
	CodeIncomplete = "I" // marked invalid by HR, always displays as N/A
	CodeHoliday    = "H"
)

// DailyReport is the computed lateness/attendance record for one staff
// member on one date. At most one row exists per (staff_id, date);
// persistence uses upsert semantics.
type DailyReport struct {
	StaffID               string
	Date                  time.Time
	LateMinutes           int
	AdditionalLateMinutes *int // manual HR adjustment, may be negative
	Code                  string
	UpdatedAt             time.Time
}
