package category

import "time"

// ShiftCategory is a named schedule template shared by a cohort of staff:
// expected in/out and break window, the permitted break duration, and the
// grace period applied before arrival counts as late.
type ShiftCategory struct {
	ID                    string
	Description           string
	InTime                string // "15:04"
	BreakInTime           string
	BreakOutTime          string
	OutTime               string
	BreakAllowanceMinutes int
	GraceMinutes          int
	CreatedAt             time.Time
	UpdatedAt             time.Time
}
