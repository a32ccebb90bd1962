package punch

import "time"

// PunchEvent is one biometric scan. Events are immutable once imported;
// review happens through AttendanceFlag rows, never by editing punches.
type PunchEvent struct {
	StaffID string
	Date    time.Time
	Time    string // "15:04:05"
}

// AttendanceFlag marks a specific punch as untrustworthy for review
// purposes. Display-level only: flagged punches stay in the log and keep
// their computed late minutes.
type AttendanceFlag struct {
	StaffID   string
	Date      time.Time
	Time      string
	CreatedAt time.Time
}
