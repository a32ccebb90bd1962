package punch

import (
	"context"
	"time"
)

type PunchRepository interface {
	// BulkInsert stores imported punch events, ignoring exact duplicates
	BulkInsert(ctx context.Context, events []PunchEvent) (int, error)

	// ListTimes returns the punch times for one staff member on one date,
	// ordered ascending
	ListTimes(ctx context.Context, staffID string, date time.Time) ([]string, error)

	// ListRange returns punch events for a staff member over a date range,
	// ordered by date then time
	ListRange(ctx context.Context, staffID string, from, to time.Time) ([]PunchEvent, error)

	// ListStaffWithPunches returns the distinct staff ids that punched on a date
	ListStaffWithPunches(ctx context.Context, date time.Time) ([]string, error)
}

type FlagRepository interface {
	// Toggle inserts the flag if absent, deletes it if present, atomically.
	// Reports revoked=true when an existing flag was removed.
	Toggle(ctx context.Context, flag AttendanceFlag) (revoked bool, err error)

	// ListByStaffAndRange returns flags for a staff member over a date range
	ListByStaffAndRange(ctx context.Context, staffID string, from, to time.Time) ([]AttendanceFlag, error)
}
