package report

import (
	"context"
	"time"
)

type ReportRepository interface {
	// Upsert writes the computed row for (staff_id, date), replacing any
	// existing one. Manual additional minutes on the row are preserved.
	Upsert(ctx context.Context, r DailyReport) error

	// UpsertAdditional sets the manual adjustment for (staff_id, date).
	// A missing row is created with late_minutes=0 and code 'P'.
	UpsertAdditional(ctx context.Context, staffID string, date time.Time, minutes int) error

	// GetByStaffAndDate returns nil when no row exists
	GetByStaffAndDate(ctx context.Context, staffID string, date time.Time) (*DailyReport, error)

	// ListRange returns rows for a staff member ordered by date ascending
	ListRange(ctx context.Context, staffID string, from, to time.Time) ([]DailyReport, error)

	// SumLate totals late_minutes + COALESCE(additional_late_minutes, 0)
	// over the inclusive range
	SumLate(ctx context.Context, staffID string, from, to time.Time) (int, error)

	// SummaryRows runs the staff x category x report join, summing
	// lateness over [from, to] and again over [resetDate, to]
	SummaryRows(ctx context.Context, filter SummaryFilter, resetDate, from, to time.Time) ([]SummaryRow, error)
}
