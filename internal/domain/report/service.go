package report

import (
	"context"
	"time"
)

// ReportService defines the attendance reporting operations
type ReportService interface {
	// IndividualReport assembles the per-staff date-range report
	IndividualReport(ctx context.Context, req IndividualReportRequest) (IndividualReportResponse, error)

	// DepartmentSummary assembles the grouped department report
	DepartmentSummary(ctx context.Context, req DeptSummaryRequest) (DeptSummaryResponse, error)

	// ToggleFlag flips the reviewed state of one punch
	ToggleFlag(ctx context.Context, req FlagToggleRequest) (FlagToggleResponse, error)

	// SetAdditionalLateMinutes records a manual HR adjustment
	SetAdditionalLateMinutes(ctx context.Context, req AdditionalLateRequest) error

	// RecomputeDay rebuilds daily report rows from punches for one date
	RecomputeDay(ctx context.Context, date time.Time) error
}
