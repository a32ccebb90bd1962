package report

import (
	"github.com/campus-mis/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// REPORT DTOs
// ========================================

type IndividualReportRequest struct {
	StaffID   string `json:"staff_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (r *IndividualReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidStaffID(r.StaffID) {
		errs = append(errs, validator.ValidationError{
			Field:   "staff_id",
			Message: "staff_id must be a numeric device enrollment number",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be YYYY-MM-DD",
		})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be YYYY-MM-DD",
		})
	}
	if startOK && endOK && start.After(end) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must not be after end_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// DailyRow is one date of an individual report. Punches carries at most
// six times (IN1/OUT1 .. IN3/OUT3); anything beyond the sixth scan is not
// displayed.
type DailyRow struct {
	Date                  string   `json:"date"`
	Punches               []string `json:"punches"`
	FlaggedTimes          []string `json:"flagged_times,omitempty"`
	WorkingHours          string   `json:"working_hours"`
	LateMinutes           int      `json:"late_minutes"`
	AdditionalLateMinutes int      `json:"additional_late_minutes"`
	DisplayCode           string   `json:"display_code"`
}

type IndividualReportResponse struct {
	StaffID             string     `json:"staff_id"`
	Name                string     `json:"name"`
	Department          string     `json:"department"`
	Designation         string     `json:"designation"`
	CategoryDescription string     `json:"category_description"`
	Days                []DailyRow `json:"days"`
	RangeLateMinutes    int        `json:"range_late_minutes"`
	SinceResetMinutes   int        `json:"since_reset_late_minutes"`
	ResetDate           string     `json:"reset_date"`
	DeductedDays        float64    `json:"deducted_days"`
}

type DeptSummaryRequest struct {
	Department *string `json:"department,omitempty"`
	CategoryID *string `json:"category_id,omitempty"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
}

func (r *DeptSummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be YYYY-MM-DD",
		})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be YYYY-MM-DD",
		})
	}
	if startOK && endOK && start.After(end) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must not be after end_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// StaffSummary is one staff member's totals inside a department group,
// ordered by staff_id ascending.
type StaffSummary struct {
	StaffID           string  `json:"staff_id"`
	Name              string  `json:"name"`
	Designation       string  `json:"designation"`
	RangeLateMinutes  int     `json:"range_late_minutes"`
	SinceResetMinutes int     `json:"since_reset_late_minutes"`
	DeductedDays      float64 `json:"deducted_days"`
}

type DepartmentGroup struct {
	Department string         `json:"department"`
	Staff      []StaffSummary `json:"staff"`
}

type CategoryGroup struct {
	CategoryID  string            `json:"category_id"`
	Description string            `json:"description"`
	Departments []DepartmentGroup `json:"departments"`
}

type DeptSummaryResponse struct {
	StartDate  string          `json:"start_date"`
	EndDate    string          `json:"end_date"`
	ResetDate  string          `json:"reset_date"`
	Categories []CategoryGroup `json:"categories"`
}

type FlagToggleRequest struct {
	StaffID string `json:"staff_id"`
	Date    string `json:"date"`
	Time    string `json:"time"`
}

func (r *FlagToggleRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidStaffID(r.StaffID) {
		errs = append(errs, validator.ValidationError{
			Field:   "staff_id",
			Message: "staff_id must be a numeric device enrollment number",
		})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be YYYY-MM-DD",
		})
	}
	if !validator.IsValidTimeOfDay(r.Time) {
		errs = append(errs, validator.ValidationError{
			Field:   "time",
			Message: "time must be a valid time of day",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type FlagToggleResponse struct {
	Revoked bool `json:"revoked"`
}

type AdditionalLateRequest struct {
	StaffID string `json:"staff_id"`
	Date    string `json:"date"`
	Minutes int    `json:"minutes"`
}

func (r *AdditionalLateRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidStaffID(r.StaffID) {
		errs = append(errs, validator.ValidationError{
			Field:   "staff_id",
			Message: "staff_id must be a numeric device enrollment number",
		})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be YYYY-MM-DD",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// SummaryFilter narrows the department summary join.
type SummaryFilter struct {
	Department *string
	CategoryID *string
}

// SummaryRow is one row of the staff x category x report join with both
// lateness sums already coalesced and aggregated.
type SummaryRow struct {
	StaffID             string
	Name                string
	Department          string
	Designation         string
	CategoryID          string
	CategoryDescription string
	RangeLateMinutes    int
	SinceResetMinutes   int
}
