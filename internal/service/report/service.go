package report

import (
	"context"
	"fmt"
	"time"

	"github.com/campus-mis/attendance-backend-go/internal/config"
	"github.com/campus-mis/attendance-backend-go/internal/domain/category"
	"github.com/campus-mis/attendance-backend-go/internal/domain/exemption"
	"github.com/campus-mis/attendance-backend-go/internal/domain/punch"
	"github.com/campus-mis/attendance-backend-go/internal/domain/report"
	"github.com/campus-mis/attendance-backend-go/internal/domain/staff"
	"github.com/campus-mis/attendance-backend-go/internal/pkg/database"
	"github.com/campus-mis/attendance-backend-go/internal/service/lateness"
)

const dateLayout = "2006-01-02"

type ReportServiceImpl struct {
	db  *database.DB
	cfg *config.Config
	report.ReportRepository
	punch.PunchRepository
	punch.FlagRepository
	staff.StaffRepository
	category.CategoryRepository
	exemption.ExemptionRepository
}

// IndividualReport implements report.ReportService.
func (s *ReportServiceImpl) IndividualReport(ctx context.Context, req report.IndividualReportRequest) (report.IndividualReportResponse, error) {
	if err := req.Validate(); err != nil {
		return report.IndividualReportResponse{}, err
	}

	start, _ := time.Parse(dateLayout, req.StartDate)
	end, _ := time.Parse(dateLayout, req.EndDate)

	member, err := s.StaffRepository.GetByID(ctx, req.StaffID)
	if err != nil {
		return report.IndividualReportResponse{}, err
	}

	events, err := s.PunchRepository.ListRange(ctx, req.StaffID, start, end)
	if err != nil {
		return report.IndividualReportResponse{}, fmt.Errorf("failed to list punches: %w", err)
	}
	punchesByDate := make(map[string][]string)
	for _, ev := range events {
		key := ev.Date.Format(dateLayout)
		punchesByDate[key] = append(punchesByDate[key], ev.Time)
	}

	flags, err := s.FlagRepository.ListByStaffAndRange(ctx, req.StaffID, start, end)
	if err != nil {
		return report.IndividualReportResponse{}, fmt.Errorf("failed to list flags: %w", err)
	}
	flagsByDate := make(map[string][]string)
	for _, f := range flags {
		key := f.Date.Format(dateLayout)
		flagsByDate[key] = append(flagsByDate[key], f.Time)
	}

	rows, err := s.ReportRepository.ListRange(ctx, req.StaffID, start, end)
	if err != nil {
		return report.IndividualReportResponse{}, fmt.Errorf("failed to list report rows: %w", err)
	}
	rowsByDate := make(map[string]report.DailyReport)
	for _, r := range rows {
		rowsByDate[r.Date.Format(dateLayout)] = r
	}

	var days []report.DailyRow
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := d.Format(dateLayout)
		times := punchesByDate[key]

		var late, additional int
		code := ""
		if row, ok := rowsByDate[key]; ok {
			late = row.LateMinutes
			code = row.Code
			if row.AdditionalLateMinutes != nil {
				additional = *row.AdditionalLateMinutes
			}
		} else if len(times) == 0 {
			// No punches and no stored row: nothing to report for the day.
			continue
		}

		days = append(days, report.DailyRow{
			Date:                  key,
			Punches:               lateness.DisplayPunches(times),
			FlaggedTimes:          flagsByDate[key],
			WorkingHours:          lateness.FormatWorkingHours(lateness.WorkingMinutes(times, late+additional)),
			LateMinutes:           late,
			AdditionalLateMinutes: additional,
			DisplayCode:           lateness.DisplayCode(code, len(times)),
		})
	}

	rangeLate, err := s.ReportRepository.SumLate(ctx, req.StaffID, start, end)
	if err != nil {
		return report.IndividualReportResponse{}, fmt.Errorf("failed to sum late minutes: %w", err)
	}

	resetDate := lateness.ResetDate(time.Now())
	sinceReset, err := s.ReportRepository.SumLate(ctx, req.StaffID, resetDate, end)
	if err != nil {
		return report.IndividualReportResponse{}, fmt.Errorf("failed to sum late minutes since reset: %w", err)
	}

	categoryDescription := ""
	if member.CategoryDescription != nil {
		categoryDescription = *member.CategoryDescription
	}

	return report.IndividualReportResponse{
		StaffID:             member.StaffID,
		Name:                member.Name,
		Department:          member.Department,
		Designation:         member.Designation,
		CategoryDescription: categoryDescription,
		Days:                days,
		RangeLateMinutes:    rangeLate,
		SinceResetMinutes:   sinceReset,
		ResetDate:           resetDate.Format(dateLayout),
		DeductedDays:        lateness.DeductedDays(sinceReset),
	}, nil
}

// DepartmentSummary implements report.ReportService.
func (s *ReportServiceImpl) DepartmentSummary(ctx context.Context, req report.DeptSummaryRequest) (report.DeptSummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return report.DeptSummaryResponse{}, err
	}

	start, _ := time.Parse(dateLayout, req.StartDate)
	end, _ := time.Parse(dateLayout, req.EndDate)
	resetDate := lateness.ResetDate(time.Now())

	filter := report.SummaryFilter{
		Department: req.Department,
		CategoryID: req.CategoryID,
	}
	rows, err := s.ReportRepository.SummaryRows(ctx, filter, resetDate, start, end)
	if err != nil {
		return report.DeptSummaryResponse{}, fmt.Errorf("failed to build summary rows: %w", err)
	}

	// Rows arrive ordered by category, department, staff_id, name;
	// grouping preserves that order.
	var categories []report.CategoryGroup
	for _, row := range rows {
		if len(categories) == 0 || categories[len(categories)-1].CategoryID != row.CategoryID {
			categories = append(categories, report.CategoryGroup{
				CategoryID:  row.CategoryID,
				Description: row.CategoryDescription,
			})
		}
		cat := &categories[len(categories)-1]

		if len(cat.Departments) == 0 || cat.Departments[len(cat.Departments)-1].Department != row.Department {
			cat.Departments = append(cat.Departments, report.DepartmentGroup{
				Department: row.Department,
			})
		}
		dept := &cat.Departments[len(cat.Departments)-1]

		dept.Staff = append(dept.Staff, report.StaffSummary{
			StaffID:           row.StaffID,
			Name:              row.Name,
			Designation:       row.Designation,
			RangeLateMinutes:  row.RangeLateMinutes,
			SinceResetMinutes: row.SinceResetMinutes,
			DeductedDays:      lateness.DeductedDays(row.SinceResetMinutes),
		})
	}

	return report.DeptSummaryResponse{
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		ResetDate:  resetDate.Format(dateLayout),
		Categories: categories,
	}, nil
}

// ToggleFlag implements report.ReportService.
func (s *ReportServiceImpl) ToggleFlag(ctx context.Context, req report.FlagToggleRequest) (report.FlagToggleResponse, error) {
	if err := req.Validate(); err != nil {
		return report.FlagToggleResponse{}, err
	}

	if _, err := s.StaffRepository.GetByID(ctx, req.StaffID); err != nil {
		return report.FlagToggleResponse{}, err
	}

	date, _ := time.Parse(dateLayout, req.Date)
	revoked, err := s.FlagRepository.Toggle(ctx, punch.AttendanceFlag{
		StaffID: req.StaffID,
		Date:    date,
		Time:    req.Time,
	})
	if err != nil {
		return report.FlagToggleResponse{}, fmt.Errorf("failed to toggle flag: %w", err)
	}

	return report.FlagToggleResponse{Revoked: revoked}, nil
}

// SetAdditionalLateMinutes implements report.ReportService.
func (s *ReportServiceImpl) SetAdditionalLateMinutes(ctx context.Context, req report.AdditionalLateRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	bound := s.cfg.Policy.AdditionalLateBound
	if req.Minutes < -bound || req.Minutes > bound {
		return report.ErrAdjustmentOutOfBounds
	}

	if _, err := s.StaffRepository.GetByID(ctx, req.StaffID); err != nil {
		return err
	}

	date, _ := time.Parse(dateLayout, req.Date)
	if err := s.ReportRepository.UpsertAdditional(ctx, req.StaffID, date, req.Minutes); err != nil {
		return fmt.Errorf("failed to upsert additional late minutes: %w", err)
	}

	return nil
}

// RecomputeDay implements report.ReportService. It rebuilds the computed
// lateness row for every enrolled staff member on the date: punchers get
// lateness vs their shift category with approved exemptions overlaid,
// non-punchers are marked absent. HR-set codes 'I' and 'H' survive the
// recompute, as do manual adjustments.
func (s *ReportServiceImpl) RecomputeDay(ctx context.Context, date time.Time) error {
	members, err := s.StaffRepository.List(ctx, staff.StaffFilter{})
	if err != nil {
		return fmt.Errorf("failed to list staff: %w", err)
	}

	staffIDs, err := s.PunchRepository.ListStaffWithPunches(ctx, date)
	if err != nil {
		return fmt.Errorf("failed to list staff with punches: %w", err)
	}
	punched := make(map[string]bool, len(staffIDs))
	for _, staffID := range staffIDs {
		punched[staffID] = true
	}

	categories := make(map[string]category.ShiftCategory)

	for _, member := range members {
		var times []string
		if punched[member.StaffID] {
			times, err = s.PunchRepository.ListTimes(ctx, member.StaffID, date)
			if err != nil {
				return fmt.Errorf("failed to list punches for %s: %w", member.StaffID, err)
			}
		}

		cat, ok := categories[member.CategoryID]
		if !ok {
			cat, err = s.CategoryRepository.GetByID(ctx, member.CategoryID)
			if err != nil {
				return fmt.Errorf("failed to load category %s: %w", member.CategoryID, err)
			}
			categories[member.CategoryID] = cat
		}

		breakdown := lateness.LateBreakdown(times, cat)

		// Approved exemptions waive the lateness of the covered session.
		exemptions, err := s.ExemptionRepository.ListApprovedForDate(ctx, member.StaffID, date)
		if err != nil {
			return fmt.Errorf("failed to list exemptions for %s: %w", member.StaffID, err)
		}
		for _, ex := range exemptions {
			switch ex.Session {
			case exemption.SessionFullDay:
				breakdown = lateness.Breakdown{}
			case exemption.SessionMorning:
				breakdown.ArrivalMinutes = 0
			case exemption.SessionAfternoon:
				breakdown.OverstayMinutes = 0
			}
		}

		code := report.CodePresent
		if len(times) == 0 {
			code = report.CodeAbsent
		}
		existing, err := s.ReportRepository.GetByStaffAndDate(ctx, member.StaffID, date)
		if err != nil {
			return fmt.Errorf("failed to load report row for %s: %w", member.StaffID, err)
		}
		if existing != nil && (existing.Code == report.CodeIncomplete || existing.Code == report.CodeHoliday) {
			code = existing.Code
		}
		// A punch on a holiday must not accrue toward leave deduction.
		if code == report.CodeHoliday {
			breakdown = lateness.Breakdown{}
		}

		row := report.DailyReport{
			StaffID:     member.StaffID,
			Date:        date,
			LateMinutes: breakdown.Total(),
			Code:        code,
		}
		if err := s.ReportRepository.Upsert(ctx, row); err != nil {
			return fmt.Errorf("failed to upsert report row for %s: %w", member.StaffID, err)
		}
	}

	return nil
}

func NewReportService(
	db *database.DB,
	cfg *config.Config,
	reportRepo report.ReportRepository,
	punchRepo punch.PunchRepository,
	flagRepo punch.FlagRepository,
	staffRepo staff.StaffRepository,
	categoryRepo category.CategoryRepository,
	exemptionRepo exemption.ExemptionRepository,
) report.ReportService {
	return &ReportServiceImpl{
		db:                  db,
		cfg:                 cfg,
		ReportRepository:    reportRepo,
		PunchRepository:     punchRepo,
		FlagRepository:      flagRepo,
		StaffRepository:     staffRepo,
		CategoryRepository:  categoryRepo,
		ExemptionRepository: exemptionRepo,
	}
}
