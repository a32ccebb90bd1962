package report

import (
	"context"
	"testing"
	"time"

	"github.com/campus-mis/attendance-backend-go/internal/config"
	"github.com/campus-mis/attendance-backend-go/internal/domain/category"
	"github.com/campus-mis/attendance-backend-go/internal/domain/exemption"
	"github.com/campus-mis/attendance-backend-go/internal/domain/punch"
	"github.com/campus-mis/attendance-backend-go/internal/domain/report"
	"github.com/campus-mis/attendance-backend-go/internal/domain/staff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== In-memory fakes =====

type fakeReportRepo struct {
	rows map[string]report.DailyReport // key staffID|date
}

func reportKey(staffID string, date time.Time) string {
	return staffID + "|" + date.Format(dateLayout)
}

func newFakeReportRepo() *fakeReportRepo {
	return &fakeReportRepo{rows: make(map[string]report.DailyReport)}
}

func (f *fakeReportRepo) Upsert(_ context.Context, r report.DailyReport) error {
	key := reportKey(r.StaffID, r.Date)
	if existing, ok := f.rows[key]; ok {
		r.AdditionalLateMinutes = existing.AdditionalLateMinutes
	}
	f.rows[key] = r
	return nil
}

func (f *fakeReportRepo) UpsertAdditional(_ context.Context, staffID string, date time.Time, minutes int) error {
	key := reportKey(staffID, date)
	row, ok := f.rows[key]
	if !ok {
		row = report.DailyReport{StaffID: staffID, Date: date, Code: report.CodePresent}
	}
	row.AdditionalLateMinutes = &minutes
	f.rows[key] = row
	return nil
}

func (f *fakeReportRepo) GetByStaffAndDate(_ context.Context, staffID string, date time.Time) (*report.DailyReport, error) {
	if row, ok := f.rows[reportKey(staffID, date)]; ok {
		return &row, nil
	}
	return nil, nil
}

func (f *fakeReportRepo) ListRange(_ context.Context, staffID string, from, to time.Time) ([]report.DailyReport, error) {
	var out []report.DailyReport
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if row, ok := f.rows[reportKey(staffID, d)]; ok {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakeReportRepo) SumLate(_ context.Context, staffID string, from, to time.Time) (int, error) {
	total := 0
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if row, ok := f.rows[reportKey(staffID, d)]; ok {
			total += row.LateMinutes
			if row.AdditionalLateMinutes != nil {
				total += *row.AdditionalLateMinutes
			}
		}
	}
	return total, nil
}

func (f *fakeReportRepo) SummaryRows(_ context.Context, _ report.SummaryFilter, _, _, _ time.Time) ([]report.SummaryRow, error) {
	return nil, nil
}

type fakePunchRepo struct {
	events []punch.PunchEvent
}

func (f *fakePunchRepo) BulkInsert(_ context.Context, events []punch.PunchEvent) (int, error) {
	f.events = append(f.events, events...)
	return len(events), nil
}

func (f *fakePunchRepo) ListTimes(_ context.Context, staffID string, date time.Time) ([]string, error) {
	var out []string
	for _, ev := range f.events {
		if ev.StaffID == staffID && ev.Date.Equal(date) {
			out = append(out, ev.Time)
		}
	}
	return out, nil
}

func (f *fakePunchRepo) ListRange(_ context.Context, staffID string, from, to time.Time) ([]punch.PunchEvent, error) {
	var out []punch.PunchEvent
	for _, ev := range f.events {
		if ev.StaffID == staffID && !ev.Date.Before(from) && !ev.Date.After(to) {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (f *fakePunchRepo) ListStaffWithPunches(_ context.Context, date time.Time) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, ev := range f.events {
		if ev.Date.Equal(date) && !seen[ev.StaffID] {
			seen[ev.StaffID] = true
			out = append(out, ev.StaffID)
		}
	}
	return out, nil
}

type fakeFlagRepo struct {
	flags map[string]punch.AttendanceFlag
}

func newFakeFlagRepo() *fakeFlagRepo {
	return &fakeFlagRepo{flags: make(map[string]punch.AttendanceFlag)}
}

func flagKey(f punch.AttendanceFlag) string {
	return f.StaffID + "|" + f.Date.Format(dateLayout) + "|" + f.Time
}

func (f *fakeFlagRepo) Toggle(_ context.Context, flag punch.AttendanceFlag) (bool, error) {
	key := flagKey(flag)
	if _, ok := f.flags[key]; ok {
		delete(f.flags, key)
		return true, nil
	}
	f.flags[key] = flag
	return false, nil
}

func (f *fakeFlagRepo) ListByStaffAndRange(_ context.Context, staffID string, from, to time.Time) ([]punch.AttendanceFlag, error) {
	var out []punch.AttendanceFlag
	for _, flag := range f.flags {
		if flag.StaffID == staffID && !flag.Date.Before(from) && !flag.Date.After(to) {
			out = append(out, flag)
		}
	}
	return out, nil
}

type fakeStaffRepo struct {
	members map[string]staff.StaffMember
}

func (f *fakeStaffRepo) Create(_ context.Context, m staff.StaffMember) (staff.StaffMember, error) {
	f.members[m.StaffID] = m
	return m, nil
}

func (f *fakeStaffRepo) GetByID(_ context.Context, staffID string) (staff.StaffMember, error) {
	m, ok := f.members[staffID]
	if !ok {
		return staff.StaffMember{}, staff.ErrStaffNotFound
	}
	return m, nil
}

func (f *fakeStaffRepo) List(_ context.Context, _ staff.StaffFilter) ([]staff.StaffMember, error) {
	var out []staff.StaffMember
	for _, m := range f.members {
		out = append(out, m)
	}
	return out, nil
}

func (f *fakeStaffRepo) Update(_ context.Context, _ staff.UpdateStaffRequest) error { return nil }
func (f *fakeStaffRepo) Delete(_ context.Context, _ string) error                  { return nil }

func (f *fakeStaffRepo) Exists(_ context.Context, staffID string) (bool, error) {
	_, ok := f.members[staffID]
	return ok, nil
}

func (f *fakeStaffRepo) ListDepartments(_ context.Context) ([]string, error)  { return nil, nil }
func (f *fakeStaffRepo) ListDesignations(_ context.Context) ([]string, error) { return nil, nil }

type fakeCategoryRepo struct {
	cats map[string]category.ShiftCategory
}

func (f *fakeCategoryRepo) Create(_ context.Context, c category.ShiftCategory) (category.ShiftCategory, error) {
	f.cats[c.ID] = c
	return c, nil
}

func (f *fakeCategoryRepo) GetByID(_ context.Context, id string) (category.ShiftCategory, error) {
	c, ok := f.cats[id]
	if !ok {
		return category.ShiftCategory{}, category.ErrCategoryNotFound
	}
	return c, nil
}

func (f *fakeCategoryRepo) List(_ context.Context) ([]category.ShiftCategory, error) { return nil, nil }
func (f *fakeCategoryRepo) Update(_ context.Context, _ category.UpdateCategoryRequest) error {
	return nil
}
func (f *fakeCategoryRepo) Delete(_ context.Context, _ string) error { return nil }

type fakeExemptionRepo struct {
	exemptions []exemption.Exemption
}

func (f *fakeExemptionRepo) Create(_ context.Context, ex exemption.Exemption) (exemption.Exemption, error) {
	f.exemptions = append(f.exemptions, ex)
	return ex, nil
}

func (f *fakeExemptionRepo) HasActiveDuplicate(_ context.Context, _ string, _ time.Time, _, _ string, _, _ *string) (bool, error) {
	return false, nil
}

func (f *fakeExemptionRepo) GetByID(_ context.Context, _ string) (exemption.Exemption, error) {
	return exemption.Exemption{}, exemption.ErrExemptionNotFound
}

func (f *fakeExemptionRepo) UpdateStatus(_ context.Context, _ string, _ string, _ string) error {
	return nil
}

func (f *fakeExemptionRepo) List(_ context.Context, _ exemption.ExemptionFilter) ([]exemption.Exemption, error) {
	return f.exemptions, nil
}

func (f *fakeExemptionRepo) ListApprovedForDate(_ context.Context, staffID string, d time.Time) ([]exemption.Exemption, error) {
	var out []exemption.Exemption
	for _, ex := range f.exemptions {
		if ex.StaffID == staffID && ex.Date.Equal(d) && ex.Status == exemption.StatusApproved {
			out = append(out, ex)
		}
	}
	return out, nil
}

// ===== Fixture wiring =====

func newTestService() (report.ReportService, *fakeReportRepo, *fakePunchRepo, *fakeFlagRepo, *fakeExemptionRepo) {
	desc := "Teaching"
	staffRepo := &fakeStaffRepo{members: map[string]staff.StaffMember{
		"1042": {
			StaffID:             "1042",
			Name:                "Asha Verma",
			Department:          "Physics",
			Designation:         "Assistant Professor",
			CategoryID:          "cat-1",
			CategoryDescription: &desc,
		},
	}}
	catRepo := &fakeCategoryRepo{cats: map[string]category.ShiftCategory{
		"cat-1": {
			ID:                    "cat-1",
			Description:           "Teaching",
			InTime:                "09:00",
			OutTime:               "17:00",
			BreakAllowanceMinutes: 45,
		},
	}}
	reportRepo := newFakeReportRepo()
	punchRepo := &fakePunchRepo{}
	flagRepo := newFakeFlagRepo()
	exemptionRepo := &fakeExemptionRepo{}

	cfg := &config.Config{Policy: config.PolicyConfig{AdditionalLateBound: 90}}
	svc := NewReportService(nil, cfg, reportRepo, punchRepo, flagRepo, staffRepo, catRepo, exemptionRepo)
	return svc, reportRepo, punchRepo, flagRepo, exemptionRepo
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ===== Tests =====

func TestReportService_IndividualReport(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, reportRepo, punchRepo, _, _ := newTestService()

	day := date(2026, time.August, 3)
	_, err := punchRepo.BulkInsert(ctx, []punch.PunchEvent{
		{StaffID: "1042", Date: day, Time: "09:30:00"},
		{StaffID: "1042", Date: day, Time: "17:00:00"},
	})
	require.NoError(t, err)
	require.NoError(t, reportRepo.Upsert(ctx, report.DailyReport{
		StaffID:     "1042",
		Date:        day,
		LateMinutes: 30,
		Code:        report.CodePresent,
	}))

	resp, err := svc.IndividualReport(ctx, report.IndividualReportRequest{
		StaffID:   "1042",
		StartDate: "2026-08-03",
		EndDate:   "2026-08-04",
	})
	require.NoError(t, err)

	assert.Equal(t, "Asha Verma", resp.Name)
	assert.Equal(t, "Teaching", resp.CategoryDescription)
	require.Len(t, resp.Days, 1)

	row := resp.Days[0]
	assert.Equal(t, "2026-08-03", row.Date)
	assert.Equal(t, []string{"09:30:00", "17:00:00"}, row.Punches)
	assert.Equal(t, 30, row.LateMinutes)
	assert.Equal(t, "07hrs 00mins", row.WorkingHours)
	assert.Equal(t, "P", row.DisplayCode)
	assert.Equal(t, 30, resp.RangeLateMinutes)
}

func TestReportService_IndividualReport_SinglePunchDisplaysNA(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, reportRepo, punchRepo, _, _ := newTestService()

	day := date(2026, time.August, 3)
	_, err := punchRepo.BulkInsert(ctx, []punch.PunchEvent{
		{StaffID: "1042", Date: day, Time: "09:00:00"},
	})
	require.NoError(t, err)
	require.NoError(t, reportRepo.Upsert(ctx, report.DailyReport{
		StaffID: "1042",
		Date:    day,
		Code:    report.CodePresent,
	}))

	resp, err := svc.IndividualReport(ctx, report.IndividualReportRequest{
		StaffID:   "1042",
		StartDate: "2026-08-03",
		EndDate:   "2026-08-03",
	})
	require.NoError(t, err)
	require.Len(t, resp.Days, 1)
	assert.Equal(t, "N/A", resp.Days[0].DisplayCode)
	assert.Equal(t, "00hrs 00mins", resp.Days[0].WorkingHours)
}

func TestReportService_IndividualReport_AbsentNotOverridden(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, reportRepo, _, _, _ := newTestService()

	day := date(2026, time.August, 3)
	require.NoError(t, reportRepo.Upsert(ctx, report.DailyReport{
		StaffID: "1042",
		Date:    day,
		Code:    report.CodeAbsent,
	}))

	resp, err := svc.IndividualReport(ctx, report.IndividualReportRequest{
		StaffID:   "1042",
		StartDate: "2026-08-03",
		EndDate:   "2026-08-03",
	})
	require.NoError(t, err)
	require.Len(t, resp.Days, 1)
	assert.Equal(t, "A", resp.Days[0].DisplayCode)
}

func TestReportService_IndividualReport_UnknownStaff(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _, _, _, _ := newTestService()

	_, err := svc.IndividualReport(ctx, report.IndividualReportRequest{
		StaffID:   "9999",
		StartDate: "2026-08-03",
		EndDate:   "2026-08-03",
	})
	assert.ErrorIs(t, err, staff.ErrStaffNotFound)
}

func TestReportService_ToggleFlag_RoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _, _, _, _ := newTestService()

	req := report.FlagToggleRequest{StaffID: "1042", Date: "2026-08-03", Time: "09:30:00"}

	first, err := svc.ToggleFlag(ctx, req)
	require.NoError(t, err)
	assert.False(t, first.Revoked)

	second, err := svc.ToggleFlag(ctx, req)
	require.NoError(t, err)
	assert.True(t, second.Revoked)

	third, err := svc.ToggleFlag(ctx, req)
	require.NoError(t, err)
	assert.False(t, third.Revoked)
}

func TestReportService_SetAdditionalLateMinutes(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, reportRepo, _, _, _ := newTestService()

	day := date(2026, time.August, 3)
	req := report.AdditionalLateRequest{StaffID: "1042", Date: "2026-08-03", Minutes: 20}
	require.NoError(t, svc.SetAdditionalLateMinutes(ctx, req))

	row, err := reportRepo.GetByStaffAndDate(ctx, "1042", day)
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, 0, row.LateMinutes)
	assert.Equal(t, report.CodePresent, row.Code)
	require.NotNil(t, row.AdditionalLateMinutes)
	assert.Equal(t, 20, *row.AdditionalLateMinutes)

	// Second write modifies the same row.
	req.Minutes = -15
	require.NoError(t, svc.SetAdditionalLateMinutes(ctx, req))
	row, err = reportRepo.GetByStaffAndDate(ctx, "1042", day)
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, -15, *row.AdditionalLateMinutes)
	assert.Len(t, reportRepo.rows, 1)
}

func TestReportService_SetAdditionalLateMinutes_OutOfBounds(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _, _, _, _ := newTestService()

	err := svc.SetAdditionalLateMinutes(ctx, report.AdditionalLateRequest{
		StaffID: "1042", Date: "2026-08-03", Minutes: 91,
	})
	assert.ErrorIs(t, err, report.ErrAdjustmentOutOfBounds)

	err = svc.SetAdditionalLateMinutes(ctx, report.AdditionalLateRequest{
		StaffID: "1042", Date: "2026-08-03", Minutes: -91,
	})
	assert.ErrorIs(t, err, report.ErrAdjustmentOutOfBounds)
}

func TestReportService_RecomputeDay(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, reportRepo, punchRepo, _, _ := newTestService()

	day := date(2026, time.August, 3)
	_, err := punchRepo.BulkInsert(ctx, []punch.PunchEvent{
		{StaffID: "1042", Date: day, Time: "09:25:00"},
		{StaffID: "1042", Date: day, Time: "17:00:00"},
		// Unknown enrollment number, must be skipped.
		{StaffID: "7777", Date: day, Time: "08:00:00"},
	})
	require.NoError(t, err)

	adj := 10
	require.NoError(t, reportRepo.UpsertAdditional(ctx, "1042", day, adj))

	require.NoError(t, svc.RecomputeDay(ctx, day))

	row, err := reportRepo.GetByStaffAndDate(ctx, "1042", day)
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, 25, row.LateMinutes)
	assert.Equal(t, report.CodePresent, row.Code)
	// Manual adjustment survives the recompute.
	require.NotNil(t, row.AdditionalLateMinutes)
	assert.Equal(t, 10, *row.AdditionalLateMinutes)

	skipped, err := reportRepo.GetByStaffAndDate(ctx, "7777", day)
	require.NoError(t, err)
	assert.Nil(t, skipped)
}

func TestReportService_RecomputeDay_MarksAbsent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, reportRepo, _, _, _ := newTestService()

	day := date(2026, time.August, 3)
	require.NoError(t, svc.RecomputeDay(ctx, day))

	row, err := reportRepo.GetByStaffAndDate(ctx, "1042", day)
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, report.CodeAbsent, row.Code)
	assert.Equal(t, 0, row.LateMinutes)
}

func TestReportService_RecomputeDay_ApprovedExemptionWaivesLateness(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, reportRepo, punchRepo, _, exemptionRepo := newTestService()

	day := date(2026, time.August, 3)
	_, err := punchRepo.BulkInsert(ctx, []punch.PunchEvent{
		{StaffID: "1042", Date: day, Time: "09:25:00"},
		{StaffID: "1042", Date: day, Time: "17:00:00"},
	})
	require.NoError(t, err)

	_, err = exemptionRepo.Create(ctx, exemption.Exemption{
		StaffID: "1042",
		Type:    "official_duty",
		Session: exemption.SessionMorning,
		Date:    day,
		Status:  exemption.StatusApproved,
	})
	require.NoError(t, err)

	require.NoError(t, svc.RecomputeDay(ctx, day))

	row, err := reportRepo.GetByStaffAndDate(ctx, "1042", day)
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, 0, row.LateMinutes)
	assert.Equal(t, report.CodePresent, row.Code)
}

func TestReportService_RecomputeDay_HolidayPunchAccruesNothing(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, reportRepo, punchRepo, _, _ := newTestService()

	day := date(2026, time.August, 15)
	require.NoError(t, reportRepo.Upsert(ctx, report.DailyReport{
		StaffID: "1042",
		Date:    day,
		Code:    report.CodeHoliday,
	}))
	_, err := punchRepo.BulkInsert(ctx, []punch.PunchEvent{
		{StaffID: "1042", Date: day, Time: "10:30:00"},
		{StaffID: "1042", Date: day, Time: "13:00:00"},
	})
	require.NoError(t, err)

	require.NoError(t, svc.RecomputeDay(ctx, day))

	row, err := reportRepo.GetByStaffAndDate(ctx, "1042", day)
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, report.CodeHoliday, row.Code)
	assert.Equal(t, 0, row.LateMinutes)
}
