package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/campus-mis/attendance-backend-go/internal/domain/report"
	"github.com/campus-mis/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type reportRepositoryImpl struct {
	db *database.DB
}

// Upsert implements report.ReportRepository. One row per staff+date;
// the computed columns are replaced while a manual additional value on
// the existing row is kept.
func (r *reportRepositoryImpl) Upsert(ctx context.Context, rep report.DailyReport) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		INSERT INTO report (staff_id, date, late_minutes, attendance_code, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (staff_id, date) DO UPDATE
		SET late_minutes = EXCLUDED.late_minutes,
		    attendance_code = EXCLUDED.attendance_code,
		    updated_at = NOW()
	`, rep.StaffID, rep.Date, rep.LateMinutes, rep.Code)
	return err
}

// UpsertAdditional implements report.ReportRepository. A missing row is
// created with zero computed lateness and code 'P'.
func (r *reportRepositoryImpl) UpsertAdditional(ctx context.Context, staffID string, date time.Time, minutes int) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		INSERT INTO report (staff_id, date, late_minutes, additional_late_minutes, attendance_code, updated_at)
		VALUES ($1, $2, 0, $3, $4, NOW())
		ON CONFLICT (staff_id, date) DO UPDATE
		SET additional_late_minutes = EXCLUDED.additional_late_minutes,
		    updated_at = NOW()
	`, staffID, date, minutes, report.CodePresent)
	return err
}

// GetByStaffAndDate implements report.ReportRepository.
func (r *reportRepositoryImpl) GetByStaffAndDate(ctx context.Context, staffID string, date time.Time) (*report.DailyReport, error) {
	q := GetQuerier(ctx, r.db)

	var rep report.DailyReport
	err := q.QueryRow(ctx, `
		SELECT staff_id, date, late_minutes, additional_late_minutes, attendance_code, updated_at
		FROM report
		WHERE staff_id = $1 AND date = $2
	`, staffID, date).Scan(
		&rep.StaffID,
		&rep.Date,
		&rep.LateMinutes,
		&rep.AdditionalLateMinutes,
		&rep.Code,
		&rep.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &rep, nil
}

// ListRange implements report.ReportRepository.
func (r *reportRepositoryImpl) ListRange(ctx context.Context, staffID string, from, to time.Time) ([]report.DailyReport, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT staff_id, date, late_minutes, additional_late_minutes, attendance_code, updated_at
		FROM report
		WHERE staff_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date ASC
	`, staffID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []report.DailyReport
	for rows.Next() {
		var rep report.DailyReport
		if err := rows.Scan(
			&rep.StaffID,
			&rep.Date,
			&rep.LateMinutes,
			&rep.AdditionalLateMinutes,
			&rep.Code,
			&rep.UpdatedAt,
		); err != nil {
			return nil, err
		}
		reports = append(reports, rep)
	}

	return reports, rows.Err()
}

// SumLate implements report.ReportRepository.
func (r *reportRepositoryImpl) SumLate(ctx context.Context, staffID string, from, to time.Time) (int, error) {
	q := GetQuerier(ctx, r.db)

	var total int
	err := q.QueryRow(ctx, `
		SELECT COALESCE(SUM(late_minutes + COALESCE(additional_late_minutes, 0)), 0)
		FROM report
		WHERE staff_id = $1 AND date BETWEEN $2 AND $3
	`, staffID, from, to).Scan(&total)
	if err != nil {
		return 0, err
	}

	return total, nil
}

// SummaryRows implements report.ReportRepository. One row per staff
// member carrying both sums: the requested range and the span since the
// accumulator reset date.
func (r *reportRepositoryImpl) SummaryRows(ctx context.Context, filter report.SummaryFilter, resetDate, from, to time.Time) ([]report.SummaryRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.staff_id, s.name, s.department, s.designation, c.id, c.description,
		       COALESCE(SUM(CASE WHEN rep.date BETWEEN $2 AND $3
		                         THEN rep.late_minutes + COALESCE(rep.additional_late_minutes, 0)
		                         ELSE 0 END), 0) AS range_late,
		       COALESCE(SUM(CASE WHEN rep.date BETWEEN $1 AND $3
		                         THEN rep.late_minutes + COALESCE(rep.additional_late_minutes, 0)
		                         ELSE 0 END), 0) AS reset_late
		FROM staff s
		JOIN category c ON c.id = s.category_id
		LEFT JOIN report rep ON rep.staff_id = s.staff_id AND rep.date BETWEEN LEAST($1, $2) AND $3
	`
	args := []interface{}{resetDate, from, to}
	argPos := 4

	var conditions []string
	if filter.Department != nil {
		conditions = append(conditions, fmt.Sprintf("s.department = $%d", argPos))
		args = append(args, *filter.Department)
		argPos++
	}
	if filter.CategoryID != nil {
		conditions = append(conditions, fmt.Sprintf("s.category_id = $%d", argPos))
		args = append(args, *filter.CategoryID)
		argPos++
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	query += `
		GROUP BY s.staff_id, s.name, s.department, s.designation, c.id, c.description
		ORDER BY c.description ASC, s.department ASC, s.staff_id::bigint ASC, s.name ASC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []report.SummaryRow
	for rows.Next() {
		var row report.SummaryRow
		if err := rows.Scan(
			&row.StaffID,
			&row.Name,
			&row.Department,
			&row.Designation,
			&row.CategoryID,
			&row.CategoryDescription,
			&row.RangeLateMinutes,
			&row.SinceResetMinutes,
		); err != nil {
			return nil, err
		}
		summaries = append(summaries, row)
	}

	return summaries, rows.Err()
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepositoryImpl{db: db}
}
