package postgresql

import (
	"context"
	"time"

	"github.com/campus-mis/attendance-backend-go/internal/domain/punch"
	"github.com/campus-mis/attendance-backend-go/internal/pkg/database"
)

type punchRepositoryImpl struct {
	db *database.DB
}

// BulkInsert implements punch.PunchRepository. Exact duplicates from
// re-imported device files are dropped by the conflict clause; the
// returned count is rows actually written.
func (r *punchRepositoryImpl) BulkInsert(ctx context.Context, events []punch.PunchEvent) (int, error) {
	q := GetQuerier(ctx, r.db)

	inserted := 0
	for _, ev := range events {
		tag, err := q.Exec(ctx, `
			INSERT INTO logs (staff_id, date, time)
			VALUES ($1, $2, $3)
			ON CONFLICT (staff_id, date, time) DO NOTHING
		`, ev.StaffID, ev.Date, ev.Time)
		if err != nil {
			return inserted, err
		}
		inserted += int(tag.RowsAffected())
	}

	return inserted, nil
}

// ListTimes implements punch.PunchRepository.
func (r *punchRepositoryImpl) ListTimes(ctx context.Context, staffID string, date time.Time) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT time FROM logs
		WHERE staff_id = $1 AND date = $2
		ORDER BY time ASC
	`, staffID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var times []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		times = append(times, t)
	}

	return times, rows.Err()
}

// ListRange implements punch.PunchRepository.
func (r *punchRepositoryImpl) ListRange(ctx context.Context, staffID string, from, to time.Time) ([]punch.PunchEvent, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT staff_id, date, time FROM logs
		WHERE staff_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date ASC, time ASC
	`, staffID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []punch.PunchEvent
	for rows.Next() {
		var ev punch.PunchEvent
		if err := rows.Scan(&ev.StaffID, &ev.Date, &ev.Time); err != nil {
			return nil, err
		}
		events = append(events, ev)
	}

	return events, rows.Err()
}

// ListStaffWithPunches implements punch.PunchRepository.
func (r *punchRepositoryImpl) ListStaffWithPunches(ctx context.Context, date time.Time) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT DISTINCT staff_id FROM logs
		WHERE date = $1
		ORDER BY staff_id ASC
	`, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var staffIDs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		staffIDs = append(staffIDs, id)
	}

	return staffIDs, rows.Err()
}

func NewPunchRepository(db *database.DB) punch.PunchRepository {
	return &punchRepositoryImpl{db: db}
}

type flagRepositoryImpl struct {
	db *database.DB
}

// Toggle implements punch.FlagRepository. Insert-first against the
// unique key: a concurrent toggle cannot double-insert, it loses the
// conflict and falls through to the delete path.
func (r *flagRepositoryImpl) Toggle(ctx context.Context, flag punch.AttendanceFlag) (bool, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		INSERT INTO attendance_flags (staff_id, date, time, created_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (staff_id, date, time) DO NOTHING
	`, flag.StaffID, flag.Date, flag.Time)
	if err != nil {
		return false, err
	}
	if tag.RowsAffected() > 0 {
		// Flag was absent and is now set.
		return false, nil
	}

	_, err = q.Exec(ctx, `
		DELETE FROM attendance_flags
		WHERE staff_id = $1 AND date = $2 AND time = $3
	`, flag.StaffID, flag.Date, flag.Time)
	if err != nil {
		return false, err
	}

	return true, nil
}

// ListByStaffAndRange implements punch.FlagRepository.
func (r *flagRepositoryImpl) ListByStaffAndRange(ctx context.Context, staffID string, from, to time.Time) ([]punch.AttendanceFlag, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT staff_id, date, time, created_at FROM attendance_flags
		WHERE staff_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date ASC, time ASC
	`, staffID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var flags []punch.AttendanceFlag
	for rows.Next() {
		var f punch.AttendanceFlag
		if err := rows.Scan(&f.StaffID, &f.Date, &f.Time, &f.CreatedAt); err != nil {
			return nil, err
		}
		flags = append(flags, f)
	}

	return flags, rows.Err()
}

func NewFlagRepository(db *database.DB) punch.FlagRepository {
	return &flagRepositoryImpl{db: db}
}
