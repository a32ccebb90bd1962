package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/campus-mis/attendance-backend-go/internal/domain/exemption"
	"github.com/campus-mis/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type exemptionRepositoryImpl struct {
	db *database.DB
}

// Create implements exemption.ExemptionRepository.
func (r *exemptionRepositoryImpl) Create(ctx context.Context, ex exemption.Exemption) (exemption.Exemption, error) {
	q := GetQuerier(ctx, r.db)

	insertQuery := `
		INSERT INTO exemptions (id, staff_id, type, session, date, start_time, end_time, reason, status, created_at)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING id, staff_id, type, session, date, start_time, end_time, reason, status,
		          reviewed_by, reviewed_at, created_at
	`

	var created exemption.Exemption
	err := q.QueryRow(ctx, insertQuery,
		ex.StaffID,
		ex.Type,
		ex.Session,
		ex.Date,
		ex.StartTime,
		ex.EndTime,
		ex.Reason,
		ex.Status,
	).Scan(
		&created.ID,
		&created.StaffID,
		&created.Type,
		&created.Session,
		&created.Date,
		&created.StartTime,
		&created.EndTime,
		&created.Reason,
		&created.Status,
		&created.ReviewedBy,
		&created.ReviewedAt,
		&created.CreatedAt,
	)
	if err != nil {
		return exemption.Exemption{}, err
	}

	return created, nil
}

// HasActiveDuplicate implements exemption.ExemptionRepository.
func (r *exemptionRepositoryImpl) HasActiveDuplicate(ctx context.Context, staffID string, date time.Time, exType, session string, startTime, endTime *string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM exemptions
			WHERE staff_id = $1 AND date = $2 AND type = $3 AND session = $4
			  AND start_time IS NOT DISTINCT FROM $5
			  AND end_time IS NOT DISTINCT FROM $6
			  AND status IN ($7, $8)
		)
	`, staffID, date, exType, session, startTime, endTime,
		exemption.StatusPending, exemption.StatusApproved,
	).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

// GetByID implements exemption.ExemptionRepository.
func (r *exemptionRepositoryImpl) GetByID(ctx context.Context, id string) (exemption.Exemption, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.staff_id, e.type, e.session, e.date, e.start_time, e.end_time, e.reason,
		       e.status, e.reviewed_by, e.reviewed_at, e.created_at, s.name
		FROM exemptions e
		LEFT JOIN staff s ON s.staff_id = e.staff_id
		WHERE e.id = $1
	`

	var ex exemption.Exemption
	err := q.QueryRow(ctx, query, id).Scan(
		&ex.ID,
		&ex.StaffID,
		&ex.Type,
		&ex.Session,
		&ex.Date,
		&ex.StartTime,
		&ex.EndTime,
		&ex.Reason,
		&ex.Status,
		&ex.ReviewedBy,
		&ex.ReviewedAt,
		&ex.CreatedAt,
		&ex.StaffName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return exemption.Exemption{}, exemption.ErrExemptionNotFound
		}
		return exemption.Exemption{}, err
	}

	return ex, nil
}

// UpdateStatus implements exemption.ExemptionRepository. The status
// predicate makes the transition atomic: only a pending row moves, and
// a terminal row reports ErrExemptionAlreadyProcessed.
func (r *exemptionRepositoryImpl) UpdateStatus(ctx context.Context, id string, status string, reviewerID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE exemptions
		SET status = $1, reviewed_by = $2, reviewed_at = NOW()
		WHERE id = $3 AND status = $4
	`, status, reviewerID, id, exemption.StatusPending)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM exemptions WHERE id = $1)`, id).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return exemption.ErrExemptionNotFound
		}
		return exemption.ErrExemptionAlreadyProcessed
	}

	return nil
}

// List implements exemption.ExemptionRepository.
func (r *exemptionRepositoryImpl) List(ctx context.Context, filter exemption.ExemptionFilter) ([]exemption.Exemption, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.staff_id, e.type, e.session, e.date, e.start_time, e.end_time, e.reason,
		       e.status, e.reviewed_by, e.reviewed_at, e.created_at, s.name
		FROM exemptions e
		LEFT JOIN staff s ON s.staff_id = e.staff_id
	`
	var conditions []string
	var args []interface{}
	argPos := 1

	if filter.StaffID != nil {
		conditions = append(conditions, fmt.Sprintf("e.staff_id = $%d", argPos))
		args = append(args, *filter.StaffID)
		argPos++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("e.status = $%d", argPos))
		args = append(args, *filter.Status)
		argPos++
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY e.created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exemptions []exemption.Exemption
	for rows.Next() {
		var ex exemption.Exemption
		if err := rows.Scan(
			&ex.ID,
			&ex.StaffID,
			&ex.Type,
			&ex.Session,
			&ex.Date,
			&ex.StartTime,
			&ex.EndTime,
			&ex.Reason,
			&ex.Status,
			&ex.ReviewedBy,
			&ex.ReviewedAt,
			&ex.CreatedAt,
			&ex.StaffName,
		); err != nil {
			return nil, err
		}
		exemptions = append(exemptions, ex)
	}

	return exemptions, rows.Err()
}

// ListApprovedForDate implements exemption.ExemptionRepository.
func (r *exemptionRepositoryImpl) ListApprovedForDate(ctx context.Context, staffID string, date time.Time) ([]exemption.Exemption, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, staff_id, type, session, date, start_time, end_time, reason,
		       status, reviewed_by, reviewed_at, created_at
		FROM exemptions
		WHERE staff_id = $1 AND date = $2 AND status = $3
	`, staffID, date, exemption.StatusApproved)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exemptions []exemption.Exemption
	for rows.Next() {
		var ex exemption.Exemption
		if err := rows.Scan(
			&ex.ID,
			&ex.StaffID,
			&ex.Type,
			&ex.Session,
			&ex.Date,
			&ex.StartTime,
			&ex.EndTime,
			&ex.Reason,
			&ex.Status,
			&ex.ReviewedBy,
			&ex.ReviewedAt,
			&ex.CreatedAt,
		); err != nil {
			return nil, err
		}
		exemptions = append(exemptions, ex)
	}

	return exemptions, rows.Err()
}

func NewExemptionRepository(db *database.DB) exemption.ExemptionRepository {
	return &exemptionRepositoryImpl{db: db}
}
