package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/campus-mis/attendance-backend-go/internal/domain/category"
	"github.com/campus-mis/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type categoryRepositoryImpl struct {
	db *database.DB
}

// Create implements category.CategoryRepository. The unique constraint
// on description resolves concurrent inserts; no prior existence check.
func (r *categoryRepositoryImpl) Create(ctx context.Context, cat category.ShiftCategory) (category.ShiftCategory, error) {
	q := GetQuerier(ctx, r.db)

	insertQuery := `
		INSERT INTO category (id, description, in_time, break_in_time, break_out_time, out_time,
		                      break_allowance_minutes, grace_minutes, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id, description, in_time, break_in_time, break_out_time, out_time,
		          break_allowance_minutes, grace_minutes, created_at, updated_at
	`

	var created category.ShiftCategory
	err := q.QueryRow(ctx, insertQuery,
		cat.Description,
		cat.InTime,
		cat.BreakInTime,
		cat.BreakOutTime,
		cat.OutTime,
		cat.BreakAllowanceMinutes,
		cat.GraceMinutes,
	).Scan(
		&created.ID,
		&created.Description,
		&created.InTime,
		&created.BreakInTime,
		&created.BreakOutTime,
		&created.OutTime,
		&created.BreakAllowanceMinutes,
		&created.GraceMinutes,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return category.ShiftCategory{}, category.ErrCategoryDescriptionExists
		}
		return category.ShiftCategory{}, err
	}

	return created, nil
}

// GetByID implements category.CategoryRepository.
func (r *categoryRepositoryImpl) GetByID(ctx context.Context, id string) (category.ShiftCategory, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, description, in_time, break_in_time, break_out_time, out_time,
		       break_allowance_minutes, grace_minutes, created_at, updated_at
		FROM category
		WHERE id = $1
	`

	var cat category.ShiftCategory
	err := q.QueryRow(ctx, query, id).Scan(
		&cat.ID,
		&cat.Description,
		&cat.InTime,
		&cat.BreakInTime,
		&cat.BreakOutTime,
		&cat.OutTime,
		&cat.BreakAllowanceMinutes,
		&cat.GraceMinutes,
		&cat.CreatedAt,
		&cat.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return category.ShiftCategory{}, category.ErrCategoryNotFound
		}
		return category.ShiftCategory{}, err
	}

	return cat, nil
}

// List implements category.CategoryRepository.
func (r *categoryRepositoryImpl) List(ctx context.Context) ([]category.ShiftCategory, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, description, in_time, break_in_time, break_out_time, out_time,
		       break_allowance_minutes, grace_minutes, created_at, updated_at
		FROM category
		ORDER BY description ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []category.ShiftCategory
	for rows.Next() {
		var cat category.ShiftCategory
		if err := rows.Scan(
			&cat.ID,
			&cat.Description,
			&cat.InTime,
			&cat.BreakInTime,
			&cat.BreakOutTime,
			&cat.OutTime,
			&cat.BreakAllowanceMinutes,
			&cat.GraceMinutes,
			&cat.CreatedAt,
			&cat.UpdatedAt,
		); err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}

	return categories, rows.Err()
}

// Update implements category.CategoryRepository.
func (r *categoryRepositoryImpl) Update(ctx context.Context, req category.UpdateCategoryRequest) error {
	q := GetQuerier(ctx, r.db)

	setClauses := []string{"updated_at = NOW()"}
	args := []interface{}{req.ID}
	argPos := 2

	addClause := func(column string, value interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argPos))
		args = append(args, value)
		argPos++
	}

	if req.Description != nil {
		addClause("description", *req.Description)
	}
	if req.InTime != nil {
		addClause("in_time", *req.InTime)
	}
	if req.BreakInTime != nil {
		addClause("break_in_time", *req.BreakInTime)
	}
	if req.BreakOutTime != nil {
		addClause("break_out_time", *req.BreakOutTime)
	}
	if req.OutTime != nil {
		addClause("out_time", *req.OutTime)
	}
	if req.BreakAllowanceMinutes != nil {
		addClause("break_allowance_minutes", *req.BreakAllowanceMinutes)
	}
	if req.GraceMinutes != nil {
		addClause("grace_minutes", *req.GraceMinutes)
	}

	query := fmt.Sprintf(`UPDATE category SET %s WHERE id = $1`, strings.Join(setClauses, ", "))

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return category.ErrCategoryDescriptionExists
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return category.ErrCategoryNotFound
	}

	return nil
}

// Delete implements category.CategoryRepository. A category still
// referenced by staff is refused.
func (r *categoryRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	var inUse bool
	if err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM staff WHERE category_id = $1)`, id).Scan(&inUse); err != nil {
		return err
	}
	if inUse {
		return category.ErrCategoryInUse
	}

	tag, err := q.Exec(ctx, `DELETE FROM category WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return category.ErrCategoryNotFound
	}

	return nil
}

func NewCategoryRepository(db *database.DB) category.CategoryRepository {
	return &categoryRepositoryImpl{db: db}
}
