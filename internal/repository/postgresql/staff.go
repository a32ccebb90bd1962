package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/campus-mis/attendance-backend-go/internal/domain/staff"
	"github.com/campus-mis/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type staffRepositoryImpl struct {
	db *database.DB
}

// Create implements staff.StaffRepository. The primary key on staff_id
// and unique constraint on email resolve duplicates atomically.
func (r *staffRepositoryImpl) Create(ctx context.Context, member staff.StaffMember) (staff.StaffMember, error) {
	q := GetQuerier(ctx, r.db)

	insertQuery := `
		INSERT INTO staff (staff_id, name, department, designation, category_id, email, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING staff_id, name, department, designation, category_id, email, role, created_at, updated_at
	`

	var created staff.StaffMember
	err := q.QueryRow(ctx, insertQuery,
		member.StaffID,
		member.Name,
		member.Department,
		member.Designation,
		member.CategoryID,
		member.Email,
		string(member.Role),
	).Scan(
		&created.StaffID,
		&created.Name,
		&created.Department,
		&created.Designation,
		&created.CategoryID,
		&created.Email,
		&created.Role,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if strings.Contains(pgErr.ConstraintName, "email") {
				return staff.StaffMember{}, staff.ErrEmailExists
			}
			return staff.StaffMember{}, staff.ErrStaffIDExists
		}
		return staff.StaffMember{}, err
	}

	return created, nil
}

// GetByID implements staff.StaffRepository.
func (r *staffRepositoryImpl) GetByID(ctx context.Context, staffID string) (staff.StaffMember, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.staff_id, s.name, s.department, s.designation, s.category_id, s.email, s.role,
		       s.created_at, s.updated_at, c.description
		FROM staff s
		LEFT JOIN category c ON c.id = s.category_id
		WHERE s.staff_id = $1
	`

	var member staff.StaffMember
	err := q.QueryRow(ctx, query, staffID).Scan(
		&member.StaffID,
		&member.Name,
		&member.Department,
		&member.Designation,
		&member.CategoryID,
		&member.Email,
		&member.Role,
		&member.CreatedAt,
		&member.UpdatedAt,
		&member.CategoryDescription,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return staff.StaffMember{}, staff.ErrStaffNotFound
		}
		return staff.StaffMember{}, err
	}

	return member, nil
}

// List implements staff.StaffRepository.
func (r *staffRepositoryImpl) List(ctx context.Context, filter staff.StaffFilter) ([]staff.StaffMember, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.staff_id, s.name, s.department, s.designation, s.category_id, s.email, s.role,
		       s.created_at, s.updated_at, c.description
		FROM staff s
		LEFT JOIN category c ON c.id = s.category_id
	`
	var conditions []string
	var args []interface{}
	argPos := 1

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
	if filter.Search != nil {
		conditions = append(conditions, fmt.Sprintf("(s.name ILIKE $%d OR s.staff_id LIKE $%d)", argPos, argPos))
		args = append(args, "%"+*filter.Search+"%")
		argPos++
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY s.staff_id::bigint ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []staff.StaffMember
	for rows.Next() {
		var member staff.StaffMember
		if err := rows.Scan(
			&member.StaffID,
			&member.Name,
			&member.Department,
			&member.Designation,
			&member.CategoryID,
			&member.Email,
			&member.Role,
			&member.CreatedAt,
			&member.UpdatedAt,
			&member.CategoryDescription,
		); err != nil {
			return nil, err
		}
		members = append(members, member)
	}

	return members, rows.Err()
}

// Update implements staff.StaffRepository.
func (r *staffRepositoryImpl) Update(ctx context.Context, req staff.UpdateStaffRequest) error {
	q := GetQuerier(ctx, r.db)

	setClauses := []string{"updated_at = NOW()"}
	args := []interface{}{req.StaffID}
	argPos := 2

	addClause := func(column string, value interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argPos))
		args = append(args, value)
		argPos++
	}

	if req.Name != nil {
		addClause("name", *req.Name)
	}
	if req.Department != nil {
		addClause("department", *req.Department)
	}
	if req.Designation != nil {
		addClause("designation", *req.Designation)
	}
	if req.CategoryID != nil {
		addClause("category_id", *req.CategoryID)
	}
	if req.Email != nil {
		addClause("email", *req.Email)
	}
	if req.Role != nil {
		addClause("role", *req.Role)
	}

	query := fmt.Sprintf(`UPDATE staff SET %s WHERE staff_id = $1`, strings.Join(setClauses, ", "))

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return staff.ErrEmailExists
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return staff.ErrStaffNotFound
	}

	return nil
}

// Delete implements staff.StaffRepository.
func (r *staffRepositoryImpl) Delete(ctx context.Context, staffID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM staff WHERE staff_id = $1`, staffID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return staff.ErrStaffNotFound
	}

	return nil
}

// Exists implements staff.StaffRepository.
func (r *staffRepositoryImpl) Exists(ctx context.Context, staffID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM staff WHERE staff_id = $1)`, staffID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// ListDepartments implements staff.StaffRepository.
func (r *staffRepositoryImpl) ListDepartments(ctx context.Context) ([]string, error) {
	return r.listDistinct(ctx, `SELECT DISTINCT department FROM staff ORDER BY department ASC`)
}

// ListDesignations implements staff.StaffRepository.
func (r *staffRepositoryImpl) ListDesignations(ctx context.Context) ([]string, error) {
	return r.listDistinct(ctx, `SELECT DISTINCT designation FROM staff ORDER BY designation ASC`)
}

func (r *staffRepositoryImpl) listDistinct(ctx context.Context, query string) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, err
		}
		values = append(values, value)
	}

	return values, rows.Err()
}

func NewStaffRepository(db *database.DB) staff.StaffRepository {
	return &staffRepositoryImpl{db: db}
}
