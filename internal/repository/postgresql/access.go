package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/campus-mis/attendance-backend-go/internal/domain/access"
	"github.com/campus-mis/attendance-backend-go/internal/domain/staff"
	"github.com/campus-mis/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type accessRepositoryImpl struct {
	db *database.DB
}

// CreateRole implements access.AccessRepository.
func (r *accessRepositoryImpl) CreateRole(ctx context.Context, role access.AccessRole) (access.AccessRole, error) {
	q := GetQuerier(ctx, r.db)

	insertQuery := `
		INSERT INTO access_roles (id, name, description, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, NOW(), NOW())
		RETURNING id, name, description, created_at, updated_at
	`

	var created access.AccessRole
	err := q.QueryRow(ctx, insertQuery, role.Name, role.Description).Scan(
		&created.ID,
		&created.Name,
		&created.Description,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return access.AccessRole{}, access.ErrRoleNameExists
		}
		return access.AccessRole{}, err
	}

	return created, nil
}

// GetRole implements access.AccessRepository.
func (r *accessRepositoryImpl) GetRole(ctx context.Context, id string) (access.AccessRole, error) {
	q := GetQuerier(ctx, r.db)

	var role access.AccessRole
	err := q.QueryRow(ctx, `
		SELECT id, name, description, created_at, updated_at
		FROM access_roles
		WHERE id = $1
	`, id).Scan(
		&role.ID,
		&role.Name,
		&role.Description,
		&role.CreatedAt,
		&role.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return access.AccessRole{}, access.ErrRoleNotFound
		}
		return access.AccessRole{}, err
	}

	return role, nil
}

// ListRoles implements access.AccessRepository.
func (r *accessRepositoryImpl) ListRoles(ctx context.Context) ([]access.AccessRole, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, name, description, created_at, updated_at
		FROM access_roles
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []access.AccessRole
	for rows.Next() {
		var role access.AccessRole
		if err := rows.Scan(
			&role.ID,
			&role.Name,
			&role.Description,
			&role.CreatedAt,
			&role.UpdatedAt,
		); err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}

	return roles, rows.Err()
}

// UpdateRole implements access.AccessRepository.
func (r *accessRepositoryImpl) UpdateRole(ctx context.Context, req access.UpdateRoleRequest) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE access_roles
		SET name = COALESCE($2, name),
		    description = COALESCE($3, description),
		    updated_at = NOW()
		WHERE id = $1
	`, req.ID, req.Name, req.Description)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return access.ErrRoleNameExists
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return access.ErrRoleNotFound
	}

	return nil
}

// DeleteRole implements access.AccessRepository.
func (r *accessRepositoryImpl) DeleteRole(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM access_roles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return access.ErrRoleNotFound
	}

	return nil
}

// UpsertPageRule implements access.AccessRepository. The page path is
// unique; a second write replaces the role list atomically.
func (r *accessRepositoryImpl) UpsertPageRule(ctx context.Context, rule access.PageRule) (access.PageRule, error) {
	q := GetQuerier(ctx, r.db)

	upsertQuery := `
		INSERT INTO page_access (id, page, roles, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, NOW(), NOW())
		ON CONFLICT (page) DO UPDATE SET roles = EXCLUDED.roles, updated_at = NOW()
		RETURNING id, page, roles, created_at, updated_at
	`

	var upserted access.PageRule
	err := q.QueryRow(ctx, upsertQuery, rule.Page, rule.Roles).Scan(
		&upserted.ID,
		&upserted.Page,
		&upserted.Roles,
		&upserted.CreatedAt,
		&upserted.UpdatedAt,
	)
	if err != nil {
		return access.PageRule{}, err
	}

	return upserted, nil
}

// ListPageRules implements access.AccessRepository.
func (r *accessRepositoryImpl) ListPageRules(ctx context.Context) ([]access.PageRule, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, page, roles, created_at, updated_at
		FROM page_access
		ORDER BY page ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rules []access.PageRule
	for rows.Next() {
		var rule access.PageRule
		if err := rows.Scan(
			&rule.ID,
			&rule.Page,
			&rule.Roles,
			&rule.CreatedAt,
			&rule.UpdatedAt,
		); err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}

	return rules, rows.Err()
}

// DeletePageRule implements access.AccessRepository.
func (r *accessRepositoryImpl) DeletePageRule(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM page_access WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return access.ErrPageNotFound
	}

	return nil
}

// BulkUpdateStaffRoles implements access.AccessRepository. The whole
// batch commits or rolls back as one transaction.
func (r *accessRepositoryImpl) BulkUpdateStaffRoles(ctx context.Context, updates []access.StaffRoleUpdate) error {
	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		for _, u := range updates {
			tag, err := tx.Exec(ctx, `
				UPDATE staff SET role = $1, updated_at = NOW() WHERE staff_id = $2
			`, u.Role, u.StaffID)
			if err != nil {
				return err
			}
			if tag.RowsAffected() == 0 {
				return fmt.Errorf("staff %s: %w", u.StaffID, staff.ErrStaffNotFound)
			}

			// Keep the login account's role in step when one exists.
			if _, err := tx.Exec(ctx, `
				UPDATE users SET role = $1, updated_at = NOW() WHERE staff_id = $2
			`, u.Role, u.StaffID); err != nil {
				return err
			}
		}
		return nil
	})
}

// ListHODDepartments implements access.AccessRepository.
func (r *accessRepositoryImpl) ListHODDepartments(ctx context.Context, staffID string) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT department FROM hod_department_access
		WHERE staff_id = $1
		ORDER BY department ASC
	`, staffID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []string
	for rows.Next() {
		var department string
		if err := rows.Scan(&department); err != nil {
			return nil, err
		}
		departments = append(departments, department)
	}

	return departments, rows.Err()
}

// SetHODDepartments implements access.AccessRepository. Replace
// semantics inside one transaction.
func (r *accessRepositoryImpl) SetHODDepartments(ctx context.Context, staffID string, departments []string) error {
	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM hod_department_access WHERE staff_id = $1`, staffID); err != nil {
			return err
		}
		for _, department := range departments {
			if _, err := tx.Exec(ctx, `
				INSERT INTO hod_department_access (staff_id, department)
				VALUES ($1, $2)
			`, staffID, department); err != nil {
				return err
			}
		}
		return nil
	})
}

func NewAccessRepository(db *database.DB) access.AccessRepository {
	return &accessRepositoryImpl{db: db}
}
