package postgresql

import (
	"context"
	"errors"

	"github.com/campus-mis/attendance-backend-go/internal/domain/user"
	"github.com/campus-mis/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type userRepositoryImpl struct {
	db *database.DB
}

const userColumns = `id, staff_id, email, password_hash, role, oauth_provider, oauth_provider_id, created_at, updated_at`

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID,
		&u.StaffID,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.OAuthProvider,
		&u.OAuthProviderID,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}
	return u, nil
}

// GetByEmail implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)
	return scanUser(q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)
	return scanUser(q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

// GetByStaffID implements user.UserRepository.
func (r *userRepositoryImpl) GetByStaffID(ctx context.Context, staffID string) (user.User, error) {
	q := GetQuerier(ctx, r.db)
	return scanUser(q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE staff_id = $1`, staffID))
}

// UpdatePassword implements user.UserRepository.
func (r *userRepositoryImpl) UpdatePassword(ctx context.Context, userID string, passwordHash string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE users
		SET password_hash = $1, updated_at = NOW()
		WHERE id = $2
	`, passwordHash, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

// SavePasswordReset implements user.UserRepository. A newer request
// replaces any outstanding token for the email.
func (r *userRepositoryImpl) SavePasswordReset(ctx context.Context, email string, token string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		INSERT INTO password_resets (email, token, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (email) DO UPDATE SET token = EXCLUDED.token, created_at = NOW()
	`, email, token)
	return err
}

// ConsumePasswordReset implements user.UserRepository. The delete makes
// the token single use.
func (r *userRepositoryImpl) ConsumePasswordReset(ctx context.Context, token string) (string, error) {
	q := GetQuerier(ctx, r.db)

	var email string
	err := q.QueryRow(ctx, `
		DELETE FROM password_resets
		WHERE token = $1 AND created_at > NOW() - INTERVAL '1 hour'
		RETURNING email
	`, token).Scan(&email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", pgx.ErrNoRows
		}
		return "", err
	}

	return email, nil
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}
