package user

import "context"

type UserRepository interface {
	// GetByEmail retrieves a user account by login email
	GetByEmail(ctx context.Context, email string) (User, error)

	// GetByID retrieves a user account by its id
	GetByID(ctx context.Context, id string) (User, error)

	// GetByStaffID retrieves the account linked to a staff member
	GetByStaffID(ctx context.Context, staffID string) (User, error)

	// UpdatePassword replaces the stored bcrypt hash
	UpdatePassword(ctx context.Context, userID string, passwordHash string) error

	// SavePasswordReset stores a single-use reset token
	SavePasswordReset(ctx context.Context, email string, token string) error

	// ConsumePasswordReset validates and deletes a reset token, returning the email
	ConsumePasswordReset(ctx context.Context, token string) (string, error)
}
