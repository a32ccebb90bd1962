package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or malformed token")
	ErrTokenExpired       = errors.New("token has expired")
	ErrTokenRevoked       = errors.New("token has been revoked")
	ErrInvalidOAuthState  = errors.New("oauth state mismatch")
	ErrEmailNotRegistered = errors.New("email is not registered")
	ErrResetTokenInvalid  = errors.New("password reset token is invalid or already used")
)
