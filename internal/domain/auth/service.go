package auth

import "context"

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (RefreshResponse, error)
	Logout(ctx context.Context, accessToken, refreshToken string) error
	CheckSession(ctx context.Context, staffID string) (SessionUser, error)

	GoogleAuthURL(ctx context.Context) (url string, state string, err error)
	GoogleCallback(ctx context.Context, req GoogleCallbackRequest, expectedState string) (LoginResponse, error)

	ForgotPassword(ctx context.Context, req ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req ResetPasswordRequest) error
}
