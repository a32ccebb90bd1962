package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/campus-mis/attendance-backend-go/internal/domain/auth"
	"github.com/campus-mis/attendance-backend-go/internal/domain/staff"
	"github.com/campus-mis/attendance-backend-go/internal/domain/user"
	"github.com/campus-mis/attendance-backend-go/internal/pkg/database"
	"github.com/campus-mis/attendance-backend-go/internal/pkg/jwt"
	"github.com/campus-mis/attendance-backend-go/internal/pkg/oauth"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	db     *database.DB
	logger *slog.Logger
	user.UserRepository
	staff.StaffRepository
	jwt.Service
	google oauth.GoogleService
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	userData, err := a.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if userData.PasswordHash == nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	return a.issueSession(ctx, userData)
}

func (a *AuthServiceImpl) issueSession(ctx context.Context, userData user.User) (auth.LoginResponse, error) {
	member, err := a.StaffRepository.GetByID(ctx, userData.StaffID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to load staff record: %w", err)
	}

	accessToken, _, err := a.Service.GenerateAccessToken(userData.ID, userData.Email, member.StaffID, member.Department, userData.Role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}
	refreshToken, refreshExpiresAt, err := a.Service.GenerateRefreshToken(userData.ID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		RefreshExpiresAt: refreshExpiresAt,
		User: auth.SessionUser{
			ID:         userData.ID,
			StaffID:    member.StaffID,
			Name:       member.Name,
			Email:      userData.Email,
			Department: member.Department,
			Role:       string(userData.Role),
		},
	}, nil
}

// Refresh implements auth.AuthService.
func (a *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.RefreshResponse, error) {
	if a.Service.IsTokenRevoked(refreshToken) {
		return auth.RefreshResponse{}, auth.ErrTokenRevoked
	}

	token, err := jwtauth.VerifyToken(a.Service.JWTAuth(), refreshToken)
	if err != nil {
		return auth.RefreshResponse{}, auth.ErrInvalidToken
	}

	claims, err := token.AsMap(ctx)
	if err != nil {
		return auth.RefreshResponse{}, auth.ErrInvalidToken
	}
	if tokenType, _ := claims["type"].(string); tokenType != "refresh" {
		return auth.RefreshResponse{}, auth.ErrInvalidToken
	}
	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return auth.RefreshResponse{}, auth.ErrInvalidToken
	}

	userData, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return auth.RefreshResponse{}, auth.ErrInvalidToken
	}

	member, err := a.StaffRepository.GetByID(ctx, userData.StaffID)
	if err != nil {
		return auth.RefreshResponse{}, fmt.Errorf("failed to load staff record: %w", err)
	}

	accessToken, _, err := a.Service.GenerateAccessToken(userData.ID, userData.Email, member.StaffID, member.Department, userData.Role)
	if err != nil {
		return auth.RefreshResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}
	newRefreshToken, refreshExpiresAt, err := a.Service.GenerateRefreshToken(userData.ID)
	if err != nil {
		return auth.RefreshResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	// Rotate: the presented refresh token is single use.
	a.Service.RevokeToken(refreshToken)

	return auth.RefreshResponse{
		AccessToken:      accessToken,
		RefreshToken:     newRefreshToken,
		RefreshExpiresAt: refreshExpiresAt,
	}, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, accessToken, refreshToken string) error {
	if accessToken != "" {
		a.Service.RevokeToken(accessToken)
	}
	if refreshToken != "" {
		a.Service.RevokeToken(refreshToken)
	}
	return nil
}

// CheckSession implements auth.AuthService.
func (a *AuthServiceImpl) CheckSession(ctx context.Context, staffID string) (auth.SessionUser, error) {
	userData, err := a.UserRepository.GetByStaffID(ctx, staffID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.SessionUser{}, user.ErrUserNotFound
		}
		return auth.SessionUser{}, fmt.Errorf("failed to get user: %w", err)
	}

	member, err := a.StaffRepository.GetByID(ctx, userData.StaffID)
	if err != nil {
		return auth.SessionUser{}, fmt.Errorf("failed to load staff record: %w", err)
	}

	return auth.SessionUser{
		ID:         userData.ID,
		StaffID:    member.StaffID,
		Name:       member.Name,
		Email:      userData.Email,
		Department: member.Department,
		Role:       string(userData.Role),
	}, nil
}

// GoogleAuthURL implements auth.AuthService.
func (a *AuthServiceImpl) GoogleAuthURL(ctx context.Context) (string, string, error) {
	state := a.google.GenerateState("")
	if state == "" {
		return "", "", fmt.Errorf("failed to generate oauth state")
	}
	return a.google.RedirectURL(state), state, nil
}

// GoogleCallback implements auth.AuthService. Only accounts already
// registered by the admin can sign in; Google is identification, not
// self-service registration.
func (a *AuthServiceImpl) GoogleCallback(ctx context.Context, req auth.GoogleCallbackRequest, expectedState string) (auth.LoginResponse, error) {
	if req.State == "" || req.State != expectedState {
		return auth.LoginResponse{}, auth.ErrInvalidOAuthState
	}

	token, err := a.google.VerifyToken(ctx, req.Code)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to exchange oauth code: %w", err)
	}

	info, err := a.google.VerifyUser(ctx, token)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to verify google user: %w", err)
	}

	userData, err := a.UserRepository.GetByEmail(ctx, info.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrEmailNotRegistered
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return a.issueSession(ctx, userData)
}

// ForgotPassword implements auth.AuthService.
func (a *AuthServiceImpl) ForgotPassword(ctx context.Context, req auth.ForgotPasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if _, err := a.UserRepository.GetByEmail(ctx, req.Email); err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, user.ErrUserNotFound) {
			// Do not reveal which emails exist.
			return nil
		}
		return fmt.Errorf("failed to get user by email: %w", err)
	}

	resetToken := uuid.NewString()
	if err := a.UserRepository.SavePasswordReset(ctx, req.Email, resetToken); err != nil {
		return fmt.Errorf("failed to save password reset token: %w", err)
	}

	// Mail delivery is handled by the campus notification gateway; the
	// token is logged for the operations team until that integration lands.
	a.logger.Info("password reset requested", slog.String("email", req.Email))

	return nil
}

// ResetPassword implements auth.AuthService.
func (a *AuthServiceImpl) ResetPassword(ctx context.Context, req auth.ResetPasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	email, err := a.UserRepository.ConsumePasswordReset(ctx, req.Token)
	if err != nil {
		return auth.ErrResetTokenInvalid
	}

	userData, err := a.UserRepository.GetByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to get user by email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := a.UserRepository.UpdatePassword(ctx, userData.ID, string(hash)); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

func NewAuthService(
	db *database.DB,
	logger *slog.Logger,
	userRepo user.UserRepository,
	staffRepo staff.StaffRepository,
	jwtService jwt.Service,
	googleService oauth.GoogleService,
) auth.AuthService {
	return &AuthServiceImpl{
		db:              db,
		logger:          logger,
		UserRepository:  userRepo,
		StaffRepository: staffRepo,
		Service:         jwtService,
		google:          googleService,
	}
}
