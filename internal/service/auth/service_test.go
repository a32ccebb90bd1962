package auth

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/campus-mis/attendance-backend-go/internal/domain/auth"
	"github.com/campus-mis/attendance-backend-go/internal/domain/staff"
	"github.com/campus-mis/attendance-backend-go/internal/domain/user"
	"github.com/campus-mis/attendance-backend-go/internal/pkg/jwt"
	"github.com/campus-mis/attendance-backend-go/internal/pkg/oauth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/oauth2"
)

type fakeUserRepo struct {
	byEmail map[string]user.User
	resets  map[string]string // token -> email
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: make(map[string]user.User),
		resets:  make(map[string]string),
	}
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByStaffID(_ context.Context, staffID string) (user.User, error) {
	for _, u := range f.byEmail {
		if u.StaffID == staffID {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, userID string, passwordHash string) error {
	for email, u := range f.byEmail {
		if u.ID == userID {
			u.PasswordHash = &passwordHash
			f.byEmail[email] = u
			return nil
		}
	}
	return user.ErrUserNotFound
}

func (f *fakeUserRepo) SavePasswordReset(_ context.Context, email string, token string) error {
	f.resets[token] = email
	return nil
}

func (f *fakeUserRepo) ConsumePasswordReset(_ context.Context, token string) (string, error) {
	email, ok := f.resets[token]
	if !ok {
		return "", auth.ErrResetTokenInvalid
	}
	delete(f.resets, token)
	return email, nil
}

type fakeStaffRepo struct {
	members map[string]staff.StaffMember
}

func newFakeStaffRepo() *fakeStaffRepo {
	return &fakeStaffRepo{members: make(map[string]staff.StaffMember)}
}

func (f *fakeStaffRepo) Create(_ context.Context, member staff.StaffMember) (staff.StaffMember, error) {
	f.members[member.StaffID] = member
	return member, nil
}

func (f *fakeStaffRepo) GetByID(_ context.Context, staffID string) (staff.StaffMember, error) {
	member, ok := f.members[staffID]
	if !ok {
		return staff.StaffMember{}, staff.ErrStaffNotFound
	}
	return member, nil
}

func (f *fakeStaffRepo) List(_ context.Context, _ staff.StaffFilter) ([]staff.StaffMember, error) {
	var out []staff.StaffMember
	for _, member := range f.members {
		out = append(out, member)
	}
	return out, nil
}

func (f *fakeStaffRepo) Update(_ context.Context, _ staff.UpdateStaffRequest) error { return nil }

func (f *fakeStaffRepo) Delete(_ context.Context, staffID string) error {
	delete(f.members, staffID)
	return nil
}

func (f *fakeStaffRepo) Exists(_ context.Context, staffID string) (bool, error) {
	_, ok := f.members[staffID]
	return ok, nil
}

func (f *fakeStaffRepo) ListDepartments(_ context.Context) ([]string, error)  { return nil, nil }
func (f *fakeStaffRepo) ListDesignations(_ context.Context) ([]string, error) { return nil, nil }

// fakeGoogleService skips the real token exchange and reports a fixed email.
type fakeGoogleService struct {
	email string
}

func (f *fakeGoogleService) GenerateState(string) string { return "test-state" }
func (f *fakeGoogleService) RedirectURL(state string) string {
	return "https://accounts.google.com/o/oauth2/auth?state=" + state
}

func (f *fakeGoogleService) VerifyToken(_ context.Context, _ string) (*oauth2.Token, error) {
	return &oauth2.Token{AccessToken: "google-access"}, nil
}

func (f *fakeGoogleService) VerifyUser(_ context.Context, _ *oauth2.Token) (oauth.GoogleInformation, error) {
	return oauth.GoogleInformation{GoogleID: "g-1", Email: f.email, VerifiedEmail: true}, nil
}

func newTestService(t *testing.T) (auth.AuthService, *fakeUserRepo, *fakeStaffRepo, jwt.Service) {
	t.Helper()

	userRepo := newFakeUserRepo()
	staffRepo := newFakeStaffRepo()
	jwtSvc := jwt.NewJWTService("test-secret-key-for-jwt", "1h", "24h")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewAuthService(nil, logger, userRepo, staffRepo, jwtSvc, &fakeGoogleService{email: "rajesh@college.edu"})
	return svc, userRepo, staffRepo, jwtSvc
}

func seedUser(t *testing.T, userRepo *fakeUserRepo, staffRepo *fakeStaffRepo, email, password string) user.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	hashStr := string(hash)

	u := user.User{
		ID:           "user-1",
		StaffID:      "1042",
		Email:        email,
		PasswordHash: &hashStr,
		Role:         user.RoleStaff,
	}
	userRepo.byEmail[email] = u
	staffRepo.members["1042"] = staff.StaffMember{
		StaffID:    "1042",
		Name:       "Rajesh Kumar",
		Department: "Physics",
		CategoryID: "cat-teaching",
	}
	return u
}

func TestAuthService_Login_Success(t *testing.T) {
	ctx := context.Background()
	svc, userRepo, staffRepo, _ := newTestService(t)
	seedUser(t, userRepo, staffRepo, "rajesh@college.edu", "password123")

	resp, err := svc.Login(ctx, auth.LoginRequest{Email: "rajesh@college.edu", Password: "password123"})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.NotZero(t, resp.RefreshExpiresAt)
	assert.Equal(t, "1042", resp.User.StaffID)
	assert.Equal(t, "Rajesh Kumar", resp.User.Name)
	assert.Equal(t, "Physics", resp.User.Department)
	assert.Equal(t, string(user.RoleStaff), resp.User.Role)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctx := context.Background()
	svc, userRepo, staffRepo, _ := newTestService(t)
	seedUser(t, userRepo, staffRepo, "rajesh@college.edu", "password123")

	_, err := svc.Login(ctx, auth.LoginRequest{Email: "rajesh@college.edu", Password: "wrong"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTestService(t)

	_, err := svc.Login(ctx, auth.LoginRequest{Email: "nobody@college.edu", Password: "password123"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_OAuthOnlyAccount(t *testing.T) {
	ctx := context.Background()
	svc, userRepo, staffRepo, _ := newTestService(t)
	u := seedUser(t, userRepo, staffRepo, "rajesh@college.edu", "password123")
	u.PasswordHash = nil
	userRepo.byEmail[u.Email] = u

	_, err := svc.Login(ctx, auth.LoginRequest{Email: "rajesh@college.edu", Password: "password123"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Refresh_RotatesToken(t *testing.T) {
	ctx := context.Background()
	svc, userRepo, staffRepo, jwtSvc := newTestService(t)
	seedUser(t, userRepo, staffRepo, "rajesh@college.edu", "password123")

	login, err := svc.Login(ctx, auth.LoginRequest{Email: "rajesh@college.edu", Password: "password123"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(ctx, login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.NotEmpty(t, refreshed.RefreshToken)

	// The presented refresh token is single use.
	assert.True(t, jwtSvc.IsTokenRevoked(login.RefreshToken))
	_, err = svc.Refresh(ctx, login.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrTokenRevoked)
}

func TestAuthService_Refresh_RejectsAccessToken(t *testing.T) {
	ctx := context.Background()
	svc, userRepo, staffRepo, _ := newTestService(t)
	seedUser(t, userRepo, staffRepo, "rajesh@college.edu", "password123")

	login, err := svc.Login(ctx, auth.LoginRequest{Email: "rajesh@college.edu", Password: "password123"})
	require.NoError(t, err)

	_, err = svc.Refresh(ctx, login.AccessToken)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestAuthService_Logout_RevokesTokens(t *testing.T) {
	ctx := context.Background()
	svc, userRepo, staffRepo, jwtSvc := newTestService(t)
	seedUser(t, userRepo, staffRepo, "rajesh@college.edu", "password123")

	login, err := svc.Login(ctx, auth.LoginRequest{Email: "rajesh@college.edu", Password: "password123"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, login.AccessToken, login.RefreshToken))
	assert.True(t, jwtSvc.IsTokenRevoked(login.AccessToken))
	assert.True(t, jwtSvc.IsTokenRevoked(login.RefreshToken))
}

func TestAuthService_CheckSession(t *testing.T) {
	ctx := context.Background()
	svc, userRepo, staffRepo, _ := newTestService(t)
	seedUser(t, userRepo, staffRepo, "rajesh@college.edu", "password123")

	session, err := svc.CheckSession(ctx, "1042")
	require.NoError(t, err)
	assert.Equal(t, "rajesh@college.edu", session.Email)
	assert.Equal(t, "Rajesh Kumar", session.Name)

	_, err = svc.CheckSession(ctx, "9999")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestAuthService_GoogleCallback_StateMismatch(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTestService(t)

	req := auth.GoogleCallbackRequest{Code: "code", State: "tampered"}
	_, err := svc.GoogleCallback(ctx, req, "expected")
	assert.ErrorIs(t, err, auth.ErrInvalidOAuthState)
}

func TestAuthService_GoogleCallback_UnregisteredEmail(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTestService(t)

	req := auth.GoogleCallbackRequest{Code: "code", State: "test-state"}
	_, err := svc.GoogleCallback(ctx, req, "test-state")
	assert.ErrorIs(t, err, auth.ErrEmailNotRegistered)
}

func TestAuthService_GoogleCallback_Success(t *testing.T) {
	ctx := context.Background()
	svc, userRepo, staffRepo, _ := newTestService(t)
	seedUser(t, userRepo, staffRepo, "rajesh@college.edu", "password123")

	req := auth.GoogleCallbackRequest{Code: "code", State: "test-state"}
	resp, err := svc.GoogleCallback(ctx, req, "test-state")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "1042", resp.User.StaffID)
}

func TestAuthService_PasswordReset_Flow(t *testing.T) {
	ctx := context.Background()
	svc, userRepo, staffRepo, _ := newTestService(t)
	seedUser(t, userRepo, staffRepo, "rajesh@college.edu", "password123")

	require.NoError(t, svc.ForgotPassword(ctx, auth.ForgotPasswordRequest{Email: "rajesh@college.edu"}))
	require.Len(t, userRepo.resets, 1)

	var token string
	for tok := range userRepo.resets {
		token = tok
	}

	err := svc.ResetPassword(ctx, auth.ResetPasswordRequest{Token: token, NewPassword: "brand-new-pass"})
	require.NoError(t, err)

	// Old password no longer works, new one does.
	_, err = svc.Login(ctx, auth.LoginRequest{Email: "rajesh@college.edu", Password: "password123"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	_, err = svc.Login(ctx, auth.LoginRequest{Email: "rajesh@college.edu", Password: "brand-new-pass"})
	assert.NoError(t, err)

	// The token is single use.
	err = svc.ResetPassword(ctx, auth.ResetPasswordRequest{Token: token, NewPassword: "another-pass"})
	assert.ErrorIs(t, err, auth.ErrResetTokenInvalid)
}

func TestAuthService_ForgotPassword_UnknownEmailSilent(t *testing.T) {
	ctx := context.Background()
	svc, userRepo, _, _ := newTestService(t)

	require.NoError(t, svc.ForgotPassword(ctx, auth.ForgotPasswordRequest{Email: "nobody@college.edu"}))
	assert.Empty(t, userRepo.resets)
}
