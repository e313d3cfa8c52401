package auth

import (
	"context"
	"testing"

	"github.com/HarshitVatsa-7/employee-management-system/internal/domain/auth"
	"github.com/HarshitVatsa-7/employee-management-system/internal/domain/user"
	"github.com/HarshitVatsa-7/employee-management-system/internal/pkg/jwt"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepository struct {
	users []user.User
}

func (f *fakeUserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, pgx.ErrNoRows
}

func (f *fakeUserRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepository) Create(ctx context.Context, newUser user.User) (user.User, error) {
	newUser.ID = uuid.NewString()
	f.users = append(f.users, newUser)
	return newUser, nil
}

func (f *fakeUserRepository) ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, bool, error) {
	var emailTaken, usernameTaken bool
	for _, u := range f.users {
		if u.Email == email {
			emailTaken = true
		}
		if u.Username == username {
			usernameTaken = true
		}
	}
	return emailTaken, usernameTaken, nil
}

func (f *fakeUserRepository) CompleteProfile(ctx context.Context, id string, req user.CompleteProfileRequest) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}

type fakeRefreshTokenRepository struct {
	stored  []string
	revoked map[string]bool
}

func (f *fakeRefreshTokenRepository) CreateRefreshToken(ctx context.Context, userID string, token string, expiresAt int64, sessionReq auth.SessionTrackingRequest) error {
	f.stored = append(f.stored, token)
	return nil
}

func (f *fakeRefreshTokenRepository) IsRefreshTokenRevoked(ctx context.Context, token string) (bool, error) {
	return f.revoked[token], nil
}

func (f *fakeRefreshTokenRepository) RevokeRefreshToken(ctx context.Context, token string) error {
	if f.revoked == nil {
		f.revoked = make(map[string]bool)
	}
	f.revoked[token] = true
	return nil
}

func newTestAuthService(userRepo *fakeUserRepository, tokenRepo *fakeRefreshTokenRepository) *AuthServiceImpl {
	jwtService := jwt.NewJWTService("test-secret", "1h", "168h")
	return NewAuthService(nil, userRepo, jwtService, tokenRepo).(*AuthServiceImpl)
}

func registerRequest() auth.RegisterRequest {
	return auth.RegisterRequest{
		Email:           "user@example.com",
		Username:        "user",
		Password:        "password123",
		ConfirmPassword: "password123",
	}
}

func TestRegisterCreatesUser(t *testing.T) {
	t.Parallel()

	userRepo := &fakeUserRepository{}
	svc := newTestAuthService(userRepo, &fakeRefreshTokenRepository{})

	err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)
	require.Len(t, userRepo.users, 1)

	created := userRepo.users[0]
	assert.Equal(t, user.RoleUser, created.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("password123")))
}

func TestRegisterEmailTaken(t *testing.T) {
	t.Parallel()

	userRepo := &fakeUserRepository{users: []user.User{{Email: "user@example.com", Username: "someone-else"}}}
	svc := newTestAuthService(userRepo, &fakeRefreshTokenRepository{})

	err := svc.Register(context.Background(), registerRequest())
	assert.ErrorIs(t, err, user.ErrEmailExists)
}

func TestRegisterUsernameTaken(t *testing.T) {
	t.Parallel()

	// Same username under a different email reports the username, not the
	// email, as taken.
	userRepo := &fakeUserRepository{users: []user.User{{Email: "other@example.com", Username: "user"}}}
	svc := newTestAuthService(userRepo, &fakeRefreshTokenRepository{})

	err := svc.Register(context.Background(), registerRequest())
	assert.ErrorIs(t, err, user.ErrUsernameExists)
	assert.NotErrorIs(t, err, user.ErrEmailExists)
}

func TestLoginIssuesTokenPair(t *testing.T) {
	t.Parallel()

	userRepo := &fakeUserRepository{}
	tokenRepo := &fakeRefreshTokenRepository{}
	svc := newTestAuthService(userRepo, tokenRepo)

	require.NoError(t, svc.Register(context.Background(), registerRequest()))

	resp, err := svc.Login(context.Background(),
		auth.LoginRequest{Email: "user@example.com", Password: "password123"},
		auth.SessionTrackingRequest{UserAgent: "test", IPAddress: "127.0.0.1"},
	)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	require.Len(t, tokenRepo.stored, 1)
	assert.Equal(t, resp.RefreshToken, tokenRepo.stored[0])
}

func TestLoginWrongPassword(t *testing.T) {
	t.Parallel()

	userRepo := &fakeUserRepository{}
	svc := newTestAuthService(userRepo, &fakeRefreshTokenRepository{})
	require.NoError(t, svc.Register(context.Background(), registerRequest()))

	_, err := svc.Login(context.Background(),
		auth.LoginRequest{Email: "user@example.com", Password: "wrong-password"},
		auth.SessionTrackingRequest{},
	)
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(&fakeUserRepository{}, &fakeRefreshTokenRepository{})

	_, err := svc.Login(context.Background(),
		auth.LoginRequest{Email: "nobody@example.com", Password: "password123"},
		auth.SessionTrackingRequest{},
	)
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogoutRevokesToken(t *testing.T) {
	t.Parallel()

	tokenRepo := &fakeRefreshTokenRepository{}
	svc := newTestAuthService(&fakeUserRepository{}, tokenRepo)

	require.NoError(t, svc.Logout(context.Background(), "some-refresh-token"))
	assert.True(t, tokenRepo.revoked["some-refresh-token"])
}
