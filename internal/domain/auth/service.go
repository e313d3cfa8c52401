package auth

import (
	"context"
)

type AuthService interface {
	// Register creates a new user account with a bcrypt-hashed password.
	Register(ctx context.Context, req RegisterRequest) error

	// Login verifies credentials and issues an access/refresh token pair.
	Login(ctx context.Context, req LoginRequest, sessionReq SessionTrackingRequest) (TokenResponse, error)

	// RefreshToken exchanges a valid refresh token for a new pair.
	RefreshToken(ctx context.Context, refreshToken string, sessionReq SessionTrackingRequest) (TokenResponse, error)

	// Logout revokes the refresh token.
	Logout(ctx context.Context, refreshToken string) error
}
