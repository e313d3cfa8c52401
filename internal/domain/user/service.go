package user

import (
	"context"
)

// UserService defines profile operations for the authenticated user.
type UserService interface {
	// GetProfile returns the authenticated user's profile.
	GetProfile(ctx context.Context) (ProfileResponse, error)

	// CompleteProfile fills in the profile fields and marks the profile
	// complete.
	CompleteProfile(ctx context.Context, req CompleteProfileRequest) (ProfileResponse, error)
}
