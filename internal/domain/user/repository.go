package user

import (
	"context"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	Create(ctx context.Context, newUser User) (User, error)
	ExistsByEmailOrUsername(ctx context.Context, email, username string) (emailTaken bool, usernameTaken bool, err error)
	CompleteProfile(ctx context.Context, id string, req CompleteProfileRequest) (User, error)
}
