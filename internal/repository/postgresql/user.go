package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/HarshitVatsa-7/employee-management-system/internal/domain/user"
	"github.com/HarshitVatsa-7/employee-management-system/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

const userColumns = `id, email, username, password_hash, role,
		full_name, address, mobile, employee_code, position, work_type,
		profile_completed, created_at, updated_at`

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID, &u.Email, &u.Username, &u.PasswordHash, &u.Role,
		&u.FullName, &u.Address, &u.Mobile, &u.EmployeeCode, &u.Position, &u.WorkType,
		&u.ProfileCompleted, &u.CreatedAt, &u.UpdatedAt,
	)
	return u, err
}

// GetByEmail implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	u, err := scanUser(q.QueryRow(ctx, query, email))
	if err != nil {
		return user.User{}, err
	}
	return u, nil
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	u, err := scanUser(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return u, nil
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (email, username, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	role := newUser.Role
	if role == "" {
		role = user.RoleUser
	}

	err := q.QueryRow(ctx, query, newUser.Email, newUser.Username, newUser.PasswordHash, role).
		Scan(&newUser.ID, &newUser.CreatedAt, &newUser.UpdatedAt)
	if err != nil {
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	newUser.Role = role
	return newUser, nil
}

// ExistsByEmailOrUsername implements user.UserRepository. Email and username
// collisions are reported separately so registration can name the field.
func (r *userRepositoryImpl) ExistsByEmailOrUsername(ctx context.Context, email, username string) (emailTaken bool, usernameTaken bool, err error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			EXISTS (SELECT 1 FROM users WHERE email = $1),
			EXISTS (SELECT 1 FROM users WHERE username = $2)
	`

	if err := q.QueryRow(ctx, query, email, username).Scan(&emailTaken, &usernameTaken); err != nil {
		return false, false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return emailTaken, usernameTaken, nil
}

// CompleteProfile implements user.UserRepository.
func (r *userRepositoryImpl) CompleteProfile(ctx context.Context, id string, req user.CompleteProfileRequest) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET full_name = $1, address = $2, mobile = $3, employee_code = $4,
		    position = $5, work_type = $6, profile_completed = TRUE,
		    updated_at = NOW()
		WHERE id = $7
		RETURNING ` + userColumns

	u, err := scanUser(q.QueryRow(ctx, query,
		req.FullName, req.Address, req.Mobile, req.EmployeeCode,
		req.Position, req.WorkType, id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return user.User{}, user.ErrEmployeeCodeExists
		}
		return user.User{}, fmt.Errorf("failed to complete profile: %w", err)
	}
	return u, nil
}
