package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/HarshitVatsa-7/employee-management-system/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
)

type UserServiceImpl struct {
	user.UserRepository
}

func NewUserService(userRepository user.UserRepository) user.UserService {
	return &UserServiceImpl{
		UserRepository: userRepository,
	}
}

// getUserID extracts user_id from JWT claims
func getUserID(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}
	return userID, nil
}

func mapUserToProfile(u user.User) user.ProfileResponse {
	return user.ProfileResponse{
		ID:               u.ID,
		Email:            u.Email,
		Username:         u.Username,
		Role:             string(u.Role),
		FullName:         u.FullName,
		Address:          u.Address,
		Mobile:           u.Mobile,
		EmployeeCode:     u.EmployeeCode,
		Position:         u.Position,
		WorkType:         u.WorkType,
		ProfileCompleted: u.ProfileCompleted,
	}
}

// GetProfile implements user.UserService.
func (s *UserServiceImpl) GetProfile(ctx context.Context) (user.ProfileResponse, error) {
	userID, err := getUserID(ctx)
	if err != nil {
		return user.ProfileResponse{}, err
	}

	userData, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return user.ProfileResponse{}, err
		}
		return user.ProfileResponse{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return mapUserToProfile(userData), nil
}

// CompleteProfile implements user.UserService.
func (s *UserServiceImpl) CompleteProfile(ctx context.Context, req user.CompleteProfileRequest) (user.ProfileResponse, error) {
	if err := req.Validate(); err != nil {
		return user.ProfileResponse{}, err
	}

	userID, err := getUserID(ctx)
	if err != nil {
		return user.ProfileResponse{}, err
	}

	userData, err := s.UserRepository.CompleteProfile(ctx, userID, req)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return user.ProfileResponse{}, err
		}
		return user.ProfileResponse{}, fmt.Errorf("failed to complete profile: %w", err)
	}

	return mapUserToProfile(userData), nil
}
