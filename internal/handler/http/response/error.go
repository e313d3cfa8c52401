package response

import (
	"errors"
	"net/http"

	"github.com/HarshitVatsa-7/employee-management-system/internal/domain/attendance"
	"github.com/HarshitVatsa-7/employee-management-system/internal/domain/auth"
	"github.com/HarshitVatsa-7/employee-management-system/internal/domain/user"
	"github.com/HarshitVatsa-7/employee-management-system/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrRefreshTokenMissing):
		Unauthorized(w, "Refresh token missing")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already taken")
	case errors.Is(err, user.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already in use")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrInvalidMonth):
		BadRequest(w, "Month must be between 1 and 12", nil)
	case errors.Is(err, attendance.ErrInvalidYear):
		BadRequest(w, "Year is out of range", nil)
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
