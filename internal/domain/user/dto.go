package user

import (
	"github.com/HarshitVatsa-7/employee-management-system/internal/pkg/validator"
)

type ProfileResponse struct {
	ID               string  `json:"id"`
	Email            string  `json:"email"`
	Username         string  `json:"username"`
	Role             string  `json:"role"`
	FullName         *string `json:"full_name,omitempty"`
	Address          *string `json:"address,omitempty"`
	Mobile           *string `json:"mobile,omitempty"`
	EmployeeCode     *string `json:"employee_code,omitempty"`
	Position         *string `json:"position,omitempty"`
	WorkType         *string `json:"work_type,omitempty"`
	ProfileCompleted bool    `json:"profile_completed"`
}

type CompleteProfileRequest struct {
	FullName     string `json:"full_name"`
	Address      string `json:"address"`
	Mobile       string `json:"mobile"`
	EmployeeCode string `json:"employee_code"`
	Position     string `json:"position"`
	WorkType     string `json:"work_type"`
}

func (r *CompleteProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code is required",
		})
	}

	if !validator.IsEmpty(r.Mobile) && !validator.IsValidPhoneNumber(r.Mobile) {
		errs = append(errs, validator.ValidationError{
			Field:   "mobile",
			Message: "mobile must be a valid phone number",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
