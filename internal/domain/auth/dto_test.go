package auth

import (
	"testing"

	"github.com/HarshitVatsa-7/employee-management-system/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterRequestValidate(t *testing.T) {
	t.Parallel()

	valid := RegisterRequest{
		Email:           "user@example.com",
		Username:        "user",
		Password:        "password123",
		ConfirmPassword: "password123",
	}

	tests := []struct {
		name   string
		mutate func(r *RegisterRequest)
		field  string
	}{
		{name: "valid", mutate: func(r *RegisterRequest) {}},
		{name: "missing email", mutate: func(r *RegisterRequest) { r.Email = "" }, field: "email"},
		{name: "bad email", mutate: func(r *RegisterRequest) { r.Email = "not-an-email" }, field: "email"},
		{name: "missing username", mutate: func(r *RegisterRequest) { r.Username = "" }, field: "username"},
		{name: "short password", mutate: func(r *RegisterRequest) { r.Password = "short"; r.ConfirmPassword = "short" }, field: "password"},
		{name: "mismatched confirmation", mutate: func(r *RegisterRequest) { r.ConfirmPassword = "different123" }, field: "confirm_password"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := valid
			tt.mutate(&req)

			err := req.Validate()
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}

			var validationErrs validator.ValidationErrors
			require.ErrorAs(t, err, &validationErrs)
			assert.Contains(t, validationErrs.ToMap(), tt.field)
		})
	}
}

func TestLoginRequestValidate(t *testing.T) {
	t.Parallel()

	req := LoginRequest{Email: "user@example.com", Password: "password123"}
	assert.NoError(t, req.Validate())

	empty := LoginRequest{}
	err := empty.Validate()

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	details := validationErrs.ToMap()
	assert.Contains(t, details, "email")
	assert.Contains(t, details, "password")
}
