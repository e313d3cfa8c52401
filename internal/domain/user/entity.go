package user

import "time"

// Role is the persisted user role. The column is an enum of both values;
// only "user" is assigned today, "manager" is the second allowed value.
type Role string

const (
	RoleUser    Role = "user"
	RoleManager Role = "manager"
)

type User struct {
	ID           string
	Email        string
	Username     string
	PasswordHash string
	Role         Role

	// Profile fields, filled in after registration
	FullName         *string
	Address          *string
	Mobile           *string
	EmployeeCode     *string
	Position         *string
	WorkType         *string
	ProfileCompleted bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
