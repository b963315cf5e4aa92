package user

import "time"

type User struct {
	ID           string
	FullName     string
	Email        string
	PasswordHash *string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleStaff   Role = "staff"
)

// CanManagePayroll reports whether the role may run salary generation and
// mutate payroll data.
func CanManagePayroll(r Role) bool {
	return r == RoleAdmin || r == RoleManager
}
