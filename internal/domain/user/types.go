package user

import "errors"

var ErrInvalidRole = errors.New("invalid role")

// Role of a dashboard account. Customers book without an account; these
// roles gate the admin API only.
type Role string

const (
	RoleStaff Role = "staff"
	RoleAdmin Role = "admin"
)

func NewRole(value string) (Role, error) {
	role := Role(value)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleStaff, RoleAdmin:
		return true
	default:
		return false
	}
}
