package schema

import (
	"fmt"
	"strings"
)

// Role is the closed set of user roles. Every switch over a Role is expected to
// name all four values.
type Role string

const (
	RoleFarmer Role = "farmer"
	RoleNGO    Role = "ngo"
	RoleDonor  Role = "donor"
	RoleAdmin  Role = "admin"
)

var ErrUnknownRole = fmt.Errorf("unknown role")

// ParseRole converts a user supplied role name
func ParseRole(s string) (Role, error) {
	switch r := Role(strings.ToLower(strings.TrimSpace(s))); r {
	case RoleFarmer, RoleNGO, RoleDonor, RoleAdmin:
		return r, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
}

// IsHelper reports whether the role may respond to help requests.
func (r Role) IsHelper() bool {
	switch r {
	case RoleNGO, RoleDonor:
		return true
	case RoleFarmer, RoleAdmin:
		return false
	default:
		return false
	}
}

// SelfRegistrable reports whether an account of this role can be created by sign up.
func (r Role) SelfRegistrable() bool {
	switch r {
	case RoleFarmer, RoleNGO, RoleDonor:
		return true
	case RoleAdmin:
		return false
	default:
		return false
	}
}
