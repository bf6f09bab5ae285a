package user

import (
	"fmt"

	"fastdelivery/internal/pkg/errs"
)

// Role represents a staff user's authorization role.
type Role int

const (
	// UnknownRole represents an invalid or undefined role.
	UnknownRole Role = iota

	// RoleUser is the default role for staff users.
	RoleUser

	// RoleAdmin marks the administrative bootstrap user.
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUser:  "user",
		RoleAdmin: "admin",
	}
}

// ParseRole converts a wire name into a Role. The empty string resolves to
// RoleUser, matching the registration default.
func ParseRole(s string) (Role, error) {
	if s == "" {
		return RoleUser, nil
	}
	for role, name := range getRoleStrings() {
		if name == s {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause(
		"role",
		fmt.Errorf("%q is not a valid role", s),
	)
}

// Validate checks if the Role is one of RoleUser, RoleAdmin.
func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role",
			fmt.Errorf("%d is not a valid role", r),
		)
	}
	return nil
}

// String returns the wire name of the role.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
