package kernel

import (
	"fmt"

	"laundrytrack/internal/pkg/errs"
)

// Role represents the capability level of an acting identity.
// Roles are issued by the external identity provider together with the caller ID;
// the domain only interprets them, it never mints or persists them.
//
// Role is a value object that validates its string form and answers capability
// questions for the access policy.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleUser is a regular customer. Users create orders and read their own records.
	RoleUser

	// RoleAdmin is facility staff with management capability: shelves, all orders,
	// status transitions.
	RoleAdmin

	// RoleSuperAdmin is treated as admin-equivalent for every operation in this
	// service; the distinction only matters to the identity provider.
	RoleSuperAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:    "unknown",
		RoleUser:       "user",
		RoleAdmin:      "admin",
		RoleSuperAdmin: "super-admin",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleUser:       "user",
		RoleAdmin:      "admin",
		RoleSuperAdmin: "super-admin",
	}
}

// RoleFromString parses a role from its wire form ("user", "admin", "super-admin").
// Returns a ValueIsInvalidError for unrecognized values.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is valid.
// Valid roles are: RoleUser, RoleAdmin, RoleSuperAdmin.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the human-readable name of the role.
// Implements the fmt.Stringer interface and is safe to call on any Role value.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// IsAdmin reports whether the role carries admin capability.
// Super-admin is admin-equivalent for all operations in this service.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}
