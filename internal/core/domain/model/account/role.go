// Package account contains the user-facing identity concepts the engine
// depends on. The engine does not own users; it only reads and flips their
// role as lifecycle side effects (application approval, driver removal).
package account

import (
	"fmt"

	"courierops/internal/pkg/errs"
)

// Role represents a user's role on the marketplace.
//
// Roles change as lifecycle side effects: approving an application promotes
// the applicant from Client to Driver, and removing a driver demotes the
// owning user back to Client.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleAdmin marks operations staff reviewing applications and payments.
	RoleAdmin

	// RoleDriver marks a user with an approved courier profile.
	RoleDriver

	// RoleClient marks a regular marketplace user sending parcels.
	RoleClient
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown: "unknown",
		RoleAdmin:   "admin",
		RoleDriver:  "driver",
		RoleClient:  "client",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleAdmin:  "admin",
		RoleDriver: "driver",
		RoleClient: "client",
	}
}

// RoleFromString parses a role from its string representation.
// Returns an error for unrecognized values.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is one of admin, driver, or client.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the lowercase name of the role.
// Implements fmt.Stringer and is safe on any Role value.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
