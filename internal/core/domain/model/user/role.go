package user

import (
	"fmt"

	"github.com/Cientista-Avogadro/docampo/internal/pkg/errs"
)

// Role represents what a user does in the marketplace.
// Every user has exactly one role, chosen at registration.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleBuyer purchases products and confirms receipt of orders.
	RoleBuyer

	// RoleVendor lists products and fulfills the orders placed on them.
	RoleVendor

	// RoleIntermediary claims delivery legs and brings goods to buyers,
	// paying the platform a commission per delivery.
	RoleIntermediary
)

// getRoleStrings returns a map of Role values to their string representations.
// All roles are included for string conversion.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:      "unknown",
		RoleBuyer:        "buyer",
		RoleVendor:       "vendor",
		RoleIntermediary: "intermediary",
	}
}

// getValidRoleStrings returns a map of only valid Role values.
func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleBuyer:        "buyer",
		RoleVendor:       "vendor",
		RoleIntermediary: "intermediary",
	}
}

// RoleFromString parses a persisted or user-supplied role name.
//
// Returns:
//   - The matching Role for "buyer", "vendor", or "intermediary"
//   - An error for any other input
func RoleFromString(value string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == value {
			return role, nil
		}
	}
	return 0, errs.NewValueIsInvalidErrorWithCause(
		"role",
		fmt.Errorf("%q is not a valid role", value),
	)
}

// Validate checks if the Role value is valid.
//
// Valid roles are: Buyer, Vendor, Intermediary.
// RoleUnknown (0) and any other values are invalid.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role is invalid",
			fmt.Errorf("%d is not a valid role", r),
		)
	}
	return nil
}

// String returns the persisted name of the role.
// This method implements the fmt.Stringer interface and is safe
// to call on any Role value, including invalid ones.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
