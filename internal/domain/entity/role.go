// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the access level of an authenticated user.
type Role string

const (
	// RoleUnknown is the zero value, used for absent or unrecognized roles.
	RoleUnknown Role = ""
	// RoleAdmin manages the store from the dashboard.
	RoleAdmin Role = "admin"
	// RoleStaff operates the point-of-sale screen.
	RoleStaff Role = "staff"
	// RoleCustomer browses the menu and collects points.
	RoleCustomer Role = "customer"
)

// AllRoles returns every known role.
func AllRoles() Roles {
	return Roles{RoleAdmin, RoleStaff, RoleCustomer}
}

// ParseRole converts a raw role claim into a Role. Only the exact tags are recognized;
// any other value, including case or whitespace variants, becomes RoleUnknown.
func ParseRole(s string) Role {
	role := Role(s)
	if !role.IsValid() {
		return RoleUnknown
	}

	return role
}

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleStaff, RoleCustomer:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}
