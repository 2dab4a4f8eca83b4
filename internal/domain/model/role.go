package model

import "strings"

// Role describes the permission level of a requester.
type Role string

const (
	RoleCustomer   Role = "customer"
	RoleSupport    Role = "support"
	RoleAdmin      Role = "admin"
	RoleSuperadmin Role = "superadmin"
)

// ParseRole normalizes a raw role value to a canonical Role.
// Unknown or empty input maps to RoleCustomer so that a missing role
// never widens visibility.
func ParseRole(raw string) Role {
	switch Role(strings.ToLower(strings.TrimSpace(raw))) {
	case RoleSupport:
		return RoleSupport
	case RoleAdmin:
		return RoleAdmin
	case RoleSuperadmin:
		return RoleSuperadmin
	default:
		return RoleCustomer
	}
}

// Requester is the authenticated actor behind an operation.
type Requester struct {
	UserID string
	Role   Role
}
