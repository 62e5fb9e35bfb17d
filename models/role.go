package models

import "strings"

// Role is the access level carried by an authenticated caller.
type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleStaff    Role = "Staff"
	RoleCustomer Role = "Customer"
)

var knownRoles = []Role{RoleAdmin, RoleStaff, RoleCustomer}

// ParseRole maps a stored or claimed role name to a known [Role].
// Matching ignores case and surrounding spaces; ok is false for anything
// outside the enumeration.
func ParseRole(s string) (Role, bool) {
	s = strings.TrimSpace(s)
	for _, r := range knownRoles {
		if strings.EqualFold(s, string(r)) {
			return r, true
		}
	}
	return "", false
}

// Valid reports whether r is exactly one of the known roles.
func (r Role) Valid() bool {
	for _, known := range knownRoles {
		if r == known {
			return true
		}
	}
	return false
}

// RoleSet is an immutable set of roles permitted to perform an operation.
// The zero RoleSet contains nothing.
type RoleSet struct {
	roles map[Role]struct{}
}

// NewRoleSet builds a set from the given roles. Unknown roles are dropped.
func NewRoleSet(roles ...Role) RoleSet {
	set := RoleSet{roles: make(map[Role]struct{}, len(roles))}
	for _, r := range roles {
		if r.Valid() {
			set.roles[r] = struct{}{}
		}
	}
	return set
}

// AnyRole is the set of every known role.
func AnyRole() RoleSet {
	return NewRoleSet(knownRoles...)
}

// Contains reports whether r belongs to the set.
func (s RoleSet) Contains(r Role) bool {
	_, ok := s.roles[r]
	return ok
}

// Len returns the number of roles in the set.
func (s RoleSet) Len() int {
	return len(s.roles)
}
