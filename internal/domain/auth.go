package domain

import "strings"

// Role is a coarse permission tag carried by employees and their tokens.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

// Is compares roles case-insensitively; the store keeps whatever casing it was given.
func (r Role) Is(other Role) bool {
	return strings.EqualFold(strings.TrimSpace(string(r)), strings.TrimSpace(string(other)))
}

// Normalize returns the lower-case canonical form.
func (r Role) Normalize() Role {
	return Role(strings.ToLower(strings.TrimSpace(string(r))))
}
