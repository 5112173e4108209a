package auth

import (
	"strings"

	"github.com/dayflow/hr-service/internal/domain"
)

// RoleRequirement declares which roles may pass a route's gate.
type RoleRequirement struct {
	roles []domain.Role
	any   bool
}

// AnyRole admits every caller holding a valid token.
var AnyRole = RoleRequirement{any: true}

// Roles admits callers whose role matches one of roles, ignoring case.
// An empty list admits nobody.
func Roles(roles ...domain.Role) RoleRequirement {
	return RoleRequirement{roles: append([]domain.Role(nil), roles...)}
}

// Allows reports whether role satisfies the requirement.
func (r RoleRequirement) Allows(role domain.Role) bool {
	if r.any {
		return true
	}
	for _, allowed := range r.roles {
		if allowed.Is(role) {
			return true
		}
	}
	return false
}

func (r RoleRequirement) String() string {
	if r.any {
		return "any"
	}
	names := make([]string, 0, len(r.roles))
	for _, role := range r.roles {
		names = append(names, string(role.Normalize()))
	}
	return strings.Join(names, "|")
}
