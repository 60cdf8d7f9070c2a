package enum

import "strings"

// Role is the dashboard user's role within (or above) a tenant.
type Role string

const (
	RoleStaff Role = "staff"
	RoleAdmin Role = "admin"
	// RoleSuperAdmin is the platform operator role. It bypasses tenant
	// suspension so platform screens stay usable while a subscription lapses.
	RoleSuperAdmin Role = "superadmin"
)

// ParseRole normalizes a raw role string; unknown roles degrade to staff.
func ParseRole(raw string) Role {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "admin":
		return RoleAdmin
	case "superadmin", "super-admin", "super_admin":
		return RoleSuperAdmin
	}
	return RoleStaff
}

func (r Role) String() string {
	return string(r)
}
