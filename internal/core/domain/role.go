package domain

// Role is the closed set of account roles. The hierarchy is fixed:
// admin ⊇ manager ⊇ staff.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleStaff   Role = "staff"
)

// rolePermissions is the static role → permission expansion. Each role
// implies itself plus every role below it in the hierarchy.
var rolePermissions = map[Role][]string{
	RoleAdmin:   {"admin", "manager", "staff"},
	RoleManager: {"manager", "staff"},
	RoleStaff:   {"staff"},
}

// ParseRole converts an input string into a Role. Anything outside the
// closed set is a validation failure at the boundary.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleManager, RoleStaff:
		return Role(s), nil
	}
	return "", ErrInvalidInput
}

// Valid reports whether r is a member of the closed role set.
func (r Role) Valid() bool {
	_, ok := rolePermissions[r]
	return ok
}

// Permissions expands r into the permission strings it implies.
// Unknown roles (including the zero value) expand to nothing.
func (r Role) Permissions() []string {
	perms := rolePermissions[r]
	out := make([]string, len(perms))
	copy(out, perms)
	return out
}

// HasPermission reports whether r's expansion contains perm.
func (r Role) HasPermission(perm string) bool {
	for _, p := range rolePermissions[r] {
		if p == perm {
			return true
		}
	}
	return false
}
