package domain

// UserRole enumerates the association roles. The set is closed; the backend
// may omit the role on auth responses, in which case RoleStudent applies.
type UserRole string

const (
	RolePresident        UserRole = "president"
	RoleTresorier        UserRole = "tresorier"
	RoleTresorierAdjoint UserRole = "tresorier_adjoint"
	RoleMembre           UserRole = "membre"
	RoleInvite           UserRole = "invite"
	RoleAdmin            UserRole = "admin"
	RoleSuperAdmin       UserRole = "super_admin"
	RoleStudent          UserRole = "student"
)

// IsValid reports whether r is one of the known roles.
func (r UserRole) IsValid() bool {
	switch r {
	case RolePresident, RoleTresorier, RoleTresorierAdjoint, RoleMembre,
		RoleInvite, RoleAdmin, RoleSuperAdmin, RoleStudent:
		return true
	}
	return false
}

// User represents an association member account. One user maps to at most one
// Student profile through Student.UserID.
type User struct {
	Entity
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Role     UserRole `json:"role"`
	Avatar   string   `json:"avatar,omitempty"`
	IsActive bool     `json:"isActive"`
}
