package domain

// Role is the closed set of account roles in the co-op programme. Unknown
// values are rejected at the boundary rather than deep in business logic.
type Role string

const (
	RoleStudent     Role = "student"
	RoleCoordinator Role = "coordinator"
	RoleEmployer    Role = "employer"
	RoleAdmin       Role = "admin"
)

// ParseRole validates a raw role string against the closed enum.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleStudent, RoleCoordinator, RoleEmployer, RoleAdmin:
		return Role(s), true
	}
	return "", false
}

func (r Role) String() string { return string(r) }

// Roles lists every valid role, in registration-form order.
func Roles() []Role {
	return []Role{RoleStudent, RoleCoordinator, RoleEmployer, RoleAdmin}
}
