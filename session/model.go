package session

import "strings"

// Role is the dashboard a user is scoped to.
type Role string

const (
	// RoleStudent is the default role for registered accounts.
	RoleStudent Role = "student"
	// RoleMentor covers project guides. The backend also emits "faculty" for
	// this population; ParseRole folds it in.
	RoleMentor Role = "mentor"
	// RolePanel covers presentation evaluators.
	RolePanel Role = "panel"
	// RoleAdmin covers coordinators with full visibility.
	RoleAdmin Role = "admin"
)

// ParseRole normalizes a persisted role string. "faculty" maps to RoleMentor,
// matching how the original front-end routed faculty accounts to the mentor
// dashboard. Unknown or empty strings report ok=false.
func ParseRole(s string) (Role, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "student":
		return RoleStudent, true
	case "mentor", "faculty":
		return RoleMentor, true
	case "panel":
		return RolePanel, true
	case "admin":
		return RoleAdmin, true
	default:
		return "", false
	}
}

// Valid reports whether r is one of the four known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleMentor, RolePanel, RoleAdmin:
		return true
	default:
		return false
	}
}

// Session is the in-memory record of the authenticated user and their bearer
// token. It is created on login or on successful restoration and destroyed on
// logout, restoration failure, or a 401 from the backend.
type Session struct {
	UserID   string
	Username string
	Email    string
	Role     Role
	Token    string
}
