package entity

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleViewer grants read-only access.
	RoleViewer Role = "viewer"
	// RoleEditor adds write access to workflow resources.
	RoleEditor Role = "editor"
	// RoleAdmin grants full access, including platform configuration.
	RoleAdmin Role = "admin"
)

// roleLevels orders roles by privilege. Unknown roles have level 0.
var roleLevels = map[Role]int{
	RoleViewer: 1,
	RoleEditor: 2,
	RoleAdmin:  3,
}

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleViewer, RoleEditor, RoleAdmin:
		return true
	default:
		return false
	}
}

// Level returns the position of the role in the hierarchy.
func (r Role) Level() int {
	return roleLevels[r]
}

// AtLeast reports whether r is at or above required in the hierarchy.
// An unrecognised role never satisfies any requirement.
func (r Role) AtLeast(required Role) bool {
	level := r.Level()

	return level > 0 && level >= required.Level()
}

// Roles lists all recognised roles from least to most privileged.
func Roles() []Role {
	return []Role{RoleViewer, RoleEditor, RoleAdmin}
}
