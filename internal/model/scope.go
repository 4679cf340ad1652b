package model

// Scope identifies the caller of a request.
type Scope struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Role values recognised by the service.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleViewer = "viewer"
	RoleSystem = "system"
)

// SystemScope is the scope background workers act under.
func SystemScope() Scope {
	return Scope{UserID: RoleSystem, Role: RoleSystem}
}

// IsAdmin reports whether the scope carries the admin role.
func (s Scope) IsAdmin() bool {
	return s.Role == RoleAdmin
}

// IsSystem reports whether the scope belongs to a background worker.
func (s Scope) IsSystem() bool {
	return s.Role == RoleSystem
}

// CanRead reports whether the scope may read a resource owned by createdBy.
// Rows without an owner are readable by everyone.
func (s Scope) CanRead(createdBy string) bool {
	return s.IsAdmin() || s.IsSystem() || createdBy == "" || createdBy == s.UserID
}

// CanWrite reports whether the scope may create or change resources.
func (s Scope) CanWrite() bool {
	return s.Role == RoleAdmin || s.Role == RoleEditor || s.Role == ""
}
