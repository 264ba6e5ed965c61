package models

// Roles stored in the user_roles table. A user without a row there has no
// admin access at all.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

// UserRole maps an auth user id to its role
type UserRole struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}
