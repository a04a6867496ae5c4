package models

// UserRole defines the access level of a registered user.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

// User represents a registered account. Users are created through
// registration and deleted by an admin; they are never edited in place.
type User struct {
	ID       int64    `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Role     UserRole `json:"role"`
}

// IsAdmin reports whether the user may access the admin dashboard.
func (u User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}
