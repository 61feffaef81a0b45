package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role types
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// ValidRole reports whether the string names a known role
func ValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}

// User represents a credential table entry. Protected accounts are the
// built-in administrators that can never be removed or re-roled.
type User struct {
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
	Protected    bool   `json:"protected"`
}

// IsAdmin checks if the user has the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Session is the authenticated context governing administrative operations
// for the rest of the run
type Session struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Role     string    `json:"role"`
	LoginAt  time.Time `json:"login_at"`
}

// IsAdmin checks if the session carries the admin role
func (s *Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}

// CredentialRepository defines the contract for the credential table.
// Mutations last for the lifetime of the session only; a durable
// implementation can be swapped in behind this interface.
type CredentialRepository interface {
	Create(user *User) error
	FindByUsername(username string) (*User, error)
	Delete(username string) error
	UpdateRole(username, role string) error
	All() []User
}
