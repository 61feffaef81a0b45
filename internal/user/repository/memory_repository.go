package repository

import (
	"fmt"

	"github.com/tair/stockdesk/internal/user/domain"
	"github.com/tair/stockdesk/pkg/auth"
)

// MemoryCredentialRepository implements CredentialRepository in memory.
// Username lookup is case-sensitive. Runtime mutations are lost on restart.
type MemoryCredentialRepository struct {
	users []domain.User
}

// NewMemoryCredentialRepository creates an empty credential repository
func NewMemoryCredentialRepository() *MemoryCredentialRepository {
	return &MemoryCredentialRepository{}
}

// NewSeededCredentialRepository creates the repository with the built-in
// accounts: the protected administrator and a regular desk account.
func NewSeededCredentialRepository() *MemoryCredentialRepository {
	return &MemoryCredentialRepository{
		users: []domain.User{
			{
				Username:     "admin",
				PasswordHash: auth.MustHashPassword("admin123"),
				Role:         domain.RoleAdmin,
				Protected:    true,
			},
			{
				Username:     "staff",
				PasswordHash: auth.MustHashPassword("staff123"),
				Role:         domain.RoleUser,
			},
		},
	}
}

// Create inserts a new credential entry
func (r *MemoryCredentialRepository) Create(user *domain.User) error {
	if r.indexOf(user.Username) >= 0 {
		return fmt.Errorf("%w: %s", domain.ErrUserExists, user.Username)
	}
	r.users = append(r.users, *user)
	return nil
}

// FindByUsername retrieves a credential entry by exact username
func (r *MemoryCredentialRepository) FindByUsername(username string) (*domain.User, error) {
	i := r.indexOf(username)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, username)
	}
	user := r.users[i]
	return &user, nil
}

// Delete removes a credential entry
func (r *MemoryCredentialRepository) Delete(username string) error {
	i := r.indexOf(username)
	if i < 0 {
		return fmt.Errorf("%w: %s", domain.ErrUserNotFound, username)
	}
	r.users = append(r.users[:i], r.users[i+1:]...)
	return nil
}

// UpdateRole changes the role of an existing entry
func (r *MemoryCredentialRepository) UpdateRole(username, role string) error {
	i := r.indexOf(username)
	if i < 0 {
		return fmt.Errorf("%w: %s", domain.ErrUserNotFound, username)
	}
	r.users[i].Role = role
	return nil
}

// All returns a copied snapshot of the credential table
func (r *MemoryCredentialRepository) All() []domain.User {
	out := make([]domain.User, len(r.users))
	copy(out, r.users)
	return out
}

func (r *MemoryCredentialRepository) indexOf(username string) int {
	for i := range r.users {
		if r.users[i].Username == username {
			return i
		}
	}
	return -1
}
