package command

import (
	"fmt"

	"github.com/tair/stockdesk/internal/user/domain"
	"github.com/tair/stockdesk/pkg/auth"
)

// AddUserCommand represents the command to add a credential entry
// (admin only)
type AddUserCommand struct {
	Acting   *domain.Session
	Username string
	Password string
	Role     string
}

// AddUserHandler handles the add user command
type AddUserHandler struct {
	repo domain.CredentialRepository
}

// NewAddUserHandler creates a new add user handler
func NewAddUserHandler(repo domain.CredentialRepository) *AddUserHandler {
	return &AddUserHandler{repo: repo}
}

// Handle creates the user after checking the acting session's role
func (h *AddUserHandler) Handle(cmd AddUserCommand) (*domain.User, error) {
	if cmd.Acting == nil || !cmd.Acting.IsAdmin() {
		return nil, domain.ErrAccessDenied
	}

	// Validation
	if cmd.Username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if cmd.Password == "" {
		return nil, fmt.Errorf("password is required")
	}
	role := cmd.Role
	if role == "" {
		role = domain.RoleUser
	}
	if !domain.ValidRole(role) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidRole, cmd.Role)
	}

	hash, err := auth.HashPassword(cmd.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Username:     cmd.Username,
		PasswordHash: hash,
		Role:         role,
	}

	if err := h.repo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to add user: %w", err)
	}

	return user, nil
}
