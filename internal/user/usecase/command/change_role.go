package command

import (
	"fmt"

	"github.com/tair/stockdesk/internal/user/domain"
)

// ChangeRoleCommand represents the command to change a user's role
// (admin only)
type ChangeRoleCommand struct {
	Acting   *domain.Session
	Username string
	Role     string
}

// ChangeRoleHandler handles the change role command
type ChangeRoleHandler struct {
	repo domain.CredentialRepository
}

// NewChangeRoleHandler creates a new change role handler
func NewChangeRoleHandler(repo domain.CredentialRepository) *ChangeRoleHandler {
	return &ChangeRoleHandler{repo: repo}
}

// Handle updates the role unless the account is protected
func (h *ChangeRoleHandler) Handle(cmd ChangeRoleCommand) (*domain.User, error) {
	if cmd.Acting == nil || !cmd.Acting.IsAdmin() {
		return nil, domain.ErrAccessDenied
	}

	if !domain.ValidRole(cmd.Role) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidRole, cmd.Role)
	}

	user, err := h.repo.FindByUsername(cmd.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to change role: %w", err)
	}

	if user.Protected {
		return nil, fmt.Errorf("%w: %s", domain.ErrProtectedAccount, cmd.Username)
	}

	if err := h.repo.UpdateRole(cmd.Username, cmd.Role); err != nil {
		return nil, fmt.Errorf("failed to change role: %w", err)
	}

	user.Role = cmd.Role
	return user, nil
}
