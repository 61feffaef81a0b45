package command

import (
	"fmt"

	"github.com/tair/stockdesk/internal/user/domain"
)

// RemoveUserCommand represents the command to remove a credential entry
// (admin only)
type RemoveUserCommand struct {
	Acting   *domain.Session
	Username string
}

// RemoveUserHandler handles the remove user command
type RemoveUserHandler struct {
	repo domain.CredentialRepository
}

// NewRemoveUserHandler creates a new remove user handler
func NewRemoveUserHandler(repo domain.CredentialRepository) *RemoveUserHandler {
	return &RemoveUserHandler{repo: repo}
}

// Handle removes the user unless the account is protected
func (h *RemoveUserHandler) Handle(cmd RemoveUserCommand) error {
	if cmd.Acting == nil || !cmd.Acting.IsAdmin() {
		return domain.ErrAccessDenied
	}

	user, err := h.repo.FindByUsername(cmd.Username)
	if err != nil {
		return fmt.Errorf("failed to remove user: %w", err)
	}

	if user.Protected {
		return fmt.Errorf("%w: %s", domain.ErrProtectedAccount, cmd.Username)
	}

	if err := h.repo.Delete(cmd.Username); err != nil {
		return fmt.Errorf("failed to remove user: %w", err)
	}

	return nil
}
