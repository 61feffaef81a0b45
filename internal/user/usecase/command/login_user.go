package command

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tair/stockdesk/internal/user/domain"
	"github.com/tair/stockdesk/pkg/auth"
)

// LoginUserCommand represents the command to authenticate a user
type LoginUserCommand struct {
	Username string
	Password string
}

// LoginUserHandler handles the login command
type LoginUserHandler struct {
	repo domain.CredentialRepository
}

// NewLoginUserHandler creates a new login user handler
func NewLoginUserHandler(repo domain.CredentialRepository) *LoginUserHandler {
	return &LoginUserHandler{repo: repo}
}

// Handle authenticates the credentials and returns the tagged session.
// The failure error never reveals whether the username exists.
func (h *LoginUserHandler) Handle(cmd LoginUserCommand) (*domain.Session, error) {
	// Validation
	if cmd.Username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if cmd.Password == "" {
		return nil, fmt.Errorf("password is required")
	}

	user, err := h.repo.FindByUsername(cmd.Username)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.PasswordHash, cmd.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	// Absent or unknown role entries default to the non-admin role
	role := user.Role
	if !domain.ValidRole(role) {
		role = domain.RoleUser
	}

	return &domain.Session{
		ID:       uuid.New(),
		Username: user.Username,
		Role:     role,
		LoginAt:  time.Now(),
	}, nil
}
