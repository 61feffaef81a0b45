package query

import (
	"github.com/tair/stockdesk/internal/user/domain"
)

// ListUsersQuery represents the query for the credential table (admin only)
type ListUsersQuery struct {
	Acting *domain.Session
}

// ListUsersHandler handles the list users query
type ListUsersHandler struct {
	repo domain.CredentialRepository
}

// NewListUsersHandler creates a new list users handler
func NewListUsersHandler(repo domain.CredentialRepository) *ListUsersHandler {
	return &ListUsersHandler{repo: repo}
}

// Handle returns all credential entries for the management view
func (h *ListUsersHandler) Handle(q ListUsersQuery) ([]domain.User, error) {
	if q.Acting == nil || !q.Acting.IsAdmin() {
		return nil, domain.ErrAccessDenied
	}
	return h.repo.All(), nil
}
