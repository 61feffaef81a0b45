package query

import (
	"github.com/tair/stockdesk/internal/inventory/domain"
)

// ListItemsHandler handles the list items query
type ListItemsHandler struct {
	repo domain.ItemRepository
}

// NewListItemsHandler creates a new list items handler
func NewListItemsHandler(repo domain.ItemRepository) *ListItemsHandler {
	return &ListItemsHandler{repo: repo}
}

// Handle returns a snapshot of the store in insertion order
func (h *ListItemsHandler) Handle() []domain.Item {
	return h.repo.All()
}
