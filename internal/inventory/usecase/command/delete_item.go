package command

import (
	"fmt"

	"github.com/tair/stockdesk/internal/inventory/domain"
)

// DeleteItemCommand represents the command to delete the item at a store
// position. The only destructive operation; the caller confirms first.
type DeleteItemCommand struct {
	Pos int
}

// DeleteItemHandler handles the delete item command
type DeleteItemHandler struct {
	repo domain.ItemRepository
}

// NewDeleteItemHandler creates a new delete item handler
func NewDeleteItemHandler(repo domain.ItemRepository) *DeleteItemHandler {
	return &DeleteItemHandler{repo: repo}
}

// Handle removes the item and returns the removed record
func (h *DeleteItemHandler) Handle(cmd DeleteItemCommand) (*domain.Item, error) {
	removed, err := h.repo.Remove(cmd.Pos)
	if err != nil {
		return nil, fmt.Errorf("failed to delete item: %w", err)
	}
	return &removed, nil
}
