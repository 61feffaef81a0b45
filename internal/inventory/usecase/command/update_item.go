package command

import (
	"fmt"

	"github.com/tair/stockdesk/internal/inventory/domain"
)

// UpdateItemCommand represents the command to replace all fields of the
// item at a store position. Pos indexes the unfiltered store, translated
// from the active view by the caller.
type UpdateItemCommand struct {
	Pos      int
	ID       string
	Name     string
	Quantity string
	Price    string
}

// UpdateItemHandler handles the update item command
type UpdateItemHandler struct {
	repo domain.ItemRepository
}

// NewUpdateItemHandler creates a new update item handler
func NewUpdateItemHandler(repo domain.ItemRepository) *UpdateItemHandler {
	return &UpdateItemHandler{repo: repo}
}

// Handle validates the fields and replaces the item in place
func (h *UpdateItemHandler) Handle(cmd UpdateItemCommand) (*domain.Item, error) {
	item, err := domain.ParseFields(cmd.ID, cmd.Name, cmd.Quantity, cmd.Price)
	if err != nil {
		return nil, err
	}

	if err := h.repo.Update(cmd.Pos, item); err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	return &item, nil
}
