package command

import (
	"fmt"

	"github.com/tair/stockdesk/internal/inventory/domain"
)

// AddItemCommand represents the command to add an item from raw form input
type AddItemCommand struct {
	ID       string
	Name     string
	Quantity string
	Price    string
}

// AddItemHandler handles the add item command
type AddItemHandler struct {
	repo domain.ItemRepository
}

// NewAddItemHandler creates a new add item handler
func NewAddItemHandler(repo domain.ItemRepository) *AddItemHandler {
	return &AddItemHandler{repo: repo}
}

// Handle validates the fields and appends the item to the store
func (h *AddItemHandler) Handle(cmd AddItemCommand) (*domain.Item, error) {
	item, err := domain.ParseFields(cmd.ID, cmd.Name, cmd.Quantity, cmd.Price)
	if err != nil {
		return nil, err
	}

	if err := h.repo.Add(item); err != nil {
		return nil, fmt.Errorf("failed to add item: %w", err)
	}

	return &item, nil
}
