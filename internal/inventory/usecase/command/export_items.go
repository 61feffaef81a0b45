package command

import (
	"fmt"

	"github.com/tair/stockdesk/internal/inventory/domain"
	"github.com/tair/stockdesk/internal/inventory/storage"
)

// ExportItemsCommand represents the command to write the report file with
// computed totals to a user-chosen path
type ExportItemsCommand struct {
	Path string
}

// ExportItemsHandler handles the export command
type ExportItemsHandler struct {
	repo domain.ItemRepository
}

// NewExportItemsHandler creates a new export items handler
func NewExportItemsHandler(repo domain.ItemRepository) *ExportItemsHandler {
	return &ExportItemsHandler{repo: repo}
}

// Handle writes the header plus one row per item, totals included
func (h *ExportItemsHandler) Handle(cmd ExportItemsCommand) (int, error) {
	if cmd.Path == "" {
		return 0, fmt.Errorf("export path is required")
	}

	items := h.repo.All()
	if err := storage.ExportWithTotals(cmd.Path, items); err != nil {
		return 0, fmt.Errorf("failed to export items: %w", err)
	}
	return len(items), nil
}
