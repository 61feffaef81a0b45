package command

import (
	"fmt"

	"github.com/tair/stockdesk/internal/inventory/domain"
	"github.com/tair/stockdesk/internal/inventory/storage"
)

// ImportItemsCommand represents the command to replace the store contents
// with the items parsed from a file
type ImportItemsCommand struct {
	Path string
}

// ImportReport summarizes what an import did
type ImportReport struct {
	// Loaded is how many well-formed lines the file yielded.
	Loaded int
	// Imported is how many items ended up in the store; the difference is
	// duplicate ids dropped after their first occurrence.
	Imported int
}

// ImportItemsHandler handles the import command
type ImportItemsHandler struct {
	repo  domain.ItemRepository
	files *storage.FileStore
}

// NewImportItemsHandler creates a new import items handler
func NewImportItemsHandler(repo domain.ItemRepository, files *storage.FileStore) *ImportItemsHandler {
	return &ImportItemsHandler{repo: repo, files: files}
}

// Handle reads the file leniently and replaces the store wholesale
func (h *ImportItemsHandler) Handle(cmd ImportItemsCommand) (*ImportReport, error) {
	if cmd.Path == "" {
		return nil, fmt.Errorf("import path is required")
	}

	items, err := h.files.LoadLenient(cmd.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to import from %s: %w", cmd.Path, err)
	}

	h.repo.ReplaceAll(items)

	return &ImportReport{
		Loaded:   len(items),
		Imported: h.repo.Len(),
	}, nil
}
