package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/tair/stockdesk/internal/inventory/domain"
)

// exportHeader matches the legacy report layout column for column
var exportHeader = []string{"ID", "Name", "Quantity", "Price", "Total Value"}

// ExportWithTotals writes a report file with a header row and the computed
// total value per item. The report format is distinct from the primary file
// and is never read back.
func ExportWithTotals(path string, items []domain.Item) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to open %s for writing: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(exportHeader); err != nil {
		return fmt.Errorf("failed to write export header: %w", err)
	}
	for _, item := range items {
		record := []string{
			item.ID,
			item.Name,
			strconv.Itoa(item.Quantity),
			item.Price.StringFixed(2),
			item.TotalValue().StringFixed(2),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write export row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush export: %w", err)
	}
	return nil
}
