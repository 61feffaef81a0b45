package query

import (
	"github.com/tair/stockdesk/internal/inventory/domain"
)

// DefaultLowStockThreshold is used when a query does not carry its own
const DefaultLowStockThreshold = 5

// LowStockQuery represents the query for items running out
type LowStockQuery struct {
	Threshold int
}

// LowStockHandler handles the low stock query
type LowStockHandler struct {
	repo domain.ItemRepository
}

// NewLowStockHandler creates a new low stock handler
func NewLowStockHandler(repo domain.ItemRepository) *LowStockHandler {
	return &LowStockHandler{repo: repo}
}

// Handle returns the items whose quantity is below the threshold, in store
// order
func (h *LowStockHandler) Handle(q LowStockQuery) []domain.Item {
	threshold := q.Threshold
	if threshold <= 0 {
		threshold = DefaultLowStockThreshold
	}

	low := []domain.Item{}
	for _, item := range h.repo.All() {
		if item.Quantity < threshold {
			low = append(low, item)
		}
	}
	return low
}
