package query

import (
	"github.com/tair/stockdesk/internal/inventory/domain"
	"github.com/tair/stockdesk/internal/inventory/search"
)

// SearchItemsQuery represents the query to filter the store by a substring
// of the id or the name
type SearchItemsQuery struct {
	Query string
}

// SearchItemsHandler handles the search items query
type SearchItemsHandler struct {
	repo domain.ItemRepository
}

// NewSearchItemsHandler creates a new search items handler
func NewSearchItemsHandler(repo domain.ItemRepository) *SearchItemsHandler {
	return &SearchItemsHandler{repo: repo}
}

// Handle derives the filtered view over the current store snapshot
func (h *SearchItemsHandler) Handle(q SearchItemsQuery) search.View {
	return search.Filter(h.repo.All(), q.Query)
}
