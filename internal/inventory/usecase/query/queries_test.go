package query

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/stockdesk/internal/inventory/domain"
	"github.com/tair/stockdesk/internal/inventory/repository"
)

func seededRepo(t *testing.T) *repository.MemoryItemRepository {
	t.Helper()
	repo := repository.NewMemoryItemRepository()
	for _, it := range []domain.Item{
		{ID: "A1", Name: "Widget", Quantity: 3, Price: decimal.RequireFromString("1.00")},
		{ID: "B2", Name: "Gadget", Quantity: 12, Price: decimal.RequireFromString("2.00")},
		{ID: "C3", Name: "Sprocket", Quantity: 1, Price: decimal.RequireFromString("3.00")},
	} {
		require.NoError(t, repo.Add(it))
	}
	return repo
}

func TestListItemsReturnsStoreOrder(t *testing.T) {
	handler := NewListItemsHandler(seededRepo(t))
	items := handler.Handle()
	require.Len(t, items, 3)
	assert.Equal(t, "A1", items[0].ID)
	assert.Equal(t, "C3", items[2].ID)
}

func TestSearchItems(t *testing.T) {
	handler := NewSearchItemsHandler(seededRepo(t))

	view := handler.Handle(SearchItemsQuery{Query: "get"})
	require.Len(t, view, 2)
	assert.Equal(t, "A1", view[0].Item.ID)
	assert.Equal(t, "B2", view[1].Item.ID)

	all := handler.Handle(SearchItemsQuery{Query: ""})
	assert.Len(t, all, 3)
}

func TestLowStock(t *testing.T) {
	handler := NewLowStockHandler(seededRepo(t))

	low := handler.Handle(LowStockQuery{Threshold: 4})
	require.Len(t, low, 2)
	assert.Equal(t, "A1", low[0].ID)
	assert.Equal(t, "C3", low[1].ID)

	// Zero threshold falls back to the default
	low = handler.Handle(LowStockQuery{})
	require.Len(t, low, 2)

	none := handler.Handle(LowStockQuery{Threshold: 1})
	assert.Empty(t, none)
}
