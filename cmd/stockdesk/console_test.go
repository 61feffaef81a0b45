package main

import (
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/stockdesk/internal/app"
	"github.com/tair/stockdesk/internal/config"
	"github.com/tair/stockdesk/internal/inventory/domain"
)

func newTestConsole(t *testing.T) *Console {
	t.Helper()
	a := app.InitializeApp(&config.Config{
		DataFile:          filepath.Join(t.TempDir(), "inventory.csv"),
		LowStockThreshold: 5,
		SearchDebounce:    10 * time.Millisecond,
		LogLevel:          "error",
		Environment:       "test",
	})
	c := NewConsole(a, strings.NewReader(""), io.Discard)
	t.Cleanup(c.debounce.Close)

	// Insertion order deliberately differs from every sortable column
	seed := []domain.Item{
		{ID: "C3", Name: "Sprocket", Quantity: 9, Price: decimal.RequireFromString("3.50")},
		{ID: "A1", Name: "Widget", Quantity: 1, Price: decimal.RequireFromString("1.00")},
		{ID: "B2", Name: "Gadget", Quantity: 2, Price: decimal.RequireFromString("2.00")},
	}
	for _, it := range seed {
		require.NoError(t, a.Items.Add(it))
	}
	c.refresh()
	return c
}

func viewIDs(c *Console) []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	ids := make([]string, len(c.view))
	for i, entry := range c.view {
		ids[i] = entry.Item.ID
	}
	return ids
}

func TestSortOffRestoresInsertionOrder(t *testing.T) {
	c := newTestConsole(t)
	require.Equal(t, []string{"C3", "A1", "B2"}, viewIDs(c))

	c.sortView("name")
	assert.Equal(t, []string{"B2", "C3", "A1"}, viewIDs(c))

	c.sortView("off")
	assert.Equal(t, []string{"C3", "A1", "B2"}, viewIDs(c))
	c.mu.Lock()
	assert.False(t, c.sorted)
	c.mu.Unlock()
}

// 'show' returns to the identity view: no filter and no ordering
func TestShowClearsFilterAndSort(t *testing.T) {
	c := newTestConsole(t)

	c.applyQuery("get")
	c.sortView("id desc")
	assert.Equal(t, []string{"B2", "A1"}, viewIDs(c))

	// Submit inside ShowAll fires synchronously, so the view is current
	// as soon as dispatch returns
	quit := c.dispatch("show")
	assert.False(t, quit)
	assert.Equal(t, []string{"C3", "A1", "B2"}, viewIDs(c))

	c.mu.Lock()
	assert.Empty(t, c.query)
	assert.False(t, c.sorted)
	c.mu.Unlock()
}
