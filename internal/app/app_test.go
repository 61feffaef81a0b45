package app

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/stockdesk/internal/config"
	invcommand "github.com/tair/stockdesk/internal/inventory/usecase/command"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		DataFile:          filepath.Join(t.TempDir(), "inventory.csv"),
		LowStockThreshold: 5,
		SearchDebounce:    10 * time.Millisecond,
		LogLevel:          "error",
		Environment:       "test",
	}
}

func TestInitializeApp(t *testing.T) {
	a := InitializeApp(testConfig(t))

	require.NotNil(t, a)
	assert.NotNil(t, a.Items)
	assert.NotNil(t, a.Files)
	assert.NotNil(t, a.AddItem)
	assert.NotNil(t, a.UpdateItem)
	assert.NotNil(t, a.DeleteItem)
	assert.NotNil(t, a.ImportItems)
	assert.NotNil(t, a.ExportItems)
	assert.NotNil(t, a.ListItems)
	assert.NotNil(t, a.SearchItems)
	assert.NotNil(t, a.LowStock)
	assert.NotNil(t, a.Login)
	assert.NotNil(t, a.AddUser)
	assert.NotNil(t, a.RemoveUser)
	assert.NotNil(t, a.ChangeRole)
	assert.NotNil(t, a.ListUsers)
}

// A mutation followed by a save and a reload reproduces the store, the way
// the shell persists after every operation
func TestAppSaveLoadFlow(t *testing.T) {
	a := InitializeApp(testConfig(t))

	_, err := a.AddItem.Handle(invcommand.AddItemCommand{ID: "A1", Name: "Widget", Quantity: "3", Price: "9.99"})
	require.NoError(t, err)
	require.NoError(t, a.Files.Save(a.Items.All()))

	fresh := InitializeApp(&config.Config{DataFile: a.Files.Path()})
	items, err := fresh.Files.Load()
	require.NoError(t, err)
	fresh.Items.ReplaceAll(items)

	require.Equal(t, 1, fresh.Items.Len())
	got, err := fresh.Items.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "A1", got.ID)
	assert.Equal(t, "9.99", got.Price.StringFixed(2))
}
