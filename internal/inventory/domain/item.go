package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Item represents a single inventory record
type Item struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// TotalValue returns quantity × price. Computed, never stored.
func (i Item) TotalValue() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// SameID reports whether the item's id equals the given id ignoring case
func (i Item) SameID(id string) bool {
	return strings.EqualFold(i.ID, id)
}

// ItemRepository defines the contract for the session's item store.
// Positions index the unfiltered store order; a filtered view must be
// translated back to a store position before calling Update or Remove.
type ItemRepository interface {
	Add(item Item) error
	Get(pos int) (Item, error)
	Update(pos int, item Item) error
	Remove(pos int) (Item, error)
	All() []Item
	Len() int
	ReplaceAll(items []Item)
}
