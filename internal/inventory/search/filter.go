package search

import (
	"strings"

	"github.com/tair/stockdesk/internal/inventory/domain"
)

// Entry pairs an item with its position in the unfiltered store so a view
// row can always be translated back to the true underlying item.
type Entry struct {
	Pos  int
	Item domain.Item
}

// View is a derived presentation ordering over the store. Never the source
// of truth.
type View []Entry

// Items returns just the items of the view, in view order
func (v View) Items() []domain.Item {
	items := make([]domain.Item, len(v))
	for i, e := range v {
		items[i] = e.Item
	}
	return items
}

// Filter derives a view of the items matching the query. An empty query
// (after trimming) yields the identity view. A non-empty query matches
// case-insensitively as a literal substring of the id or the name; relative
// store order is preserved.
func Filter(items []domain.Item, query string) View {
	q := strings.ToLower(strings.TrimSpace(query))
	view := make(View, 0, len(items))
	for i, item := range items {
		if q == "" ||
			strings.Contains(strings.ToLower(item.ID), q) ||
			strings.Contains(strings.ToLower(item.Name), q) {
			view = append(view, Entry{Pos: i, Item: item})
		}
	}
	return view
}
