package search

import (
	"sort"
	"strings"
)

// Column names a sortable table column
type Column string

const (
	ByID       Column = "id"
	ByName     Column = "name"
	ByQuantity Column = "quantity"
	ByPrice    Column = "price"
	ByTotal    Column = "total"
)

// ParseColumn maps user input to a sort column
func ParseColumn(s string) (Column, bool) {
	switch Column(strings.ToLower(strings.TrimSpace(s))) {
	case ByID:
		return ByID, true
	case ByName:
		return ByName, true
	case ByQuantity:
		return ByQuantity, true
	case ByPrice:
		return ByPrice, true
	case ByTotal:
		return ByTotal, true
	}
	return "", false
}

// SortBy returns a copy of the view ordered by the given column. The sort
// is stable and presentation-only; the underlying store order is untouched.
func SortBy(view View, col Column, descending bool) View {
	sorted := make(View, len(view))
	copy(sorted, view)

	less := func(a, b Entry) bool {
		switch col {
		case ByName:
			return strings.ToLower(a.Item.Name) < strings.ToLower(b.Item.Name)
		case ByQuantity:
			return a.Item.Quantity < b.Item.Quantity
		case ByPrice:
			return a.Item.Price.LessThan(b.Item.Price)
		case ByTotal:
			return a.Item.TotalValue().LessThan(b.Item.TotalValue())
		default:
			return strings.ToLower(a.Item.ID) < strings.ToLower(b.Item.ID)
		}
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		if descending {
			return less(sorted[j], sorted[i])
		}
		return less(sorted[i], sorted[j])
	})
	return sorted
}
