package domain

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseFields validates raw form input and returns the trimmed, parsed item.
// Rules are checked in a fixed order and the first failure wins:
// non-empty id, non-empty name, numeric quantity and price, quantity >= 0,
// price >= 0.
func ParseFields(id, name, quantity, price string) (Item, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Item{}, &ValidationError{Field: "ID", Err: ErrFieldRequired}
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return Item{}, &ValidationError{Field: "Name", Err: ErrFieldRequired}
	}

	qty, err := strconv.Atoi(strings.TrimSpace(quantity))
	if err != nil {
		return Item{}, &ValidationError{Field: "Quantity", Err: ErrNotANumber}
	}

	prc, err := decimal.NewFromString(strings.TrimSpace(price))
	if err != nil {
		return Item{}, &ValidationError{Field: "Price", Err: ErrNotANumber}
	}

	if qty < 0 {
		return Item{}, &ValidationError{Field: "Quantity", Err: ErrNegativeValue}
	}

	if prc.IsNegative() {
		return Item{}, &ValidationError{Field: "Price", Err: ErrNegativeValue}
	}

	return Item{
		ID:       id,
		Name:     name,
		Quantity: qty,
		Price:    prc.Round(2),
	}, nil
}
