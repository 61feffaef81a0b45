package domain

import (
	"errors"
	"fmt"
)

// Store errors
var (
	// ErrDuplicateID is returned when an add or update would produce two
	// items with the same id under case-insensitive comparison.
	ErrDuplicateID = errors.New("item id already exists")
	// ErrNotFound is returned when no item exists at the given position.
	ErrNotFound = errors.New("item not found")
)

// Validation error kinds
var (
	ErrFieldRequired = errors.New("field is required")
	ErrNotANumber    = errors.New("not a valid number")
	ErrNegativeValue = errors.New("value cannot be negative")
)

// ValidationError reports which field failed which rule
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
