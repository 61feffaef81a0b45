package repository

import (
	"fmt"
	"sync"

	"github.com/tair/stockdesk/internal/inventory/domain"
)

// MemoryItemRepository implements ItemRepository as an ordered in-memory
// slice. The session owns the store exclusively, but the search debounce
// timer may derive a view while the command loop mutates, so a mutex
// serializes every access.
type MemoryItemRepository struct {
	mu    sync.Mutex
	items []domain.Item
}

// NewMemoryItemRepository creates an empty item repository
func NewMemoryItemRepository() *MemoryItemRepository {
	return &MemoryItemRepository{}
}

// Add appends an item, rejecting case-insensitive id duplicates
func (r *MemoryItemRepository) Add(item domain.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.indexOfID(item.ID) >= 0 {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateID, item.ID)
	}
	r.items = append(r.items, item)
	return nil
}

// Get returns the item at the given store position
func (r *MemoryItemRepository) Get(pos int) (domain.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if pos < 0 || pos >= len(r.items) {
		return domain.Item{}, fmt.Errorf("%w: position %d", domain.ErrNotFound, pos)
	}
	return r.items[pos], nil
}

// Update replaces all four fields of the item at pos. The new id may differ
// from the old one as long as it does not collide with a different item.
func (r *MemoryItemRepository) Update(pos int, item domain.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if pos < 0 || pos >= len(r.items) {
		return fmt.Errorf("%w: position %d", domain.ErrNotFound, pos)
	}
	if existing := r.indexOfID(item.ID); existing >= 0 && existing != pos {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateID, item.ID)
	}
	r.items[pos] = item
	return nil
}

// Remove deletes the item at pos and returns it
func (r *MemoryItemRepository) Remove(pos int) (domain.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if pos < 0 || pos >= len(r.items) {
		return domain.Item{}, fmt.Errorf("%w: position %d", domain.ErrNotFound, pos)
	}
	removed := r.items[pos]
	r.items = append(r.items[:pos], r.items[pos+1:]...)
	return removed, nil
}

// All returns a copied snapshot in store order so callers cannot mutate
// internal state
func (r *MemoryItemRepository) All() []domain.Item {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Item, len(r.items))
	copy(out, r.items)
	return out
}

// Len returns the number of stored items
func (r *MemoryItemRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

// ReplaceAll swaps the store contents for the given batch. Duplicate ids
// within the batch are dropped after the first occurrence so the uniqueness
// invariant holds even for imported files.
func (r *MemoryItemRepository) ReplaceAll(items []domain.Item) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = r.items[:0]
	for _, item := range items {
		if r.indexOfID(item.ID) >= 0 {
			continue
		}
		r.items = append(r.items, item)
	}
}

// indexOfID finds the position of the item matching id ignoring case,
// or -1 when absent. Callers hold r.mu.
func (r *MemoryItemRepository) indexOfID(id string) int {
	for i := range r.items {
		if r.items[i].SameID(id) {
			return i
		}
	}
	return -1
}
