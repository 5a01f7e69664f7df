// internal/adapters/memory/repository.go

// Package memory implements the in-memory item repository. All state is
// process-lifetime only; there is deliberately no persistence behind it.
package memory

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/klerys/shoplist-be/internal/core/domain"
	"github.com/klerys/shoplist-be/internal/core/ports"
)

// Repository holds the ordered item collection, the monotonic id allocator,
// and the version counter. Items live in a slice in insertion order; since
// ids are assigned monotonically at insertion, that order is also ascending
// id order, and Restore keeps it that way.
type Repository struct {
	mu      sync.RWMutex
	items   []domain.ShoppingItem
	nextID  int64
	version uint64
	logger  *slog.Logger
}

// Statically assert that *Repository implements the ItemRepository interface.
var _ ports.ItemRepository = (*Repository)(nil)

// New creates an empty repository with id allocation starting at 1.
func New(logger *slog.Logger) *Repository {
	return &Repository{
		nextID: 1,
		logger: logger.With(slog.String("component", "memory_repository")),
	}
}

// Add validates raw input and appends the new item.
func (r *Repository) Add(ctx context.Context, rawName, rawQuantity string, category domain.Category) (domain.ShoppingItem, error) {
	item, err := domain.NewItem(rawName, rawQuantity, string(category))
	if err != nil {
		return domain.ShoppingItem{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	item.ID = r.nextID
	r.nextID++
	r.items = append(r.items, item)
	r.version++

	r.logger.DebugContext(ctx, "item added",
		slog.Int64("id", item.ID),
		slog.String("name", item.Name),
		slog.String("category", string(item.Category)))

	return item, nil
}

// Update replaces the item with a field-mutated copy, id preserved.
// Unknown ids are a silent no-op.
func (r *Repository) Update(ctx context.Context, id int64, mutate func(*domain.ShoppingItem)) (domain.ShoppingItem, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return domain.ShoppingItem{}, false
	}

	updated := r.items[i]
	mutate(&updated)
	updated.ID = id
	r.items[i] = updated
	r.version++

	return updated, true
}

// RemoveByID detaches and returns the item, or false when absent.
func (r *Repository) RemoveByID(ctx context.Context, id int64) (domain.ShoppingItem, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return domain.ShoppingItem{}, false
	}

	removed := r.items[i]
	r.items = append(r.items[:i], r.items[i+1:]...)
	r.version++

	return removed, true
}

// RemoveAll removes every matching item; survivors keep their order.
func (r *Repository) RemoveAll(ctx context.Context, match func(domain.ShoppingItem) bool) []domain.ShoppingItem {
	r.mu.Lock()
	defer r.mu.Unlock()

	var removed []domain.ShoppingItem
	kept := r.items[:0]
	for _, item := range r.items {
		if match(item) {
			removed = append(removed, item)
		} else {
			kept = append(kept, item)
		}
	}

	if len(removed) == 0 {
		return nil
	}

	r.items = kept
	r.version++
	return removed
}

// Restore reinserts a detached item at its ascending-id position. An id
// already present is a no-op; the undo manager never produces one.
func (r *Repository) Restore(ctx context.Context, item domain.ShoppingItem) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := sort.Search(len(r.items), func(i int) bool {
		return r.items[i].ID >= item.ID
	})
	if i < len(r.items) && r.items[i].ID == item.ID {
		return
	}

	r.items = append(r.items, domain.ShoppingItem{})
	copy(r.items[i+1:], r.items[i:])
	r.items[i] = item
	r.version++
}

// Reset drops all items and rewinds id allocation to 1.
func (r *Repository) Reset(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = nil
	r.nextID = 1
	r.version++

	r.logger.DebugContext(ctx, "repository reset")
}

// List returns a snapshot in default order.
func (r *Repository) List(ctx context.Context) []domain.ShoppingItem {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.ShoppingItem, len(r.items))
	copy(out, r.items)
	return out
}

// Count returns the number of items currently held.
func (r *Repository) Count(ctx context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// Version returns the monotonic change counter. It survives Reset so that
// cache keys from before a reset can never collide with keys after it.
func (r *Repository) Version(ctx context.Context) uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.version
}

// indexOf locates an item by id; callers hold the lock.
func (r *Repository) indexOf(id int64) int {
	for i := range r.items {
		if r.items[i].ID == id {
			return i
		}
	}
	return -1
}
