// internal/core/ports/item_repository.go
package ports

import (
	"context"

	"github.com/klerys/shoplist-be/internal/core/domain"
)

// ItemRepository is the port for the owned item collection. Implementations
// assign ids monotonically starting at 1, never reuse an id, and keep items
// in insertion order (which, given monotonic ids, is ascending-id order).
// Every state change bumps the version counter.
type ItemRepository interface {
	// Add validates raw input and appends a new item. The only rejection is
	// domain.ErrEmptyName; malformed quantity text falls back to 1.
	Add(ctx context.Context, rawName, rawQuantity string, category domain.Category) (domain.ShoppingItem, error)

	// Update applies mutate to a copy of the item and stores it back, id
	// preserved. Unknown ids are a silent no-op, reported by the bool.
	Update(ctx context.Context, id int64, mutate func(*domain.ShoppingItem)) (domain.ShoppingItem, bool)

	// RemoveByID detaches and returns the item, or false when absent.
	RemoveByID(ctx context.Context, id int64) (domain.ShoppingItem, bool)

	// RemoveAll removes every item matching the predicate and returns the
	// removed set; survivors keep their relative order.
	RemoveAll(ctx context.Context, match func(domain.ShoppingItem) bool) []domain.ShoppingItem

	// Restore reinserts a detached item at its ascending-id position. Used
	// by the undo path; the id must come from this repository's epoch.
	Restore(ctx context.Context, item domain.ShoppingItem)

	// Reset drops all items and rewinds id allocation to 1.
	Reset(ctx context.Context)

	// List returns a snapshot in default order.
	List(ctx context.Context) []domain.ShoppingItem

	// Count returns the number of items currently held.
	Count(ctx context.Context) int

	// Version returns the monotonic change counter used to key memoization.
	Version(ctx context.Context) uint64
}
