// internal/core/ports/list_service.go
package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/klerys/shoplist-be/internal/core/domain"
)

// ListService is the application service port: the command and query
// surface the UI collaborator drives.
type ListService interface {
	AddItem(ctx context.Context, rawName, rawQuantity, rawCategory string) (domain.ShoppingItem, error)
	TogglePurchased(ctx context.Context, id int64) (domain.ShoppingItem, bool)
	ToggleFavorite(ctx context.Context, id int64) (domain.ShoppingItem, bool)

	// DeleteItem removes the item immediately and parks it in the single
	// pending-undo slot, returning the token that can resolve it. A second
	// delete overwrites the slot; the previous pending item is gone for
	// good. Unknown ids return false and leave the slot untouched.
	DeleteItem(ctx context.Context, id int64) (uuid.UUID, bool)

	// ConfirmUndo restores the pending item when the token matches the
	// current slot. Stale or mismatched tokens are a silent no-op.
	ConfirmUndo(ctx context.Context, token uuid.UUID) bool

	// DismissUndo discards the pending item on a token match; the return
	// reports whether this call resolved the slot.
	DismissUndo(ctx context.Context, token uuid.UUID) bool

	SetFilter(ctx context.Context, mode domain.FilterMode)
	SetSearch(ctx context.Context, query string)
	SetSort(ctx context.Context, mode domain.SortMode)
	View(ctx context.Context) ViewParams

	// ClearPurchased removes the purchased subset, bypassing undo.
	ClearPurchased(ctx context.Context) []domain.ShoppingItem

	// Reset drops everything, rewinds ids, and clears any pending undo.
	Reset(ctx context.Context)

	GroupedView(ctx context.Context) ([]domain.CategoryGroup, error)
	Statistics(ctx context.Context) (domain.Statistics, error)
}

// ViewParams holds the current view parameters applied by GroupedView.
type ViewParams struct {
	Filter domain.FilterMode `json:"filter"`
	Search string            `json:"search"`
	Sort   domain.SortMode   `json:"sort"`
}
