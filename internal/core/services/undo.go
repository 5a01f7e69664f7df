// internal/core/services/undo.go
package services

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/klerys/shoplist-be/internal/core/domain"
)

// pendingDelete is the single-slot holding area for a just-removed item.
// The token disambiguates resolutions that race with later deletes.
type pendingDelete struct {
	item  domain.ShoppingItem
	token uuid.UUID
}

// DeleteItem removes the item from the repository immediately (it is absent
// from all views while pending) and parks it in the pending slot under a
// fresh token. A delete while another is pending overwrites the slot: the
// previously pending item is permanently discarded.
func (s *ListService) DeleteItem(ctx context.Context, id int64) (uuid.UUID, bool) {
	item, ok := s.repo.RemoveByID(ctx, id)
	if !ok {
		// A miss must not discard a live undo opportunity.
		return uuid.Nil, false
	}

	token := uuid.New()

	s.mu.Lock()
	if s.pending != nil {
		s.logger.InfoContext(ctx, "pending undo superseded",
			slog.Int64("discarded_id", s.pending.item.ID),
			slog.String("discarded_token", s.pending.token.String()))
	}
	s.pending = &pendingDelete{item: item, token: token}
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "item deleted, undo pending",
		slog.Int64("id", id),
		slog.String("token", token.String()))

	return token, true
}

// ConfirmUndo restores the pending item when the token matches the current
// slot; its id is preserved, so it reoccupies its natural position under
// default order. A stale or mismatched token is a silent no-op.
func (s *ListService) ConfirmUndo(ctx context.Context, token uuid.UUID) bool {
	s.mu.Lock()
	if s.pending == nil || s.pending.token != token {
		s.mu.Unlock()
		return false
	}
	item := s.pending.item
	s.pending = nil
	s.mu.Unlock()

	s.repo.Restore(ctx, item)

	s.logger.InfoContext(ctx, "delete undone",
		slog.Int64("id", item.ID),
		slog.String("token", token.String()))

	return true
}

// DismissUndo discards the pending item permanently on a token match. The
// caller may be a user decline or an expired prompt; either way a stale
// token resolves as a silent no-op.
func (s *ListService) DismissUndo(ctx context.Context, token uuid.UUID) bool {
	s.mu.Lock()
	if s.pending == nil || s.pending.token != token {
		s.mu.Unlock()
		return false
	}
	id := s.pending.item.ID
	s.pending = nil
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "pending delete dismissed",
		slog.Int64("id", id),
		slog.String("token", token.String()))

	return true
}
