// internal/handlers/list.go
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/klerys/shoplist-be/internal/core/domain"
	"github.com/klerys/shoplist-be/internal/core/ports"
)

// ListHandler handles shopping-list HTTP requests
type ListHandler struct {
	service  ports.ListService
	notifier *UndoNotifier
	logger   *slog.Logger
}

// NewListHandler creates a new list handler
func NewListHandler(service ports.ListService, notifier *UndoNotifier, logger *slog.Logger) *ListHandler {
	return &ListHandler{
		service:  service,
		notifier: notifier,
		logger:   logger.With(slog.String("handler", "list")),
	}
}

// AddItem handles POST /api/v1/items
func (h *ListHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := h.service.AddItem(ctx, req.Name, req.Quantity, req.Category)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyName) {
			h.respondError(w, http.StatusBadRequest, "Item name is required")
			return
		}
		h.logger.ErrorContext(ctx, "failed to add item",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to add item")
		return
	}

	h.logger.InfoContext(ctx, "item added",
		slog.Int64("item_id", item.ID),
		slog.String("item_name", item.Name))

	h.respondJSON(w, http.StatusCreated, item)
}

// TogglePurchased handles POST /api/v1/items/{id}/purchased
func (h *ListHandler) TogglePurchased(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.service.TogglePurchased)
}

// ToggleFavorite handles POST /api/v1/items/{id}/favorite
func (h *ListHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.service.ToggleFavorite)
}

// toggle is shared by the purchased and favorite endpoints. An unknown id
// is a silent no-op so a stale client stays on the 200 path.
func (h *ListHandler) toggle(w http.ResponseWriter, r *http.Request, fn func(context.Context, int64) (domain.ShoppingItem, bool)) {
	ctx := r.Context()

	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	item, found := fn(ctx, id)
	if !found {
		h.respondJSON(w, http.StatusOK, ToggleResponse{Updated: false})
		return
	}

	h.respondJSON(w, http.StatusOK, ToggleResponse{Updated: true, Item: &item})
}

// DeleteItem handles DELETE /api/v1/items/{id}
func (h *ListHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	token, deleted := h.service.DeleteItem(ctx, id)
	if !deleted {
		h.respondJSON(w, http.StatusOK, DeleteResponse{Deleted: false})
		return
	}

	h.notifier.Arm(token)

	h.logger.InfoContext(ctx, "item deleted, undo armed",
		slog.Int64("item_id", id),
		slog.String("undo_token", token.String()))

	h.respondJSON(w, http.StatusOK, DeleteResponse{Deleted: true, Token: token.String()})
}

// ConfirmUndo handles POST /api/v1/undo/confirm
func (h *ListHandler) ConfirmUndo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	token, ok := h.parseToken(w, r)
	if !ok {
		return
	}

	restored := h.service.ConfirmUndo(ctx, token)
	if restored {
		h.notifier.Disarm(token)
	}

	h.respondJSON(w, http.StatusOK, map[string]bool{"restored": restored})
}

// DismissUndo handles POST /api/v1/undo/dismiss
func (h *ListHandler) DismissUndo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	token, ok := h.parseToken(w, r)
	if !ok {
		return
	}

	dismissed := h.service.DismissUndo(ctx, token)
	if dismissed {
		h.notifier.Disarm(token)
	}

	h.respondJSON(w, http.StatusOK, map[string]bool{"dismissed": dismissed})
}

// UpdateView handles PUT /api/v1/view
func (h *ListHandler) UpdateView(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ViewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Filter != nil {
		mode, err := domain.ParseFilterMode(*req.Filter)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, "Unknown filter mode: "+*req.Filter)
			return
		}
		h.service.SetFilter(ctx, mode)
	}

	if req.Sort != nil {
		mode, err := domain.ParseSortMode(*req.Sort)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, "Unknown sort mode: "+*req.Sort)
			return
		}
		h.service.SetSort(ctx, mode)
	}

	if req.Search != nil {
		h.service.SetSearch(ctx, *req.Search)
	}

	h.respondJSON(w, http.StatusOK, h.service.View(ctx))
}

// GetView handles GET /api/v1/view
func (h *ListHandler) GetView(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	groups, err := h.service.GroupedView(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to build grouped view",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to build view")
		return
	}

	h.respondJSON(w, http.StatusOK, ViewResponse{
		Params: h.service.View(ctx),
		Groups: groups,
	})
}

// GetStatistics handles GET /api/v1/statistics
func (h *ListHandler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := h.service.Statistics(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to compute statistics",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to compute statistics")
		return
	}

	h.respondJSON(w, http.StatusOK, stats)
}

// ClearPurchased handles POST /api/v1/items/clear-purchased
func (h *ListHandler) ClearPurchased(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	removed := h.service.ClearPurchased(ctx)

	h.logger.InfoContext(ctx, "purchased items cleared",
		slog.Int("removed", len(removed)))

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"removed": len(removed),
		"items":   removed,
	})
}

// Reset handles POST /api/v1/reset
func (h *ListHandler) Reset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	h.service.Reset(ctx)
	h.notifier.DisarmAll()

	h.logger.InfoContext(ctx, "list reset")

	w.WriteHeader(http.StatusNoContent)
}

// Helper methods

func (h *ListHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

func (h *ListHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

func (h *ListHandler) parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid item ID format")
		return 0, false
	}
	return id, true
}

func (h *ListHandler) parseToken(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	var req UndoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return uuid.Nil, false
	}

	token, err := uuid.Parse(req.Token)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid undo token format")
		return uuid.Nil, false
	}

	return token, true
}

// Request/Response DTOs

// AddItemRequest represents the request body for adding an item. Quantity
// comes in as free text and is coerced server side, never rejected.
type AddItemRequest struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Category string `json:"category,omitempty"`
}

// UndoRequest carries the token handed out by a delete.
type UndoRequest struct {
	Token string `json:"token"`
}

// ViewRequest updates view parameters; absent fields keep their value.
type ViewRequest struct {
	Filter *string `json:"filter,omitempty"`
	Search *string `json:"search,omitempty"`
	Sort   *string `json:"sort,omitempty"`
}

// ViewResponse pairs the grouped view with the parameters that shaped it.
type ViewResponse struct {
	Params ports.ViewParams       `json:"params"`
	Groups []domain.CategoryGroup `json:"groups"`
}

// ToggleResponse reports whether a toggle landed on an existing item.
type ToggleResponse struct {
	Updated bool                 `json:"updated"`
	Item    *domain.ShoppingItem `json:"item,omitempty"`
}

// DeleteResponse carries the undo token for a successful delete.
type DeleteResponse struct {
	Deleted bool   `json:"deleted"`
	Token   string `json:"token,omitempty"`
}
