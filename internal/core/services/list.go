// internal/core/services/list.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	redis_a "github.com/klerys/shoplist-be/internal/adapters/redis_adapter"
	"github.com/klerys/shoplist-be/internal/core/domain"
	"github.com/klerys/shoplist-be/internal/core/ports"
)

// ListService handles shopping list business logic: the command surface,
// the current view parameters, the pending-undo slot, and memoized reads.
type ListService struct {
	repo   ports.ItemRepository
	cache  ports.CacheRepository
	ttl    time.Duration
	logger *slog.Logger

	mu      sync.Mutex
	view    ports.ViewParams
	pending *pendingDelete
}

// Statically assert that *ListService implements the ListService interface.
var _ ports.ListService = (*ListService)(nil)

// NewListService creates a new list service with the default view
// parameters (show all, no search, default order).
func NewListService(repo ports.ItemRepository, cache ports.CacheRepository, cacheTTL time.Duration, logger *slog.Logger) *ListService {
	return &ListService{
		repo:   repo,
		cache:  cache,
		ttl:    cacheTTL,
		logger: logger.With(slog.String("service", "list")),
		view: ports.ViewParams{
			Filter: domain.FilterAll,
			Sort:   domain.SortDefault,
		},
	}
}

// AddItem validates raw input and appends a new item.
func (s *ListService) AddItem(ctx context.Context, rawName, rawQuantity, rawCategory string) (domain.ShoppingItem, error) {
	item, err := s.repo.Add(ctx, rawName, rawQuantity, domain.ParseCategory(rawCategory))
	if err != nil {
		return domain.ShoppingItem{}, fmt.Errorf("add item: %w", err)
	}

	s.logger.InfoContext(ctx, "item added",
		slog.Int64("id", item.ID),
		slog.String("name", item.Name),
		slog.Int("quantity", item.Quantity),
		slog.String("category", string(item.Category)))

	return item, nil
}

// TogglePurchased flips the purchased flag; unknown ids are a silent no-op.
func (s *ListService) TogglePurchased(ctx context.Context, id int64) (domain.ShoppingItem, bool) {
	item, ok := s.repo.Update(ctx, id, func(i *domain.ShoppingItem) {
		i.Purchased = !i.Purchased
	})
	if ok {
		s.logger.InfoContext(ctx, "purchased toggled",
			slog.Int64("id", id),
			slog.Bool("purchased", item.Purchased))
	}
	return item, ok
}

// ToggleFavorite flips the favorite flag; unknown ids are a silent no-op.
func (s *ListService) ToggleFavorite(ctx context.Context, id int64) (domain.ShoppingItem, bool) {
	item, ok := s.repo.Update(ctx, id, func(i *domain.ShoppingItem) {
		i.Favorite = !i.Favorite
	})
	if ok {
		s.logger.InfoContext(ctx, "favorite toggled",
			slog.Int64("id", id),
			slog.Bool("favorite", item.Favorite))
	}
	return item, ok
}

// SetFilter replaces the view's filter mode.
func (s *ListService) SetFilter(ctx context.Context, mode domain.FilterMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view.Filter = mode
}

// SetSearch replaces the view's search query.
func (s *ListService) SetSearch(ctx context.Context, query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view.Search = query
}

// SetSort replaces the view's within-group sort mode.
func (s *ListService) SetSort(ctx context.Context, mode domain.SortMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view.Sort = mode
}

// View returns the current view parameters.
func (s *ListService) View(ctx context.Context) ports.ViewParams {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

// ClearPurchased removes the purchased subset. These removals bypass the
// undo mechanism entirely.
func (s *ListService) ClearPurchased(ctx context.Context) []domain.ShoppingItem {
	removed := s.repo.RemoveAll(ctx, func(i domain.ShoppingItem) bool {
		return i.Purchased
	})

	s.logger.InfoContext(ctx, "purchased items cleared",
		slog.Int("count", len(removed)))

	return removed
}

// Reset drops all items and rewinds id allocation. Not undoable; any
// pending undo is discarded since its id could collide with a reissued one.
func (s *ListService) Reset(ctx context.Context) {
	s.mu.Lock()
	s.pending = nil
	s.mu.Unlock()

	s.repo.Reset(ctx)
	s.invalidateDerived(ctx)

	s.logger.InfoContext(ctx, "list reset")
}

// GroupedView derives the grouped, ordered view for the current parameters,
// memoized by (version, filter, search, sort). Cache trouble degrades to a
// direct computation rather than failing the read.
func (s *ListService) GroupedView(ctx context.Context) ([]domain.CategoryGroup, error) {
	params := s.View(ctx)
	key := redis_a.BuildKey(redis_a.PrefixView,
		strconv.FormatUint(s.repo.Version(ctx), 10),
		string(params.Filter),
		string(params.Sort),
		strings.ToLower(strings.TrimSpace(params.Search)))

	groups := []domain.CategoryGroup{}
	err := s.cache.GetOrSet(ctx, key, &groups, func() (interface{}, error) {
		return domain.DeriveView(s.repo.List(ctx), params.Filter, params.Search, params.Sort), nil
	}, s.ttl)
	if err != nil {
		s.logger.WarnContext(ctx, "view cache unavailable, deriving directly",
			slog.String("error", err.Error()))
		return domain.DeriveView(s.repo.List(ctx), params.Filter, params.Search, params.Sort), nil
	}

	return groups, nil
}

// Statistics summarizes the full unfiltered collection, memoized by version.
func (s *ListService) Statistics(ctx context.Context) (domain.Statistics, error) {
	key := redis_a.BuildKey(redis_a.PrefixStats,
		strconv.FormatUint(s.repo.Version(ctx), 10))

	var stats domain.Statistics
	err := s.cache.GetOrSet(ctx, key, &stats, func() (interface{}, error) {
		return domain.Summarize(s.repo.List(ctx)), nil
	}, s.ttl)
	if err != nil {
		s.logger.WarnContext(ctx, "stats cache unavailable, computing directly",
			slog.String("error", err.Error()))
		return domain.Summarize(s.repo.List(ctx)), nil
	}

	return stats, nil
}

// invalidateDerived drops all memoized views and statistics. Version keys
// already prevent stale reads; this just bounds dead entries after a wipe.
func (s *ListService) invalidateDerived(ctx context.Context) {
	for _, prefix := range []redis_a.CacheKeyPrefix{redis_a.PrefixView, redis_a.PrefixStats} {
		if err := s.cache.DeletePattern(ctx, string(prefix)+":*"); err != nil {
			s.logger.WarnContext(ctx, "failed to invalidate cache pattern",
				slog.String("prefix", string(prefix)),
				slog.String("error", err.Error()))
		}
	}
}
