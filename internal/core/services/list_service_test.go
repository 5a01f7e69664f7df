package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klerys/shoplist-be/internal/adapters/memory"
	redis_a "github.com/klerys/shoplist-be/internal/adapters/redis_adapter"
	"github.com/klerys/shoplist-be/internal/core/domain"
	"github.com/klerys/shoplist-be/internal/core/services"
	"github.com/klerys/shoplist-be/test/helpers"
)

func newService(t *testing.T) (*services.ListService, *memory.Repository) {
	t.Helper()

	logger := helpers.TestLogger()
	repo := memory.New(logger)
	testRedis := helpers.SetupTestRedis(t)
	cache := redis_a.NewCache(testRedis.Client, time.Minute, logger)

	return services.NewListService(repo, cache, time.Minute, logger), repo
}

func TestListService_AddItem(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	item, err := svc.AddItem(ctx, "Milk", "2", "dairy")
	require.NoError(t, err)

	assert.Equal(t, int64(1), item.ID)
	assert.Equal(t, "Milk", item.Name)
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, domain.CategoryDairy, item.Category)
}

func TestListService_AddItem_EmptyName(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	_, err := svc.AddItem(ctx, "  ", "1", "dairy")
	assert.ErrorIs(t, err, domain.ErrEmptyName)
}

func TestListService_Toggles(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	item, err := svc.AddItem(ctx, "Milk", "1", "dairy")
	require.NoError(t, err)

	toggled, ok := svc.TogglePurchased(ctx, item.ID)
	require.True(t, ok)
	assert.True(t, toggled.Purchased)

	toggled, ok = svc.TogglePurchased(ctx, item.ID)
	require.True(t, ok)
	assert.False(t, toggled.Purchased)

	toggled, ok = svc.ToggleFavorite(ctx, item.ID)
	require.True(t, ok)
	assert.True(t, toggled.Favorite)

	_, ok = svc.TogglePurchased(ctx, 999)
	assert.False(t, ok)
}

func TestListService_DeleteAndConfirmUndo(t *testing.T) {
	ctx := context.Background()
	svc, repo := newService(t)

	item, err := svc.AddItem(ctx, "Milk", "2", "dairy")
	require.NoError(t, err)
	svc.TogglePurchased(ctx, item.ID)
	svc.ToggleFavorite(ctx, item.ID)

	expected := repo.List(ctx)[0]

	token, deleted := svc.DeleteItem(ctx, item.ID)
	require.True(t, deleted)
	require.NotEqual(t, uuid.Nil, token)
	assert.Equal(t, 0, repo.Count(ctx), "deleted item must be gone from all views")

	restored := svc.ConfirmUndo(ctx, token)
	require.True(t, restored)

	listed := repo.List(ctx)
	require.Len(t, listed, 1)
	assert.Equal(t, expected, listed[0], "restore must bring back the exact item, flags and all")
}

func TestListService_DeleteUnknownID(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	item, err := svc.AddItem(ctx, "Milk", "1", "dairy")
	require.NoError(t, err)

	token, deleted := svc.DeleteItem(ctx, item.ID)
	require.True(t, deleted)

	// A miss must not disturb the live pending slot
	missToken, missDeleted := svc.DeleteItem(ctx, 999)
	assert.False(t, missDeleted)
	assert.Equal(t, uuid.Nil, missToken)

	assert.True(t, svc.ConfirmUndo(ctx, token))
}

func TestListService_LastDeleteWins(t *testing.T) {
	ctx := context.Background()
	svc, repo := newService(t)

	milk, err := svc.AddItem(ctx, "Milk", "1", "dairy")
	require.NoError(t, err)
	eggs, err := svc.AddItem(ctx, "Eggs", "1", "dairy")
	require.NoError(t, err)

	firstToken, deleted := svc.DeleteItem(ctx, milk.ID)
	require.True(t, deleted)
	secondToken, deleted := svc.DeleteItem(ctx, eggs.ID)
	require.True(t, deleted)

	// The overwritten token is dead: milk is gone for good
	assert.False(t, svc.ConfirmUndo(ctx, firstToken))
	assert.Equal(t, 0, repo.Count(ctx))

	// The live token still restores eggs
	assert.True(t, svc.ConfirmUndo(ctx, secondToken))
	listed := repo.List(ctx)
	require.Len(t, listed, 1)
	assert.Equal(t, eggs.ID, listed[0].ID)
}

func TestListService_DismissUndo(t *testing.T) {
	ctx := context.Background()
	svc, repo := newService(t)

	item, err := svc.AddItem(ctx, "Milk", "1", "dairy")
	require.NoError(t, err)

	token, deleted := svc.DeleteItem(ctx, item.ID)
	require.True(t, deleted)

	assert.True(t, svc.DismissUndo(ctx, token))
	assert.Equal(t, 0, repo.Count(ctx))

	// Slot is resolved: the same token is now stale everywhere
	assert.False(t, svc.DismissUndo(ctx, token))
	assert.False(t, svc.ConfirmUndo(ctx, token))
}

func TestListService_StaleTokenIsSilentNoOp(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	assert.False(t, svc.ConfirmUndo(ctx, uuid.New()))
	assert.False(t, svc.DismissUndo(ctx, uuid.New()))
}

func TestListService_ConfirmedUndoTokenCannotResolveTwice(t *testing.T) {
	ctx := context.Background()
	svc, repo := newService(t)

	item, err := svc.AddItem(ctx, "Milk", "1", "dairy")
	require.NoError(t, err)

	token, _ := svc.DeleteItem(ctx, item.ID)
	require.True(t, svc.ConfirmUndo(ctx, token))
	assert.False(t, svc.ConfirmUndo(ctx, token))
	assert.Equal(t, 1, repo.Count(ctx))
}

func TestListService_ViewParams(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	params := svc.View(ctx)
	assert.Equal(t, domain.FilterAll, params.Filter)
	assert.Equal(t, domain.SortDefault, params.Sort)
	assert.Empty(t, params.Search)

	svc.SetFilter(ctx, domain.FilterToBuy)
	svc.SetSearch(ctx, "mi")
	svc.SetSort(ctx, domain.SortQuantity)

	params = svc.View(ctx)
	assert.Equal(t, domain.FilterToBuy, params.Filter)
	assert.Equal(t, "mi", params.Search)
	assert.Equal(t, domain.SortQuantity, params.Sort)
}

func TestListService_GroupedView(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	milk, _ := svc.AddItem(ctx, "Milk", "2", "dairy")
	svc.AddItem(ctx, "Eggs", "6", "dairy")
	svc.AddItem(ctx, "Apples", "3", "produce")
	svc.TogglePurchased(ctx, milk.ID)

	svc.SetFilter(ctx, domain.FilterToBuy)
	svc.SetSearch(ctx, "")

	groups, err := svc.GroupedView(ctx)
	require.NoError(t, err)

	require.Len(t, groups, 2)
	assert.Equal(t, domain.CategoryDairy, groups[0].Category)
	require.Len(t, groups[0].Items, 1)
	assert.Equal(t, "Eggs", groups[0].Items[0].Name)
	assert.Equal(t, domain.CategoryProduce, groups[1].Category)
}

func TestListService_GroupedViewIsMemoized(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	svc.AddItem(ctx, "Milk", "1", "dairy")

	first, err := svc.GroupedView(ctx)
	require.NoError(t, err)

	// Second read with unchanged version and params hits the cache
	second, err := svc.GroupedView(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// A mutation changes the version, so the view reflects it immediately
	svc.AddItem(ctx, "Eggs", "1", "dairy")
	third, err := svc.GroupedView(ctx)
	require.NoError(t, err)
	require.Len(t, third, 1)
	assert.Len(t, third[0].Items, 2)
}

func TestListService_Statistics(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	milk, _ := svc.AddItem(ctx, "Milk", "1", "dairy")
	svc.AddItem(ctx, "Apples", "1", "produce")
	svc.AddItem(ctx, "Bread", "1", "bakery")
	svc.TogglePurchased(ctx, milk.ID)

	stats, err := svc.Statistics(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.PurchasedCount)
	assert.Equal(t, 2, stats.Remaining)
	assert.Equal(t, 3, stats.DistinctCategories)
	assert.Equal(t, 33, stats.Percentage)
}

func TestListService_StatisticsIgnoreViewParams(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	milk, _ := svc.AddItem(ctx, "Milk", "1", "dairy")
	svc.AddItem(ctx, "Eggs", "1", "dairy")
	svc.TogglePurchased(ctx, milk.ID)

	// Narrow the view as far as possible; statistics must not notice
	svc.SetFilter(ctx, domain.FilterPurchased)
	svc.SetSearch(ctx, "zzz")

	stats, err := svc.Statistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 50, stats.Percentage)
}

func TestListService_ClearPurchased(t *testing.T) {
	ctx := context.Background()
	svc, repo := newService(t)

	milk, _ := svc.AddItem(ctx, "Milk", "1", "dairy")
	svc.AddItem(ctx, "Eggs", "1", "dairy")
	bread, _ := svc.AddItem(ctx, "Bread", "1", "bakery")
	svc.TogglePurchased(ctx, milk.ID)
	svc.TogglePurchased(ctx, bread.ID)

	removed := svc.ClearPurchased(ctx)

	require.Len(t, removed, 2)
	assert.Equal(t, 1, repo.Count(ctx))

	// Bulk removals bypass undo entirely
	assert.False(t, svc.ConfirmUndo(ctx, uuid.New()))
}

func TestListService_Reset(t *testing.T) {
	ctx := context.Background()
	svc, repo := newService(t)

	item, _ := svc.AddItem(ctx, "Milk", "1", "dairy")
	token, deleted := svc.DeleteItem(ctx, item.ID)
	require.True(t, deleted)

	svc.Reset(ctx)

	assert.Equal(t, 0, repo.Count(ctx))

	// Reset discards the pending undo; its id could collide after rewind
	assert.False(t, svc.ConfirmUndo(ctx, token))

	fresh, err := svc.AddItem(ctx, "Eggs", "1", "dairy")
	require.NoError(t, err)
	assert.Equal(t, int64(1), fresh.ID)
}

func TestListService_ViewAfterResetIsEmpty(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	svc.AddItem(ctx, "Milk", "1", "dairy")

	groups, err := svc.GroupedView(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 1)

	svc.Reset(ctx)

	groups, err = svc.GroupedView(ctx)
	require.NoError(t, err)
	assert.Empty(t, groups)
}
