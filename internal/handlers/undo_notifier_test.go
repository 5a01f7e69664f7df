// internal/handlers/undo_notifier_test.go
package handlers_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klerys/shoplist-be/internal/adapters/memory"
	redis_a "github.com/klerys/shoplist-be/internal/adapters/redis_adapter"
	"github.com/klerys/shoplist-be/internal/core/ports"
	"github.com/klerys/shoplist-be/internal/core/services"
	"github.com/klerys/shoplist-be/internal/handlers"
	"github.com/klerys/shoplist-be/test/helpers"
)

func newRealService(t *testing.T) ports.ListService {
	t.Helper()

	logger := helpers.TestLogger()
	repo := memory.New(logger)
	testRedis := helpers.SetupTestRedis(t)
	cache := redis_a.NewCache(testRedis.Client, time.Minute, logger)

	return services.NewListService(repo, cache, time.Minute, logger)
}

func TestUndoNotifier_ExpiryDismissesPendingDelete(t *testing.T) {
	ctx := context.Background()
	svc := newRealService(t)

	notifier := handlers.NewUndoNotifier(svc, 50*time.Millisecond, helpers.TestLogger())
	t.Cleanup(notifier.DisarmAll)

	item, err := svc.AddItem(ctx, "Milk", "1", "dairy")
	require.NoError(t, err)

	token, deleted := svc.DeleteItem(ctx, item.ID)
	require.True(t, deleted)
	notifier.Arm(token)

	helpers.AssertEventuallyWithTimeout(t, func() bool {
		// Once the prompt expires, the token is stale for everyone
		return !svc.ConfirmUndo(ctx, token)
	}, time.Second, "pending delete should auto-dismiss on expiry")
}

func TestUndoNotifier_DisarmStopsExpiry(t *testing.T) {
	ctx := context.Background()
	svc := newRealService(t)

	notifier := handlers.NewUndoNotifier(svc, 50*time.Millisecond, helpers.TestLogger())
	t.Cleanup(notifier.DisarmAll)

	item, err := svc.AddItem(ctx, "Milk", "1", "dairy")
	require.NoError(t, err)

	token, deleted := svc.DeleteItem(ctx, item.ID)
	require.True(t, deleted)
	notifier.Arm(token)

	// Resolve before the timer fires
	require.True(t, svc.ConfirmUndo(ctx, token))
	notifier.Disarm(token)

	time.Sleep(100 * time.Millisecond)

	groups, err := svc.GroupedView(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "Milk", groups[0].Items[0].Name)
}

func TestUndoNotifier_ArmReplacesPreviousTimer(t *testing.T) {
	ctx := context.Background()
	svc := newRealService(t)

	notifier := handlers.NewUndoNotifier(svc, 50*time.Millisecond, helpers.TestLogger())
	t.Cleanup(notifier.DisarmAll)

	milk, err := svc.AddItem(ctx, "Milk", "1", "dairy")
	require.NoError(t, err)
	eggs, err := svc.AddItem(ctx, "Eggs", "1", "dairy")
	require.NoError(t, err)

	firstToken, _ := svc.DeleteItem(ctx, milk.ID)
	notifier.Arm(firstToken)

	secondToken, _ := svc.DeleteItem(ctx, eggs.ID)
	notifier.Arm(secondToken)

	// The first token was superseded in both the service and the notifier
	assert.False(t, svc.ConfirmUndo(ctx, firstToken))
	assert.True(t, svc.ConfirmUndo(ctx, secondToken))
}
