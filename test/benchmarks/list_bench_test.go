package benchmarks

import (
	"context"
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/klerys/shoplist-be/internal/adapters/memory"
	redis_a "github.com/klerys/shoplist-be/internal/adapters/redis_adapter"
	"github.com/klerys/shoplist-be/internal/core/domain"
	"github.com/klerys/shoplist-be/internal/core/ports"
	"github.com/klerys/shoplist-be/internal/core/services"
	"github.com/klerys/shoplist-be/test/helpers"
)

func BenchmarkDeriveView(b *testing.B) {
	sizes := []int{10, 100, 1000}

	for _, size := range sizes {
		items := makeBenchItems(size)

		b.Run(fmt.Sprintf("Default_%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = domain.DeriveView(items, domain.FilterAll, "", domain.SortDefault)
			}
		})

		b.Run(fmt.Sprintf("FilterSearchSort_%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = domain.DeriveView(items, domain.FilterToBuy, "it", domain.SortQuantity)
			}
		})
	}
}

func BenchmarkSummarize(b *testing.B) {
	items := makeBenchItems(1000)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = domain.Summarize(items)
	}
}

func BenchmarkRepositoryOperations(b *testing.B) {
	ctx := context.Background()

	b.Run("Add", func(b *testing.B) {
		repo := memory.New(helpers.TestLogger())
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = repo.Add(ctx, fmt.Sprintf("Item %d", i), "1", domain.CategoryOther)
		}
	})

	b.Run("List", func(b *testing.B) {
		repo := memory.New(helpers.TestLogger())
		seedRepo(ctx, repo, 1000)

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = repo.List(ctx)
		}
	})

	b.Run("Update", func(b *testing.B) {
		repo := memory.New(helpers.TestLogger())
		added, _ := repo.Add(ctx, "Milk", "1", domain.CategoryDairy)

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = repo.Update(ctx, added.ID, func(it *domain.ShoppingItem) {
				it.Purchased = !it.Purchased
			})
		}
	})
}

func BenchmarkGroupedView(b *testing.B) {
	ctx := context.Background()

	testRedis := helpers.SetupTestRedis(&testing.T{})
	defer testRedis.Server.Close()

	cache := redis_a.NewCache(testRedis.Client, 10*time.Minute, helpers.TestLogger())
	repo := memory.New(helpers.TestLogger())
	service := services.NewListService(repo, cache, 10*time.Minute, helpers.TestLogger())

	seedRepo(ctx, repo, 500)

	b.Run("Memoized", func(b *testing.B) {
		// Warm the cache so iterations measure the hit path.
		_, _ = service.GroupedView(ctx)

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = service.GroupedView(ctx)
		}
	})

	b.Run("AfterMutation", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = service.TogglePurchased(ctx, 1)
			_, _ = service.GroupedView(ctx)
		}
	})
}

func BenchmarkMemoryAllocation(b *testing.B) {
	b.Run("ShoppingItem", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = &domain.ShoppingItem{
				ID:       int64(i),
				Name:     "Test Item",
				Quantity: 1,
				Category: domain.CategoryOther,
			}
		}
	})

	b.Run("ViewParams", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = ports.ViewParams{
				Filter: domain.FilterToBuy,
				Search: "milk",
				Sort:   domain.SortQuantity,
			}
		}
	})
}

// seedRepo fills a repository through the normal Add path so ids and the
// version counter behave as they would in production.
func seedRepo(ctx context.Context, repo ports.ItemRepository, count int) {
	for _, item := range makeBenchItems(count) {
		added, _ := repo.Add(ctx, item.Name, strconv.Itoa(item.Quantity), item.Category)
		if item.Purchased || item.Favorite {
			purchased, favorite := item.Purchased, item.Favorite
			_, _ = repo.Update(ctx, added.ID, func(it *domain.ShoppingItem) {
				it.Purchased = purchased
				it.Favorite = favorite
			})
		}
	}
}

// makeBenchItems builds a deterministic spread of items across the known
// categories with varied quantities and purchased flags.
func makeBenchItems(count int) []domain.ShoppingItem {
	categories := []domain.Category{
		domain.CategoryProduce,
		domain.CategoryDairy,
		domain.CategoryBakery,
		domain.CategoryMeat,
		domain.CategoryOther,
	}

	items := make([]domain.ShoppingItem, 0, count)
	for i := 0; i < count; i++ {
		items = append(items, domain.ShoppingItem{
			ID:        int64(i + 1),
			Name:      fmt.Sprintf("Item %d", i+1),
			Quantity:  i%5 + 1,
			Category:  categories[i%len(categories)],
			Purchased: i%3 == 0,
			Favorite:  i%7 == 0,
		})
	}
	return items
}
