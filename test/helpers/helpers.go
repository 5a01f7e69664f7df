// test/helpers/helpers.go
package helpers

import (
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/klerys/shoplist-be/internal/core/domain"
	"github.com/klerys/shoplist-be/internal/pkg/config"
	"github.com/klerys/shoplist-be/internal/pkg/logger"
)

// TestRedis represents a test Redis instance
type TestRedis struct {
	Client *redis.Client
	Server *miniredis.Miniredis
}

// TestLogger returns a test logger
func TestLogger() *slog.Logger {
	if testing.Verbose() {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// TestAppLogger returns the wrapped application logger used by middleware
func TestAppLogger() *logger.Logger {
	level := "error"
	if testing.Verbose() {
		level = "debug"
	}
	return logger.NewLogger(&logger.LogConfig{
		Level:       level,
		Format:      "text",
		ServiceName: "test-api",
		Environment: "test",
	})
}

// SetupTestRedis creates a mock Redis instance for testing
func SetupTestRedis(t *testing.T) *TestRedis {
	t.Helper()

	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})

	return &TestRedis{
		Client: client,
		Server: mr,
	}
}

// LoadTestConfig returns a test configuration
func LoadTestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name:        "test-api",
			Environment: "test",
			Version:     "test",
			LogLevel:    "debug",
			LogFormat:   "text",
			Debug:       true,
		},
		Redis: config.RedisConfig{
			Host:     "localhost",
			Port:     "6379",
			DB:       0,
			TTL:      time.Hour,
			PoolSize: 10,
		},
		Undo: config.UndoConfig{
			Timeout: 6 * time.Second,
		},
		Security: config.SecurityConfig{
			RateLimitRequests: 100,
			RateLimitDuration: time.Minute,
			AllowedOrigins:    []string{"*"},
			SecureHeaders:     false,
			RequestIDHeader:   "X-Request-ID",
		},
		Server: config.ServerConfig{
			Host:         "localhost",
			Port:         "8080",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
	}
}

// CreateTestItem creates a test shopping item
func CreateTestItem(overrides ...func(*domain.ShoppingItem)) domain.ShoppingItem {
	item := domain.ShoppingItem{
		ID:       1,
		Name:     "Milk",
		Quantity: 1,
		Category: domain.CategoryDairy,
	}

	for _, override := range overrides {
		override(&item)
	}

	return item
}

// CreateTestItems creates multiple test shopping items with rotating categories
func CreateTestItems(count int) []domain.ShoppingItem {
	categories := []domain.Category{
		domain.CategoryProduce,
		domain.CategoryDairy,
		domain.CategoryMeat,
		domain.CategoryBakery,
		domain.CategoryOther,
	}

	items := make([]domain.ShoppingItem, count)
	for i := 0; i < count; i++ {
		items[i] = CreateTestItem(func(item *domain.ShoppingItem) {
			item.ID = int64(i + 1)
			item.Name = fmt.Sprintf("Test Item %d", i+1)
			item.Quantity = i%3 + 1
			item.Category = categories[i%len(categories)]
		})
	}

	return items
}

// AssertEventuallyWithTimeout asserts that a condition is met within a timeout
func AssertEventuallyWithTimeout(t *testing.T, condition func() bool, timeout time.Duration, msg string) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}

	t.Errorf("Condition not met within %v: %s", timeout, msg)
}
