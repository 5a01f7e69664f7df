// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"github.com/klerys/shoplist-be/internal/adapters/memory"
	redis_a "github.com/klerys/shoplist-be/internal/adapters/redis_adapter"
	"github.com/klerys/shoplist-be/internal/core/ports"
	"github.com/klerys/shoplist-be/internal/core/services"
	"github.com/klerys/shoplist-be/internal/handlers"
	"github.com/klerys/shoplist-be/internal/handlers/middleware"
	"github.com/klerys/shoplist-be/internal/pkg/config"
	"github.com/klerys/shoplist-be/internal/pkg/logger"
)

// Build information injected at compile time
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	// Initialize structured logger
	appLogger := logger.SetupLogger("debug", "json")

	appLogger.Info("starting shopping list service",
		slog.String("version", Version),
		slog.String("build_time", BuildTime),
	)

	// Load configuration
	cfg, err := config.Load(appLogger.Logger)
	if err != nil {
		appLogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Reconfigure logger with loaded settings
	appLogger = logger.SetupLogger(cfg.App.LogLevel, cfg.App.LogFormat)
	appLogger.Info("configuration loaded",
		slog.String("environment", cfg.App.Environment),
		slog.String("log_level", cfg.App.LogLevel),
	)

	ctx := context.Background()

	deps, err := initializeDependencies(ctx, cfg, appLogger.Logger)
	if err != nil {
		appLogger.Error("failed to initialize dependencies", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer deps.cleanup()

	server := setupHTTPServer(cfg, deps, appLogger)

	// Start server in goroutine
	serverErrors := make(chan error, 1)
	go func() {
		appLogger.Info("starting HTTP server",
			slog.String("address", cfg.GetServerAddress()),
		)
		serverErrors <- server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("server error", slog.String("error", err.Error()))
		}
	case sig := <-shutdown:
		appLogger.Info("shutdown signal received",
			slog.String("signal", sig.String()),
		)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.GracefulTimeout)
		defer shutdownCancel()

		// Drop any armed undo timer before the server goes away
		deps.undoNotifier.DisarmAll()

		if err := server.Shutdown(shutdownCtx); err != nil {
			appLogger.Error("failed to gracefully shutdown server", slog.String("error", err.Error()))
			server.Close()
		}

		appLogger.Info("server shutdown complete")
	}
}

// dependencies holds all application dependencies
type dependencies struct {
	redisClient   *redis.Client
	redisCache    ports.CacheRepository
	itemRepo      ports.ItemRepository
	listService   ports.ListService
	undoNotifier  *handlers.UndoNotifier
	listHandler   *handlers.ListHandler
	healthHandler *handlers.HealthHandler
}

func (d *dependencies) cleanup() {
	if d.undoNotifier != nil {
		d.undoNotifier.DisarmAll()
	}
	if d.redisClient != nil {
		d.redisClient.Close()
	}
}

func initializeDependencies(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*dependencies, error) {
	deps := &dependencies{}

	// Initialize Redis client
	logger.Info("connecting to Redis",
		slog.String("host", cfg.Redis.Host),
		slog.String("port", cfg.Redis.Port),
	)

	redisClient := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		MaxRetries:   cfg.Redis.MaxRetries,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
	})

	if err := redisClient.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	deps.redisClient = redisClient

	deps.redisCache = redis_a.NewCache(redisClient, cfg.Redis.TTL, logger)

	// Initialize repository and service
	deps.itemRepo = memory.New(logger)
	deps.listService = services.NewListService(deps.itemRepo, deps.redisCache, cfg.Redis.TTL, logger)

	// Undo countdown lives at the transport edge
	deps.undoNotifier = handlers.NewUndoNotifier(deps.listService, cfg.Undo.Timeout, logger)

	// Initialize handlers
	deps.listHandler = handlers.NewListHandler(deps.listService, deps.undoNotifier, logger)
	deps.healthHandler = handlers.NewHealthHandler(deps.itemRepo, deps.redisCache, cfg, logger)

	logger.Info("all dependencies initialized successfully")
	return deps, nil
}

func setupHTTPServer(cfg *config.Config, deps *dependencies, appLogger *logger.Logger) *http.Server {
	mux := http.NewServeMux()

	// Setup middleware chain
	var handler http.Handler = mux

	// Apply middleware in reverse order (innermost first)
	if cfg.App.Environment != "test" {
		handler = middleware.RequestID(handler)
		handler = middleware.Logger(appLogger)(handler)
		handler = middleware.Recovery(appLogger.Logger)(handler)
	}

	if cfg.Security.RateLimitRequests > 0 {
		handler = middleware.RateLimit(cfg.Security.RateLimitRequests, cfg.Security.RateLimitDuration)(handler)
	}

	if len(cfg.Security.AllowedOrigins) > 0 {
		handler = middleware.CORS(cfg.Security.AllowedOrigins)(handler)
	}

	if cfg.Security.SecureHeaders {
		handler = middleware.SecureHeaders(handler)
	}

	registerRoutes(mux, deps, cfg)

	return &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        handler,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
		ErrorLog:       slog.NewLogLogger(appLogger.Handler(), slog.LevelError),
	}
}

func registerRoutes(mux *http.ServeMux, deps *dependencies, cfg *config.Config) {
	apiV1 := "/api/v1"

	// Health and readiness endpoints
	if cfg.Server.EnableHealthCheck {
		mux.HandleFunc("GET /health", deps.healthHandler.Health)
		mux.HandleFunc("GET /ready", deps.healthHandler.Readiness)
		mux.HandleFunc("GET "+apiV1+"/health", deps.healthHandler.Health)
	}

	// Item endpoints
	mux.HandleFunc("POST "+apiV1+"/items", deps.listHandler.AddItem)
	mux.HandleFunc("POST "+apiV1+"/items/{id}/purchased", deps.listHandler.TogglePurchased)
	mux.HandleFunc("POST "+apiV1+"/items/{id}/favorite", deps.listHandler.ToggleFavorite)
	mux.HandleFunc("DELETE "+apiV1+"/items/{id}", deps.listHandler.DeleteItem)
	mux.HandleFunc("POST "+apiV1+"/items/clear-purchased", deps.listHandler.ClearPurchased)

	// Undo endpoints
	mux.HandleFunc("POST "+apiV1+"/undo/confirm", deps.listHandler.ConfirmUndo)
	mux.HandleFunc("POST "+apiV1+"/undo/dismiss", deps.listHandler.DismissUndo)

	// View and statistics endpoints
	mux.HandleFunc("GET "+apiV1+"/view", deps.listHandler.GetView)
	mux.HandleFunc("PUT "+apiV1+"/view", deps.listHandler.UpdateView)
	mux.HandleFunc("GET "+apiV1+"/statistics", deps.listHandler.GetStatistics)

	// Full reset
	mux.HandleFunc("POST "+apiV1+"/reset", deps.listHandler.Reset)
}
