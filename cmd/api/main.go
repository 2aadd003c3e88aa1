package main

// @title Map My World API
// @version 1.0.0
// @description Directory service for geographic locations tagged with categories.
// @description
// @description Main capabilities:
// @description - Register categories (idempotent by name)
// @description - Register locations with category associations
// @description - Location recommendations ranked by recent review activity
// @description - Location detail with a detached view counter

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8500
// @BasePath /api/rest
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/map-my-world-service/docs"
	"github.com/map-my-world-service/internal/config"
	httpDelivery "github.com/map-my-world-service/internal/delivery/http"
	"github.com/map-my-world-service/internal/delivery/http/handler"
	"github.com/map-my-world-service/internal/pkg/logger"
	"github.com/map-my-world-service/internal/repository/cache"
	"github.com/map-my-world-service/internal/repository/postgres"
	"github.com/map-my-world-service/internal/usecase"
	"github.com/map-my-world-service/internal/worker"
	"github.com/map-my-world-service/internal/worker/views"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Map My World service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}
	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize Repositories
	categoryRepo := postgres.NewCategoryRepository(db)
	cityRepo := postgres.NewCityRepository(db)
	locationRepo := postgres.NewLocationRepository(db)
	locationCategoryRepo := postgres.NewLocationCategoryRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)

	log.Info("Repositories initialized")

	// 7. Initialize Use Cases
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, log)

	locationUC := usecase.NewLocationUseCase(
		locationRepo,
		categoryRepo,
		cityRepo,
		locationCategoryRepo,
		cacheRepo,
		log,
		cfg.Server.SiteURL,
		cfg.Cache.RecommendCacheTTL,
	)

	log.Info("Use cases initialized")

	// 8. Background workers
	viewWorker := views.NewWorker(locationCategoryRepo, log, cfg.Worker.ViewQueueSize)

	workerManager := worker.NewManager(log)
	workerManager.Register(viewWorker)

	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()

	if err := workerManager.Start(workerCtx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	// 9. Initialize HTTP Handlers
	categoryHandler := handler.NewCategoryHandler(categoryUC, log)
	locationHandler := handler.NewLocationHandler(locationUC, viewWorker, log)

	healthCheck := func(ctx context.Context) error {
		if err := db.Health(ctx); err != nil {
			return err
		}
		return redisClient.Health(ctx)
	}

	// 10. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		healthCheck,
		categoryHandler,
		locationHandler,
	)

	log.Info("HTTP server initialized")

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	// Pending view increments are dropped at this point; that loss is the
	// documented at-most-once tradeoff.
	if err := workerManager.Stop(); err != nil {
		log.Error("Worker shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
