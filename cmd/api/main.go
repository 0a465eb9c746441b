package main

// @title Restaurant Ratings API
// @version 1.0.0
// @description Сервис каталога ресторанов с отзывами и рейтингами.
// @description
// @description Основные возможности:
// @description - Поиск ресторанов по кухне и по расстоянию от точки
// @description - Карточка ресторана с последними отзывами
// @description - Добавление ресторанов и отзывов с пересчётом рейтинга
// @description - Сводка по категориям кухни

// @contact.name API Support
// @contact.email support@restauratings.dev

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/restauratings/docs"
	"github.com/restauratings/internal/config"
	httpDelivery "github.com/restauratings/internal/delivery/http"
	"github.com/restauratings/internal/delivery/http/handler"
	"github.com/restauratings/internal/pkg/logger"
	"github.com/restauratings/internal/repository/cache"
	"github.com/restauratings/internal/repository/postgres"
	redisRepo "github.com/restauratings/internal/repository/redis"
	"github.com/restauratings/internal/usecase"
	"go.uber.org/zap"
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

	log.Info("Starting Restaurant Ratings API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	log.Info("PostgreSQL connected")

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	log.Info("Redis connected")

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
	restaurantRepo := postgres.NewRestaurantRepository(db)
	reviewRepo := postgres.NewReviewRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), cfg.Worker.StreamReadTimeout, log)

	log.Info("Repositories initialized")

	// 7. Initialize Use Cases
	restaurantUC := usecase.NewRestaurantUseCase(
		restaurantRepo,
		reviewRepo,
		cacheRepo,
		streamRepo,
		log,
		cfg.Cache.RestaurantsCacheTTL,
	)

	reviewUC := usecase.NewReviewUseCase(
		reviewRepo,
		cacheRepo,
		streamRepo,
		log,
	)

	categoryUC := usecase.NewCategoryUseCase(
		restaurantRepo,
		cacheRepo,
		log,
		cfg.Cache.CategoriesCacheTTL,
	)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP Handlers
	restaurantHandler := handler.NewRestaurantHandler(restaurantUC, log)
	reviewHandler := handler.NewReviewHandler(reviewUC, log)
	categoryHandler := handler.NewCategoryHandler(categoryUC, log)
	healthHandler := handler.NewHealthHandler(map[string]handler.HealthChecker{
		"postgres": db,
		"redis":    redisClient,
	}, log)

	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		restaurantHandler,
		reviewHandler,
		categoryHandler,
		healthHandler,
	)

	// 10. Start server in goroutine
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

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if err := db.Close(); err != nil {
		log.Error("Failed to close PostgreSQL", zap.Error(err))
	}

	if err := redisClient.Close(); err != nil {
		log.Error("Failed to close Redis", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
