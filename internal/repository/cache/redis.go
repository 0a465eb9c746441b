package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/restauratings/internal/config"
	"github.com/restauratings/internal/domain"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Redis держит клиент, общий для кэша списков ресторанов и потока событий
type Redis struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedis подключается к Redis и сообщает, прогрет ли снимок категорий
func NewRedis(cfg *config.RedisConfig, logger *zap.Logger) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	// Снимок собирает воркер; до первого прогона API ходит в БД
	snapshots, err := client.Exists(ctx, domain.CacheKeyCategoriesSnapshot).Result()
	if err != nil {
		logger.Warn("Failed to check categories snapshot", zap.Error(err))
	}

	logger.Info("Redis connected",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("snapshot_key", domain.CacheKeyCategoriesSnapshot),
		zap.Bool("categories_snapshot", snapshots > 0),
	)

	return &Redis{
		client: client,
		logger: logger,
	}, nil
}

func (r *Redis) Close() error {
	r.logger.Info("Closing Redis connection")
	return r.client.Close()
}

// Health используется в /health
func (r *Redis) Health(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *Redis) Client() *redis.Client {
	return r.client
}
