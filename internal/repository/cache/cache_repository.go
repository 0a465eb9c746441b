package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/restauratings/internal/domain"
	"github.com/restauratings/internal/domain/repository"
	"go.uber.org/zap"
)

// scanBatch - размер страницы SCAN при удалении по префиксу
const scanBatch = 100

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

// DeleteByPrefix проходит SCAN-ом по ключам, KEYS не используется
func (r *cacheRepository) DeleteByPrefix(ctx context.Context, prefix string) error {
	var (
		cursor  uint64
		deleted int
	)

	for {
		keys, next, err := r.client.Scan(ctx, cursor, prefix+"*", scanBatch).Result()
		if err != nil {
			r.logger.Error("Failed to scan cache keys", zap.String("prefix", prefix), zap.Error(err))
			return fmt.Errorf("cache scan error: %w", err)
		}

		if len(keys) > 0 {
			if err := r.client.Del(ctx, keys...).Err(); err != nil {
				r.logger.Error("Failed to delete cache keys", zap.String("prefix", prefix), zap.Error(err))
				return fmt.Errorf("cache delete error: %w", err)
			}
			deleted += len(keys)
		}

		cursor = next
		if cursor == 0 {
			break
		}
	}

	r.logger.Debug("Cache invalidated by prefix",
		zap.String("prefix", prefix),
		zap.Int("deleted", deleted),
	)
	return nil
}

// GetCategories получает снимок категорий из кеша
func (r *cacheRepository) GetCategories(ctx context.Context) ([]domain.CategorySummary, error) {
	data, err := r.Get(ctx, domain.CacheKeyCategoriesSnapshot)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil // Cache miss
	}

	var categories []domain.CategorySummary
	if err := json.Unmarshal(data, &categories); err != nil {
		r.logger.Error("Failed to unmarshal categories from cache", zap.Error(err))
		return nil, fmt.Errorf("unmarshal categories: %w", err)
	}

	return categories, nil
}

// SetCategories сохраняет снимок категорий в кеше
func (r *cacheRepository) SetCategories(ctx context.Context, categories []domain.CategorySummary, ttl time.Duration) error {
	data, err := json.Marshal(categories)
	if err != nil {
		r.logger.Error("Failed to marshal categories", zap.Error(err))
		return fmt.Errorf("marshal categories: %w", err)
	}

	return r.Set(ctx, domain.CacheKeyCategoriesSnapshot, data, ttl)
}
