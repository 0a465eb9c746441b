package repository

import (
	"context"
	"time"

	"github.com/restauratings/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу; промах - (nil, nil)
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// DeleteByPrefix удаляет все ключи с префиксом
	DeleteByPrefix(ctx context.Context, prefix string) error

	// GetCategories получает снимок категорий
	GetCategories(ctx context.Context) ([]domain.CategorySummary, error)

	// SetCategories сохраняет снимок категорий
	SetCategories(ctx context.Context, categories []domain.CategorySummary, ttl time.Duration) error
}
