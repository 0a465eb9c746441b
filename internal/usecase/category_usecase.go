package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/restauratings/internal/domain"
	"github.com/restauratings/internal/domain/repository"
	"go.uber.org/zap"
)

// CategoryUseCase строит сводки по категориям кухни
type CategoryUseCase struct {
	restaurantRepo repository.RestaurantRepository
	cacheRepo      repository.CacheRepository
	logger         *zap.Logger
	snapshotTTL    time.Duration
}

// NewCategoryUseCase создает новый экземпляр CategoryUseCase
func NewCategoryUseCase(
	restaurantRepo repository.RestaurantRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	snapshotTTL time.Duration,
) *CategoryUseCase {
	return &CategoryUseCase{
		restaurantRepo: restaurantRepo,
		cacheRepo:      cacheRepo,
		logger:         logger,
		snapshotTTL:    snapshotTTL,
	}
}

// GetCategories возвращает снимок из кеша или строит его заново
func (uc *CategoryUseCase) GetCategories(ctx context.Context) ([]domain.CategorySummary, error) {
	cached, err := uc.cacheRepo.GetCategories(ctx)
	if err == nil && cached != nil {
		uc.logger.Debug("Categories fetched from cache")
		return cached, nil
	}

	if err != nil {
		uc.logger.Warn("Failed to get categories from cache", zap.Error(err))
	}

	return uc.RefreshSnapshot(ctx)
}

// RefreshSnapshot пересчитывает сводки по всем ресторанам и обновляет кеш
func (uc *CategoryUseCase) RefreshSnapshot(ctx context.Context) ([]domain.CategorySummary, error) {
	restaurants, err := uc.restaurantRepo.List(ctx, domain.RestaurantFilter{})
	if err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}

	categories := domain.AggregateCategories(restaurants)

	if err := uc.cacheRepo.SetCategories(ctx, categories, uc.snapshotTTL); err != nil {
		// Не возвращаем ошибку, т.к. данные уже получены
		uc.logger.Warn("Failed to cache categories", zap.Error(err))
	}

	uc.logger.Debug("Category snapshot rebuilt",
		zap.Int("restaurants", len(restaurants)),
		zap.Int("categories", len(categories)),
	)

	return categories, nil
}
