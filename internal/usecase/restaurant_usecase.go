package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/restauratings/internal/domain"
	"github.com/restauratings/internal/domain/repository"
	"github.com/restauratings/internal/usecase/dto"
	"go.uber.org/zap"
)

// RestaurantUseCase обрабатывает бизнес-логику ресторанов
type RestaurantUseCase struct {
	restaurantRepo repository.RestaurantRepository
	reviewRepo     repository.ReviewRepository
	cacheRepo      repository.CacheRepository
	notifier       changeNotifier
	logger         *zap.Logger
	cacheTTL       time.Duration
}

// NewRestaurantUseCase создает новый экземпляр RestaurantUseCase
func NewRestaurantUseCase(
	restaurantRepo repository.RestaurantRepository,
	reviewRepo repository.ReviewRepository,
	cacheRepo repository.CacheRepository,
	streamRepo repository.StreamRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *RestaurantUseCase {
	return &RestaurantUseCase{
		restaurantRepo: restaurantRepo,
		reviewRepo:     reviewRepo,
		cacheRepo:      cacheRepo,
		notifier: changeNotifier{
			cacheRepo:  cacheRepo,
			streamRepo: streamRepo,
			logger:     logger,
		},
		logger:   logger,
		cacheTTL: cacheTTL,
	}
}

// List возвращает рестораны по фильтру, используя кеш когда возможно
func (uc *RestaurantUseCase) List(ctx context.Context, req dto.ListRestaurantsRequest) ([]domain.Restaurant, error) {
	filter := domain.RestaurantFilter{Style: strings.TrimSpace(req.Style)}
	if req.Lat != nil && req.Lng != nil {
		radius := domain.DefaultSearchRadiusKm
		if req.Radius != nil {
			radius = *req.Radius
		}
		bbox := domain.BoundingBoxAround(domain.Coordinate{Lat: *req.Lat, Lng: *req.Lng}, radius)
		filter.BBox = &bbox
	}

	key := domain.RestaurantListCacheKey(filter)

	// 1. Проверяем кеш
	cached, err := uc.cacheRepo.Get(ctx, key)
	if err != nil {
		uc.logger.Warn("Failed to get restaurants from cache", zap.Error(err))
	}
	if cached != nil {
		var restaurants []domain.Restaurant
		if err := json.Unmarshal(cached, &restaurants); err == nil {
			uc.logger.Debug("Restaurants fetched from cache", zap.String("key", key))
			return restaurants, nil
		}
		uc.logger.Warn("Failed to unmarshal cached restaurants", zap.String("key", key))
	}

	// 2. Получаем из БД
	restaurants, err := uc.restaurantRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	// 3. Кешируем
	if data, err := json.Marshal(restaurants); err == nil {
		if err := uc.cacheRepo.Set(ctx, key, data, uc.cacheTTL); err != nil {
			uc.logger.Warn("Failed to cache restaurants", zap.Error(err))
		}
	}

	return restaurants, nil
}

// Get возвращает ресторан вместе с отзывами
func (uc *RestaurantUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.RestaurantDetail, error) {
	restaurant, err := uc.restaurantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	reviews, err := uc.reviewRepo.ListByRestaurant(ctx, id)
	if err != nil {
		return nil, err
	}

	return &domain.RestaurantDetail{
		Restaurant: *restaurant,
		Reviews:    reviews,
	}, nil
}

// Create сохраняет новый ресторан; стиль приводится к нижнему регистру
func (uc *RestaurantUseCase) Create(ctx context.Context, req dto.CreateRestaurantRequest) (*domain.Restaurant, error) {
	restaurant := &domain.Restaurant{
		Name:        strings.TrimSpace(req.Name),
		Style:       strings.ToLower(strings.TrimSpace(req.Style)),
		Address:     strings.TrimSpace(req.Address),
		Latitude:    *req.Latitude,
		Longitude:   *req.Longitude,
		Description: req.Description,
		Phone:       req.Phone,
		Website:     req.Website,
	}

	created, err := uc.restaurantRepo.Create(ctx, restaurant)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Restaurant created",
		zap.Stringer("id", created.ID),
		zap.String("style", created.Style),
	)

	uc.notifier.notify(ctx, domain.RestaurantChangedEvent{
		RestaurantID: created.ID,
		Style:        created.Style,
		Reason:       domain.ChangeReasonCreated,
	})

	return created, nil
}

// Delete удаляет ресторан и его отзывы
func (uc *RestaurantUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	restaurant, err := uc.restaurantRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.restaurantRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.logger.Info("Restaurant deleted", zap.Stringer("id", id))

	uc.notifier.notify(ctx, domain.RestaurantChangedEvent{
		RestaurantID: id,
		Style:        restaurant.Style,
		Reason:       domain.ChangeReasonDeleted,
	})

	return nil
}
