package usecase

import (
	"context"

	"github.com/restauratings/internal/domain"
	"github.com/restauratings/internal/domain/repository"
	"go.uber.org/zap"
)

// changeNotifier сбрасывает кеш списков и публикует событие об изменении ресторана.
// Ошибки только логируются: запись в БД уже выполнена.
type changeNotifier struct {
	cacheRepo  repository.CacheRepository
	streamRepo repository.StreamRepository
	logger     *zap.Logger
}

func (n changeNotifier) notify(ctx context.Context, event domain.RestaurantChangedEvent) {
	if err := n.cacheRepo.DeleteByPrefix(ctx, domain.CacheKeyRestaurantListPrefix); err != nil {
		n.logger.Warn("Failed to invalidate restaurant list cache", zap.Error(err))
	}

	if err := n.streamRepo.PublishToStream(ctx, domain.StreamRestaurantChanged, event); err != nil {
		n.logger.Warn("Failed to publish restaurant change",
			zap.Stringer("restaurant_id", event.RestaurantID),
			zap.String("reason", event.Reason),
			zap.Error(err),
		)
	}
}
