package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/restauratings/internal/domain"
	"github.com/restauratings/internal/domain/repository"
	"github.com/restauratings/internal/usecase/dto"
	"go.uber.org/zap"
)

// ReviewUseCase обрабатывает бизнес-логику отзывов
type ReviewUseCase struct {
	reviewRepo repository.ReviewRepository
	notifier   changeNotifier
	logger     *zap.Logger
}

// NewReviewUseCase создает новый экземпляр ReviewUseCase
func NewReviewUseCase(
	reviewRepo repository.ReviewRepository,
	cacheRepo repository.CacheRepository,
	streamRepo repository.StreamRepository,
	logger *zap.Logger,
) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo: reviewRepo,
		notifier: changeNotifier{
			cacheRepo:  cacheRepo,
			streamRepo: streamRepo,
			logger:     logger,
		},
		logger: logger,
	}
}

// List возвращает отзывы ресторана, новые первыми
func (uc *ReviewUseCase) List(ctx context.Context, restaurantID uuid.UUID) ([]domain.Review, error) {
	return uc.reviewRepo.ListByRestaurant(ctx, restaurantID)
}

// Create добавляет отзыв; рейтинг ресторана пересчитывается в репозитории
func (uc *ReviewUseCase) Create(
	ctx context.Context,
	restaurantID uuid.UUID,
	req dto.CreateReviewRequest,
) (*domain.Review, error) {
	req.UserName = strings.TrimSpace(req.UserName)

	review, err := uc.reviewRepo.Create(ctx, restaurantID, req.ToNewReview())
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Review added",
		zap.Stringer("restaurant_id", restaurantID),
		zap.Int("rating", review.Rating),
	)

	uc.notifier.notify(ctx, domain.RestaurantChangedEvent{
		RestaurantID: restaurantID,
		Reason:       domain.ChangeReasonReviewAdded,
	})

	return review, nil
}
