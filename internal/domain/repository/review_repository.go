package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/restauratings/internal/domain"
)

// ReviewRepository определяет методы для работы с отзывами
type ReviewRepository interface {
	// ListByRestaurant возвращает отзывы ресторана, новые первыми
	ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]domain.Review, error)

	// Create добавляет отзыв и пересчитывает рейтинг ресторана в одной транзакции
	Create(ctx context.Context, restaurantID uuid.UUID, review domain.NewReview) (*domain.Review, error)
}
