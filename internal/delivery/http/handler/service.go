package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/restauratings/internal/domain"
	"github.com/restauratings/internal/usecase/dto"
)

// RestaurantService - операции над ресторанами, нужные обработчикам
type RestaurantService interface {
	List(ctx context.Context, req dto.ListRestaurantsRequest) ([]domain.Restaurant, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.RestaurantDetail, error)
	Create(ctx context.Context, req dto.CreateRestaurantRequest) (*domain.Restaurant, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ReviewService - операции над отзывами
type ReviewService interface {
	List(ctx context.Context, restaurantID uuid.UUID) ([]domain.Review, error)
	Create(ctx context.Context, restaurantID uuid.UUID, req dto.CreateReviewRequest) (*domain.Review, error)
}

// CategoryService - сводки по категориям
type CategoryService interface {
	GetCategories(ctx context.Context) ([]domain.CategorySummary, error)
}
