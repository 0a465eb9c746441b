package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/restauratings/internal/domain"
)

// RestaurantRepository определяет методы для работы с ресторанами
type RestaurantRepository interface {
	// List возвращает рестораны по фильтру
	List(ctx context.Context, filter domain.RestaurantFilter) ([]domain.Restaurant, error)

	// GetByID возвращает ресторан по ID
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Restaurant, error)

	// Create сохраняет новый ресторан и возвращает его с заполненными ID и CreatedAt
	Create(ctx context.Context, restaurant *domain.Restaurant) (*domain.Restaurant, error)

	// Delete удаляет ресторан вместе с отзывами
	Delete(ctx context.Context, id uuid.UUID) error
}
