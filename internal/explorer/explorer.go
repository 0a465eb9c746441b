package explorer

import (
	"context"

	"github.com/google/uuid"
	"github.com/restauratings/internal/domain"
)

// Mode - режим отображения
type Mode string

const (
	ModeCategories  Mode = "categories"
	ModeRestaurants Mode = "restaurants"
)

// RestaurantAPI - источник данных о ресторанах и отзывах
type RestaurantAPI interface {
	ListRestaurants(ctx context.Context, style string) ([]domain.Restaurant, error)
	ListReviews(ctx context.Context, restaurantID uuid.UUID) ([]domain.Review, error)
	CreateReview(ctx context.Context, restaurantID uuid.UUID, review domain.NewReview) (*domain.Review, error)
}

// Geolocator определяет текущее положение пользователя
type Geolocator interface {
	CurrentLocation(ctx context.Context) (domain.Coordinate, error)
}

// MapRenderer отображает маркеры. Render вызывается под блокировкой
// контроллера, поэтому реализация не должна синхронно обращаться к нему
type MapRenderer interface {
	Render(view MapView)
}

// MapView - то, что нужно нарисовать на карте
type MapView struct {
	Mode        Mode
	Categories  []domain.CategorySummary
	Restaurants []domain.Restaurant
	Center      domain.Coordinate
}

// MapCallbacks - обработчики выбора маркеров на карте
type MapCallbacks struct {
	OnCategorySelected   func(category string)
	OnRestaurantSelected func(restaurant domain.Restaurant)
}

// State - снимок состояния контроллера
type State struct {
	Mode               Mode
	SelectedCategory   string
	SelectedRestaurant *domain.Restaurant
	Loading            bool
	UserLocation       domain.Coordinate
	Categories         []domain.CategorySummary
	Restaurants        []domain.Restaurant
	// LastError - текст последней ошибки для строки статуса
	LastError string
}
