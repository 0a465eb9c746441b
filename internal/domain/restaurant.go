package domain

import (
	"time"

	"github.com/google/uuid"
)

// Restaurant представляет ресторан
type Restaurant struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Style       string    `json:"style" db:"style"`
	Address     string    `json:"address" db:"address"`
	Latitude    float64   `json:"latitude" db:"latitude"`
	Longitude   float64   `json:"longitude" db:"longitude"`
	Description *string   `json:"description,omitempty" db:"description"`
	Phone       *string   `json:"phone,omitempty" db:"phone"`
	Website     *string   `json:"website,omitempty" db:"website"`

	// Агрегаты по отзывам; AverageRating отсутствует до первого отзыва
	AverageRating *float64 `json:"average_rating,omitempty" db:"average_rating"`
	TotalReviews  int      `json:"total_reviews" db:"total_reviews"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Coordinate возвращает координаты ресторана
func (r Restaurant) Coordinate() Coordinate {
	return Coordinate{Lat: r.Latitude, Lng: r.Longitude}
}

// RestaurantDetail - ресторан вместе с отзывами
type RestaurantDetail struct {
	Restaurant
	Reviews []Review `json:"reviews"`
}

// RestaurantFilter - параметры выборки ресторанов
type RestaurantFilter struct {
	Style string
	// BBox ограничивает выборку по координатам, nil - без ограничения
	BBox *BoundingBox
}
