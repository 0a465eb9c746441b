package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	MinRating     = 1
	MaxRating     = 5
	DefaultRating = 5
)

// Review - отзыв о ресторане
type Review struct {
	ID           uuid.UUID `json:"id" db:"id"`
	RestaurantID uuid.UUID `json:"restaurant_id" db:"restaurant_id"`
	UserName     string    `json:"user_name" db:"user_name"`
	Rating       int       `json:"rating" db:"rating"`
	Comment      string    `json:"comment" db:"comment"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// NewReview - данные нового отзыва
type NewReview struct {
	UserName string `json:"user_name"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment,omitempty"`
}
