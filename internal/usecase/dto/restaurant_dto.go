package dto

import "github.com/restauratings/internal/domain"

// ListRestaurantsRequest - фильтр списка ресторанов.
// Lat и Lng задаются вместе; Radius в километрах, по умолчанию 10.
type ListRestaurantsRequest struct {
	Style  string   `json:"style,omitempty"`
	Lat    *float64 `json:"lat,omitempty" validate:"required_with=Lng,omitempty,latitude"`
	Lng    *float64 `json:"lng,omitempty" validate:"required_with=Lat,omitempty,longitude"`
	Radius *float64 `json:"radius,omitempty" validate:"omitempty,min=0.1,max=100"`
}

// CreateRestaurantRequest - тело POST /api/restaurants
type CreateRestaurantRequest struct {
	Name        string   `json:"name" validate:"required"`
	Address     string   `json:"address" validate:"required"`
	Latitude    *float64 `json:"latitude" validate:"required,latitude"`
	Longitude   *float64 `json:"longitude" validate:"required,longitude"`
	Style       string   `json:"style" validate:"required,cuisine"`
	Description *string  `json:"description,omitempty"`
	Phone       *string  `json:"phone,omitempty"`
	Website     *string  `json:"website,omitempty" validate:"omitempty,url"`
}

// CreateReviewRequest - тело POST /api/restaurants/{id}/reviews
type CreateReviewRequest struct {
	UserName string `json:"user_name" validate:"required"`
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
	Comment  string `json:"comment,omitempty"`
}

// ToNewReview переводит запрос в доменную модель
func (r CreateReviewRequest) ToNewReview() domain.NewReview {
	return domain.NewReview{
		UserName: r.UserName,
		Rating:   r.Rating,
		Comment:  r.Comment,
	}
}

// DeleteRestaurantResponse - ответ на удаление ресторана
type DeleteRestaurantResponse struct {
	DeletedID string `json:"deleted_id"`
}
