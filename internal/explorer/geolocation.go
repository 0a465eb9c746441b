package explorer

import (
	"context"
	"errors"

	"github.com/restauratings/internal/domain"
)

// ErrLocationUnavailable - геолокация не настроена
var ErrLocationUnavailable = errors.New("location unavailable")

// StaticGeolocator возвращает заранее известную точку (флаги --lat/--lon)
type StaticGeolocator struct {
	location *domain.Coordinate
}

// NewStaticGeolocator создает геолокатор; nil означает, что положение неизвестно
func NewStaticGeolocator(location *domain.Coordinate) *StaticGeolocator {
	return &StaticGeolocator{location: location}
}

func (g *StaticGeolocator) CurrentLocation(ctx context.Context) (domain.Coordinate, error) {
	if err := ctx.Err(); err != nil {
		return domain.Coordinate{}, err
	}
	if g.location == nil {
		return domain.Coordinate{}, ErrLocationUnavailable
	}
	return *g.location, nil
}
