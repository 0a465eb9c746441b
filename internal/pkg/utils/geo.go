package utils

import (
	"fmt"
	"math"

	"github.com/restauratings/internal/domain"
)

const earthRadiusKm = 6371.0

// HaversineDistance вычисляет расстояние между двумя точками в километрах
func HaversineDistance(from, to domain.Coordinate) float64 {
	dLat := (to.Lat - from.Lat) * math.Pi / 180.0
	dLng := (to.Lng - from.Lng) * math.Pi / 180.0

	fromLat := from.Lat * math.Pi / 180.0
	toLat := to.Lat * math.Pi / 180.0

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLng/2)*math.Sin(dLng/2)*math.Cos(fromLat)*math.Cos(toLat)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// FormatDistance - "850 m" до километра, дальше "3.4 km"
func FormatDistance(km float64) string {
	if km < 1 {
		return fmt.Sprintf("%d m", int(math.Round(km*1000)))
	}
	return fmt.Sprintf("%.1f km", km)
}

// ValidateCoordinates проверяет валидность координат
func ValidateCoordinates(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// ValidateRadius проверяет валидность радиуса поиска (0.1 - 100 км)
func ValidateRadius(radiusKm float64) bool {
	return radiusKm >= 0.1 && radiusKm <= 100
}
