package domain

// Coordinate - географическая точка в градусах
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type BoundingBox struct {
	MinLat float64 `json:"min_lat" db:"min_lat"`
	MinLng float64 `json:"min_lng" db:"min_lng"`
	MaxLat float64 `json:"max_lat" db:"max_lat"`
	MaxLng float64 `json:"max_lng" db:"max_lng"`
}

// DefaultLocation - Тель-Авив; используется, когда геолокация недоступна
var DefaultLocation = Coordinate{Lat: 32.0853, Lng: 34.7818}

// KmPerDegree - приближённая длина градуса широты
const KmPerDegree = 111.0

// DefaultSearchRadiusKm - радиус поиска по умолчанию
const DefaultSearchRadiusKm = 10.0

// BoundingBoxAround строит квадрат ±radiusKm/111 градусов вокруг точки
func BoundingBoxAround(center Coordinate, radiusKm float64) BoundingBox {
	delta := radiusKm / KmPerDegree
	return BoundingBox{
		MinLat: center.Lat - delta,
		MinLng: center.Lng - delta,
		MaxLat: center.Lat + delta,
		MaxLng: center.Lng + delta,
	}
}

// Contains сообщает, лежит ли точка внутри прямоугольника (границы включены)
func (b BoundingBox) Contains(c Coordinate) bool {
	return c.Lat >= b.MinLat && c.Lat <= b.MaxLat &&
		c.Lng >= b.MinLng && c.Lng <= b.MaxLng
}
