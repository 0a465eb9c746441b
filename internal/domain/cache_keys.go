package domain

import "fmt"

// Ключи кеша
const (
	CacheKeyCategoriesSnapshot   = "categories:snapshot"
	CacheKeyRestaurantListPrefix = "restaurants:list:"
)

// RestaurantListCacheKey - ключ списка ресторанов для фильтра
func RestaurantListCacheKey(filter RestaurantFilter) string {
	bbox := "all"
	if filter.BBox != nil {
		bbox = fmt.Sprintf("%.4f,%.4f,%.4f,%.4f",
			filter.BBox.MinLat, filter.BBox.MinLng, filter.BBox.MaxLat, filter.BBox.MaxLng)
	}
	return fmt.Sprintf("%s%s:%s", CacheKeyRestaurantListPrefix, filter.Style, bbox)
}
