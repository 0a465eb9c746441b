package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRestaurantListCacheKey(t *testing.T) {
	assert.Equal(t, "restaurants:list::all", RestaurantListCacheKey(RestaurantFilter{}))

	bbox := BoundingBox{MinLat: 31.99, MinLng: 34.69, MaxLat: 32.18, MaxLng: 34.87}
	key := RestaurantListCacheKey(RestaurantFilter{Style: "pizza", BBox: &bbox})
	assert.Equal(t, "restaurants:list:pizza:31.9900,34.6900,32.1800,34.8700", key)
}
