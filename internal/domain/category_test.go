package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restaurantAt(name, style string, lat, lng float64) Restaurant {
	return Restaurant{
		ID:        uuid.New(),
		Name:      name,
		Style:     style,
		Latitude:  lat,
		Longitude: lng,
	}
}

func TestAggregateCategories_CentroidOfSameStyle(t *testing.T) {
	summaries := AggregateCategories([]Restaurant{
		restaurantAt("Tony's Pizza", CuisinePizza, 32.0, 34.0),
		restaurantAt("Pizza Sababa", CuisinePizza, 32.2, 34.2),
	})

	require.Len(t, summaries, 1)
	assert.Equal(t, CuisinePizza, summaries[0].Category)
	assert.Equal(t, 2, summaries[0].Count)
	assert.InDelta(t, 32.1, summaries[0].Center.Lat, 1e-9)
	assert.InDelta(t, 34.1, summaries[0].Center.Lng, 1e-9)
}

func TestAggregateCategories_FirstSeenOrderAndCounts(t *testing.T) {
	input := []Restaurant{
		restaurantAt("Cafe Xoho", CuisineCafe, 32.07, 34.77),
		restaurantAt("Moses", CuisineBurger, 32.08, 34.78),
		restaurantAt("Aroma", CuisineCafe, 31.78, 35.21),
		restaurantAt("Abu Hassan", CuisineIsraeli, 32.05, 34.75),
		restaurantAt("Burgers Bar", CuisineBurger, 32.79, 34.99),
	}

	summaries := AggregateCategories(input)

	require.Len(t, summaries, 3)
	assert.Equal(t, []string{CuisineCafe, CuisineBurger, CuisineIsraeli}, []string{
		summaries[0].Category, summaries[1].Category, summaries[2].Category,
	})

	total := 0
	for _, s := range summaries {
		assert.Equal(t, s.Count, len(s.Restaurants))
		assert.GreaterOrEqual(t, s.Count, 1)
		total += s.Count
	}
	assert.Equal(t, len(input), total)

	assert.Equal(t, "Cafe Xoho", summaries[0].Restaurants[0].Name)
	assert.Equal(t, "Aroma", summaries[0].Restaurants[1].Name)
}

func TestAggregateCategories_DuplicatesCountedTwice(t *testing.T) {
	r := restaurantAt("Falafel Hakosem", CuisinePita, 32.07, 34.77)

	summaries := AggregateCategories([]Restaurant{r, r})

	require.Len(t, summaries, 1)
	assert.Equal(t, 2, summaries[0].Count)
	assert.InDelta(t, 32.07, summaries[0].Center.Lat, 1e-9)
}

func TestAggregateCategories_Empty(t *testing.T) {
	summaries := AggregateCategories(nil)

	assert.NotNil(t, summaries)
	assert.Empty(t, summaries)
}

func TestAggregateCategories_UnknownStyleKeptAsIs(t *testing.T) {
	summaries := AggregateCategories([]Restaurant{
		restaurantAt("Night Kitchen", "fusion", 32.0, 34.0),
	})

	require.Len(t, summaries, 1)
	assert.Equal(t, "fusion", summaries[0].Category)
}
