package tui

import (
	"testing"

	"github.com/google/uuid"
	"github.com/restauratings/internal/domain"
	"github.com/restauratings/internal/explorer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkerPanel_CategoryMarkers(t *testing.T) {
	p := NewMarkerPanel(explorer.MapCallbacks{}, DefaultTheme)
	p.Render(explorer.MapView{
		Mode:   explorer.ModeCategories,
		Center: domain.DefaultLocation,
		Categories: []domain.CategorySummary{
			{Category: "pizza", Count: 2, Center: domain.DefaultLocation},
			{Category: "ramen", Count: 1, Center: domain.Coordinate{Lat: 32.1853, Lng: 34.7818}},
		},
	})

	markers := p.Markers()
	require.Len(t, markers, 2)
	assert.Equal(t, "Pizza (2)", markers[0].Label)
	assert.Equal(t, domain.CuisineColor("pizza"), markers[0].Color)
	assert.Zero(t, markers[0].Distance)

	assert.Equal(t, "ramen (1)", markers[1].Label)
	assert.Equal(t, domain.FallbackCuisineColor, markers[1].Color)
	assert.InDelta(t, 11.1, markers[1].Distance, 0.1)
}

func TestMarkerPanel_SelectInvokesTypedCallbacks(t *testing.T) {
	var gotCategory string
	var gotRestaurant domain.Restaurant

	p := NewMarkerPanel(explorer.MapCallbacks{
		OnCategorySelected:   func(category string) { gotCategory = category },
		OnRestaurantSelected: func(r domain.Restaurant) { gotRestaurant = r },
	}, DefaultTheme)

	p.Render(explorer.MapView{
		Mode:       explorer.ModeCategories,
		Categories: []domain.CategorySummary{{Category: "cafe", Count: 1}},
	})
	assert.True(t, p.Select(0))
	assert.Equal(t, "cafe", gotCategory)
	assert.False(t, p.Select(1))

	r := domain.Restaurant{ID: uuid.New(), Name: "Cafe Noir", Style: "cafe"}
	p.Render(explorer.MapView{
		Mode:        explorer.ModeRestaurants,
		Restaurants: []domain.Restaurant{r},
	})
	assert.Equal(t, 1, p.Len())
	assert.True(t, p.Select(0))
	assert.Equal(t, r.ID, gotRestaurant.ID)
	assert.False(t, p.Select(-1))
}

func TestMarkerPanel_ViewEmpty(t *testing.T) {
	p := NewMarkerPanel(explorer.MapCallbacks{}, DefaultTheme)

	assert.Contains(t, p.View(0), "no markers")
	assert.Zero(t, p.Len())
}
