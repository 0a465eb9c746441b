package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/restauratings/internal/domain"
)

func TestHaversineDistance(t *testing.T) {
	telAviv := domain.Coordinate{Lat: 32.0853, Lng: 34.7818}
	jerusalem := domain.Coordinate{Lat: 31.7683, Lng: 35.2137}

	assert.InDelta(t, 54.0, HaversineDistance(telAviv, jerusalem), 1.5)
	assert.Zero(t, HaversineDistance(telAviv, telAviv))
}

func TestFormatDistance(t *testing.T) {
	assert.Equal(t, "850 m", FormatDistance(0.85))
	assert.Equal(t, "3.4 km", FormatDistance(3.42))
}

func TestValidateCoordinates(t *testing.T) {
	assert.True(t, ValidateCoordinates(32.08, 34.78))
	assert.False(t, ValidateCoordinates(91, 0))
	assert.False(t, ValidateCoordinates(0, -181))
}

func TestValidateRadius(t *testing.T) {
	assert.True(t, ValidateRadius(10))
	assert.False(t, ValidateRadius(0))
	assert.False(t, ValidateRadius(150))
}
