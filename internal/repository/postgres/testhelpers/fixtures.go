package testhelpers

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/restauratings/internal/domain"
	"github.com/restauratings/internal/repository/postgres"
	"github.com/stretchr/testify/require"
)

// InsertRestaurant stores a restaurant through the repository and returns it
func InsertRestaurant(t *testing.T, db *sqlx.DB, name, style string, lat, lng float64) *domain.Restaurant {
	t.Helper()

	repo := postgres.NewRestaurantRepository(postgres.NewDBForTest(db, nil))
	created, err := repo.Create(context.Background(), &domain.Restaurant{
		Name:      name,
		Style:     style,
		Address:   name + " street 1",
		Latitude:  lat,
		Longitude: lng,
	})
	require.NoError(t, err)

	return created
}
