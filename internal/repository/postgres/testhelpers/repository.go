package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"github.com/restauratings/internal/domain/repository"
	"github.com/restauratings/internal/repository/postgres"
	"go.uber.org/zap"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

// NewRestaurantRepositoryForTest creates a restaurant repository with test database and logger
func NewRestaurantRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.RestaurantRepository {
	return postgres.NewRestaurantRepository(NewDBForTest(db, logger))
}

// NewReviewRepositoryForTest creates a review repository with test database and logger
func NewReviewRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.ReviewRepository {
	return postgres.NewReviewRepository(NewDBForTest(db, logger))
}
