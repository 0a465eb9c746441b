package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/restauratings/internal/domain"
	"github.com/restauratings/internal/domain/repository"
	apperrors "github.com/restauratings/internal/pkg/errors"
	"github.com/restauratings/internal/repository/postgres/testhelpers"
)

// RestaurantRepositorySuite tests restaurant and review repositories with real database
type RestaurantRepositorySuite struct {
	suite.Suite
	testDB      *testhelpers.TestDB
	restaurants repository.RestaurantRepository
	reviews     repository.ReviewRepository
	ctx         context.Context
}

// SetupSuite runs once before all tests
func (s *RestaurantRepositorySuite) SetupSuite() {
	s.testDB = testhelpers.SetupTestDB(s.T())

	err := testhelpers.ApplyMigrations(s.testDB.DB, "../../../migrations", s.testDB.Logger)
	s.Require().NoError(err, "Failed to apply migrations")

	s.restaurants = testhelpers.NewRestaurantRepositoryForTest(s.testDB.DB, s.testDB.Logger)
	s.reviews = testhelpers.NewReviewRepositoryForTest(s.testDB.DB, s.testDB.Logger)
}

// TearDownSuite runs once after all tests
func (s *RestaurantRepositorySuite) TearDownSuite() {
	if s.testDB != nil {
		s.testDB.Close()
	}
}

// SetupTest runs before each test
func (s *RestaurantRepositorySuite) SetupTest() {
	s.ctx = context.Background()
	s.Require().NoError(s.testDB.Cleanup(s.ctx))
}

func (s *RestaurantRepositorySuite) TestList_StyleSubstringIgnoresCase() {
	testhelpers.InsertRestaurant(s.T(), s.testDB.DB, "Tony's Pizza", "pizza", 32.0739, 34.7718)
	testhelpers.InsertRestaurant(s.T(), s.testDB.DB, "Moses Burger", "burger", 32.0668, 34.7692)

	result, err := s.restaurants.List(s.ctx, domain.RestaurantFilter{Style: "PIZ"})
	s.NoError(err)
	s.Len(result, 1)
	s.Equal("Tony's Pizza", result[0].Name)
}

func (s *RestaurantRepositorySuite) TestList_BoundingBox() {
	testhelpers.InsertRestaurant(s.T(), s.testDB.DB, "Tel Aviv", "cafe", 32.08, 34.78)
	testhelpers.InsertRestaurant(s.T(), s.testDB.DB, "Eilat", "cafe", 29.55, 34.95)

	bbox := domain.BoundingBoxAround(domain.DefaultLocation, 10)
	result, err := s.restaurants.List(s.ctx, domain.RestaurantFilter{BBox: &bbox})
	s.NoError(err)
	s.Len(result, 1)
	s.Equal("Tel Aviv", result[0].Name)
}

func (s *RestaurantRepositorySuite) TestReviewCreate_UpdatesAggregates() {
	r := testhelpers.InsertRestaurant(s.T(), s.testDB.DB, "Miznon", "pita", 32.07, 34.77)

	for _, rating := range []int{5, 4, 4} {
		_, err := s.reviews.Create(s.ctx, r.ID, domain.NewReview{UserName: "Dana", Rating: rating})
		s.Require().NoError(err)
	}

	got, err := s.restaurants.GetByID(s.ctx, r.ID)
	s.Require().NoError(err)
	s.Equal(3, got.TotalReviews)
	s.Require().NotNil(got.AverageRating)
	s.InDelta(4.3, *got.AverageRating, 1e-9)

	reviews, err := s.reviews.ListByRestaurant(s.ctx, r.ID)
	s.NoError(err)
	s.Len(reviews, 3)
}

func (s *RestaurantRepositorySuite) TestDelete_CascadesReviews() {
	r := testhelpers.InsertRestaurant(s.T(), s.testDB.DB, "Roladin", "bakery", 32.08, 34.77)
	_, err := s.reviews.Create(s.ctx, r.ID, domain.NewReview{UserName: "Avi", Rating: 3})
	s.Require().NoError(err)

	s.NoError(s.restaurants.Delete(s.ctx, r.ID))

	reviews, err := s.reviews.ListByRestaurant(s.ctx, r.ID)
	s.NoError(err)
	s.Empty(reviews)

	_, err = s.restaurants.GetByID(s.ctx, r.ID)
	s.ErrorIs(err, apperrors.ErrRestaurantNotFound)
}

func TestRestaurantRepositorySuite(t *testing.T) {
	suite.Run(t, new(RestaurantRepositorySuite))
}
