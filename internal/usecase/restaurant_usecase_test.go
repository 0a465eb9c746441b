package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/restauratings/internal/domain"
	apperrors "github.com/restauratings/internal/pkg/errors"
	"github.com/restauratings/internal/usecase"
	"github.com/restauratings/internal/usecase/dto"
)

type restaurantMocks struct {
	restaurants *MockRestaurantRepository
	reviews     *MockReviewRepository
	cache       *MockCacheRepository
	stream      *MockStreamRepository
}

func newRestaurantUseCase() (*usecase.RestaurantUseCase, restaurantMocks) {
	m := restaurantMocks{
		restaurants: &MockRestaurantRepository{},
		reviews:     &MockReviewRepository{},
		cache:       &MockCacheRepository{},
		stream:      &MockStreamRepository{},
	}
	uc := usecase.NewRestaurantUseCase(m.restaurants, m.reviews, m.cache, m.stream, zap.NewNop(), time.Minute)
	return uc, m
}

func TestRestaurantUseCase_List(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit skips database", func(t *testing.T) {
		uc, m := newRestaurantUseCase()

		cached := []domain.Restaurant{{ID: uuid.New(), Name: "Tony's Pizza", Style: "pizza"}}
		data, _ := json.Marshal(cached)
		m.cache.On("Get", ctx, "restaurants:list:pizza:all").Return(data, nil)

		result, err := uc.List(ctx, dto.ListRestaurantsRequest{Style: "pizza"})
		require.NoError(t, err)
		assert.Equal(t, "Tony's Pizza", result[0].Name)
		m.restaurants.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})

	t.Run("cache miss loads and stores", func(t *testing.T) {
		uc, m := newRestaurantUseCase()

		restaurants := []domain.Restaurant{{ID: uuid.New(), Name: "Miznon", Style: "pita"}}
		m.cache.On("Get", ctx, mock.Anything).Return(nil, nil)
		m.restaurants.On("List", ctx, domain.RestaurantFilter{Style: "pita"}).Return(restaurants, nil)
		m.cache.On("Set", ctx, "restaurants:list:pita:all", mock.Anything, time.Minute).Return(nil)

		result, err := uc.List(ctx, dto.ListRestaurantsRequest{Style: " pita "})
		require.NoError(t, err)
		assert.Equal(t, restaurants, result)
		m.cache.AssertExpectations(t)
	})

	t.Run("coordinates build bounding box with default radius", func(t *testing.T) {
		uc, m := newRestaurantUseCase()

		m.cache.On("Get", ctx, mock.Anything).Return(nil, errors.New("redis down"))
		m.restaurants.On("List", ctx, mock.MatchedBy(func(f domain.RestaurantFilter) bool {
			return f.BBox != nil &&
				assert.InDelta(t, 32.0-10.0/111.0, f.BBox.MinLat, 1e-9) &&
				assert.InDelta(t, 34.0+10.0/111.0, f.BBox.MaxLng, 1e-9)
		})).Return([]domain.Restaurant{}, nil)
		m.cache.On("Set", ctx, mock.Anything, mock.Anything, time.Minute).Return(errors.New("redis down"))

		result, err := uc.List(ctx, dto.ListRestaurantsRequest{Lat: ptrFloat64(32), Lng: ptrFloat64(34)})
		require.NoError(t, err)
		assert.Empty(t, result)
		m.restaurants.AssertExpectations(t)
	})

	t.Run("database error propagates", func(t *testing.T) {
		uc, m := newRestaurantUseCase()

		m.cache.On("Get", ctx, mock.Anything).Return(nil, nil)
		m.restaurants.On("List", ctx, mock.Anything).Return(nil, apperrors.ErrDatabaseError)

		result, err := uc.List(ctx, dto.ListRestaurantsRequest{})
		assert.Nil(t, result)
		assert.ErrorIs(t, err, apperrors.ErrDatabaseError)
	})
}

func TestRestaurantUseCase_Get(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("includes reviews", func(t *testing.T) {
		uc, m := newRestaurantUseCase()

		m.restaurants.On("GetByID", ctx, id).Return(&domain.Restaurant{ID: id, Name: "HaSalon"}, nil)
		m.reviews.On("ListByRestaurant", ctx, id).Return([]domain.Review{{UserName: "Dana", Rating: 5}}, nil)

		detail, err := uc.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "HaSalon", detail.Name)
		assert.Len(t, detail.Reviews, 1)
	})

	t.Run("not found", func(t *testing.T) {
		uc, m := newRestaurantUseCase()

		m.restaurants.On("GetByID", ctx, id).Return(nil, apperrors.ErrRestaurantNotFound)

		detail, err := uc.Get(ctx, id)
		assert.Nil(t, detail)
		assert.ErrorIs(t, err, apperrors.ErrRestaurantNotFound)
		m.reviews.AssertNotCalled(t, "ListByRestaurant", mock.Anything, mock.Anything)
	})
}

func TestRestaurantUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("normalizes style and publishes event", func(t *testing.T) {
		uc, m := newRestaurantUseCase()

		id := uuid.New()
		m.restaurants.On("Create", ctx, mock.MatchedBy(func(r *domain.Restaurant) bool {
			return r.Style == "pizza" && r.Name == "Tony's Pizza"
		})).Return(&domain.Restaurant{ID: id, Name: "Tony's Pizza", Style: "pizza"}, nil)
		m.cache.On("DeleteByPrefix", ctx, domain.CacheKeyRestaurantListPrefix).Return(nil)
		m.stream.On("PublishToStream", ctx, domain.StreamRestaurantChanged, domain.RestaurantChangedEvent{
			RestaurantID: id,
			Style:        "pizza",
			Reason:       domain.ChangeReasonCreated,
		}).Return(nil)

		created, err := uc.Create(ctx, dto.CreateRestaurantRequest{
			Name:      "Tony's Pizza",
			Address:   "12 Dizengoff St",
			Latitude:  ptrFloat64(32.0739),
			Longitude: ptrFloat64(34.7718),
			Style:     "PIZZA",
		})
		require.NoError(t, err)
		assert.Equal(t, id, created.ID)
		m.cache.AssertExpectations(t)
		m.stream.AssertExpectations(t)
	})

	t.Run("publish failure is not returned", func(t *testing.T) {
		uc, m := newRestaurantUseCase()

		m.restaurants.On("Create", ctx, mock.Anything).Return(&domain.Restaurant{ID: uuid.New(), Style: "cafe"}, nil)
		m.cache.On("DeleteByPrefix", ctx, mock.Anything).Return(errors.New("redis down"))
		m.stream.On("PublishToStream", ctx, mock.Anything, mock.Anything).Return(errors.New("redis down"))

		created, err := uc.Create(ctx, dto.CreateRestaurantRequest{
			Name:        "Aroma",
			Address:     "174 Ben Yehuda St",
			Latitude:    ptrFloat64(32.08),
			Longitude:   ptrFloat64(34.77),
			Style:       "cafe",
			Description: ptrString("Coffee"),
		})
		require.NoError(t, err)
		assert.NotNil(t, created)
	})
}

func TestRestaurantUseCase_Delete(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("deletes and publishes", func(t *testing.T) {
		uc, m := newRestaurantUseCase()

		m.restaurants.On("GetByID", ctx, id).Return(&domain.Restaurant{ID: id, Style: "bakery"}, nil)
		m.restaurants.On("Delete", ctx, id).Return(nil)
		m.cache.On("DeleteByPrefix", ctx, domain.CacheKeyRestaurantListPrefix).Return(nil)
		m.stream.On("PublishToStream", ctx, domain.StreamRestaurantChanged, mock.MatchedBy(func(e domain.RestaurantChangedEvent) bool {
			return e.Reason == domain.ChangeReasonDeleted && e.Style == "bakery"
		})).Return(nil)

		require.NoError(t, uc.Delete(ctx, id))
		m.stream.AssertExpectations(t)
	})

	t.Run("missing restaurant", func(t *testing.T) {
		uc, m := newRestaurantUseCase()

		m.restaurants.On("GetByID", ctx, id).Return(nil, apperrors.ErrRestaurantNotFound)

		err := uc.Delete(ctx, id)
		assert.ErrorIs(t, err, apperrors.ErrRestaurantNotFound)
		m.restaurants.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
		m.stream.AssertNotCalled(t, "PublishToStream", mock.Anything, mock.Anything, mock.Anything)
	})
}
