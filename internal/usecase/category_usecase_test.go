package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/restauratings/internal/domain"
	apperrors "github.com/restauratings/internal/pkg/errors"
	"github.com/restauratings/internal/usecase"
)

func TestCategoryUseCase_GetCategories(t *testing.T) {
	ctx := context.Background()

	t.Run("snapshot from cache", func(t *testing.T) {
		restaurants := &MockRestaurantRepository{}
		cache := &MockCacheRepository{}
		uc := usecase.NewCategoryUseCase(restaurants, cache, zap.NewNop(), 10*time.Minute)

		snapshot := []domain.CategorySummary{{Category: "pizza", Count: 1}}
		cache.On("GetCategories", ctx).Return(snapshot, nil)

		result, err := uc.GetCategories(ctx)
		require.NoError(t, err)
		assert.Equal(t, snapshot, result)
		restaurants.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})

	t.Run("cache miss aggregates and stores", func(t *testing.T) {
		restaurants := &MockRestaurantRepository{}
		cache := &MockCacheRepository{}
		uc := usecase.NewCategoryUseCase(restaurants, cache, zap.NewNop(), 10*time.Minute)

		cache.On("GetCategories", ctx).Return(nil, errors.New("redis down"))
		restaurants.On("List", ctx, domain.RestaurantFilter{}).Return([]domain.Restaurant{
			{Name: "A", Style: "pizza", Latitude: 32.0, Longitude: 34.0},
			{Name: "B", Style: "cafe", Latitude: 31.0, Longitude: 35.0},
			{Name: "C", Style: "pizza", Latitude: 32.2, Longitude: 34.2},
		}, nil)
		cache.On("SetCategories", ctx, mock.Anything, 10*time.Minute).Return(nil)

		result, err := uc.GetCategories(ctx)
		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, "pizza", result[0].Category)
		assert.Equal(t, 2, result[0].Count)
		assert.InDelta(t, 32.1, result[0].Center.Lat, 1e-9)
		assert.Equal(t, "cafe", result[1].Category)
		cache.AssertExpectations(t)
	})

	t.Run("database error", func(t *testing.T) {
		restaurants := &MockRestaurantRepository{}
		cache := &MockCacheRepository{}
		uc := usecase.NewCategoryUseCase(restaurants, cache, zap.NewNop(), time.Minute)

		cache.On("GetCategories", ctx).Return(nil, nil)
		restaurants.On("List", ctx, mock.Anything).Return(nil, apperrors.ErrDatabaseError)

		result, err := uc.GetCategories(ctx)
		assert.Nil(t, result)
		assert.ErrorIs(t, err, apperrors.ErrDatabaseError)
		cache.AssertNotCalled(t, "SetCategories", mock.Anything, mock.Anything, mock.Anything)
	})
}
