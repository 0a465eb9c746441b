package explorer

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/restauratings/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockRestaurantAPI is a mock of RestaurantAPI
type MockRestaurantAPI struct {
	mock.Mock
}

func (m *MockRestaurantAPI) ListRestaurants(ctx context.Context, style string) ([]domain.Restaurant, error) {
	args := m.Called(ctx, style)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Restaurant), args.Error(1)
}

func (m *MockRestaurantAPI) ListReviews(ctx context.Context, restaurantID uuid.UUID) ([]domain.Review, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *MockRestaurantAPI) CreateReview(ctx context.Context, restaurantID uuid.UUID, review domain.NewReview) (*domain.Review, error) {
	args := m.Called(ctx, restaurantID, review)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

// recordingRenderer запоминает все переданные виды карты
type recordingRenderer struct {
	mu    sync.Mutex
	views []MapView
}

func (r *recordingRenderer) Render(view MapView) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.views = append(r.views, view)
}

func (r *recordingRenderer) last() MapView {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.views[len(r.views)-1]
}

func (r *recordingRenderer) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.views)
}

func restaurant(name, style string, lat, lng float64) domain.Restaurant {
	return domain.Restaurant{
		ID:        uuid.New(),
		Name:      name,
		Style:     style,
		Latitude:  lat,
		Longitude: lng,
	}
}
