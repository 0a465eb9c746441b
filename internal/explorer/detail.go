package explorer

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/restauratings/internal/domain"
	"go.uber.org/zap"
)

// ErrEmptyAuthor - имя автора отзыва пустое; запрос не отправляется
var ErrEmptyAuthor = errors.New("author name is required")

// ReviewForm - поля формы отзыва
type ReviewForm struct {
	UserName string
	Rating   int
	Comment  string
}

// DefaultReviewForm - пустая форма с оценкой 5
func DefaultReviewForm() ReviewForm {
	return ReviewForm{Rating: domain.DefaultRating}
}

// Detail - карточка одного ресторана с отзывами и формой нового отзыва
type Detail struct {
	api     RestaurantAPI
	onClose func()
	logger  *zap.Logger

	restaurant domain.Restaurant

	mu      sync.Mutex
	reviews []domain.Review
	form    ReviewForm
	loading bool
}

// NewDetail создает карточку; onClose вызывается после успешной отправки отзыва
func NewDetail(api RestaurantAPI, restaurant domain.Restaurant, onClose func(), logger *zap.Logger) *Detail {
	return &Detail{
		api:        api,
		onClose:    onClose,
		logger:     logger.With(zap.Stringer("restaurant_id", restaurant.ID)),
		restaurant: restaurant,
		reviews:    []domain.Review{},
		form:       DefaultReviewForm(),
	}
}

func (d *Detail) Restaurant() domain.Restaurant {
	return d.restaurant
}

func (d *Detail) Reviews() []domain.Review {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]domain.Review(nil), d.reviews...)
}

func (d *Detail) Form() ReviewForm {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.form
}

func (d *Detail) SetForm(form ReviewForm) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.form = form
}

func (d *Detail) Loading() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.loading
}

// Open загружает отзывы ресторана
func (d *Detail) Open(ctx context.Context) error {
	d.setLoading(true)
	defer d.setLoading(false)

	return d.fetchReviews(ctx)
}

// Submit отправляет отзыв. Пустое имя автора блокирует отправку.
// После успеха список отзывов перечитывается, форма сбрасывается и карточка закрывается
func (d *Detail) Submit(ctx context.Context) error {
	form := d.Form()
	form.UserName = strings.TrimSpace(form.UserName)
	if form.UserName == "" {
		return ErrEmptyAuthor
	}

	d.setLoading(true)
	defer d.setLoading(false)

	review, err := d.api.CreateReview(ctx, d.restaurant.ID, domain.NewReview{
		UserName: form.UserName,
		Rating:   form.Rating,
		Comment:  form.Comment,
	})
	if err != nil {
		d.logger.Error("Failed to submit review", zap.Error(err))
		return err
	}

	d.logger.Info("Review submitted", zap.Stringer("review_id", review.ID))

	if err := d.fetchReviews(ctx); err != nil {
		d.logger.Warn("Failed to reload reviews after submit", zap.Error(err))
	}

	d.SetForm(DefaultReviewForm())
	if d.onClose != nil {
		d.onClose()
	}

	return nil
}

func (d *Detail) fetchReviews(ctx context.Context) error {
	reviews, err := d.api.ListReviews(ctx, d.restaurant.ID)
	if err != nil {
		d.logger.Error("Failed to load reviews", zap.Error(err))
		return err
	}

	d.mu.Lock()
	d.reviews = reviews
	d.mu.Unlock()

	return nil
}

func (d *Detail) setLoading(v bool) {
	d.mu.Lock()
	d.loading = v
	d.mu.Unlock()
}
