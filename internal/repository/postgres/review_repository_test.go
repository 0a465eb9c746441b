package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restauratings/internal/domain"
	apperrors "github.com/restauratings/internal/pkg/errors"
)

func TestReviewRepository_ListByRestaurant(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReviewRepository(db)

	restaurantID := uuid.New()
	newer := time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)
	older := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`ORDER BY created_at DESC`).
		WithArgs(restaurantID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "restaurant_id", "user_name", "rating", "comment", "created_at"}).
			AddRow(uuid.New().String(), restaurantID.String(), "Dana", 5, "Great", newer).
			AddRow(uuid.New().String(), restaurantID.String(), "Avi", 3, "", older))

	reviews, err := repo.ListByRestaurant(context.Background(), restaurantID)
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, "Dana", reviews[0].UserName)
	assert.True(t, reviews[0].CreatedAt.After(reviews[1].CreatedAt))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_Create_RecomputesAggregates(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReviewRepository(db)

	restaurantID := uuid.New()
	createdAt := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO reviews`).
		WithArgs(sqlmock.AnyArg(), restaurantID, "Dana", 4, "Nice").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(createdAt))
	mock.ExpectExec(regexp.QuoteMeta("ROUND(AVG(rating)::numeric, 1)")).
		WithArgs(restaurantID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	review, err := repo.Create(context.Background(), restaurantID, domain.NewReview{
		UserName: "Dana",
		Rating:   4,
		Comment:  "Nice",
	})
	require.NoError(t, err)
	assert.Equal(t, restaurantID, review.RestaurantID)
	assert.Equal(t, 4, review.Rating)
	assert.Equal(t, createdAt, review.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_Create_UnknownRestaurant(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReviewRepository(db)

	restaurantID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO reviews`).
		WillReturnError(&pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"})
	mock.ExpectRollback()

	review, err := repo.Create(context.Background(), restaurantID, domain.NewReview{UserName: "Dana", Rating: 5})
	assert.Nil(t, review)
	assert.ErrorIs(t, err, apperrors.ErrRestaurantNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_Create_UpdateFailureRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReviewRepository(db)

	restaurantID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO reviews`).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))
	mock.ExpectExec(`UPDATE restaurants`).WillReturnError(errors.New("deadlock detected"))
	mock.ExpectRollback()

	review, err := repo.Create(context.Background(), restaurantID, domain.NewReview{UserName: "Dana", Rating: 2})
	assert.Nil(t, review)
	assert.ErrorIs(t, err, apperrors.ErrDatabaseError)
	assert.NoError(t, mock.ExpectationsWereMet())
}
