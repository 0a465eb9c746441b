package postgres

import (
	"context"
	stderrors "errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/restauratings/internal/domain"
	"github.com/restauratings/internal/domain/repository"
	"github.com/restauratings/internal/pkg/errors"
	"go.uber.org/zap"
)

// pgForeignKeyViolation - SQLSTATE нарушения внешнего ключа
const pgForeignKeyViolation = "23503"

type reviewRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewReviewRepository(db *DB) repository.ReviewRepository {
	return &reviewRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *reviewRepository) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]domain.Review, error) {
	query := `
		SELECT id, restaurant_id, user_name, rating, comment, created_at
		FROM reviews
		WHERE restaurant_id = $1
		ORDER BY created_at DESC
	`

	reviews := make([]domain.Review, 0)
	if err := r.db.SelectContext(ctx, &reviews, query, restaurantID); err != nil {
		r.logger.Error("Failed to list reviews",
			zap.Stringer("restaurant_id", restaurantID),
			zap.Error(err),
		)
		return nil, errors.ErrDatabaseError
	}

	return reviews, nil
}

// Create вставляет отзыв и пересчитывает average_rating (одна цифра после запятой)
// и total_reviews ресторана в одной транзакции
func (r *reviewRepository) Create(
	ctx context.Context,
	restaurantID uuid.UUID,
	input domain.NewReview,
) (*domain.Review, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin transaction", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer func() {
		_ = tx.Rollback()
	}()

	review := domain.Review{
		ID:           uuid.New(),
		RestaurantID: restaurantID,
		UserName:     input.UserName,
		Rating:       input.Rating,
		Comment:      input.Comment,
	}

	insert := `
		INSERT INTO reviews (id, restaurant_id, user_name, rating, comment)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`
	err = tx.QueryRowxContext(ctx, insert,
		review.ID, review.RestaurantID, review.UserName, review.Rating, review.Comment,
	).Scan(&review.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if stderrors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return nil, errors.ErrRestaurantNotFound
		}
		r.logger.Error("Failed to insert review",
			zap.Stringer("restaurant_id", restaurantID),
			zap.Error(err),
		)
		return nil, errors.ErrDatabaseError
	}

	update := `
		UPDATE restaurants AS r
		SET average_rating = s.avg_rating,
		    total_reviews  = s.total
		FROM (
			SELECT ROUND(AVG(rating)::numeric, 1)::double precision AS avg_rating,
			       COUNT(*) AS total
			FROM reviews
			WHERE restaurant_id = $1
		) AS s
		WHERE r.id = $1
	`
	if _, err := tx.ExecContext(ctx, update, restaurantID); err != nil {
		r.logger.Error("Failed to update restaurant rating",
			zap.Stringer("restaurant_id", restaurantID),
			zap.Error(err),
		)
		return nil, errors.ErrDatabaseError
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit review", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &review, nil
}
