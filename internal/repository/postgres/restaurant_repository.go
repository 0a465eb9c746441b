package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/restauratings/internal/domain"
	"github.com/restauratings/internal/domain/repository"
	"github.com/restauratings/internal/pkg/errors"
	"go.uber.org/zap"
)

const restaurantColumns = `
	id, name, style, address, latitude, longitude,
	description, phone, website, average_rating, total_reviews, created_at`

type restaurantRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewRestaurantRepository(db *DB) repository.RestaurantRepository {
	return &restaurantRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *restaurantRepository) List(
	ctx context.Context,
	filter domain.RestaurantFilter,
) ([]domain.Restaurant, error) {
	var (
		conds []string
		args  []interface{}
	)

	// Подстрочное совпадение без учёта регистра
	if filter.Style != "" {
		args = append(args, filter.Style)
		conds = append(conds, fmt.Sprintf("POSITION(LOWER($%d) IN LOWER(style)) > 0", len(args)))
	}

	if filter.BBox != nil {
		args = append(args, filter.BBox.MinLat, filter.BBox.MaxLat)
		conds = append(conds, fmt.Sprintf("latitude BETWEEN $%d AND $%d", len(args)-1, len(args)))
		args = append(args, filter.BBox.MinLng, filter.BBox.MaxLng)
		conds = append(conds, fmt.Sprintf("longitude BETWEEN $%d AND $%d", len(args)-1, len(args)))
	}

	query := "SELECT" + restaurantColumns + "\n\tFROM restaurants"
	if len(conds) > 0 {
		query += "\n\tWHERE " + strings.Join(conds, " AND ")
	}
	query += "\n\tORDER BY created_at, id"

	restaurants := make([]domain.Restaurant, 0)
	if err := r.db.SelectContext(ctx, &restaurants, query, args...); err != nil {
		r.logger.Error("Failed to list restaurants",
			zap.String("style", filter.Style),
			zap.Error(err),
		)
		return nil, errors.ErrDatabaseError
	}

	r.logger.Debug("Retrieved restaurants",
		zap.Int("result_count", len(restaurants)),
		zap.String("style", filter.Style),
	)

	return restaurants, nil
}

func (r *restaurantRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Restaurant, error) {
	query := "SELECT" + restaurantColumns + "\n\tFROM restaurants\n\tWHERE id = $1"

	var restaurant domain.Restaurant
	err := r.db.GetContext(ctx, &restaurant, query, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrRestaurantNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get restaurant by ID", zap.Stringer("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &restaurant, nil
}

func (r *restaurantRepository) Create(
	ctx context.Context,
	restaurant *domain.Restaurant,
) (*domain.Restaurant, error) {
	query := `
		INSERT INTO restaurants (
			id, name, style, address, latitude, longitude, description, phone, website
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING total_reviews, created_at
	`

	created := *restaurant
	created.ID = uuid.New()

	err := r.db.QueryRowxContext(ctx, query,
		created.ID, created.Name, created.Style, created.Address,
		created.Latitude, created.Longitude,
		created.Description, created.Phone, created.Website,
	).Scan(&created.TotalReviews, &created.CreatedAt)
	if err != nil {
		r.logger.Error("Failed to create restaurant", zap.String("name", created.Name), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &created, nil
}

// Delete удаляет ресторан; отзывы удаляются каскадом (FK ON DELETE CASCADE)
func (r *restaurantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM restaurants WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete restaurant", zap.Stringer("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}

	affected, err := result.RowsAffected()
	if err != nil {
		r.logger.Error("Failed to read affected rows", zap.Stringer("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrRestaurantNotFound
	}

	return nil
}
