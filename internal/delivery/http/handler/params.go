package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/restauratings/internal/pkg/errors"
)

// parseRestaurantID разбирает :id из пути
func parseRestaurantID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, errors.ErrInvalidRestaurantID.WithDetails(map[string]interface{}{
			"id": c.Params("id"),
		})
	}
	return id, nil
}

// queryFloat возвращает nil, если параметра нет
func queryFloat(c *fiber.Ctx, key string) (*float64, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			key: raw,
		})
	}
	return &v, nil
}
