package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/restauratings/internal/pkg/errors"
	"github.com/restauratings/internal/pkg/utils"
	"github.com/restauratings/internal/pkg/validator"
	"github.com/restauratings/internal/usecase/dto"
	"go.uber.org/zap"
)

// RestaurantHandler обрабатывает запросы к ресторанам
type RestaurantHandler struct {
	restaurantUC RestaurantService
	logger       *zap.Logger
}

// NewRestaurantHandler создает новый экземпляр RestaurantHandler
func NewRestaurantHandler(restaurantUC RestaurantService, logger *zap.Logger) *RestaurantHandler {
	return &RestaurantHandler{
		restaurantUC: restaurantUC,
		logger:       logger,
	}
}

// List godoc
// @Summary List restaurants
// @Description Рестораны с фильтром по кухне (подстрока без учёта регистра) и по окрестности точки
// @Tags Restaurants
// @Produce json
// @Param style query string false "Cuisine tag"
// @Param lat query number false "Latitude of the search center"
// @Param lng query number false "Longitude of the search center"
// @Param radius query number false "Radius in km (default 10)"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Restaurant}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/restaurants [get]
func (h *RestaurantHandler) List(c *fiber.Ctx) error {
	req := dto.ListRestaurantsRequest{Style: c.Query("style")}

	var err error
	if req.Lat, err = queryFloat(c, "lat"); err != nil {
		return utils.SendError(c, err)
	}
	if req.Lng, err = queryFloat(c, "lng"); err != nil {
		return utils.SendError(c, err)
	}
	if req.Radius, err = queryFloat(c, "radius"); err != nil {
		return utils.SendError(c, err)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, validator.ToAppError(err))
	}

	restaurants, err := h.restaurantUC.List(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, restaurants, &utils.Meta{
		Total: len(restaurants),
	})
}

// Get godoc
// @Summary Get restaurant
// @Description Ресторан вместе с отзывами (новые первыми)
// @Tags Restaurants
// @Produce json
// @Param id path string true "Restaurant ID"
// @Success 200 {object} utils.SuccessResponse{data=domain.RestaurantDetail}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/restaurants/{id} [get]
func (h *RestaurantHandler) Get(c *fiber.Ctx) error {
	id, err := parseRestaurantID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	detail, err := h.restaurantUC.Get(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, detail, nil)
}

// Create godoc
// @Summary Create restaurant
// @Tags Restaurants
// @Accept json
// @Produce json
// @Param request body dto.CreateRestaurantRequest true "Restaurant"
// @Success 201 {object} utils.SuccessResponse{data=domain.Restaurant}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/restaurants [post]
func (h *RestaurantHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateRestaurantRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	req.Style = strings.TrimSpace(req.Style)

	if err := validator.Validate(&req); err != nil {
		h.logger.Debug("Create restaurant validation failed", zap.Error(err))
		return utils.SendError(c, validator.ToAppError(err))
	}

	restaurant, err := h.restaurantUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, restaurant)
}

// Delete godoc
// @Summary Delete restaurant
// @Description Удаляет ресторан вместе с отзывами
// @Tags Restaurants
// @Produce json
// @Param id path string true "Restaurant ID"
// @Success 200 {object} utils.SuccessResponse{data=dto.DeleteRestaurantResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/restaurants/{id} [delete]
func (h *RestaurantHandler) Delete(c *fiber.Ctx) error {
	id, err := parseRestaurantID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.restaurantUC.Delete(c.Context(), id); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.DeleteRestaurantResponse{DeletedID: id.String()}, nil)
}
