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

// ReviewHandler обрабатывает запросы к отзывам
type ReviewHandler struct {
	reviewUC ReviewService
	logger   *zap.Logger
}

// NewReviewHandler создает новый экземпляр ReviewHandler
func NewReviewHandler(reviewUC ReviewService, logger *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		reviewUC: reviewUC,
		logger:   logger,
	}
}

// List godoc
// @Summary List reviews
// @Tags Reviews
// @Produce json
// @Param id path string true "Restaurant ID"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Review}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/restaurants/{id}/reviews [get]
func (h *ReviewHandler) List(c *fiber.Ctx) error {
	id, err := parseRestaurantID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	reviews, err := h.reviewUC.List(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, reviews, &utils.Meta{
		Total: len(reviews),
	})
}

// Create godoc
// @Summary Add review
// @Description Добавляет отзыв и пересчитывает средний рейтинг ресторана
// @Tags Reviews
// @Accept json
// @Produce json
// @Param id path string true "Restaurant ID"
// @Param request body dto.CreateReviewRequest true "Review"
// @Success 201 {object} utils.SuccessResponse{data=domain.Review}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/restaurants/{id}/reviews [post]
func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	id, err := parseRestaurantID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	req.UserName = strings.TrimSpace(req.UserName)

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, validator.ToAppError(err))
	}

	review, err := h.reviewUC.Create(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, review)
}
