package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/restauratings/internal/pkg/utils"
	"go.uber.org/zap"
)

// CategoryHandler отдаёт сводки по категориям кухни
type CategoryHandler struct {
	categoryUC CategoryService
	logger     *zap.Logger
}

func NewCategoryHandler(categoryUC CategoryService, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryUC: categoryUC,
		logger:     logger,
	}
}

// List godoc
// @Summary List cuisine categories
// @Description Рестораны, сгруппированные по кухне, с количеством и центром
// @Tags Categories
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.CategorySummary}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	categories, err := h.categoryUC.GetCategories(c.Context())
	if err != nil {
		h.logger.Error("Failed to get categories", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, categories, &utils.Meta{
		Total: len(categories),
	})
}
