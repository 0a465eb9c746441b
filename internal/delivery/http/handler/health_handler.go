package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// HealthChecker - зависимость, которую проверяет /health
type HealthChecker interface {
	Health(ctx context.Context) error
}

// HealthHandler отвечает на проверки живости
type HealthHandler struct {
	checkers map[string]HealthChecker
	logger   *zap.Logger
}

func NewHealthHandler(checkers map[string]HealthChecker, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		checkers: checkers,
		logger:   logger,
	}
}

// Health godoc
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	status := fiber.StatusOK
	checks := make(fiber.Map, len(h.checkers))
	for name, checker := range h.checkers {
		if err := checker.Health(ctx); err != nil {
			h.logger.Warn("Health check failed", zap.String("dependency", name), zap.Error(err))
			checks[name] = err.Error()
			status = fiber.StatusServiceUnavailable
			continue
		}
		checks[name] = "ok"
	}

	state := "healthy"
	if status != fiber.StatusOK {
		state = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": state,
		"checks": checks,
		"time":   time.Now(),
	})
}
