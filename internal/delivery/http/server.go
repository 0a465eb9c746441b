package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/restauratings/internal/config"
	"github.com/restauratings/internal/delivery/http/handler"
	"github.com/restauratings/internal/delivery/http/middleware"
	"github.com/restauratings/internal/pkg/errors"
	"github.com/restauratings/internal/pkg/utils"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	restaurantHandler *handler.RestaurantHandler
	reviewHandler     *handler.ReviewHandler
	categoryHandler   *handler.CategoryHandler
	healthHandler     *handler.HealthHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	restaurantHandler *handler.RestaurantHandler,
	reviewHandler *handler.ReviewHandler,
	categoryHandler *handler.CategoryHandler,
	healthHandler *handler.HealthHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Restauratings API",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:               app,
		config:            cfg,
		logger:            logger,
		restaurantHandler: restaurantHandler,
		reviewHandler:     reviewHandler,
		categoryHandler:   categoryHandler,
		healthHandler:     healthHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS(s.config.Server.AllowOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	s.app.Get("/health", s.healthHandler.Health)

	api := s.app.Group("/api")

	// Restaurant routes
	api.Get("/restaurants", s.restaurantHandler.List)
	api.Post("/restaurants", s.restaurantHandler.Create)
	api.Get("/restaurants/:id", s.restaurantHandler.Get)
	api.Delete("/restaurants/:id", s.restaurantHandler.Delete)

	// Review routes
	api.Get("/restaurants/:id/reviews", s.reviewHandler.List)
	api.Post("/restaurants/:id/reviews", s.reviewHandler.Create)

	// Category routes
	api.Get("/categories", s.categoryHandler.List)
}

// App возвращает fiber-приложение (для app.Test)
func (s *Server) App() *fiber.App {
	return s.app
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - ошибки Fiber (404 маршрута, 405 и т.п.) в формате ErrorResponse
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		appErr := errors.ErrInternalServer

		if e, ok := err.(*fiber.Error); ok {
			appErr = errors.New("HTTP_ERROR", e.Message, e.Code)
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", appErr.StatusCode),
			zap.Error(err),
		)

		return utils.SendError(c, appErr)
	}
}
