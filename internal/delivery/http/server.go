package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/map-my-world-service/internal/config"
	"github.com/map-my-world-service/internal/delivery/http/handler"
	"github.com/map-my-world-service/internal/delivery/http/middleware"
	apperrors "github.com/map-my-world-service/internal/pkg/errors"
)

// Server wires the Fiber app, middleware and the /api/rest routes.
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	healthCheck HealthCheck

	categoryHandler *handler.CategoryHandler
	locationHandler *handler.LocationHandler
}

// HealthCheck probes the backing stores.
type HealthCheck func(ctx context.Context) error

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	healthCheck HealthCheck,
	categoryHandler *handler.CategoryHandler,
	locationHandler *handler.LocationHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Map My World",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:             app,
		config:          cfg,
		logger:          logger,
		healthCheck:     healthCheck,
		categoryHandler: categoryHandler,
		locationHandler: locationHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/rest")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		if s.healthCheck != nil {
			if err := s.healthCheck(c.Context()); err != nil {
				return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
					"status": "unhealthy",
					"time":   time.Now(),
				})
			}
		}
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Category routes
	api.Post("/add-categories", s.categoryHandler.AddCategory)

	// Location routes
	api.Post("/add-locations", s.locationHandler.AddLocation)
	api.Get("/recommend-locations", s.locationHandler.RecommendLocations)
	api.Get("/location-:location_id/category-:category_id", s.locationHandler.LocationDetail)
}

func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// App exposes the Fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// customErrorHandler keeps framework-level failures in the shared error
// payload shape instead of Fiber's default error page.
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		errType := apperrors.TypeInternal
		message := ""

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			if code < 500 {
				errType = apperrors.TypeValidation
				message = e.Message
			}
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"status_code": code,
			"type":        errType,
			"message":     message,
		})
	}
}
