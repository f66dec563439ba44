package api

import (
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/forecastlabs/agent-portal/internal/api/middleware"
	"github.com/forecastlabs/agent-portal/internal/config"
	"github.com/forecastlabs/agent-portal/internal/services"
)

// APIServer exposes the portal operations over HTTP: factory details, game
// deployment recording, and the paginated game catalog.
type APIServer struct {
	app      *fiber.App
	cfg      *config.Config
	recorder services.RecorderService
	catalog  services.CatalogService
	factory  services.FactoryService
	validate *validator.Validate
	port     int
}

func NewAPIServer(cfg *config.Config, recorder services.RecorderService, catalog services.CatalogService, factory services.FactoryService) *APIServer {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	// Add middleware
	app.Use(cors.New())
	app.Use(requestid.New(requestid.Config{
		Generator: func() string { return uuid.NewString() },
	}))
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))

	server := &APIServer{
		app:      app,
		cfg:      cfg,
		recorder: recorder,
		catalog:  catalog,
		factory:  factory,
		validate: validator.New(),
	}
	server.setupRoutes()
	return server
}

func (s *APIServer) setupRoutes() {
	// Recording is the only mutating operation; guard it when a secret is
	// configured. Reads stay public.
	record := []fiber.Handler{s.handleRecordGame}
	if s.cfg.AuthSecret != "" {
		record = []fiber.Handler{middleware.AuthMiddleware(s.cfg.AuthSecret), s.handleRecordGame}
	}

	s.app.Get("/api/factory", s.handleFactoryDetails)
	s.app.Post("/api/games", record...)
	s.app.Get("/api/games", s.handleListGames)
	s.app.Get("/api/categories", s.handleListCategories)

	// Health check
	s.app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(map[string]string{"status": "ok"})
	})
}

// Start starts the server on the given port without blocking.
func (s *APIServer) Start(port int) {
	s.port = port
	go func() {
		if err := s.app.Listen(fmt.Sprintf(":%d", port)); err != nil {
			log.Printf("Error starting API server: %v\n", err)
		}
	}()
}

// Shutdown gracefully stops the server.
func (s *APIServer) Shutdown() error {
	return s.app.Shutdown()
}
