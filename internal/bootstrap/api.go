package bootstrap

import (
	"strings"

	httphandler "github.com/KhoaNam225/comssa-backend-workshop/adapter/in/http"
	"github.com/KhoaNam225/comssa-backend-workshop/config"
	"github.com/KhoaNam225/comssa-backend-workshop/infra/middleware"
	"github.com/KhoaNam225/comssa-backend-workshop/pkg/logger"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// NewAPI wires the Fiber app: middleware stack, health endpoints, and the
// user CRUD routes.
func NewAPI(cfg *config.Config) (*fiber.App, func(), error) {
	logLevel := logger.ParseLevel(cfg.LogLevel)
	if cfg.IsDevelopment() && logLevel > logger.LevelDebug {
		logLevel = logger.LevelDebug
	}
	logger.Init(logger.Config{
		Level:   logLevel,
		Service: "comssa-workshop",
	})

	deps, cleanup, err := NewDependencies(cfg)
	if err != nil {
		logger.WithError(err).Error("Failed to initialize dependencies")
		return nil, nil, err
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          middleware.ErrorHandler(),
		DisableStartupMessage: cfg.IsProduction(),

		// go-json is a drop-in encoder noticeably faster than encoding/json
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,

		BodyLimit: 1 * 1024 * 1024, // 1MB is plenty for user payloads
	})

	// Global middleware stack (order matters)
	app.Use(middleware.Recover())
	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger())

	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.AllowedOrigins, ","),
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,X-Request-ID",
	}))

	// App descriptor and health endpoints
	healthHandler := httphandler.NewHealthHandler(deps.HealthAdapter)
	healthHandler.Register(app)

	// User CRUD
	userHandler := httphandler.NewUserHandler(deps.UserService)
	userHandler.Register(app)

	logger.Info("API server initialized successfully")

	return app, cleanup, nil
}
