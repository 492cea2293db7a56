package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	appName    = "COMSSA Backend Workshop"
	appVersion = "2.0.0"
)

// StoreProber reports whether the backing store is reachable.
type StoreProber interface {
	Probe(ctx context.Context) bool
}

// HealthHandler serves the app descriptor and health endpoints.
type HealthHandler struct {
	db StoreProber
}

func NewHealthHandler(db StoreProber) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Register(app *fiber.App) {
	app.Get("/", h.Root)
	app.Get("/hello/:name", h.Hello)
	app.Get("/info", h.Info)
	app.Get("/health", h.Health)
}

func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message":  "Hello World! Now with MongoDB power!",
		"database": "Connected to MongoDB Atlas",
		"version":  appVersion,
	})
}

func (h *HealthHandler) Hello(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Hello, " + c.Params("name") + "!",
	})
}

func (h *HealthHandler) Info(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"app_name": appName,
		"version":  appVersion,
		"status":   "running",
	})
}

// Health reports whether the app and database are healthy. A failed probe is
// reflected in the payload, never as an error status.
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	dbHealthy := h.db.Probe(c.Context())

	status := "healthy"
	database := "connected"
	if !dbHealthy {
		status = "unhealthy"
		database = "disconnected"
	}

	return c.JSON(fiber.Map{
		"status":    status,
		"database":  database,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
