package inspect

import (
	"errors"

	"service-locator/core/loader"
	"service-locator/core/locator"
	"service-locator/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for registry inspection.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the inspection routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	loaders := app.Group("/loaders")
	loaders.Get("/", h.HandleListLoaders)
	loaders.Get("/:name", h.HandleResolveLoader)

	services := app.Group("/services")
	services.Get("/", h.HandleListServices)
	services.Get("/:name", h.HandleGetService)
}

// HandleListLoaders lists registered loaders.
func (h *Handler) HandleListLoaders(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"loaders": h.service.Loaders()})
}

// HandleResolveLoader resolves a loader by name.
func (h *Handler) HandleResolveLoader(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	name := c.Params("name")

	status, err := h.service.ResolveLoader(name)
	if err != nil {
		l.Warn("Loader resolve failed", zap.String("loader", name), zap.Error(err))
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(status)
}

// HandleListServices lists service definitions.
func (h *Handler) HandleListServices(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"services": h.service.Services()})
}

// HandleGetService gets a service by name.
func (h *Handler) HandleGetService(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	name := c.Params("name")

	status, err := h.service.GetService(c.UserContext(), name)
	if err != nil {
		l.Warn("Service get failed", zap.String("service", name), zap.Error(err))
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(status)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, loader.ErrNameNotFound), errors.Is(err, locator.ErrServiceNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}
