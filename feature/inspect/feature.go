package inspect

import (
	"service-locator/core/locator"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature mounts the inspection API.
type Feature struct {
	handler *Handler
}

// NewFeature creates the inspection feature for the locator.
func NewFeature(loc *locator.ServiceLocator, logger *zap.Logger) *Feature {
	return &Feature{handler: NewHandler(NewService(loc, logger))}
}

// Name returns the feature name.
func (f *Feature) Name() string { return "inspect" }

// IsEnabled reports whether the feature is enabled.
func (f *Feature) IsEnabled() bool { return true }

// Load registers the inspection routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
