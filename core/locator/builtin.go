package locator

import (
	"context"
	"time"

	"service-locator/core/loader"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// ServiceRequestID yields a new random identifier on every Get.
	ServiceRequestID = "request-id"
	// ServiceLogger yields the application logger.
	ServiceLogger = "logger"
	// ServiceStartedAt yields the time the service was first requested.
	ServiceStartedAt = "started-at"
)

// DefineBuiltins declares the services every locator in this application offers.
func DefineBuiltins(s *ServiceLocator, logger *zap.Logger) error {
	defs := []loader.Definition{
		{
			Name:   ServiceRequestID,
			Loader: loader.NameDefault,
			Factory: func(ctx context.Context, l loader.Locator) (any, error) {
				return uuid.NewString(), nil
			},
		},
		{
			Name:   ServiceLogger,
			Loader: loader.NameSingleton,
			Factory: func(ctx context.Context, l loader.Locator) (any, error) {
				return logger, nil
			},
		},
		{
			Name:   ServiceStartedAt,
			Loader: loader.NameSingleton,
			Factory: func(ctx context.Context, l loader.Locator) (any, error) {
				return time.Now().UTC(), nil
			},
		},
	}

	for _, def := range defs {
		if err := s.Define(def); err != nil {
			return err
		}
	}
	return nil
}
