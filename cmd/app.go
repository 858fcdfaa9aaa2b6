package cmd

import (
	"fmt"

	"service-locator/core/config"
	"service-locator/core/loader"
	"service-locator/core/locator"
	"service-locator/core/logger"

	"go.uber.org/zap"
)

// app bundles what every command needs.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	locator *locator.ServiceLocator
}

// bootstrap loads configuration and builds the locator with its built-in services.
func bootstrap(path string) (*app, error) {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	loc := locator.New(loader.NewRegistry(logg), cfg.Locator, logg)
	if err := locator.DefineBuiltins(loc, logg); err != nil {
		return nil, fmt.Errorf("failed to define services: %w", err)
	}

	return &app{cfg: cfg, logger: logg, locator: loc}, nil
}
