package locator

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"service-locator/core/loader"

	"go.uber.org/zap"
)

var (
	// ErrServiceNotFound indicates a Get for a service that was never defined.
	ErrServiceNotFound = errors.New("locator: service not found")
	// ErrServiceExists indicates a Define for a name that is already defined.
	ErrServiceExists = errors.New("locator: service already defined")
	// ErrInvalidDefinition indicates a definition without a name or factory.
	ErrInvalidDefinition = errors.New("locator: invalid definition")
)

// ServiceLocator resolves services through the loaders held by a registry.
type ServiceLocator struct {
	registry      *loader.Registry
	defaultLoader string
	logger        *zap.Logger

	mu   sync.RWMutex
	defs map[string]loader.Definition
}

// New creates a service locator backed by the registry.
func New(registry *loader.Registry, cfg Config, logger *zap.Logger) *ServiceLocator {
	if logger == nil {
		logger = zap.NewNop()
	}
	def := cfg.DefaultLoader
	if def == "" {
		def = loader.NameDefault
	}
	return &ServiceLocator{
		registry:      registry,
		defaultLoader: def,
		logger:        logger,
		defs:          make(map[string]loader.Definition),
	}
}

// Registry returns the loader registry backing the locator.
func (s *ServiceLocator) Registry() *loader.Registry {
	return s.registry
}

// Define adds a service definition. A definition without a loader uses the
// configured default loader.
func (s *ServiceLocator) Define(def loader.Definition) error {
	if def.Name == "" || def.Factory == nil {
		return fmt.Errorf("%w: service '%s' needs a name and a factory", ErrInvalidDefinition, def.Name)
	}
	if def.Loader == "" {
		def.Loader = s.defaultLoader
	}
	key := strings.ToLower(def.Name)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.defs[key]; exists {
		return fmt.Errorf("%w: '%s'", ErrServiceExists, def.Name)
	}
	s.defs[key] = def
	s.logger.Debug("Service defined", zap.String("service", def.Name), zap.String("loader", def.Loader))
	return nil
}

// Definition returns the definition registered under name.
func (s *ServiceLocator) Definition(name string) (loader.Definition, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	def, ok := s.defs[strings.ToLower(name)]
	return def, ok
}

// Definitions returns a snapshot of all definitions ordered by name.
func (s *ServiceLocator) Definitions() []loader.Definition {
	s.mu.RLock()
	defs := make([]loader.Definition, 0, len(s.defs))
	for _, d := range s.defs {
		defs = append(defs, d)
	}
	s.mu.RUnlock()

	sort.Slice(defs, func(i, j int) bool {
		return strings.ToLower(defs[i].Name) < strings.ToLower(defs[j].Name)
	})
	return defs
}

// Get returns the service registered under name, built by its loader.
func (s *ServiceLocator) Get(ctx context.Context, name string) (any, error) {
	def, ok := s.Definition(name)
	if !ok {
		return nil, fmt.Errorf("%w: '%s'", ErrServiceNotFound, name)
	}

	l, err := s.registry.Resolve(def.Loader, s)
	if err != nil {
		return nil, fmt.Errorf("service '%s': %w", name, err)
	}

	v, err := l.Load(ctx, def)
	if err != nil {
		s.logger.Warn("Service load failed", zap.String("service", def.Name), zap.String("loader", def.Loader), zap.Error(err))
		return nil, err
	}
	return v, nil
}
