package inspect

import (
	"context"
	"fmt"
	"time"

	"service-locator/core/locator"

	"go.uber.org/zap"
)

// LoaderStatus describes one registry entry.
type LoaderStatus struct {
	Name   string `json:"name"`
	Cached bool   `json:"cached"`
	Type   string `json:"type,omitempty"`
}

// ServiceStatus describes one service definition.
type ServiceStatus struct {
	Name   string `json:"name"`
	Loader string `json:"loader"`
	Type   string `json:"type,omitempty"`
	Value  string `json:"value,omitempty"`
}

// Service reads registry and locator state.
type Service struct {
	locator *locator.ServiceLocator
	logger  *zap.Logger
}

// NewService creates a new inspection service.
func NewService(loc *locator.ServiceLocator, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		locator: loc,
		logger:  logger,
	}
}

// Loaders lists the registered loaders.
func (s *Service) Loaders() []LoaderStatus {
	reg := s.locator.Registry()
	names := reg.Names()
	out := make([]LoaderStatus, 0, len(names))
	for _, n := range names {
		out = append(out, LoaderStatus{Name: n, Cached: reg.Cached(n)})
	}
	return out
}

// ResolveLoader resolves the named loader against the locator.
func (s *Service) ResolveLoader(name string) (LoaderStatus, error) {
	l, err := s.locator.Registry().Resolve(name, s.locator)
	if err != nil {
		return LoaderStatus{}, err
	}
	return LoaderStatus{Name: name, Cached: true, Type: fmt.Sprintf("%T", l)}, nil
}

// Services lists the service definitions.
func (s *Service) Services() []ServiceStatus {
	defs := s.locator.Definitions()
	out := make([]ServiceStatus, 0, len(defs))
	for _, d := range defs {
		out = append(out, ServiceStatus{Name: d.Name, Loader: d.Loader})
	}
	return out
}

// GetService gets the named service and describes the value it yields.
func (s *Service) GetService(ctx context.Context, name string) (ServiceStatus, error) {
	v, err := s.locator.Get(ctx, name)
	if err != nil {
		return ServiceStatus{}, err
	}
	def, _ := s.locator.Definition(name)
	return ServiceStatus{
		Name:   def.Name,
		Loader: def.Loader,
		Type:   fmt.Sprintf("%T", v),
		Value:  describe(v),
	}, nil
}

// describe renders values that have a meaningful text form.
func describe(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case time.Time:
		return val.Format(time.RFC3339Nano)
	case fmt.Stringer:
		return val.String()
	default:
		return ""
	}
}
