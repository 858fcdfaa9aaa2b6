package loader

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
)

// DefaultLoader builds a fresh value on every Load.
type DefaultLoader struct {
	locator Locator
}

// NewDefaultLoader creates a DefaultLoader bound to the locator.
func NewDefaultLoader(l Locator) *DefaultLoader {
	return &DefaultLoader{locator: l}
}

// Load invokes the definition's factory.
func (d *DefaultLoader) Load(ctx context.Context, def Definition) (any, error) {
	return build(ctx, d.locator, def)
}

// SingletonLoader builds a value once per service name and returns it on
// every later Load. Failed builds are not cached.
type SingletonLoader struct {
	locator Locator

	mu     sync.RWMutex
	values map[string]any
	group  singleflight.Group
}

// NewSingletonLoader creates a SingletonLoader bound to the locator.
func NewSingletonLoader(l Locator) *SingletonLoader {
	return &SingletonLoader{
		locator: l,
		values:  make(map[string]any),
	}
}

// Load returns the cached value for the definition, building it on first use.
func (s *SingletonLoader) Load(ctx context.Context, def Definition) (any, error) {
	key := strings.ToLower(def.Name)

	s.mu.RLock()
	v, ok := s.values[key]
	s.mu.RUnlock()
	if ok {
		return v, nil
	}

	v, err, _ := s.group.Do(key, func() (any, error) {
		s.mu.RLock()
		v, ok := s.values[key]
		s.mu.RUnlock()
		if ok {
			return v, nil
		}

		v, err := build(ctx, s.locator, def)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.values[key] = v
		s.mu.Unlock()
		return v, nil
	})
	return v, err
}

func build(ctx context.Context, l Locator, def Definition) (any, error) {
	if def.Factory == nil {
		return nil, fmt.Errorf("service '%s' has no factory", def.Name)
	}
	v, err := def.Factory(ctx, l)
	if err != nil {
		return nil, fmt.Errorf("failed to build service '%s': %w", def.Name, err)
	}
	return v, nil
}
