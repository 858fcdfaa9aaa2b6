package loader

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	// NameDefault is the built-in loader building a fresh value per request.
	NameDefault = "default"
	// NameSingleton is the built-in loader building one value per service.
	NameSingleton = "singleton"
)

// Registry maps loader names to constructors and caches constructed loaders.
// It is safe for concurrent use.
type Registry struct {
	mu           sync.Mutex
	constructors map[string]Constructor
	instances    map[string]Loader
	group        singleflight.Group
	logger       *zap.Logger
}

// NewRegistry creates a registry seeded with the built-in loaders.
func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		constructors: map[string]Constructor{
			NameDefault:   Typed(NewDefaultLoader),
			NameSingleton: Typed(NewSingletonLoader),
		},
		instances: make(map[string]Loader),
		logger:    logger,
	}
}

// normalize folds a caller supplied name into its registry key.
func normalize(name string) string {
	return strings.ToLower(name)
}

// Register adds a constructor under name.
// It fails with ErrNameCollision when the name is already registered.
func (r *Registry) Register(name string, ctor Constructor) error {
	key := normalize(name)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.constructors[key]; exists {
		return fmt.Errorf("%w: cannot override loader entry '%s'", ErrNameCollision, name)
	}
	r.constructors[key] = ctor
	r.logger.Debug("Loader registered", zap.String("loader", key))
	return nil
}

// Override registers ctor under name, replacing any existing registration.
// A loader already cached under name is kept and keeps being returned by Resolve.
func (r *Registry) Override(name string, ctor Constructor) {
	key := normalize(name)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.constructors[key] = ctor
	if _, cached := r.instances[key]; cached {
		r.logger.Warn("Loader overridden after first use, cached instance retained", zap.String("loader", key))
		return
	}
	r.logger.Debug("Loader overridden", zap.String("loader", key))
}

// Unregister removes the registration for name. The instance cache is left
// untouched.
func (r *Registry) Unregister(name string) {
	key := normalize(name)

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.constructors, key)
	r.logger.Debug("Loader unregistered", zap.String("loader", key))
}

// invalidImplementation carries the offending value out of the shared
// construction call so the caller can format its own message.
type invalidImplementation struct {
	impl string
}

func (e *invalidImplementation) Error() string { return ErrInvalidImplementation.Error() }

func (e *invalidImplementation) Unwrap() error { return ErrInvalidImplementation }

// Resolve returns the loader registered under name, constructing it with
// locator on first use. Later calls return the cached loader whatever
// locator they pass.
func (r *Registry) Resolve(name string, locator Locator) (Loader, error) {
	key := normalize(name)

	r.mu.Lock()
	inst, ok := r.instances[key]
	r.mu.Unlock()
	if ok {
		return inst, nil
	}

	v, err, _ := r.group.Do(key, func() (any, error) {
		r.mu.Lock()
		if inst, ok := r.instances[key]; ok {
			r.mu.Unlock()
			return inst, nil
		}
		ctor, ok := r.constructors[key]
		r.mu.Unlock()

		if !ok {
			return nil, ErrNameNotFound
		}
		if ctor == nil {
			return nil, &invalidImplementation{impl: "<nil>"}
		}

		built := ctor(locator)
		inst, ok := built.(Loader)
		if !ok {
			return nil, &invalidImplementation{impl: fmt.Sprintf("%T", built)}
		}

		r.mu.Lock()
		r.instances[key] = inst
		r.mu.Unlock()

		r.logger.Debug("Loader constructed", zap.String("loader", key), zap.String("type", fmt.Sprintf("%T", inst)))
		return inst, nil
	})
	if err != nil {
		var invalid *invalidImplementation
		switch {
		case errors.As(err, &invalid):
			return nil, fmt.Errorf("%w: loader '%s' points to '%s' which does not implement Loader",
				ErrInvalidImplementation, name, invalid.impl)
		case errors.Is(err, ErrNameNotFound):
			return nil, fmt.Errorf("%w: unable to find loader entry '%s'", ErrNameNotFound, name)
		default:
			return nil, err
		}
	}
	return v.(Loader), nil
}

// Names returns the registered loader names in lexicographic order.
func (r *Registry) Names() []string {
	r.mu.Lock()
	names := make([]string, 0, len(r.constructors))
	for k := range r.constructors {
		names = append(names, k)
	}
	r.mu.Unlock()

	sort.Strings(names)
	return names
}

// Cached reports whether a loader has already been constructed under name.
func (r *Registry) Cached(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.instances[normalize(name)]
	return ok
}
