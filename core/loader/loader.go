package loader

import "context"

// Locator is the view of the service locator handed to loaders and factories.
type Locator interface {
	// Get returns the service registered under name.
	Get(ctx context.Context, name string) (any, error)
}

// Factory builds a service value. It receives the locator so it can pull in
// its own dependencies.
type Factory func(ctx context.Context, l Locator) (any, error)

// Definition describes a service known to the locator.
type Definition struct {
	// Name is the service name, as supplied by the caller.
	Name string
	// Loader is the registry name of the loader responsible for the service.
	Loader string
	// Factory builds the service value.
	Factory Factory
}

// Loader is the capability every registered implementation must provide.
type Loader interface {
	// Load returns the value for the given definition.
	Load(ctx context.Context, def Definition) (any, error)
}

// Constructor creates a loader bound to a locator. The returned value must
// implement Loader; Resolve rejects it otherwise.
type Constructor func(l Locator) any

// Typed adapts a strongly typed constructor, so the Loader bound is checked
// at compile time rather than on Resolve.
func Typed[L Loader](fn func(l Locator) L) Constructor {
	return func(l Locator) any {
		return fn(l)
	}
}
