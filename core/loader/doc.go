// Package loader provides the loader registry used by the service locator.
//
// A loader decides how a service definition turns into a value: the
// built-in "default" loader builds a fresh value on every request, while the
// "singleton" loader builds once and hands out the same value afterwards.
//
// # Registry
//
// The Registry maps case-insensitive names to loader constructors. It
// handles:
//   - Registration of constructors via Register() and Override()
//   - Removal of registrations via Unregister()
//   - Lazy construction and caching of loaders via Resolve()
//
// A loader is constructed at most once per name for the lifetime of the
// registry, even under concurrent first access. Cached loaders are never
// evicted: Override and Unregister only change the registration table, so a
// name that was already resolved keeps returning its original loader.
//
// # Usage
//
//	reg := loader.NewRegistry(logg)
//	if err := reg.Register("pooled", newPooledLoader); err != nil {
//	    return err
//	}
//	l, err := reg.Resolve("Pooled", locator)
package loader
