// Package locator provides the service locator built on top of the loader registry.
//
// Services are declared as loader.Definition values. Each definition names the
// loader that decides its lifetime ("default" builds a fresh value per Get,
// "singleton" shares one value); the loader itself is resolved lazily from
// the registry the first time any service asks for it.
//
// # Usage
//
//	loc := locator.New(loader.NewRegistry(logg), cfg.Locator, logg)
//	_ = loc.Define(loader.Definition{Name: "clock", Loader: "singleton", Factory: newClock})
//	clock, err := loc.Get(ctx, "clock")
package locator
