// Package inspect exposes a read-only view of the loader registry and the
// service locator over HTTP.
//
// # HTTP Endpoints
//
//   - GET /loaders : Lists registered loaders and whether each is already constructed.
//   - GET /loaders/:name : Resolves a loader, constructing and caching it on first use.
//   - GET /services : Lists service definitions with their loader.
//   - GET /services/:name : Gets a service through its loader and describes the value.
//
// Nothing here registers, overrides or removes loaders; mutation stays an
// in-process concern.
package inspect
