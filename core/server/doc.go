// Package server holds the HTTP server configuration.
//
// The inspection API started by the "start" command listens on the
// configured port and, when an API key is set, requires it on every request.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server settings
// and by the start command to bind the listener.
package server
