// Package server holds the HTTP server configuration.
//
// The main entry point handles the actual server startup; this package only
// defines the configuration structure for server settings such as the listen
// port, the API key protecting the endpoints, and the request body limit that
// caps upload sizes at the transport layer.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server
// settings and by cmd/start.go when constructing the Fiber app.
package server
