// Package server holds the HTTP server configuration.
//
// The start command owns the fiber application; this package defines the port,
// the optional API key, the shutdown bound and whether /metrics is exposed.
package server
