// Package server holds the HTTP server configuration.
//
// The actual Fiber application is assembled in the start command; this package
// only carries the settings it needs (listen port and the optional API key used
// by the auth middleware).
package server
