// Package server runs the HTTP API together with the background workers,
// including signal handling and graceful shutdown.
package server
