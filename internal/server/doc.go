// Package server runs the gateway's HTTP server.
//
// It owns the [net/http.Server] lifecycle: timeouts, listening and graceful
// shutdown bounded by the configured shutdown timeout.
package server
