package server

import "context"

// Server defines the lifecycle contract of the gateway's HTTP server.
type Server interface {
	// Run serves requests until ctx is done, then shuts down gracefully.
	// It returns early with an error if the listener cannot be opened.
	Run(ctx context.Context) error
}
