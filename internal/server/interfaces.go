package server

import "context"

// Server defines the lifecycle contract of the transport server.
type Server interface {
	// Listen binds the listen address. Run calls it when it has not been
	// called yet.
	Listen() error

	// Addr returns the bound address, or the configured one before Listen.
	Addr() string

	// Run serves requests until ctx is done, then shuts down gracefully.
	Run(ctx context.Context) error
}
