package server

import "context"

// Server defines the lifecycle contract for transport servers managed by
// this package.
type Server interface {
	// RunServer serves requests until ctx is cancelled, then shuts down.
	RunServer(ctx context.Context) error

	// Addr reports the bound HTTP listener address.
	Addr() string

	// GRPCAddr reports the bound gRPC listener address, or "" when the
	// gRPC server is disabled.
	GRPCAddr() string

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown(ctx context.Context) error
}
