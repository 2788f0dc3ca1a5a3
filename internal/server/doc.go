// Package server runs the HTTP server that publishes the effective
// configuration and, when a gRPC address is configured, the gRPC server
// exposing its health, including startup and graceful shutdown.
package server
