// Package server wires and runs the development endpoint's transports.
//
// It provides orchestration for the HTTP server and background workers,
// including startup, signal handling, and graceful shutdown.
package server
