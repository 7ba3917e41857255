// Package server runs the mock API server and shuts it down gracefully when
// its context is cancelled.
package server
