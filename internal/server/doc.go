// Package server runs the HTTP transport of the lost-and-found service.
//
// It owns the listener lifecycle: startup, signal handling and graceful
// shutdown with a bounded drain period.
package server
