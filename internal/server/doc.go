// Package server runs the daemon's management server.
//
// It binds the management API to the management URI from the loaded
// settings — a TCP address or a unix domain socket depending on the
// URI scheme — and handles startup, signal handling, and graceful
// shutdown.
package server
