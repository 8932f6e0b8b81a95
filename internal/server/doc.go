// Package server runs the HTTP API, the optional gRPC health server and the
// background workers as one unit.
//
// Every transport binds its port before any of them serves, so a taken port
// fails startup. SIGINT, SIGTERM and SIGQUIT trigger a graceful shutdown
// bounded by the configured shutdown timeout.
package server
