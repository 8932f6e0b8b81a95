package server

// Server defines the lifecycle contract of the process-level server.
//
// RunServer blocks until SIGINT, SIGTERM or SIGQUIT is received or a
// transport fails, then shuts every transport down gracefully.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer() error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}

// transport is one listening server (HTTP or gRPC).
type transport interface {
	Listen() error
	RunServer() error
	Shutdown()
	Addr() string
	// Close releases the listener of a transport that never started serving.
	Close() error
}
