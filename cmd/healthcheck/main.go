// Command healthcheck probes the local API and exits 0 when it is healthy.
// It is meant for container HEALTHCHECK instructions, where no curl is
// available.
package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/MKhiriev/go-api-starter/internal/adapter"
	"github.com/MKhiriev/go-api-starter/internal/logger"
)

const probeTimeout = 3 * time.Second

func main() {
	os.Exit(probe(os.Getenv("PORT")))
}

func probe(port string) int {
	if port == "" {
		fmt.Fprintln(os.Stderr, "PORT is not set")
		return 1
	}

	client, err := adapter.NewHTTPServerAdapter(net.JoinHostPort("127.0.0.1", port), probeTimeout, logger.Nop())
	if err != nil {
		fmt.Fprintf(os.Stderr, "health check failed: %v\n", err)
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	if err = client.Health(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "health check failed: %v\n", err)
		return 1
	}

	return 0
}
