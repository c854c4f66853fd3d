// Package delivery defines the contract shared by all transport surfaces.
package delivery

import "context"

// Delivery is a long-running transport surface (HTTP server, worker,
// scheduler). Serve blocks until the surface stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
