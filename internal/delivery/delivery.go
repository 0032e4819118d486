// Package delivery defines the contract shared by the process's serving surfaces.
package delivery

import "context"

// Delivery is a long-running serving surface, such as the HTTP API server.
// Serve blocks until the surface stops or the context is cancelled.
type Delivery interface {
	Serve(ctx context.Context) error
}
