// Package delivery holds the inbound transports of the service.
package delivery

import "context"

// Delivery is a long-running inbound transport started by the process bootstrap.
// Serve blocks until the transport stops; shutdown is driven by fx lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
