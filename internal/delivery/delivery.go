// Package delivery defines the outer surfaces the application serves.
package delivery

import "context"

// Delivery is a long-running surface started by the composition root.
type Delivery interface {
	// Serve blocks until the surface stops or fails.
	Serve(ctx context.Context) error
}
