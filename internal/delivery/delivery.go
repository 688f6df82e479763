// Package delivery holds the transports that expose the use cases.
package delivery

import "context"

// Delivery is a transport started by the application after all dependencies are built.
type Delivery interface {
	Serve(ctx context.Context) error
}
