// Package delivery defines the contract every transport entry point implements.
package delivery

import "context"

// Delivery is a serving surface (HTTP today, workers later) managed by the
// application container.
type Delivery interface {
	Serve(ctx context.Context) error
}
