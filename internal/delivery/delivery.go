// Package delivery defines the long running entry points of a binary.
package delivery

import "context"

// Delivery is a server or loop started by the binary and stopped through the fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
