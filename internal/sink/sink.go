// Package sink holds the consumers the echo command drains a bridge into.
package sink

import "context"

// Sink receives lines taken off a bridge, one at a time and in order.
type Sink interface {
	Write(ctx context.Context, line string) error
	Close() error
}
