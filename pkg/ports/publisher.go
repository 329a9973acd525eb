package ports

import (
	"context"
	"errors"
)

// ErrPublisherClosed is returned when publishing through a closed publisher.
var ErrPublisherClosed = errors.New("publisher closed")

// Publisher hands a serialized instruction tree to the executor side.
// Implementations must be safe for concurrent use.
type Publisher interface {
	// Publish delivers payload. Delivery is at-most-once; the core does not retry.
	Publish(ctx context.Context, payload []byte) error
}
