package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/benfrussell/AutoCopilot/pkg/ports"
)

// DefaultBuffer is the number of undelivered payloads Next can queue.
const DefaultBuffer = 64

// Publisher implements ports.Publisher in memory.
// Safe for concurrent use.
type Publisher struct {
	mu      sync.RWMutex
	history [][]byte
	queue   chan []byte
	closed  bool
}

// NewPublisher creates a new in-memory publisher.
func NewPublisher() *Publisher {
	return &Publisher{
		queue: make(chan []byte, DefaultBuffer),
	}
}

// Publish records a copy of payload. When the queue is full the payload is
// kept in History but not queued for Next.
func (p *Publisher) Publish(ctx context.Context, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	copied := slices.Clone(payload)

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ports.ErrPublisherClosed
	}
	p.history = append(p.history, copied)

	select {
	case p.queue <- copied:
	default:
	}
	return nil
}

// Next blocks until a payload is queued or ctx is done.
func (p *Publisher) Next(ctx context.Context) ([]byte, error) {
	select {
	case payload, ok := <-p.queue:
		if !ok {
			return nil, ports.ErrPublisherClosed
		}
		return slices.Clone(payload), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// History returns copies of every payload published so far, oldest first.
func (p *Publisher) History() [][]byte {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([][]byte, len(p.history))
	for i, b := range p.history {
		out[i] = slices.Clone(b)
	}
	return out
}

// Close stops accepting payloads. Queued payloads remain readable through Next.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.closed {
		p.closed = true
		close(p.queue)
	}
	return nil
}
