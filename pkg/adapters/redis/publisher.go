package redis

import (
	"context"
	"errors"
	"fmt"

	backend "github.com/redis/go-redis/v9"
)

// DefaultChannel is the Pub/Sub channel used when none is configured.
const DefaultChannel = "autocopilot:instructions"

// ErrNoSubscribers is returned by a publisher built WithRequireSubscriber when nobody received the payload.
var ErrNoSubscribers = errors.New("no subscribers received the instructions")

// Publisher implements ports.Publisher using Redis Pub/Sub.
type Publisher struct {
	client            *backend.Client
	channel           string
	requireSubscriber bool
}

// Option configures a Publisher.
type Option func(*Publisher)

// WithChannel overrides the Pub/Sub channel.
func WithChannel(channel string) Option {
	return func(p *Publisher) {
		if channel != "" {
			p.channel = channel
		}
	}
}

// WithRequireSubscriber makes Publish fail when no subscriber was listening.
func WithRequireSubscriber() Option {
	return func(p *Publisher) {
		p.requireSubscriber = true
	}
}

// New creates a Publisher connected to addr.
func New(addr string, opts ...Option) *Publisher {
	return NewFromClient(backend.NewClient(&backend.Options{Addr: addr}), opts...)
}

// NewFromClient wraps an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Publisher {
	p := &Publisher{
		client:  client,
		channel: DefaultChannel,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Channel returns the Pub/Sub channel name.
func (p *Publisher) Channel() string { return p.channel }

// Publish sends payload on the channel.
func (p *Publisher) Publish(ctx context.Context, payload []byte) error {
	receivers, err := p.client.Publish(ctx, p.channel, payload).Result()
	if err != nil {
		return fmt.Errorf("redis publish to %s: %w", p.channel, err)
	}
	if receivers == 0 && p.requireSubscriber {
		return fmt.Errorf("%w: channel %s", ErrNoSubscribers, p.channel)
	}
	return nil
}

// Ping checks connectivity.
func (p *Publisher) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}

// Close releases the underlying client.
func (p *Publisher) Close() error {
	return p.client.Close()
}
