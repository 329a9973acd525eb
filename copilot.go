package autocopilot

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/benfrussell/AutoCopilot/internal/logging"
	"github.com/benfrussell/AutoCopilot/pkg/codec"
	"github.com/benfrussell/AutoCopilot/pkg/domain"
	"github.com/benfrussell/AutoCopilot/pkg/observability"
	"github.com/benfrussell/AutoCopilot/pkg/ports"
)

// RootName is the name of the empty group a Copilot starts with.
const RootName = "Root"

// ErrNoPublisher is returned by Publish when no publisher was configured.
var ErrNoPublisher = errors.New("no publisher configured")

// Copilot owns the current root instruction group and serializes it for the
// external executor.
//
// The Copilot itself is safe for concurrent use. The tree it holds is not
// synchronized: once handed over through SetInstructions it should be treated
// as read-only.
type Copilot struct {
	mu        sync.RWMutex
	root      *domain.Group
	logger    *slog.Logger
	metrics   *observability.Metrics
	publisher ports.Publisher
	indent    bool
}

// Option defines a functional option for configuring the Copilot.
type Option func(*Copilot)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Copilot) {
		c.logger = logger
	}
}

// WithMetrics records serializations, replacements and publications.
func WithMetrics(m *observability.Metrics) Option {
	return func(c *Copilot) {
		c.metrics = m
	}
}

// WithPublisher sets the transport used by Publish.
func WithPublisher(p ports.Publisher) Option {
	return func(c *Copilot) {
		c.publisher = p
	}
}

// WithRoot starts the Copilot with root instead of an empty "Root" group.
func WithRoot(root *domain.Group) Option {
	return func(c *Copilot) {
		if root != nil {
			c.root = root
		}
	}
}

// WithIndent pretty-prints JSON output.
func WithIndent(indent bool) Option {
	return func(c *Copilot) {
		c.indent = indent
	}
}

// New creates a Copilot holding an empty group named "Root".
func New(opts ...Option) *Copilot {
	c := &Copilot{}
	for _, opt := range opts {
		opt(c)
	}
	if c.root == nil {
		c.root = domain.NewGroup(RootName)
	}
	if c.logger == nil {
		c.logger = logging.NewNop()
	}
	c.observeTree(c.root)
	return c
}

// Instructions returns the current root group.
func (c *Copilot) Instructions() *domain.Group {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.root
}

// SetInstructions replaces the root group wholesale. A nil root resets the
// Copilot to a fresh empty "Root" group.
func (c *Copilot) SetInstructions(root *domain.Group) {
	if root == nil {
		root = domain.NewGroup(RootName)
	}

	c.mu.Lock()
	old := c.root
	c.root = root
	c.mu.Unlock()

	c.logger.Debug("instructions replaced",
		"old_root", old.ID(),
		"new_root", root.ID(),
		"nodes", domain.Count(root),
	)
	if c.metrics != nil {
		c.metrics.Replacements.Inc()
	}
	c.observeTree(root)
}

// SerializeInstructions returns the JSON form of the current tree.
func (c *Copilot) SerializeInstructions() (string, error) {
	out, err := c.marshal(codec.FormatJSON)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Encode writes the current tree to w in the given format.
func (c *Copilot) Encode(w io.Writer, format codec.Format) error {
	out, err := c.marshal(format)
	if err != nil {
		return err
	}
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("write instructions: %w", err)
	}
	return nil
}

// Publish serializes the current tree as JSON and hands it to the publisher.
func (c *Copilot) Publish(ctx context.Context) error {
	if c.publisher == nil {
		return ErrNoPublisher
	}

	out, err := c.marshal(codec.FormatJSON)
	if err != nil {
		return err
	}

	if err := c.publisher.Publish(ctx, out); err != nil {
		c.logger.Error("publish failed", "error", err)
		c.countPublish(observability.ResultError)
		return fmt.Errorf("publish instructions: %w", err)
	}

	c.logger.Info("instructions published", "bytes", len(out))
	c.countPublish(observability.ResultOK)
	return nil
}

func (c *Copilot) marshal(format codec.Format) ([]byte, error) {
	root := c.Instructions()

	out, err := codec.Marshal(root, format, codec.Options{Indent: c.indent})
	if err != nil {
		c.logger.Error("serialization failed", "format", format, "error", err)
		return nil, err
	}

	c.logger.Debug("instructions serialized", "format", format, "root", root.ID(), "bytes", len(out))
	if c.metrics != nil {
		c.metrics.Serializations.WithLabelValues(string(format)).Inc()
	}
	return out, nil
}

func (c *Copilot) observeTree(root *domain.Group) {
	if c.metrics != nil {
		c.metrics.TreeNodes.Set(float64(domain.Count(root)))
	}
}

func (c *Copilot) countPublish(result string) {
	if c.metrics != nil {
		c.metrics.Publishes.WithLabelValues(result).Inc()
	}
}
