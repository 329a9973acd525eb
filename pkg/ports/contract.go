package ports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ReceiveFunc returns the next payload observed on the far side of a Publisher.
type ReceiveFunc func(ctx context.Context) ([]byte, error)

// RunPublisherContract runs a suite of tests to verify that a Publisher implementation
// adheres to the defined interface contract.
func RunPublisherContract(t *testing.T, pub Publisher, receive ReceiveFunc) {
	t.Run("Publish and Receive", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		payload := []byte(`{"id":0,"name":"Root","type":"group","children":[]}`)
		require.NoError(t, pub.Publish(ctx, payload))

		got, err := receive(ctx)
		require.NoError(t, err)
		assert.Equal(t, payload, got)
	})

	t.Run("Order Preserved", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		first, second := []byte("first"), []byte("second")
		require.NoError(t, pub.Publish(ctx, first))
		require.NoError(t, pub.Publish(ctx, second))

		got, err := receive(ctx)
		require.NoError(t, err)
		assert.Equal(t, first, got)

		got, err = receive(ctx)
		require.NoError(t, err)
		assert.Equal(t, second, got)
	})

	t.Run("Canceled Context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := pub.Publish(ctx, []byte("late"))
		assert.Error(t, err)
	})
}
