package domain

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bootRoot is built during package initialization, before any test runs, and
// is the only package-level object in this package.
var bootRoot = NewGroup("Root")

func TestIDs_FirstIsZero(t *testing.T) {
	assert.Equal(t, int64(0), bootRoot.ID())

	a := NewInstruction()
	b := NewInstruction()
	assert.NotEqual(t, bootRoot.ID(), a.ID())
	assert.Greater(t, a.ID(), bootRoot.ID())
	assert.Equal(t, a.ID()+1, b.ID())
}

func TestIDs_IncreaseAcrossVariants(t *testing.T) {
	a := NewInstruction()
	b := NewGroup("")
	c := NewNamedInstruction("c")

	assert.Equal(t, a.ID()+1, b.ID())
	assert.Equal(t, b.ID()+1, c.ID())
	assert.Greater(t, a.ID(), int64(0))
}

func TestIDs_UniqueUnderConcurrentConstruction(t *testing.T) {
	const workers = 16
	const perWorker = 500

	ids := make(chan int64, workers*perWorker)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				if (w+i)%2 == 0 {
					ids <- NewInstruction(Log("x")).ID()
				} else {
					ids <- NewGroup("g").ID()
				}
			}
		}(w)
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]struct{}, workers*perWorker)
	var min, max int64 = -1, -1
	for id := range ids {
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %d", id)
		seen[id] = struct{}{}
		if min < 0 || id < min {
			min = id
		}
		if id > max {
			max = id
		}
	}

	// Nothing else constructs objects while this test runs, so the block is contiguous.
	assert.Len(t, seen, workers*perWorker)
	assert.Equal(t, int64(workers*perWorker-1), max-min)
}
