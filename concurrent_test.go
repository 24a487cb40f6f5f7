package arrayvec_test

import (
	"testing"

	"github.com/hupe1980/arrayvec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// Concurrent read-only access is part of the contract: a quiescent Vec may be
// observed from many goroutines at once. Run with -race.
func TestVec_ConcurrentReaders(t *testing.T) {
	v := arrayvec.New[int](128)
	for i := range 100 {
		v.Push(i)
	}

	var g errgroup.Group
	for range 8 {
		g.Go(func() error {
			sum := 0
			for i := range v.Len() {
				sum += v.At(i)
			}
			assert.Equal(t, 4950, sum)

			for i, item := range v.Slice() {
				if item != i {
					t.Errorf("slot %d: expected %d, got %d", i, i, item)
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
