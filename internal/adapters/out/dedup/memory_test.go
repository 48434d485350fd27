package dedup_test

import (
	"fmt"
	"sync"
	"testing"

	"ordertrack/internal/adapters/out/dedup"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySet_AddAndContains(t *testing.T) {
	ctx := t.Context()
	set := dedup.NewMemorySet(10)

	seen, err := set.Contains(ctx, "corr-1")
	require.NoError(t, err)
	assert.False(t, seen)

	require.NoError(t, set.Add(ctx, "corr-1"))

	seen, err = set.Contains(ctx, "corr-1")
	require.NoError(t, err)
	assert.True(t, seen)
}

func TestMemorySet_AddTwice_IsNoOp(t *testing.T) {
	ctx := t.Context()
	set := dedup.NewMemorySet(10)

	require.NoError(t, set.Add(ctx, "corr-1"))
	require.NoError(t, set.Add(ctx, "corr-1"))

	assert.Equal(t, 1, set.Len())
}

func TestMemorySet_EvictsOldestAtCapacity(t *testing.T) {
	ctx := t.Context()
	set := dedup.NewMemorySet(3)

	for i := 1; i <= 4; i++ {
		require.NoError(t, set.Add(ctx, fmt.Sprintf("corr-%d", i)))
	}

	assert.Equal(t, 3, set.Len())

	seen, err := set.Contains(ctx, "corr-1")
	require.NoError(t, err)
	assert.False(t, seen, "oldest entry should have been evicted")

	for i := 2; i <= 4; i++ {
		seen, err = set.Contains(ctx, fmt.Sprintf("corr-%d", i))
		require.NoError(t, err)
		assert.True(t, seen)
	}
}

func TestMemorySet_ConcurrentAccess(t *testing.T) {
	ctx := t.Context()
	set := dedup.NewMemorySet(100)

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := fmt.Sprintf("corr-%d", n)
			_ = set.Add(ctx, id)
			_, _ = set.Contains(ctx, id)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, set.Len())
}
