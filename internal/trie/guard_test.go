package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuard_PassesThroughWhenUnmodified(t *testing.T) {
	t.Parallel()

	root := buildInts(t, 1, 2, 3)
	modCount := 0

	g := NewGuard[int](NewIterator[int](root), func() int { return modCount })

	var got []int
	for g.HasNext() {
		got = append(got, g.Next())
	}
	assert.Len(t, got, 3)
}

func TestGuard_PanicsOnConcurrentModification(t *testing.T) {
	t.Parallel()

	root := buildInts(t, 1, 2, 3)
	modCount := 0

	g := NewGuard[int](NewIterator[int](root), func() int { return modCount })
	require.True(t, g.HasNext())
	g.Next()

	modCount++

	assert.PanicsWithValue(t, ErrConcurrentModification, func() { g.Next() })
}
