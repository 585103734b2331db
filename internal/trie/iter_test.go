package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIterator_VisitsEveryElement(t *testing.T) {
	t.Parallel()

	values := []int{1, 2, 3, 4, 5, 100, 200, -7}
	root := buildInts(t, values...)

	got := Collect[int](root)
	assert.ElementsMatch(t, values, got)
}

func TestIterator_EmptyTrie(t *testing.T) {
	t.Parallel()

	root := EmptyNode[int](nil)
	it := NewIterator[int](root)
	assert.False(t, it.HasNext())
	assert.PanicsWithValue(t, ErrNoSuchElement, func() { it.Next() })
}

func TestIterator_VisitsCollisionNodeEntries(t *testing.T) {
	t.Parallel()

	const sharedHash = 0x1
	sameHash := func(int) uint32 { return sharedHash }

	var root Node[int] = EmptyNode[int](nil)
	for _, v := range []int{1, 2, 3} {
		var det Details[int]
		root = Update[int](root, nil, v, sharedHash, 0, &det, TakeNew[int], intEq, sameHash)
	}
	require.IsType(t, &CollisionNode[int]{}, deepestNode(root))

	got := Collect[int](root)
	assert.ElementsMatch(t, []int{1, 2, 3}, got)
}

func TestCount_MatchesIterationLength(t *testing.T) {
	t.Parallel()

	root := buildInts(t, 1, 2, 3, 4, 5, 6, 7)
	assert.Equal(t, 7, Count[int](root))
	assert.Equal(t, Count[int](root), len(Collect[int](root)))
}

func TestCount_Empty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, Count[int](EmptyNode[int](nil)))
}
