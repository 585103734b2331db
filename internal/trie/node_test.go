package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEquivalent_SameContentDifferentBuildOrder(t *testing.T) {
	t.Parallel()

	a := buildInts(t, 1, 2, 3, 4, 5)
	b := buildInts(t, 5, 4, 3, 2, 1)

	assert.True(t, Equivalent[int](a, b, intEq))
}

func TestEquivalent_DifferentContent(t *testing.T) {
	t.Parallel()

	a := buildInts(t, 1, 2, 3)
	b := buildInts(t, 1, 2, 4)

	assert.False(t, Equivalent[int](a, b, intEq))
}

func TestEquivalent_CollisionNodesAsMultisets(t *testing.T) {
	t.Parallel()

	const sharedHash = 0xDEADBEEF
	sameHash := func(int) uint32 { return sharedHash }

	build := func(values ...int) Node[int] {
		var root Node[int] = EmptyNode[int](nil)
		for _, v := range values {
			var det Details[int]
			root = Update[int](root, nil, v, sharedHash, 0, &det, TakeNew[int], intEq, sameHash)
		}
		return root
	}

	a := build(1, 2, 3)
	b := build(3, 1, 2)
	c := build(1, 2, 4)

	require.IsType(t, &CollisionNode[int]{}, deepestNode(a))
	assert.True(t, Equivalent[int](a, b, intEq))
	assert.False(t, Equivalent[int](a, c, intEq))
}

func TestCheckInvariants_DetectsOverlappingBitmaps(t *testing.T) {
	t.Parallel()

	bad := &BitmapIndexedNode[int]{dataMap: 0b1, nodeMap: 0b1, content: []any{1, EmptyNode[int](nil)}}
	assert.Error(t, CheckInvariants[int](bad, true, intHash))
}

func TestCheckInvariants_DetectsUninlinedSingleEntry(t *testing.T) {
	t.Parallel()

	single := newSingleDataNode[int](1, 42)
	assert.NoError(t, CheckInvariants[int](single, true, intHash))
	assert.Error(t, CheckInvariants[int](single, false, intHash))
}

func TestCheckInvariants_AllowsSingleChildChain(t *testing.T) {
	t.Parallel()

	// Two values sharing their low 5 bits force a one-child wrapper node
	// at shift 0; that shape must not be flagged.
	root := buildInts(t, 0x00000000, 0x00000020)
	require.NoError(t, CheckInvariants[int](root, true, intHash))

	bn := root.(*BitmapIndexedNode[int])
	require.Equal(t, 0, bn.dataArity())
	require.Equal(t, 1, bn.nodeArity())

	child := bn.getNode(0)
	assert.NoError(t, CheckInvariants[int](child, false, intHash))
}

func TestHasDataArityOne(t *testing.T) {
	t.Parallel()

	single := newSingleDataNode[int](1, 7)
	assert.True(t, single.hasDataArityOne())

	multi := buildInts(t, 1, 2, 3)
	bn := multi.(*BitmapIndexedNode[int])
	assert.False(t, bn.hasDataArityOne())
}
