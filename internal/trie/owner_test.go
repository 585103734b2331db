package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOwner_DistinctAllocations(t *testing.T) {
	t.Parallel()

	a := NewOwner()
	b := NewOwner()
	assert.NotSame(t, a, b)
}

func TestOwns(t *testing.T) {
	t.Parallel()

	a := NewOwner()
	b := NewOwner()

	assert.True(t, owns(a, a))
	assert.False(t, owns(a, b))
	assert.False(t, owns(nil, a))
	assert.False(t, owns(a, nil))
	assert.False(t, owns(nil, nil))
}
