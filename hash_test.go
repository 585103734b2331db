package champ

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashString_Deterministic(t *testing.T) {
	t.Parallel()

	hf := HashString()
	assert.Equal(t, hf("hello"), hf("hello"))
	assert.NotEqual(t, hf("hello"), hf("world"))
}

func TestHashBytes_Deterministic(t *testing.T) {
	t.Parallel()

	hf := HashBytes()
	assert.Equal(t, hf([]byte("abc")), hf([]byte("abc")))
	assert.NotEqual(t, hf([]byte("abc")), hf([]byte("xyz")))
}

func TestHashInt_Deterministic(t *testing.T) {
	t.Parallel()

	hf := HashInt()
	assert.Equal(t, hf(42), hf(42))
	assert.NotEqual(t, hf(42), hf(43))
	assert.NotEqual(t, hf(-1), hf(1))
}

func TestHashInt64_Deterministic(t *testing.T) {
	t.Parallel()

	hf := HashInt64()
	assert.Equal(t, hf(int64(1)<<40), hf(int64(1)<<40))
	assert.NotEqual(t, hf(int64(1)), hf(int64(2)))
}

func TestEqualComparable(t *testing.T) {
	t.Parallel()

	eq := EqualComparable[int]()
	assert.True(t, eq(5, 5))
	assert.False(t, eq(5, 6))

	seq := EqualComparable[string]()
	assert.True(t, seq("a", "a"))
	assert.False(t, seq("a", "b"))
}
