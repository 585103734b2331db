package champ

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap_PutGetRemove(t *testing.T) {
	t.Parallel()

	m := NewMap[string, int](HashString(), EqualComparable[string](), EqualComparable[int]())
	assert.True(t, m.IsEmpty())

	m2 := m.Put("a", 1)
	m3 := m2.Put("b", 2)

	assert.Equal(t, 0, m.Size())
	assert.Equal(t, 2, m3.Size())

	v, ok := m3.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = m3.Get("z")
	assert.False(t, ok)

	m4 := m3.Remove("a")
	assert.Equal(t, 1, m4.Size())
	assert.False(t, m4.ContainsKey("a"))
	assert.True(t, m3.ContainsKey("a"), "original map must be unaffected")
}

func TestMap_PutReplacesExistingKey(t *testing.T) {
	t.Parallel()

	m := NewMap[string, int](HashString(), EqualComparable[string](), EqualComparable[int]())
	m = m.Put("a", 1)
	m = m.Put("a", 2)

	assert.Equal(t, 1, m.Size())
	v, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestMap_RemoveIsNoOpWhenAbsent(t *testing.T) {
	t.Parallel()

	m := NewMap[string, int](HashString(), EqualComparable[string](), EqualComparable[int]()).Put("a", 1)
	m2 := m.Remove("nope")
	assert.Same(t, m, m2)
}

func TestMap_Equal(t *testing.T) {
	t.Parallel()

	a := NewMap[string, int](HashString(), EqualComparable[string](), EqualComparable[int]()).Put("a", 1).Put("b", 2)
	b := NewMap[string, int](HashString(), EqualComparable[string](), EqualComparable[int]()).Put("b", 2).Put("a", 1)
	c := NewMap[string, int](HashString(), EqualComparable[string](), EqualComparable[int]()).Put("a", 1).Put("b", 3)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestMap_EntriesMatchSize(t *testing.T) {
	t.Parallel()

	m := NewMap[string, int](HashString(), EqualComparable[string](), EqualComparable[int]())
	for i, k := range []string{"a", "b", "c", "d"} {
		m = m.Put(k, i)
	}

	count := 0
	it := m.Entries()
	for it.HasNext() {
		_, err := it.Next()
		require.NoError(t, err)
		count++
	}
	assert.Equal(t, m.Size(), count)
}

func TestMap_ToMutableIndependence(t *testing.T) {
	t.Parallel()

	m := NewMap[string, int](HashString(), EqualComparable[string](), EqualComparable[int]()).Put("a", 1).Put("b", 2)
	mut := m.ToMutable()
	mut.Put("c", 3)
	mut.Remove("a")

	assert.True(t, m.ContainsKey("a"))
	assert.False(t, m.ContainsKey("c"))

	back := mut.ToImmutable()
	assert.True(t, back.ContainsKey("c"))
	assert.False(t, back.ContainsKey("a"))
}

func TestMutableMap_PutReportsNewVsReplace(t *testing.T) {
	t.Parallel()

	m := NewMutableMap[string, int](HashString(), EqualComparable[string](), EqualComparable[int]())
	assert.True(t, m.Put("a", 1), "first put of a new key reports true")
	assert.False(t, m.Put("a", 2), "re-putting an existing key reports false")

	v, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, m.Size())
}

func TestMutableMap_FailFastIterator(t *testing.T) {
	t.Parallel()

	m := NewMutableMap[string, int](HashString(), EqualComparable[string](), EqualComparable[int]())
	m.Put("a", 1)
	m.Put("b", 2)

	it := m.Entries()
	require.True(t, it.HasNext())
	_, err := it.Next()
	require.NoError(t, err)

	m.Put("c", 3)

	_, err = it.Next()
	require.Error(t, err)
	var cerr *Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, KindConcurrentModification, cerr.Kind)
}

func TestMap_LargeCorpusProperty(t *testing.T) {
	t.Parallel()

	const n = 10000
	m := NewMap[int, int](HashInt(), EqualComparable[int](), EqualComparable[int]())
	for i := 0; i < n; i++ {
		m = m.Put(i, i*i)
	}
	assert.Equal(t, n, m.Size())
	for i := 0; i < n; i++ {
		v, ok := m.Get(i)
		require.True(t, ok)
		assert.Equal(t, i*i, v)
	}
}
