package champ

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectKeys(it *Iterator[MapEntry[string, int]]) []string {
	var out []string
	for it.HasNext() {
		e, err := it.Next()
		if err != nil {
			break
		}
		out = append(out, e.Key)
	}
	return out
}

func TestSequencedMap_PutLastPreservesInsertionOrder(t *testing.T) {
	t.Parallel()

	m := NewSequencedMap[string, int](HashString(), EqualComparable[string]())
	for i, k := range []string{"a", "b", "c"} {
		m = m.PutLast(k, i)
	}

	assert.Equal(t, []string{"a", "b", "c"}, collectKeys(m.Entries()))
}

func TestSequencedMap_PutFirstThenPutLast(t *testing.T) {
	t.Parallel()

	m := NewSequencedMap[string, int](HashString(), EqualComparable[string]())
	m = m.PutLast("b", 2)
	m = m.PutFirst("a", 1)
	m = m.PutLast("c", 3)

	assert.Equal(t, []string{"a", "b", "c"}, collectKeys(m.Entries()))
	assert.Equal(t, []string{"c", "b", "a"}, collectKeys(m.ReverseEntries()))
}

func TestSequencedMap_RePutKeepsPositionButReplacesValue(t *testing.T) {
	t.Parallel()

	m := NewSequencedMap[string, int](HashString(), EqualComparable[string]())
	m = m.PutLast("a", 1).PutLast("b", 2).PutLast("c", 3)

	m2 := m.PutLast("a", 100)
	assert.Equal(t, []string{"a", "b", "c"}, collectKeys(m2.Entries()), "position of a unchanged")

	v, ok := m2.Get("a")
	require.True(t, ok)
	assert.Equal(t, 100, v)
	assert.Equal(t, 3, m2.Size())
}

func TestSequencedMap_RemoveThenRePutGoesToEnd(t *testing.T) {
	t.Parallel()

	m := NewSequencedMap[string, int](HashString(), EqualComparable[string]())
	m = m.PutLast("a", 1).PutLast("b", 2).PutLast("c", 3)
	m = m.Remove("a").PutLast("a", 10)

	assert.Equal(t, []string{"b", "c", "a"}, collectKeys(m.Entries()))
}

func TestSequencedMap_ToMutableIndependence(t *testing.T) {
	t.Parallel()

	m := NewSequencedMap[string, int](HashString(), EqualComparable[string]())
	m = m.PutLast("a", 1).PutLast("b", 2)

	mut := m.ToMutable()
	mut.PutLast("c", 3)
	mut.Remove("a")

	assert.Equal(t, []string{"a", "b"}, collectKeys(m.Entries()))

	back := mut.ToImmutable()
	assert.Equal(t, []string{"b", "c"}, collectKeys(back.Entries()))
}

func TestMutableSequencedMap_PutReportsNewVsReplace(t *testing.T) {
	t.Parallel()

	m := NewMutableSequencedMap[string, int](HashString(), EqualComparable[string]())
	assert.True(t, m.PutLast("a", 1))
	assert.False(t, m.PutLast("a", 2))

	v, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestMutableSequencedMap_FailFastIterator(t *testing.T) {
	t.Parallel()

	m := NewMutableSequencedMap[string, int](HashString(), EqualComparable[string]())
	m.PutLast("a", 1)
	m.PutLast("b", 2)

	it := m.Entries()
	require.True(t, it.HasNext())
	_, err := it.Next()
	require.NoError(t, err)

	m.PutLast("c", 3)

	_, err = it.Next()
	require.Error(t, err)
	var cerr *Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, KindConcurrentModification, cerr.Kind)
}

func TestSequencedMap_RenumberingUnderChurn(t *testing.T) {
	t.Parallel()

	m := NewSequencedMap[int, int](HashInt(), EqualComparable[int]())
	var model []int
	for i := 0; i < 500; i++ {
		m = m.PutLast(i, i)
		model = append(model, i)
	}
	for i := 0; i < 500; i += 2 {
		m = m.Remove(i)
		for j, v := range model {
			if v == i {
				model = append(model[:j], model[j+1:]...)
				break
			}
		}
		m = m.PutLast(i, i*10)
		model = append(model, i)
	}

	assert.Equal(t, len(model), m.Size())
	var got []int
	it := m.Entries()
	for it.HasNext() {
		e, err := it.Next()
		require.NoError(t, err)
		got = append(got, e.Key)
	}
	assert.Equal(t, model, got)
}

func TestSequencedMap_GetFirstGetLast(t *testing.T) {
	t.Parallel()

	m := NewSequencedMap[string, int](HashString(), EqualComparable[string]())
	_, err := m.GetFirst()
	assert.Error(t, err)

	m = m.PutLast("a", 1).PutLast("b", 2).PutLast("c", 3)

	first, err := m.GetFirst()
	require.NoError(t, err)
	assert.Equal(t, MapEntry[string, int]{Key: "a", Value: 1}, first)

	last, err := m.GetLast()
	require.NoError(t, err)
	assert.Equal(t, MapEntry[string, int]{Key: "c", Value: 3}, last)
}

func TestSequencedMap_RemoveFirstRemoveLast(t *testing.T) {
	t.Parallel()

	m := NewSequencedMap[string, int](HashString(), EqualComparable[string]())
	_, _, err := m.RemoveFirst()
	assert.Error(t, err)

	m = m.PutLast("a", 1).PutLast("b", 2).PutLast("c", 3)

	m2, e, err := m.RemoveFirst()
	require.NoError(t, err)
	assert.Equal(t, "a", e.Key)
	assert.Equal(t, []string{"b", "c"}, collectKeys(m2.Entries()))
	assert.Equal(t, []string{"a", "b", "c"}, collectKeys(m.Entries()), "original is untouched")

	m3, e, err := m2.RemoveLast()
	require.NoError(t, err)
	assert.Equal(t, "c", e.Key)
	assert.Equal(t, []string{"b"}, collectKeys(m3.Entries()))
}

func TestMutableSequencedMap_RemoveFirstRemoveLast(t *testing.T) {
	t.Parallel()

	m := NewMutableSequencedMap[string, int](HashString(), EqualComparable[string]())
	_, err := m.RemoveFirst()
	assert.Error(t, err)

	m.PutLast("a", 1)
	m.PutLast("b", 2)
	m.PutLast("c", 3)

	e, err := m.RemoveFirst()
	require.NoError(t, err)
	assert.Equal(t, "a", e.Key)

	e, err = m.RemoveLast()
	require.NoError(t, err)
	assert.Equal(t, "c", e.Key)

	assert.Equal(t, []string{"b"}, collectKeys(m.Entries()))
}

func TestSequencedMap_ReversedView(t *testing.T) {
	t.Parallel()

	m := NewSequencedMap[string, int](HashString(), EqualComparable[string]()).PutLast("a", 1).PutLast("b", 2).PutLast("c", 3)
	r := m.Reversed()

	assert.Equal(t, []string{"c", "b", "a"}, collectKeys(r.Entries()))
	assert.Equal(t, []string{"a", "b", "c"}, collectKeys(r.ReverseEntries()))

	first, err := r.GetFirst()
	require.NoError(t, err)
	assert.Equal(t, "c", first.Key)

	r2 := r.PutFirst("z", 26) // reversed PutFirst == base PutLast
	assert.Equal(t, []string{"a", "b", "c", "z"}, collectKeys(r2.Reversed().Entries()))

	r3, e, err := r2.RemoveFirst() // reversed RemoveFirst == base RemoveLast
	require.NoError(t, err)
	assert.Equal(t, "z", e.Key)
	assert.Equal(t, []string{"c", "b", "a"}, collectKeys(r3.Entries()))

	assert.Same(t, m, r.Reversed())
}

func TestMutableSequencedMap_ReversedView_WritesThrough(t *testing.T) {
	t.Parallel()

	m := NewMutableSequencedMap[string, int](HashString(), EqualComparable[string]())
	m.PutLast("a", 1)
	m.PutLast("b", 2)
	r := m.Reversed()

	require.True(t, r.PutFirst("c", 3)) // base PutLast("c", 3)
	assert.Equal(t, []string{"a", "b", "c"}, collectKeys(m.Entries()), "write through the reversed view mutates the base")

	e, err := r.RemoveFirst() // base RemoveLast
	require.NoError(t, err)
	assert.Equal(t, "c", e.Key)
	assert.Equal(t, []string{"a", "b"}, collectKeys(m.Entries()))

	assert.Same(t, m, r.Reversed())
}
