package champ

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetRoundTrip(t *testing.T) {
	t.Parallel()

	s := OfSet[int](HashInt(), EqualComparable[int](), 1, 2, 3, 4, 5)

	var buf bytes.Buffer
	require.NoError(t, WriteSet(&buf, s))

	got, err := ReadSet[int](&buf, HashInt(), EqualComparable[int]())
	require.NoError(t, err)

	assert.True(t, s.Equal(got))
}

func TestMapRoundTrip(t *testing.T) {
	t.Parallel()

	m := NewMap[string, int](HashString(), EqualComparable[string](), EqualComparable[int]())
	m = m.Put("a", 1).Put("b", 2).Put("c", 3)

	var buf bytes.Buffer
	require.NoError(t, WriteMap(&buf, m))

	got, err := ReadMap[string, int](&buf, HashString(), EqualComparable[string](), EqualComparable[int]())
	require.NoError(t, err)

	assert.True(t, m.Equal(got))
}

// TestSequencedMapRoundTrip exercises scenario S6: encoding and decoding a
// sequenced map must recover the same key set, the same values, and the
// same iteration order.
func TestSequencedMapRoundTrip(t *testing.T) {
	t.Parallel()

	m := NewSequencedMap[string, int](HashString(), EqualComparable[string]())
	for i, k := range []string{"z", "a", "m", "b", "q"} {
		m = m.PutLast(k, i)
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSequencedMap(&buf, m))

	got, err := ReadSequencedMap[string, int](&buf, HashString(), EqualComparable[string]())
	require.NoError(t, err)

	assert.Equal(t, m.Size(), got.Size())
	assert.Equal(t, collectKeys(m.Entries()), collectKeys(got.Entries()))

	for _, k := range []string{"z", "a", "m", "b", "q"} {
		wantV, _ := m.Get(k)
		gotV, ok := got.Get(k)
		require.True(t, ok)
		assert.Equal(t, wantV, gotV)
	}
}

func TestSequencedSetRoundTrip(t *testing.T) {
	t.Parallel()

	s := NewSequencedSet[int](HashInt(), EqualComparable[int]())
	for _, v := range []int{5, 3, 1, 4, 2} {
		s = s.AddLast(v)
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSequencedSet(&buf, s))

	got, err := ReadSequencedSet[int](&buf, HashInt(), EqualComparable[int]())
	require.NoError(t, err)

	assert.Equal(t, Collect(s.Iterator()), Collect(got.Iterator()))
}
