package champ

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "no such element", KindNoSuchElement.String())
	assert.Equal(t, "concurrent modification", KindConcurrentModification.String())
	assert.Equal(t, "illegal state", KindIllegalState.String())
	assert.Equal(t, "illegal argument", KindIllegalArgument.String())
	assert.Equal(t, "unsupported operation", KindUnsupportedOperation.String())
}

func TestError_UnwrapsToSentinel(t *testing.T) {
	t.Parallel()

	err := newError("Op", KindNoSuchElement, ErrNoSuchElement)
	assert.True(t, errors.Is(err, ErrNoSuchElement))
	assert.False(t, errors.Is(err, ErrIllegalState))
}

func TestError_MessageIncludesOp(t *testing.T) {
	t.Parallel()

	err := newError("SequencedSet.GetFirst", KindNoSuchElement, ErrNoSuchElement)
	assert.Contains(t, err.Error(), "SequencedSet.GetFirst")
	assert.Contains(t, err.Error(), "no such element")
}

func TestAsChampError_WrapsKnownSentinels(t *testing.T) {
	t.Parallel()

	got := func() (err error) {
		defer func() { err = asChampError("Test", recover()) }()
		panic(ErrConcurrentModification)
	}()

	var cerr *Error
	a := assert.New(t)
	a.ErrorAs(got, &cerr)
	a.Equal(KindConcurrentModification, cerr.Kind)
}

func TestAsChampError_RepanicsOnUnknown(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, "boom", func() {
		func() {
			defer func() { _ = asChampError("Test", recover()) }()
			panic("boom")
		}()
	})
}
