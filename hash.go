package champ

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// HashFunc computes a 32-bit hash for a stored element or map key. The
// collections never call it more than once per visited node per operation,
// so it need not be cheap to the point of being trivial, but a bad
// distribution degrades every operation to the collision-node path.
type HashFunc[T any] func(v T) uint32

// EqualFunc reports whether two elements/keys denote the same identity.
// Sets and maps built with the == operator's semantics in mind should use a
// func that matches Go's own equality for T, but a custom EqualFunc is
// useful when T carries data the collection should ignore for comparison.
type EqualFunc[T any] func(a, b T) bool

// HashString returns a HashFunc for string keys/elements backed by
// xxhash's 64-bit digest, folded into 32 bits.
func HashString() HashFunc[string] {
	return func(s string) uint32 {
		return fold64(xxhash.Sum64String(s))
	}
}

// HashBytes returns a HashFunc for []byte keys/elements.
func HashBytes() HashFunc[[]byte] {
	return func(b []byte) uint32 {
		return fold64(xxhash.Sum64(b))
	}
}

// HashInt returns a HashFunc for int elements/keys, stable across 32- and
// 64-bit platforms by hashing the fixed-width little-endian encoding rather
// than the machine word directly.
func HashInt() HashFunc[int] {
	return func(n int) uint32 {
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], uint64(n))
		return fold64(xxhash.Sum64(buf[:]))
	}
}

// HashInt64 returns a HashFunc for int64 elements/keys.
func HashInt64() HashFunc[int64] {
	return func(n int64) uint32 {
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], uint64(n))
		return fold64(xxhash.Sum64(buf[:]))
	}
}

// fold64 xors the upper and lower halves of a 64-bit digest into one 32-bit
// value, spreading entropy from both halves rather than truncating.
func fold64(h uint64) uint32 {
	return uint32(h) ^ uint32(h>>32)
}

// EqualComparable returns an EqualFunc for any comparable type using Go's
// built-in == operator.
func EqualComparable[T comparable]() EqualFunc[T] {
	return func(a, b T) bool { return a == b }
}
