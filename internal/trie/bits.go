package trie

import (
	popcount "github.com/hideo55/go-popcount"
)

const (
	// HashBits is the width of the hash consumed by the trie.
	HashBits = 32
	// BitPartitionSize is the number of hash bits consumed per level (B in
	// the spec), fixing the fan-out at 32 children per node.
	BitPartitionSize = 5
	// MaxDepth is ceil(HashBits/BitPartitionSize): the number of
	// BitmapIndexedNode levels (shifts 0 through 30) a chain can have before
	// a CollisionNode is required.
	MaxDepth = 7

	partitionMask uint32 = (1 << BitPartitionSize) - 1
)

// mask extracts the B-bit field of hash selected at the given shift.
func mask(hash uint32, shift uint) uint32 {
	return (hash >> shift) & partitionMask
}

// bitpos turns a masked hash into its bit position within a 32-bit bitmap.
func bitpos(m uint32) uint32 {
	return uint32(1) << m
}

// bitCount is popcount, delegated to the same library the teacher's veb/set
// package uses for its own bitmap-indexed children.
func bitCount(x uint32) int {
	return int(popcount.Count(uint64(x)))
}

// lowestBit isolates the least significant set bit of x (0 if x is 0).
func lowestBit(x uint32) uint32 {
	return x & (-x)
}

// bitsAscending returns every set bit of m, as individual bit masks, from
// least to most significant.
func bitsAscending(m uint32) []uint32 {
	out := make([]uint32, 0, bitCount(m))
	for m != 0 {
		b := lowestBit(m)
		out = append(out, b)
		m &^= b
	}
	return out
}
