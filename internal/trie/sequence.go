package trie

import (
	"math"
	"sort"
)

// Seq wraps a stored datum with a 32-bit insertion-order tag, as used by
// every sequenced set/map variant (spec 4.D). Equality and hashing project
// away Seq -- the spec's open question about two parallel "sequenced
// element" hierarchies is resolved here by giving both the sequenced set
// and the sequenced map exactly one wrapper type.
type Seq[D any] struct {
	Data D
	Seq  int32
}

// SeqEqual lifts an EqualFn over D into one over Seq[D] that ignores Seq.
func SeqEqual[D any](eq EqualFn[D]) EqualFn[Seq[D]] {
	return func(a, b Seq[D]) bool { return eq(a.Data, b.Data) }
}

// SeqHash lifts a HashFn over D into one over Seq[D] that ignores Seq.
func SeqHash[D any](hf HashFn[D]) HashFn[Seq[D]] {
	return func(s Seq[D]) uint32 { return hf(s.Data) }
}

// renumberSpan is C in spec 4.D's "last - first > C * size" condition.
const renumberSpan = 4

// MustRenumber implements the single mustRenumber(size, first, last)
// predicate the spec's design note asks for: renumber when the live span
// has grown disproportionate to size, or either counter is within one step
// of saturating.
func MustRenumber(size int, first, last int32) bool {
	span := int64(last) - int64(first)
	if span > int64(renumberSpan)*int64(size) {
		return true
	}
	if first <= math.MinInt32+1 {
		return true
	}
	if last >= math.MaxInt32-1 {
		return true
	}
	return false
}

// Renumber rebuilds root from scratch with compacted sequence numbers
// 0..size-1, ordered by each entry's current Seq (spec 4.D steps 1-3). It
// returns the new root together with the reset first/last counters
// (-1 and size, step 4).
func Renumber[D any](root Node[Seq[D]], owner *Owner, eq EqualFn[D], hf HashFn[D]) (Node[Seq[D]], int32, int32) {
	items := Collect[Seq[D]](root)
	sort.Slice(items, func(i, j int) bool { return items[i].Seq < items[j].Seq })

	seqEq := SeqEqual(eq)
	seqHash := SeqHash(hf)

	var newRoot Node[Seq[D]] = EmptyNode[Seq[D]](owner)
	var det Details[Seq[D]]
	for i := range items {
		items[i].Seq = int32(i)
		det.Reset()
		h := seqHash(items[i])
		newRoot = Update(newRoot, owner, items[i], h, 0, &det, TakeNew[Seq[D]], seqEq, seqHash)
	}

	return newRoot, -1, int32(len(items))
}
