package trie

import (
	"container/heap"
	"math"
)

// BucketEligible reports whether the bucket-sorted iterator (spec 4.E) may
// be used for a view with the given size and sequence range: the range
// must not risk overflowing an int-indexed slice, and must stay within the
// same density bound (4*size) that governs renumbering.
func BucketEligible(size int, first, last int32) bool {
	span := int64(last) - int64(first)
	if span < 0 {
		return false
	}
	if span > int64(math.MaxInt32)/2 {
		return false
	}
	return span <= int64(renumberSpan)*int64(size)
}

// BucketIterator places every entry at index seq-first in a flat array in
// one O(N) pass, then yields in O(1) per Next -- an order of magnitude
// cheaper than the heap fallback when sequence numbers stay dense.
type BucketIterator[D any] struct {
	bucket  []Seq[D]
	present []bool
	idx     int
	step    int
	ok      bool
	cur     Seq[D]
}

// NewBucketIterator builds a bucket iterator over root, in forward or
// reverse sequence order.
func NewBucketIterator[D any](root Node[Seq[D]], first, last int32, reverse bool) *BucketIterator[D] {
	span := int(last - first)
	bucket := make([]Seq[D], span)
	present := make([]bool, span)

	it := NewIterator[Seq[D]](root)
	for it.HasNext() {
		e := it.Next()
		i := int(e.Seq - first)
		bucket[i] = e
		present[i] = true
	}

	b := &BucketIterator[D]{bucket: bucket, present: present}
	if reverse {
		b.idx, b.step = span-1, -1
	} else {
		b.idx, b.step = 0, 1
	}
	b.advance()
	return b
}

func (b *BucketIterator[D]) advance() {
	for b.idx >= 0 && b.idx < len(b.bucket) {
		if b.present[b.idx] {
			b.cur = b.bucket[b.idx]
			b.ok = true
			return
		}
		b.idx += b.step
	}
	b.ok = false
}

func (b *BucketIterator[D]) HasNext() bool { return b.ok }

func (b *BucketIterator[D]) Next() Seq[D] {
	if !b.ok {
		panic(ErrNoSuchElement)
	}
	v := b.cur
	b.idx += b.step
	b.advance()
	return v
}

// seqHeap is a container/heap.Interface over Seq[D], ordered by less.
type seqHeap[D any] struct {
	items []Seq[D]
	less  func(a, b Seq[D]) bool
}

func (h seqHeap[D]) Len() int            { return len(h.items) }
func (h seqHeap[D]) Less(i, j int) bool  { return h.less(h.items[i], h.items[j]) }
func (h seqHeap[D]) Swap(i, j int)       { h.items[i], h.items[j] = h.items[j], h.items[i] }
func (h *seqHeap[D]) Push(x any)         { h.items = append(h.items, x.(Seq[D])) }
func (h *seqHeap[D]) Pop() any {
	old := h.items
	n := len(old)
	v := old[n-1]
	h.items = old[:n-1]
	return v
}

// HeapIterator is the O(log N)-per-Next fallback used when the sequence
// range is too sparse for a bucket array (spec 4.E).
type HeapIterator[D any] struct {
	h *seqHeap[D]
}

// NewHeapIterator builds a bounded priority queue over root's entries,
// ordered by Seq ascending (or descending when reverse is set).
func NewHeapIterator[D any](root Node[Seq[D]], reverse bool) *HeapIterator[D] {
	less := func(a, b Seq[D]) bool { return a.Seq < b.Seq }
	if reverse {
		less = func(a, b Seq[D]) bool { return a.Seq > b.Seq }
	}

	h := &seqHeap[D]{less: less}
	it := NewIterator[Seq[D]](root)
	for it.HasNext() {
		h.items = append(h.items, it.Next())
	}
	heap.Init(h)

	return &HeapIterator[D]{h: h}
}

func (hi *HeapIterator[D]) HasNext() bool { return hi.h.Len() > 0 }

func (hi *HeapIterator[D]) Next() Seq[D] {
	if hi.h.Len() == 0 {
		panic(ErrNoSuchElement)
	}
	return heap.Pop(hi.h).(Seq[D])
}
