package champ

import (
	"github.com/champ-go/champ/internal/trie"
)

// SequencedSet is a persistent hash set whose iteration order is insertion
// order (spec's "sequenced variant" of component G). Every write returns a
// new SequencedSet.
type SequencedSet[T any] struct {
	root  trie.Node[trie.Seq[T]]
	size  int
	first int32
	last  int32
	hash  trie.HashFn[T]
	eq    trie.EqualFn[T]
}

// NewSequencedSet returns an empty immutable sequenced set.
func NewSequencedSet[T any](hash HashFunc[T], eq EqualFunc[T]) *SequencedSet[T] {
	return &SequencedSet[T]{
		root:  trie.EmptyNode[trie.Seq[T]](nil),
		first: -1,
		last:  0,
		hash:  trie.HashFn[T](hash),
		eq:    trie.EqualFn[T](eq),
	}
}

// Size returns the number of elements.
func (s *SequencedSet[T]) Size() int { return s.size }

// IsEmpty reports whether the set has no elements.
func (s *SequencedSet[T]) IsEmpty() bool { return s.size == 0 }

// Contains reports whether elem is a member.
func (s *SequencedSet[T]) Contains(elem T) bool {
	seqEq := trie.SeqEqual(s.eq)
	_, ok := trie.Find(s.root, trie.Seq[T]{Data: elem}, s.hash(elem), 0, seqEq)
	return ok
}

// AddLast returns a set with elem appended at the end of the iteration
// order. If elem is already present, its existing position is kept and
// AddLast returns the receiver unchanged.
func (s *SequencedSet[T]) AddLast(elem T) *SequencedSet[T] {
	return s.insert(elem, s.last, s.last+1, s.first)
}

// AddFirst returns a set with elem inserted at the front of the iteration
// order. If elem is already present, its existing position is kept.
func (s *SequencedSet[T]) AddFirst(elem T) *SequencedSet[T] {
	return s.insert(elem, s.first, s.last, s.first-1)
}

// Add is an alias for AddLast, the default insertion policy (spec 4.F).
func (s *SequencedSet[T]) Add(elem T) *SequencedSet[T] { return s.AddLast(elem) }

func (s *SequencedSet[T]) insert(elem T, seq, newLast, newFirst int32) *SequencedSet[T] {
	seqEq := trie.SeqEqual(s.eq)
	seqHash := trie.SeqHash(s.hash)

	var det trie.Details[trie.Seq[T]]
	data := trie.Seq[T]{Data: elem, Seq: seq}
	newRoot := trie.Update(s.root, nil, data, s.hash(elem), 0, &det, trie.KeepOld[trie.Seq[T]], seqEq, seqHash)
	if !det.Modified {
		return s
	}

	out := &SequencedSet[T]{
		root: newRoot, size: s.size + 1,
		first: s.first, last: s.last,
		hash: s.hash, eq: s.eq,
	}
	if newLast > out.last {
		out.last = newLast
	}
	if newFirst < out.first {
		out.first = newFirst
	}
	return out.maybeRenumber(nil)
}

// Remove returns a set without elem. If elem was absent, Remove returns the
// receiver unchanged.
func (s *SequencedSet[T]) Remove(elem T) *SequencedSet[T] {
	seqEq := trie.SeqEqual(s.eq)
	seqHash := trie.SeqHash(s.hash)

	var det trie.Details[trie.Seq[T]]
	newRoot := trie.Remove(s.root, nil, trie.Seq[T]{Data: elem}, s.hash(elem), 0, &det, seqEq, seqHash)
	if !det.Modified {
		return s
	}
	out := &SequencedSet[T]{root: newRoot, size: s.size - 1, first: s.first, last: s.last, hash: s.hash, eq: s.eq}
	return out.maybeRenumber(nil)
}

func (s *SequencedSet[T]) maybeRenumber(owner *trie.Owner) *SequencedSet[T] {
	if !trie.MustRenumber(s.size, s.first, s.last) {
		return s
	}
	newRoot, first, last := trie.Renumber[T](s.root, owner, s.eq, s.hash)
	s.root, s.first, s.last = newRoot, first, last
	return s
}

// Clear returns the canonical empty sequenced set sharing this set's
// hash/equality functions.
func (s *SequencedSet[T]) Clear() *SequencedSet[T] {
	if s.IsEmpty() {
		return s
	}
	return NewSequencedSet[T](HashFunc[T](s.hash), EqualFunc[T](s.eq))
}

// GetFirst returns the element at the front of the iteration order.
func (s *SequencedSet[T]) GetFirst() (T, error) {
	var zero T
	if s.IsEmpty() {
		return zero, newError("SequencedSet.GetFirst", KindNoSuchElement, trie.ErrNoSuchElement)
	}
	it := s.Iterator()
	v, err := it.Next()
	return v, err
}

// GetLast returns the element at the back of the iteration order.
func (s *SequencedSet[T]) GetLast() (T, error) {
	var zero T
	if s.IsEmpty() {
		return zero, newError("SequencedSet.GetLast", KindNoSuchElement, trie.ErrNoSuchElement)
	}
	it := s.ReverseIterator()
	v, err := it.Next()
	return v, err
}

// RemoveFirst returns a set without its first element in iteration order,
// along with that element. It reports ErrNoSuchElement if the set is empty.
func (s *SequencedSet[T]) RemoveFirst() (*SequencedSet[T], T, error) {
	v, err := s.GetFirst()
	if err != nil {
		return s, v, newError("SequencedSet.RemoveFirst", KindNoSuchElement, trie.ErrNoSuchElement)
	}
	return s.Remove(v), v, nil
}

// RemoveLast returns a set without its last element in iteration order,
// along with that element. It reports ErrNoSuchElement if the set is empty.
func (s *SequencedSet[T]) RemoveLast() (*SequencedSet[T], T, error) {
	v, err := s.GetLast()
	if err != nil {
		return s, v, newError("SequencedSet.RemoveLast", KindNoSuchElement, trie.ErrNoSuchElement)
	}
	return s.Remove(v), v, nil
}

// Iterator returns an insertion-order iterator: bucket-sorted when the live
// sequence range stays dense (spec 4.E), heap-sorted otherwise.
func (s *SequencedSet[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{src: newSeqSource[T](s.root, s.size, s.first, s.last, false)}
}

// ReverseIterator returns the reverse of Iterator's order.
func (s *SequencedSet[T]) ReverseIterator() *Iterator[T] {
	return &Iterator[T]{src: newSeqSource[T](s.root, s.size, s.first, s.last, true)}
}

// Reversed returns a view of s with its iteration order reversed. Reads and
// writes through the view mirror the base operation at the opposite end
// (AddFirst on the view is AddLast on s, and so on), the same pairing
// ChampSequencedSet.reversed() wires up in the original.
func (s *SequencedSet[T]) Reversed() *ReversedSequencedSet[T] {
	return &ReversedSequencedSet[T]{base: s}
}

// Equal reports whether s and other contain the same elements *in the same
// order* (testable property 8, sequenced-variant order-dependence).
func (s *SequencedSet[T]) Equal(other *SequencedSet[T]) bool {
	if s.size != other.size {
		return false
	}
	a, b := s.Iterator(), other.Iterator()
	for a.HasNext() {
		av, aerr := a.Next()
		bv, berr := b.Next()
		if aerr != nil || berr != nil {
			return aerr == nil && berr == nil
		}
		if !s.eq(av, bv) {
			return false
		}
	}
	return !b.HasNext()
}

// ToMutable returns a mutable sequenced set sharing this set's node graph.
func (s *SequencedSet[T]) ToMutable() *MutableSequencedSet[T] {
	return &MutableSequencedSet[T]{
		root: s.root, size: s.size, first: s.first, last: s.last,
		owner: trie.NewOwner(), hash: s.hash, eq: s.eq,
	}
}

// seqSourceT adapts a data source of T (unwrapping trie.Seq[T]) to the
// champ.source[T] interface the public Iterator type expects.
type seqSourceT[T any, S interface {
	HasNext() bool
	Next() trie.Seq[T]
}] struct {
	inner S
}

func (a seqSourceT[T, S]) HasNext() bool { return a.inner.HasNext() }
func (a seqSourceT[T, S]) Next() T       { return a.inner.Next().Data }

// newSeqSource picks the bucket-sorted or heap-sorted sequenced iterator per
// spec 4.E's eligibility rule and adapts it to yield bare T values.
func newSeqSource[T any](root trie.Node[trie.Seq[T]], size int, first, last int32, reverse bool) source[T] {
	if trie.BucketEligible(size, first, last) {
		return seqSourceT[T, *trie.BucketIterator[T]]{inner: trie.NewBucketIterator[T](root, first, last, reverse)}
	}
	return seqSourceT[T, *trie.HeapIterator[T]]{inner: trie.NewHeapIterator[T](root, reverse)}
}

// MutableSequencedSet is a single-owner, in-place-editable insertion-ordered
// hash set (spec's sequenced variant of component F).
type MutableSequencedSet[T any] struct {
	root     trie.Node[trie.Seq[T]]
	size     int
	first    int32
	last     int32
	modCount int
	owner    *trie.Owner
	hash     trie.HashFn[T]
	eq       trie.EqualFn[T]
}

// NewMutableSequencedSet returns an empty mutable sequenced set.
func NewMutableSequencedSet[T any](hash HashFunc[T], eq EqualFunc[T]) *MutableSequencedSet[T] {
	return &MutableSequencedSet[T]{
		root: trie.EmptyNode[trie.Seq[T]](nil), first: -1, last: 0,
		owner: trie.NewOwner(), hash: trie.HashFn[T](hash), eq: trie.EqualFn[T](eq),
	}
}

// Size returns the number of elements.
func (s *MutableSequencedSet[T]) Size() int { return s.size }

// IsEmpty reports whether the set has no elements.
func (s *MutableSequencedSet[T]) IsEmpty() bool { return s.size == 0 }

// Contains reports whether elem is a member.
func (s *MutableSequencedSet[T]) Contains(elem T) bool {
	seqEq := trie.SeqEqual(s.eq)
	_, ok := trie.Find(s.root, trie.Seq[T]{Data: elem}, s.hash(elem), 0, seqEq)
	return ok
}

// AddLast appends elem, mutating owned nodes in place. It reports whether
// the set changed.
func (s *MutableSequencedSet[T]) AddLast(elem T) bool { return s.insert(elem, s.last, s.last+1, s.first) }

// AddFirst prepends elem, mutating owned nodes in place.
func (s *MutableSequencedSet[T]) AddFirst(elem T) bool { return s.insert(elem, s.first, s.last, s.first-1) }

// Add is an alias for AddLast.
func (s *MutableSequencedSet[T]) Add(elem T) bool { return s.AddLast(elem) }

func (s *MutableSequencedSet[T]) insert(elem T, seq, newLast, newFirst int32) bool {
	seqEq := trie.SeqEqual(s.eq)
	seqHash := trie.SeqHash(s.hash)

	var det trie.Details[trie.Seq[T]]
	data := trie.Seq[T]{Data: elem, Seq: seq}
	s.root = trie.Update(s.root, s.owner, data, s.hash(elem), 0, &det, trie.KeepOld[trie.Seq[T]], seqEq, seqHash)
	if !det.Modified {
		return false
	}
	s.size++
	s.modCount++
	if newLast > s.last {
		s.last = newLast
	}
	if newFirst < s.first {
		s.first = newFirst
	}
	s.renumberIfNeeded()
	return true
}

// Remove deletes elem, mutating owned nodes in place.
func (s *MutableSequencedSet[T]) Remove(elem T) bool {
	seqEq := trie.SeqEqual(s.eq)
	seqHash := trie.SeqHash(s.hash)

	var det trie.Details[trie.Seq[T]]
	s.root = trie.Remove(s.root, s.owner, trie.Seq[T]{Data: elem}, s.hash(elem), 0, &det, seqEq, seqHash)
	if !det.Modified {
		return false
	}
	s.size--
	s.modCount++
	s.renumberIfNeeded()
	return true
}

func (s *MutableSequencedSet[T]) renumberIfNeeded() {
	if !trie.MustRenumber(s.size, s.first, s.last) {
		return
	}
	s.root, s.first, s.last = trie.Renumber[T](s.root, s.owner, s.eq, s.hash)
}

// Clear empties the set in place.
func (s *MutableSequencedSet[T]) Clear() {
	if s.IsEmpty() {
		return
	}
	s.root = trie.EmptyNode[trie.Seq[T]](s.owner)
	s.size, s.first, s.last = 0, -1, 0
	s.modCount++
}

// GetFirst returns the element at the front of the iteration order.
func (s *MutableSequencedSet[T]) GetFirst() (T, error) {
	var zero T
	if s.IsEmpty() {
		return zero, newError("MutableSequencedSet.GetFirst", KindNoSuchElement, trie.ErrNoSuchElement)
	}
	return s.Iterator().Next()
}

// GetLast returns the element at the back of the iteration order.
func (s *MutableSequencedSet[T]) GetLast() (T, error) {
	var zero T
	if s.IsEmpty() {
		return zero, newError("MutableSequencedSet.GetLast", KindNoSuchElement, trie.ErrNoSuchElement)
	}
	return s.ReverseIterator().Next()
}

// RemoveFirst deletes and returns the element at the front of the
// iteration order, mutating owned nodes in place.
func (s *MutableSequencedSet[T]) RemoveFirst() (T, error) {
	v, err := s.GetFirst()
	if err != nil {
		return v, newError("MutableSequencedSet.RemoveFirst", KindNoSuchElement, trie.ErrNoSuchElement)
	}
	s.Remove(v)
	return v, nil
}

// RemoveLast deletes and returns the element at the back of the
// iteration order, mutating owned nodes in place.
func (s *MutableSequencedSet[T]) RemoveLast() (T, error) {
	v, err := s.GetLast()
	if err != nil {
		return v, newError("MutableSequencedSet.RemoveLast", KindNoSuchElement, trie.ErrNoSuchElement)
	}
	s.Remove(v)
	return v, nil
}

// Iterator returns a fail-fast insertion-order iterator.
func (s *MutableSequencedSet[T]) Iterator() *Iterator[T] {
	src := newSeqSource[T](s.root, s.size, s.first, s.last, false)
	guard := trie.NewGuard[T](src, func() int { return s.modCount })
	return &Iterator[T]{src: guard}
}

// ReverseIterator returns the reverse of Iterator's order, also fail-fast.
func (s *MutableSequencedSet[T]) ReverseIterator() *Iterator[T] {
	src := newSeqSource[T](s.root, s.size, s.first, s.last, true)
	guard := trie.NewGuard[T](src, func() int { return s.modCount })
	return &Iterator[T]{src: guard}
}

// ToImmutable publishes the current state as an immutable SequencedSet in
// O(1), discarding this view's ownership token.
func (s *MutableSequencedSet[T]) ToImmutable() *SequencedSet[T] {
	s.owner = nil
	return &SequencedSet[T]{root: s.root, size: s.size, first: s.first, last: s.last, hash: s.hash, eq: s.eq}
}

// Reversed returns a view of s with its iteration order reversed. Unlike
// ReversedSequencedSet, writes through this view mutate s itself in place:
// it wraps s rather than a new persistent instance, the in-place analogue
// of ChampSequencedSet.reversed() in the original.
func (s *MutableSequencedSet[T]) Reversed() *ReversedMutableSequencedSet[T] {
	return &ReversedMutableSequencedSet[T]{base: s}
}

// ReversedSequencedSet presents a SequencedSet back to front. Every
// operation mirrors the base's operation at the opposite end; writes return
// a new ReversedSequencedSet wrapping the base's result, the same way every
// other persistent write in this package returns a new instance rather than
// mutating in place.
type ReversedSequencedSet[T any] struct {
	base *SequencedSet[T]
}

// Size returns the number of elements.
func (r *ReversedSequencedSet[T]) Size() int { return r.base.Size() }

// IsEmpty reports whether the view has no elements.
func (r *ReversedSequencedSet[T]) IsEmpty() bool { return r.base.IsEmpty() }

// Contains reports whether elem is a member.
func (r *ReversedSequencedSet[T]) Contains(elem T) bool { return r.base.Contains(elem) }

// GetFirst returns the element at the front of the reversed order, i.e. the
// base's last element.
func (r *ReversedSequencedSet[T]) GetFirst() (T, error) { return r.base.GetLast() }

// GetLast returns the element at the back of the reversed order, i.e. the
// base's first element.
func (r *ReversedSequencedSet[T]) GetLast() (T, error) { return r.base.GetFirst() }

// AddFirst returns a view with elem at the front of the reversed order,
// i.e. appended at the end of the base's order.
func (r *ReversedSequencedSet[T]) AddFirst(elem T) *ReversedSequencedSet[T] {
	return &ReversedSequencedSet[T]{base: r.base.AddLast(elem)}
}

// AddLast returns a view with elem at the back of the reversed order, i.e.
// prepended at the front of the base's order.
func (r *ReversedSequencedSet[T]) AddLast(elem T) *ReversedSequencedSet[T] {
	return &ReversedSequencedSet[T]{base: r.base.AddFirst(elem)}
}

// Add is an alias for AddLast.
func (r *ReversedSequencedSet[T]) Add(elem T) *ReversedSequencedSet[T] { return r.AddLast(elem) }

// Remove returns a view without elem.
func (r *ReversedSequencedSet[T]) Remove(elem T) *ReversedSequencedSet[T] {
	return &ReversedSequencedSet[T]{base: r.base.Remove(elem)}
}

// RemoveFirst removes and returns the element at the front of the reversed
// order, i.e. the base's last element.
func (r *ReversedSequencedSet[T]) RemoveFirst() (*ReversedSequencedSet[T], T, error) {
	newBase, v, err := r.base.RemoveLast()
	return &ReversedSequencedSet[T]{base: newBase}, v, err
}

// RemoveLast removes and returns the element at the back of the reversed
// order, i.e. the base's first element.
func (r *ReversedSequencedSet[T]) RemoveLast() (*ReversedSequencedSet[T], T, error) {
	newBase, v, err := r.base.RemoveFirst()
	return &ReversedSequencedSet[T]{base: newBase}, v, err
}

// Iterator returns an iterator over the reversed order, i.e. the base's
// ReverseIterator.
func (r *ReversedSequencedSet[T]) Iterator() *Iterator[T] { return r.base.ReverseIterator() }

// ReverseIterator returns the reverse of Iterator's order, i.e. the base's
// forward Iterator.
func (r *ReversedSequencedSet[T]) ReverseIterator() *Iterator[T] { return r.base.Iterator() }

// Reversed returns the underlying base set, undoing the reversal.
func (r *ReversedSequencedSet[T]) Reversed() *SequencedSet[T] { return r.base }

// ReversedMutableSequencedSet presents a MutableSequencedSet back to front.
// Writes through this view write through to the shared base in place,
// matching ChampSequencedSet.reversed()'s write-through facade.
type ReversedMutableSequencedSet[T any] struct {
	base *MutableSequencedSet[T]
}

// Size returns the number of elements.
func (r *ReversedMutableSequencedSet[T]) Size() int { return r.base.Size() }

// IsEmpty reports whether the view has no elements.
func (r *ReversedMutableSequencedSet[T]) IsEmpty() bool { return r.base.IsEmpty() }

// Contains reports whether elem is a member.
func (r *ReversedMutableSequencedSet[T]) Contains(elem T) bool { return r.base.Contains(elem) }

// GetFirst returns the element at the front of the reversed order, i.e. the
// base's last element.
func (r *ReversedMutableSequencedSet[T]) GetFirst() (T, error) { return r.base.GetLast() }

// GetLast returns the element at the back of the reversed order, i.e. the
// base's first element.
func (r *ReversedMutableSequencedSet[T]) GetLast() (T, error) { return r.base.GetFirst() }

// AddFirst prepends elem in the reversed order, i.e. appends it in the
// base's order, mutating the shared base in place.
func (r *ReversedMutableSequencedSet[T]) AddFirst(elem T) bool { return r.base.AddLast(elem) }

// AddLast appends elem in the reversed order, i.e. prepends it in the
// base's order, mutating the shared base in place.
func (r *ReversedMutableSequencedSet[T]) AddLast(elem T) bool { return r.base.AddFirst(elem) }

// Add is an alias for AddLast.
func (r *ReversedMutableSequencedSet[T]) Add(elem T) bool { return r.AddLast(elem) }

// Remove deletes elem from the shared base in place.
func (r *ReversedMutableSequencedSet[T]) Remove(elem T) bool { return r.base.Remove(elem) }

// RemoveFirst deletes and returns the element at the front of the reversed
// order, i.e. the base's last element.
func (r *ReversedMutableSequencedSet[T]) RemoveFirst() (T, error) { return r.base.RemoveLast() }

// RemoveLast deletes and returns the element at the back of the reversed
// order, i.e. the base's first element.
func (r *ReversedMutableSequencedSet[T]) RemoveLast() (T, error) { return r.base.RemoveFirst() }

// Clear empties the shared base in place.
func (r *ReversedMutableSequencedSet[T]) Clear() { r.base.Clear() }

// Iterator returns a fail-fast iterator over the reversed order, i.e. the
// base's ReverseIterator.
func (r *ReversedMutableSequencedSet[T]) Iterator() *Iterator[T] { return r.base.ReverseIterator() }

// ReverseIterator returns the reverse of Iterator's order, i.e. the base's
// forward Iterator.
func (r *ReversedMutableSequencedSet[T]) ReverseIterator() *Iterator[T] { return r.base.Iterator() }

// Reversed returns the underlying base set, undoing the reversal.
func (r *ReversedMutableSequencedSet[T]) Reversed() *MutableSequencedSet[T] { return r.base }
