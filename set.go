package champ

import (
	"fmt"
	"strings"

	"github.com/champ-go/champ/internal/trie"
)

// Set is a persistent, structurally-shared hash set (spec component G). Every
// write returns a new Set; the receiver is left untouched, and unaffected
// subtrees are shared between the two, never copied.
type Set[T any] struct {
	root trie.Node[T]
	size int
	hash trie.HashFn[T]
	eq   trie.EqualFn[T]
}

// NewSet returns an empty immutable set using the given hash and equality
// functions for its elements.
func NewSet[T any](hash HashFunc[T], eq EqualFunc[T]) *Set[T] {
	return &Set[T]{
		root: trie.EmptyNode[T](nil),
		hash: trie.HashFn[T](hash),
		eq:   trie.EqualFn[T](eq),
	}
}

// OfSet builds an immutable set from the given elements. Add keeps an
// element that is already present, so of several elements that eq reports
// equal, the first one given is the one stored.
func OfSet[T any](hash HashFunc[T], eq EqualFunc[T], elems ...T) *Set[T] {
	s := NewSet(hash, eq)
	for _, e := range elems {
		s = s.Add(e)
	}
	return s
}

// Size returns the number of elements.
func (s *Set[T]) Size() int { return s.size }

// IsEmpty reports whether the set has no elements.
func (s *Set[T]) IsEmpty() bool { return s.size == 0 }

// Contains reports whether elem is a member.
func (s *Set[T]) Contains(elem T) bool {
	_, ok := trie.Find(s.root, elem, s.hash(elem), 0, s.eq)
	return ok
}

// Add returns a set containing elem. If elem is already present, Add
// returns the receiver unchanged (testable property 3: no-op return
// identity).
func (s *Set[T]) Add(elem T) *Set[T] {
	var det trie.Details[T]
	newRoot := trie.Update(s.root, nil, elem, s.hash(elem), 0, &det, trie.KeepOld[T], s.eq, s.hash)
	if !det.Modified {
		return s
	}
	return &Set[T]{root: newRoot, size: s.size + 1, hash: s.hash, eq: s.eq}
}

// Remove returns a set without elem. If elem was absent, Remove returns the
// receiver unchanged.
func (s *Set[T]) Remove(elem T) *Set[T] {
	var det trie.Details[T]
	newRoot := trie.Remove(s.root, nil, elem, s.hash(elem), 0, &det, s.eq, s.hash)
	if !det.Modified {
		return s
	}
	return &Set[T]{root: newRoot, size: s.size - 1, hash: s.hash, eq: s.eq}
}

// AddAll returns a set containing every element of both s and other. Returns
// s unchanged if other contributed nothing new, and returns other unchanged
// when other is s itself.
func (s *Set[T]) AddAll(other *Set[T]) *Set[T] {
	if other == s {
		return s
	}
	result := s
	it := other.Iterator()
	for it.HasNext() {
		elem, err := it.Next()
		if err != nil {
			break
		}
		result = result.Add(elem)
	}
	return result
}

// RemoveAll returns a set with every element of other removed.
func (s *Set[T]) RemoveAll(other *Set[T]) *Set[T] {
	result := s
	it := other.Iterator()
	for it.HasNext() {
		elem, err := it.Next()
		if err != nil {
			break
		}
		result = result.Remove(elem)
	}
	return result
}

// RetainAll returns a set containing only elements also present in other.
// RetainAll of an empty set returns the canonical empty instance.
func (s *Set[T]) RetainAll(other *Set[T]) *Set[T] {
	if other.IsEmpty() {
		return NewSet[T](HashFunc[T](s.hash), EqualFunc[T](s.eq))
	}
	if other == s {
		return s
	}
	result := s
	it := s.Iterator()
	for it.HasNext() {
		elem, err := it.Next()
		if err != nil {
			break
		}
		if !other.Contains(elem) {
			result = result.Remove(elem)
		}
	}
	return result
}

// Clear returns the canonical empty set sharing this set's hash/equality
// functions.
func (s *Set[T]) Clear() *Set[T] {
	if s.IsEmpty() {
		return s
	}
	return NewSet[T](HashFunc[T](s.hash), EqualFunc[T](s.eq))
}

// Iterator returns an arbitrary-order iterator over the set's elements.
func (s *Set[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{src: trie.NewIterator[T](s.root)}
}

// Equal reports whether s and other contain the same elements, regardless
// of order (testable property 8, plain-variant order-independence).
func (s *Set[T]) Equal(other *Set[T]) bool {
	if s.size != other.size {
		return false
	}
	return trie.Equivalent(s.root, other.root, s.eq)
}

// ToMutable returns a mutable set sharing this set's node graph in O(1); the
// immutable set remains valid and unaffected by subsequent writes through
// the mutable view.
func (s *Set[T]) ToMutable() *MutableSet[T] {
	return &MutableSet[T]{
		root:  s.root,
		size:  s.size,
		owner: trie.NewOwner(),
		hash:  s.hash,
		eq:    s.eq,
	}
}

func (s *Set[T]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	it := s.Iterator()
	first := true
	for it.HasNext() {
		v, err := it.Next()
		if err != nil {
			break
		}
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&b, "%v", v)
	}
	b.WriteByte('}')
	return b.String()
}

// MutableSet is a single-owner, in-place-editable hash set (spec component
// F) built on the same trie engine as Set. It is not safe for concurrent
// use.
type MutableSet[T any] struct {
	root     trie.Node[T]
	size     int
	modCount int
	owner    *trie.Owner
	hash     trie.HashFn[T]
	eq       trie.EqualFn[T]
}

// NewMutableSet returns an empty mutable set.
func NewMutableSet[T any](hash HashFunc[T], eq EqualFunc[T]) *MutableSet[T] {
	return &MutableSet[T]{
		root:  trie.EmptyNode[T](nil),
		owner: trie.NewOwner(),
		hash:  trie.HashFn[T](hash),
		eq:    trie.EqualFn[T](eq),
	}
}

// Size returns the number of elements.
func (s *MutableSet[T]) Size() int { return s.size }

// IsEmpty reports whether the set has no elements.
func (s *MutableSet[T]) IsEmpty() bool { return s.size == 0 }

// Contains reports whether elem is a member.
func (s *MutableSet[T]) Contains(elem T) bool {
	_, ok := trie.Find(s.root, elem, s.hash(elem), 0, s.eq)
	return ok
}

// Add inserts elem, mutating owned nodes in place. It reports whether the
// set changed.
func (s *MutableSet[T]) Add(elem T) bool {
	var det trie.Details[T]
	s.root = trie.Update(s.root, s.owner, elem, s.hash(elem), 0, &det, trie.KeepOld[T], s.eq, s.hash)
	if det.Modified {
		s.size++
		s.modCount++
	}
	return det.Modified
}

// Remove deletes elem, mutating owned nodes in place. It reports whether the
// set changed.
func (s *MutableSet[T]) Remove(elem T) bool {
	var det trie.Details[T]
	s.root = trie.Remove(s.root, s.owner, elem, s.hash(elem), 0, &det, s.eq, s.hash)
	if det.Modified {
		s.size--
		s.modCount++
	}
	return det.Modified
}

// AddAll inserts every element of other, returning whether the set changed.
func (s *MutableSet[T]) AddAll(other *Set[T]) bool {
	changed := false
	it := other.Iterator()
	for it.HasNext() {
		elem, err := it.Next()
		if err != nil {
			break
		}
		if s.Add(elem) {
			changed = true
		}
	}
	return changed
}

// Clear empties the set in place.
func (s *MutableSet[T]) Clear() {
	if s.IsEmpty() {
		return
	}
	s.root = trie.EmptyNode[T](s.owner)
	s.size = 0
	s.modCount++
}

// Iterator returns a fail-fast arbitrary-order iterator: any structural
// change to the set through this view between two Next calls surfaces as
// ErrConcurrentModification on the following Next (testable property 10).
func (s *MutableSet[T]) Iterator() *Iterator[T] {
	src := trie.NewIterator[T](s.root)
	guard := trie.NewGuard[T](src, func() int { return s.modCount })
	return &Iterator[T]{src: guard}
}

// ToImmutable publishes the current state as an immutable Set in O(1),
// discarding this view's ownership token; subsequent writes through s will
// copy rather than mutate the now-published nodes.
func (s *MutableSet[T]) ToImmutable() *Set[T] {
	s.owner = nil
	return &Set[T]{root: s.root, size: s.size, hash: s.hash, eq: s.eq}
}
