package champ

import (
	"fmt"
	"strings"

	"github.com/champ-go/champ/internal/trie"
)

// MapEntry is the E=1 composite slot a map stores per trie data position: a
// key paired with its value, carried together rather than as two raw array
// cells (see SPEC_FULL.md's note on mixed-array arity E).
type MapEntry[K any, V any] struct {
	Key   K
	Value V
}

func entryHash[K any, V any](hash trie.HashFn[K]) trie.HashFn[MapEntry[K, V]] {
	return func(e MapEntry[K, V]) uint32 { return hash(e.Key) }
}

func entryEqual[K any, V any](eq trie.EqualFn[K]) trie.EqualFn[MapEntry[K, V]] {
	return func(a, b MapEntry[K, V]) bool { return eq(a.Key, b.Key) }
}

// takeNewEntry is the map's update combinator: put always installs the
// incoming value, mirroring the spec's default put/add combinator
// (TakeNew) specialized to the MapEntry composite slot.
func takeNewEntry[K any, V any]() trie.ReplaceFn[MapEntry[K, V]] {
	return func(old, incoming MapEntry[K, V]) (MapEntry[K, V], bool) {
		return incoming, true
	}
}

// Map is a persistent, structurally-shared hash map (spec component G).
type Map[K any, V any] struct {
	root    trie.Node[MapEntry[K, V]]
	size    int
	hash    trie.HashFn[MapEntry[K, V]]
	eq      trie.EqualFn[MapEntry[K, V]]
	kh      trie.HashFn[K]
	valueEq EqualFunc[V]
}

// NewMap returns an empty immutable map using the given hash and equality
// functions for its keys, and valueEq to compare values for Equal.
func NewMap[K any, V any](hash HashFunc[K], eq EqualFunc[K], valueEq EqualFunc[V]) *Map[K, V] {
	kh := trie.HashFn[K](hash)
	return &Map[K, V]{
		root:    trie.EmptyNode[MapEntry[K, V]](nil),
		hash:    entryHash[K, V](kh),
		eq:      entryEqual[K, V](trie.EqualFn[K](eq)),
		kh:      kh,
		valueEq: valueEq,
	}
}

// Size returns the number of entries.
func (m *Map[K, V]) Size() int { return m.size }

// IsEmpty reports whether the map has no entries.
func (m *Map[K, V]) IsEmpty() bool { return m.size == 0 }

// ContainsKey reports whether key has an associated value.
func (m *Map[K, V]) ContainsKey(key K) bool {
	_, ok := m.Get(key)
	return ok
}

// Get returns the value associated with key, and whether it was present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	probe := MapEntry[K, V]{Key: key}
	e, ok := trie.Find(m.root, probe, m.kh(key), 0, m.eq)
	if !ok {
		var zero V
		return zero, false
	}
	return e.Value, true
}

// Put returns a map associating key with value. Put always returns a new
// map, even when key already maps to an equal value; re-putting an existing
// key replaces its value and keeps the size.
func (m *Map[K, V]) Put(key K, value V) *Map[K, V] {
	var det trie.Details[MapEntry[K, V]]
	entry := MapEntry[K, V]{Key: key, Value: value}
	newRoot := trie.Update(m.root, nil, entry, m.kh(key), 0, &det, takeNewEntry[K, V](), m.eq, m.hash)
	if !det.Modified {
		return m
	}
	size := m.size
	if !det.Updated {
		size++
	}
	return &Map[K, V]{root: newRoot, size: size, hash: m.hash, eq: m.eq, kh: m.kh, valueEq: m.valueEq}
}

// Remove returns a map without key. If key was absent, Remove returns the
// receiver unchanged.
func (m *Map[K, V]) Remove(key K) *Map[K, V] {
	var det trie.Details[MapEntry[K, V]]
	probe := MapEntry[K, V]{Key: key}
	newRoot := trie.Remove(m.root, nil, probe, m.kh(key), 0, &det, m.eq, m.hash)
	if !det.Modified {
		return m
	}
	return &Map[K, V]{root: newRoot, size: m.size - 1, hash: m.hash, eq: m.eq, kh: m.kh, valueEq: m.valueEq}
}

// Clear returns the canonical empty map sharing this map's hash/equality
// functions.
func (m *Map[K, V]) Clear() *Map[K, V] {
	if m.IsEmpty() {
		return m
	}
	return &Map[K, V]{root: trie.EmptyNode[MapEntry[K, V]](nil), hash: m.hash, eq: m.eq, kh: m.kh, valueEq: m.valueEq}
}

// Entries returns an arbitrary-order iterator over the map's key/value
// entries.
func (m *Map[K, V]) Entries() *Iterator[MapEntry[K, V]] {
	return &Iterator[MapEntry[K, V]]{src: trie.NewIterator[MapEntry[K, V]](m.root)}
}

// Equal reports whether m and other map the same keys to equal values. Key
// structure and values are compared together in one trie walk: m.eq only
// compares keys, so it's paired with valueEq here rather than reused alone.
func (m *Map[K, V]) Equal(other *Map[K, V]) bool {
	if m.size != other.size {
		return false
	}
	entryEq := func(a, b MapEntry[K, V]) bool {
		return m.eq(a, b) && m.valueEq(a.Value, b.Value)
	}
	return trie.Equivalent(m.root, other.root, entryEq)
}

// ToMutable returns a mutable map sharing this map's node graph in O(1).
func (m *Map[K, V]) ToMutable() *MutableMap[K, V] {
	return &MutableMap[K, V]{
		root:    m.root,
		size:    m.size,
		owner:   trie.NewOwner(),
		hash:    m.hash,
		eq:      m.eq,
		kh:      m.kh,
		valueEq: m.valueEq,
	}
}

func (m *Map[K, V]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	it := m.Entries()
	first := true
	for it.HasNext() {
		e, err := it.Next()
		if err != nil {
			break
		}
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&b, "%v: %v", e.Key, e.Value)
	}
	b.WriteByte('}')
	return b.String()
}

// MutableMap is a single-owner, in-place-editable hash map (spec component
// F). It is not safe for concurrent use.
type MutableMap[K any, V any] struct {
	root     trie.Node[MapEntry[K, V]]
	size     int
	modCount int
	owner    *trie.Owner
	hash     trie.HashFn[MapEntry[K, V]]
	eq       trie.EqualFn[MapEntry[K, V]]
	kh       trie.HashFn[K]
	valueEq  EqualFunc[V]
}

// NewMutableMap returns an empty mutable map, using valueEq to compare
// values once published to an immutable Map's Equal.
func NewMutableMap[K any, V any](hash HashFunc[K], eq EqualFunc[K], valueEq EqualFunc[V]) *MutableMap[K, V] {
	kh := trie.HashFn[K](hash)
	return &MutableMap[K, V]{
		root:    trie.EmptyNode[MapEntry[K, V]](nil),
		owner:   trie.NewOwner(),
		hash:    entryHash[K, V](kh),
		eq:      entryEqual[K, V](trie.EqualFn[K](eq)),
		kh:      kh,
		valueEq: valueEq,
	}
}

// Size returns the number of entries.
func (m *MutableMap[K, V]) Size() int { return m.size }

// IsEmpty reports whether the map has no entries.
func (m *MutableMap[K, V]) IsEmpty() bool { return m.size == 0 }

// ContainsKey reports whether key has an associated value.
func (m *MutableMap[K, V]) ContainsKey(key K) bool {
	_, ok := m.Get(key)
	return ok
}

// Get returns the value associated with key, and whether it was present.
func (m *MutableMap[K, V]) Get(key K) (V, bool) {
	probe := MapEntry[K, V]{Key: key}
	e, ok := trie.Find(m.root, probe, m.kh(key), 0, m.eq)
	if !ok {
		var zero V
		return zero, false
	}
	return e.Value, true
}

// Put associates key with value, mutating owned nodes in place. It reports
// whether the map gained a new key (as opposed to replacing an existing
// value).
func (m *MutableMap[K, V]) Put(key K, value V) bool {
	var det trie.Details[MapEntry[K, V]]
	entry := MapEntry[K, V]{Key: key, Value: value}
	m.root = trie.Update(m.root, m.owner, entry, m.kh(key), 0, &det, takeNewEntry[K, V](), m.eq, m.hash)
	if det.Modified {
		m.modCount++
		if !det.Updated {
			m.size++
		}
	}
	return det.Modified && !det.Updated
}

// Remove deletes key, mutating owned nodes in place. It reports whether the
// map changed.
func (m *MutableMap[K, V]) Remove(key K) bool {
	var det trie.Details[MapEntry[K, V]]
	probe := MapEntry[K, V]{Key: key}
	m.root = trie.Remove(m.root, m.owner, probe, m.kh(key), 0, &det, m.eq, m.hash)
	if det.Modified {
		m.size--
		m.modCount++
	}
	return det.Modified
}

// Clear empties the map in place.
func (m *MutableMap[K, V]) Clear() {
	if m.IsEmpty() {
		return
	}
	m.root = trie.EmptyNode[MapEntry[K, V]](m.owner)
	m.size = 0
	m.modCount++
}

// Entries returns a fail-fast arbitrary-order iterator over key/value
// entries.
func (m *MutableMap[K, V]) Entries() *Iterator[MapEntry[K, V]] {
	src := trie.NewIterator[MapEntry[K, V]](m.root)
	guard := trie.NewGuard[MapEntry[K, V]](src, func() int { return m.modCount })
	return &Iterator[MapEntry[K, V]]{src: guard}
}

// ToImmutable publishes the current state as an immutable Map in O(1),
// discarding this view's ownership token.
func (m *MutableMap[K, V]) ToImmutable() *Map[K, V] {
	m.owner = nil
	return &Map[K, V]{root: m.root, size: m.size, hash: m.hash, eq: m.eq, kh: m.kh, valueEq: m.valueEq}
}
