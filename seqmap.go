package champ

import (
	"github.com/champ-go/champ/internal/trie"
)

// SequencedMap is a persistent hash map whose iteration order is insertion
// order (spec's sequenced variant of component G).
type SequencedMap[K any, V any] struct {
	root  trie.Node[trie.Seq[MapEntry[K, V]]]
	size  int
	first int32
	last  int32
	hash  trie.HashFn[trie.Seq[MapEntry[K, V]]]
	eq    trie.EqualFn[trie.Seq[MapEntry[K, V]]]
	kh    trie.HashFn[K]
}

// NewSequencedMap returns an empty immutable sequenced map.
func NewSequencedMap[K any, V any](hash HashFunc[K], eq EqualFunc[K]) *SequencedMap[K, V] {
	kh := trie.HashFn[K](hash)
	entryHash := entryHash[K, V](kh)
	entryEq := entryEqual[K, V](trie.EqualFn[K](eq))
	return &SequencedMap[K, V]{
		root: trie.EmptyNode[trie.Seq[MapEntry[K, V]]](nil), first: -1, last: 0,
		hash: trie.SeqHash(entryHash), eq: trie.SeqEqual(entryEq), kh: kh,
	}
}

// Size returns the number of entries.
func (m *SequencedMap[K, V]) Size() int { return m.size }

// IsEmpty reports whether the map has no entries.
func (m *SequencedMap[K, V]) IsEmpty() bool { return m.size == 0 }

// Get returns the value associated with key, and whether it was present.
func (m *SequencedMap[K, V]) Get(key K) (V, bool) {
	probe := trie.Seq[MapEntry[K, V]]{Data: MapEntry[K, V]{Key: key}}
	e, ok := trie.Find(m.root, probe, m.kh(key), 0, m.eq)
	if !ok {
		var zero V
		return zero, false
	}
	return e.Data.Value, true
}

// ContainsKey reports whether key has an associated value.
func (m *SequencedMap[K, V]) ContainsKey(key K) bool {
	_, ok := m.Get(key)
	return ok
}

// PutLast returns a map with key associated to value, placed at the end of
// the iteration order if key is new. Re-putting an existing key keeps its
// position and replaces its value.
func (m *SequencedMap[K, V]) PutLast(key K, value V) *SequencedMap[K, V] {
	return m.insert(key, value, m.last, m.last+1, m.first)
}

// PutFirst returns a map with key associated to value, placed at the front
// of the iteration order if key is new.
func (m *SequencedMap[K, V]) PutFirst(key K, value V) *SequencedMap[K, V] {
	return m.insert(key, value, m.first, m.last, m.first-1)
}

// Put is an alias for PutLast, the default insertion policy.
func (m *SequencedMap[K, V]) Put(key K, value V) *SequencedMap[K, V] { return m.PutLast(key, value) }

func (m *SequencedMap[K, V]) insert(key K, value V, seq, newLast, newFirst int32) *SequencedMap[K, V] {
	var det trie.Details[trie.Seq[MapEntry[K, V]]]
	data := trie.Seq[MapEntry[K, V]]{Data: MapEntry[K, V]{Key: key, Value: value}, Seq: seq}
	replace := func(old, incoming trie.Seq[MapEntry[K, V]]) (trie.Seq[MapEntry[K, V]], bool) {
		return trie.Seq[MapEntry[K, V]]{Data: incoming.Data, Seq: old.Seq}, true
	}
	newRoot := trie.Update(m.root, nil, data, m.kh(key), 0, &det, replace, m.eq, m.hash)
	if !det.Modified {
		return m
	}
	size := m.size
	if !det.Updated {
		size++
	}
	out := &SequencedMap[K, V]{root: newRoot, size: size, first: m.first, last: m.last, hash: m.hash, eq: m.eq, kh: m.kh}
	if !det.Updated {
		if newLast > out.last {
			out.last = newLast
		}
		if newFirst < out.first {
			out.first = newFirst
		}
	}
	return out.maybeRenumber(nil)
}

// Remove returns a map without key.
func (m *SequencedMap[K, V]) Remove(key K) *SequencedMap[K, V] {
	var det trie.Details[trie.Seq[MapEntry[K, V]]]
	probe := trie.Seq[MapEntry[K, V]]{Data: MapEntry[K, V]{Key: key}}
	newRoot := trie.Remove(m.root, nil, probe, m.kh(key), 0, &det, m.eq, m.hash)
	if !det.Modified {
		return m
	}
	out := &SequencedMap[K, V]{root: newRoot, size: m.size - 1, first: m.first, last: m.last, hash: m.hash, eq: m.eq, kh: m.kh}
	return out.maybeRenumber(nil)
}

func (m *SequencedMap[K, V]) maybeRenumber(owner *trie.Owner) *SequencedMap[K, V] {
	if !trie.MustRenumber(m.size, m.first, m.last) {
		return m
	}
	newRoot, first, last := trie.Renumber[MapEntry[K, V]](m.root, owner, entryEqualFromSeq(m.eq), entryHashFromSeq(m.hash))
	m.root, m.first, m.last = newRoot, first, last
	return m
}

// entryEqualFromSeq/entryHashFromSeq unwrap the Seq-level functions back
// down to the MapEntry level, because trie.Renumber takes an EqualFn/HashFn
// over the un-sequenced datum and re-wraps it internally.
func entryEqualFromSeq[K any, V any](eq trie.EqualFn[trie.Seq[MapEntry[K, V]]]) trie.EqualFn[MapEntry[K, V]] {
	return func(a, b MapEntry[K, V]) bool {
		return eq(trie.Seq[MapEntry[K, V]]{Data: a}, trie.Seq[MapEntry[K, V]]{Data: b})
	}
}

func entryHashFromSeq[K any, V any](hash trie.HashFn[trie.Seq[MapEntry[K, V]]]) trie.HashFn[MapEntry[K, V]] {
	return func(e MapEntry[K, V]) uint32 {
		return hash(trie.Seq[MapEntry[K, V]]{Data: e})
	}
}

// Clear returns the canonical empty sequenced map.
func (m *SequencedMap[K, V]) Clear() *SequencedMap[K, V] {
	if m.IsEmpty() {
		return m
	}
	return &SequencedMap[K, V]{root: trie.EmptyNode[trie.Seq[MapEntry[K, V]]](nil), first: -1, last: 0, hash: m.hash, eq: m.eq, kh: m.kh}
}

// GetFirst returns the entry at the front of the iteration order.
func (m *SequencedMap[K, V]) GetFirst() (MapEntry[K, V], error) {
	var zero MapEntry[K, V]
	if m.IsEmpty() {
		return zero, newError("SequencedMap.GetFirst", KindNoSuchElement, trie.ErrNoSuchElement)
	}
	return m.Entries().Next()
}

// GetLast returns the entry at the back of the iteration order.
func (m *SequencedMap[K, V]) GetLast() (MapEntry[K, V], error) {
	var zero MapEntry[K, V]
	if m.IsEmpty() {
		return zero, newError("SequencedMap.GetLast", KindNoSuchElement, trie.ErrNoSuchElement)
	}
	return m.ReverseEntries().Next()
}

// RemoveFirst returns a map without its first entry in iteration order,
// along with that entry. It reports ErrNoSuchElement if the map is empty.
func (m *SequencedMap[K, V]) RemoveFirst() (*SequencedMap[K, V], MapEntry[K, V], error) {
	e, err := m.GetFirst()
	if err != nil {
		return m, e, newError("SequencedMap.RemoveFirst", KindNoSuchElement, trie.ErrNoSuchElement)
	}
	return m.Remove(e.Key), e, nil
}

// RemoveLast returns a map without its last entry in iteration order, along
// with that entry. It reports ErrNoSuchElement if the map is empty.
func (m *SequencedMap[K, V]) RemoveLast() (*SequencedMap[K, V], MapEntry[K, V], error) {
	e, err := m.GetLast()
	if err != nil {
		return m, e, newError("SequencedMap.RemoveLast", KindNoSuchElement, trie.ErrNoSuchElement)
	}
	return m.Remove(e.Key), e, nil
}

// Entries returns an insertion-order iterator over key/value entries.
func (m *SequencedMap[K, V]) Entries() *Iterator[MapEntry[K, V]] {
	return &Iterator[MapEntry[K, V]]{src: newSeqSource[MapEntry[K, V]](m.root, m.size, m.first, m.last, false)}
}

// ReverseEntries returns the reverse of Entries' order.
func (m *SequencedMap[K, V]) ReverseEntries() *Iterator[MapEntry[K, V]] {
	return &Iterator[MapEntry[K, V]]{src: newSeqSource[MapEntry[K, V]](m.root, m.size, m.first, m.last, true)}
}

// Reversed returns a view of m with its iteration order reversed, the map
// analogue of SequencedSet.Reversed.
func (m *SequencedMap[K, V]) Reversed() *ReversedSequencedMap[K, V] {
	return &ReversedSequencedMap[K, V]{base: m}
}

// ToMutable returns a mutable sequenced map sharing this map's node graph.
func (m *SequencedMap[K, V]) ToMutable() *MutableSequencedMap[K, V] {
	return &MutableSequencedMap[K, V]{
		root: m.root, size: m.size, first: m.first, last: m.last,
		owner: trie.NewOwner(), hash: m.hash, eq: m.eq, kh: m.kh,
	}
}

// MutableSequencedMap is a single-owner, in-place-editable insertion-ordered
// hash map (spec's sequenced variant of component F).
type MutableSequencedMap[K any, V any] struct {
	root     trie.Node[trie.Seq[MapEntry[K, V]]]
	size     int
	first    int32
	last     int32
	modCount int
	owner    *trie.Owner
	hash     trie.HashFn[trie.Seq[MapEntry[K, V]]]
	eq       trie.EqualFn[trie.Seq[MapEntry[K, V]]]
	kh       trie.HashFn[K]
}

// NewMutableSequencedMap returns an empty mutable sequenced map.
func NewMutableSequencedMap[K any, V any](hash HashFunc[K], eq EqualFunc[K]) *MutableSequencedMap[K, V] {
	kh := trie.HashFn[K](hash)
	entryHash := entryHash[K, V](kh)
	entryEq := entryEqual[K, V](trie.EqualFn[K](eq))
	return &MutableSequencedMap[K, V]{
		root: trie.EmptyNode[trie.Seq[MapEntry[K, V]]](nil), first: -1, last: 0,
		owner: trie.NewOwner(), hash: trie.SeqHash(entryHash), eq: trie.SeqEqual(entryEq), kh: kh,
	}
}

// Size returns the number of entries.
func (m *MutableSequencedMap[K, V]) Size() int { return m.size }

// IsEmpty reports whether the map has no entries.
func (m *MutableSequencedMap[K, V]) IsEmpty() bool { return m.size == 0 }

// Get returns the value associated with key, and whether it was present.
func (m *MutableSequencedMap[K, V]) Get(key K) (V, bool) {
	probe := trie.Seq[MapEntry[K, V]]{Data: MapEntry[K, V]{Key: key}}
	e, ok := trie.Find(m.root, probe, m.kh(key), 0, m.eq)
	if !ok {
		var zero V
		return zero, false
	}
	return e.Data.Value, true
}

// ContainsKey reports whether key has an associated value.
func (m *MutableSequencedMap[K, V]) ContainsKey(key K) bool {
	_, ok := m.Get(key)
	return ok
}

// PutLast associates key with value at the end of the iteration order if
// key is new, mutating owned nodes in place.
func (m *MutableSequencedMap[K, V]) PutLast(key K, value V) bool {
	return m.insert(key, value, m.last, m.last+1, m.first)
}

// PutFirst associates key with value at the front of the iteration order if
// key is new.
func (m *MutableSequencedMap[K, V]) PutFirst(key K, value V) bool {
	return m.insert(key, value, m.first, m.last, m.first-1)
}

// Put is an alias for PutLast.
func (m *MutableSequencedMap[K, V]) Put(key K, value V) bool { return m.PutLast(key, value) }

func (m *MutableSequencedMap[K, V]) insert(key K, value V, seq, newLast, newFirst int32) bool {
	var det trie.Details[trie.Seq[MapEntry[K, V]]]
	data := trie.Seq[MapEntry[K, V]]{Data: MapEntry[K, V]{Key: key, Value: value}, Seq: seq}
	replace := func(old, incoming trie.Seq[MapEntry[K, V]]) (trie.Seq[MapEntry[K, V]], bool) {
		return trie.Seq[MapEntry[K, V]]{Data: incoming.Data, Seq: old.Seq}, true
	}
	m.root = trie.Update(m.root, m.owner, data, m.kh(key), 0, &det, replace, m.eq, m.hash)
	if !det.Modified {
		return false
	}
	m.modCount++
	isNew := !det.Updated
	if isNew {
		m.size++
		if newLast > m.last {
			m.last = newLast
		}
		if newFirst < m.first {
			m.first = newFirst
		}
	}
	m.renumberIfNeeded()
	return isNew
}

// Remove deletes key, mutating owned nodes in place.
func (m *MutableSequencedMap[K, V]) Remove(key K) bool {
	var det trie.Details[trie.Seq[MapEntry[K, V]]]
	probe := trie.Seq[MapEntry[K, V]]{Data: MapEntry[K, V]{Key: key}}
	m.root = trie.Remove(m.root, m.owner, probe, m.kh(key), 0, &det, m.eq, m.hash)
	if !det.Modified {
		return false
	}
	m.size--
	m.modCount++
	m.renumberIfNeeded()
	return true
}

func (m *MutableSequencedMap[K, V]) renumberIfNeeded() {
	if !trie.MustRenumber(m.size, m.first, m.last) {
		return
	}
	m.root, m.first, m.last = trie.Renumber[MapEntry[K, V]](m.root, m.owner, entryEqualFromSeq(m.eq), entryHashFromSeq(m.hash))
}

// Clear empties the map in place.
func (m *MutableSequencedMap[K, V]) Clear() {
	if m.IsEmpty() {
		return
	}
	m.root = trie.EmptyNode[trie.Seq[MapEntry[K, V]]](m.owner)
	m.size, m.first, m.last = 0, -1, 0
	m.modCount++
}

// GetFirst returns the entry at the front of the iteration order.
func (m *MutableSequencedMap[K, V]) GetFirst() (MapEntry[K, V], error) {
	var zero MapEntry[K, V]
	if m.IsEmpty() {
		return zero, newError("MutableSequencedMap.GetFirst", KindNoSuchElement, trie.ErrNoSuchElement)
	}
	return m.Entries().Next()
}

// GetLast returns the entry at the back of the iteration order.
func (m *MutableSequencedMap[K, V]) GetLast() (MapEntry[K, V], error) {
	var zero MapEntry[K, V]
	if m.IsEmpty() {
		return zero, newError("MutableSequencedMap.GetLast", KindNoSuchElement, trie.ErrNoSuchElement)
	}
	return m.ReverseEntries().Next()
}

// RemoveFirst deletes and returns the entry at the front of the iteration
// order, mutating owned nodes in place.
func (m *MutableSequencedMap[K, V]) RemoveFirst() (MapEntry[K, V], error) {
	e, err := m.GetFirst()
	if err != nil {
		return e, newError("MutableSequencedMap.RemoveFirst", KindNoSuchElement, trie.ErrNoSuchElement)
	}
	m.Remove(e.Key)
	return e, nil
}

// RemoveLast deletes and returns the entry at the back of the iteration
// order, mutating owned nodes in place.
func (m *MutableSequencedMap[K, V]) RemoveLast() (MapEntry[K, V], error) {
	e, err := m.GetLast()
	if err != nil {
		return e, newError("MutableSequencedMap.RemoveLast", KindNoSuchElement, trie.ErrNoSuchElement)
	}
	m.Remove(e.Key)
	return e, nil
}

// Entries returns a fail-fast insertion-order iterator over key/value
// entries.
func (m *MutableSequencedMap[K, V]) Entries() *Iterator[MapEntry[K, V]] {
	src := newSeqSource[MapEntry[K, V]](m.root, m.size, m.first, m.last, false)
	guard := trie.NewGuard[MapEntry[K, V]](src, func() int { return m.modCount })
	return &Iterator[MapEntry[K, V]]{src: guard}
}

// ReverseEntries returns a fail-fast iterator over the reverse of Entries'
// order.
func (m *MutableSequencedMap[K, V]) ReverseEntries() *Iterator[MapEntry[K, V]] {
	src := newSeqSource[MapEntry[K, V]](m.root, m.size, m.first, m.last, true)
	guard := trie.NewGuard[MapEntry[K, V]](src, func() int { return m.modCount })
	return &Iterator[MapEntry[K, V]]{src: guard}
}

// Reversed returns a write-through view of m with its iteration order
// reversed, the map analogue of MutableSequencedSet.Reversed.
func (m *MutableSequencedMap[K, V]) Reversed() *ReversedMutableSequencedMap[K, V] {
	return &ReversedMutableSequencedMap[K, V]{base: m}
}

// ToImmutable publishes the current state as an immutable SequencedMap in
// O(1), discarding this view's ownership token.
func (m *MutableSequencedMap[K, V]) ToImmutable() *SequencedMap[K, V] {
	m.owner = nil
	return &SequencedMap[K, V]{root: m.root, size: m.size, first: m.first, last: m.last, hash: m.hash, eq: m.eq, kh: m.kh}
}

// ReversedSequencedMap presents a SequencedMap back to front, the map
// analogue of ReversedSequencedSet.
type ReversedSequencedMap[K any, V any] struct {
	base *SequencedMap[K, V]
}

// Size returns the number of entries.
func (r *ReversedSequencedMap[K, V]) Size() int { return r.base.Size() }

// IsEmpty reports whether the view has no entries.
func (r *ReversedSequencedMap[K, V]) IsEmpty() bool { return r.base.IsEmpty() }

// Get returns the value associated with key, and whether it was present.
func (r *ReversedSequencedMap[K, V]) Get(key K) (V, bool) { return r.base.Get(key) }

// ContainsKey reports whether key has an associated value.
func (r *ReversedSequencedMap[K, V]) ContainsKey(key K) bool { return r.base.ContainsKey(key) }

// GetFirst returns the entry at the front of the reversed order, i.e. the
// base's last entry.
func (r *ReversedSequencedMap[K, V]) GetFirst() (MapEntry[K, V], error) { return r.base.GetLast() }

// GetLast returns the entry at the back of the reversed order, i.e. the
// base's first entry.
func (r *ReversedSequencedMap[K, V]) GetLast() (MapEntry[K, V], error) { return r.base.GetFirst() }

// PutFirst returns a view with key/value placed at the front of the
// reversed order, i.e. appended at the end of the base's order.
func (r *ReversedSequencedMap[K, V]) PutFirst(key K, value V) *ReversedSequencedMap[K, V] {
	return &ReversedSequencedMap[K, V]{base: r.base.PutLast(key, value)}
}

// PutLast returns a view with key/value placed at the back of the reversed
// order, i.e. prepended at the front of the base's order.
func (r *ReversedSequencedMap[K, V]) PutLast(key K, value V) *ReversedSequencedMap[K, V] {
	return &ReversedSequencedMap[K, V]{base: r.base.PutFirst(key, value)}
}

// Put is an alias for PutLast.
func (r *ReversedSequencedMap[K, V]) Put(key K, value V) *ReversedSequencedMap[K, V] {
	return r.PutLast(key, value)
}

// Remove returns a view without key.
func (r *ReversedSequencedMap[K, V]) Remove(key K) *ReversedSequencedMap[K, V] {
	return &ReversedSequencedMap[K, V]{base: r.base.Remove(key)}
}

// RemoveFirst removes and returns the entry at the front of the reversed
// order, i.e. the base's last entry.
func (r *ReversedSequencedMap[K, V]) RemoveFirst() (*ReversedSequencedMap[K, V], MapEntry[K, V], error) {
	newBase, e, err := r.base.RemoveLast()
	return &ReversedSequencedMap[K, V]{base: newBase}, e, err
}

// RemoveLast removes and returns the entry at the back of the reversed
// order, i.e. the base's first entry.
func (r *ReversedSequencedMap[K, V]) RemoveLast() (*ReversedSequencedMap[K, V], MapEntry[K, V], error) {
	newBase, e, err := r.base.RemoveFirst()
	return &ReversedSequencedMap[K, V]{base: newBase}, e, err
}

// Entries returns an iterator over the reversed order, i.e. the base's
// ReverseEntries.
func (r *ReversedSequencedMap[K, V]) Entries() *Iterator[MapEntry[K, V]] { return r.base.ReverseEntries() }

// ReverseEntries returns the reverse of Entries' order, i.e. the base's
// forward Entries.
func (r *ReversedSequencedMap[K, V]) ReverseEntries() *Iterator[MapEntry[K, V]] { return r.base.Entries() }

// Reversed returns the underlying base map, undoing the reversal.
func (r *ReversedSequencedMap[K, V]) Reversed() *SequencedMap[K, V] { return r.base }

// ReversedMutableSequencedMap presents a MutableSequencedMap back to front.
// Writes through this view write through to the shared base in place.
type ReversedMutableSequencedMap[K any, V any] struct {
	base *MutableSequencedMap[K, V]
}

// Size returns the number of entries.
func (r *ReversedMutableSequencedMap[K, V]) Size() int { return r.base.Size() }

// IsEmpty reports whether the view has no entries.
func (r *ReversedMutableSequencedMap[K, V]) IsEmpty() bool { return r.base.IsEmpty() }

// Get returns the value associated with key, and whether it was present.
func (r *ReversedMutableSequencedMap[K, V]) Get(key K) (V, bool) { return r.base.Get(key) }

// ContainsKey reports whether key has an associated value.
func (r *ReversedMutableSequencedMap[K, V]) ContainsKey(key K) bool { return r.base.ContainsKey(key) }

// GetFirst returns the entry at the front of the reversed order, i.e. the
// base's last entry.
func (r *ReversedMutableSequencedMap[K, V]) GetFirst() (MapEntry[K, V], error) { return r.base.GetLast() }

// GetLast returns the entry at the back of the reversed order, i.e. the
// base's first entry.
func (r *ReversedMutableSequencedMap[K, V]) GetLast() (MapEntry[K, V], error) { return r.base.GetFirst() }

// PutFirst places key/value at the front of the reversed order, i.e.
// appends it in the base's order, mutating the shared base in place.
func (r *ReversedMutableSequencedMap[K, V]) PutFirst(key K, value V) bool {
	return r.base.PutLast(key, value)
}

// PutLast places key/value at the back of the reversed order, i.e. prepends
// it in the base's order, mutating the shared base in place.
func (r *ReversedMutableSequencedMap[K, V]) PutLast(key K, value V) bool {
	return r.base.PutFirst(key, value)
}

// Put is an alias for PutLast.
func (r *ReversedMutableSequencedMap[K, V]) Put(key K, value V) bool { return r.PutLast(key, value) }

// Remove deletes key from the shared base in place.
func (r *ReversedMutableSequencedMap[K, V]) Remove(key K) bool { return r.base.Remove(key) }

// RemoveFirst deletes and returns the entry at the front of the reversed
// order, i.e. the base's last entry.
func (r *ReversedMutableSequencedMap[K, V]) RemoveFirst() (MapEntry[K, V], error) {
	return r.base.RemoveLast()
}

// RemoveLast deletes and returns the entry at the back of the reversed
// order, i.e. the base's first entry.
func (r *ReversedMutableSequencedMap[K, V]) RemoveLast() (MapEntry[K, V], error) {
	return r.base.RemoveFirst()
}

// Clear empties the shared base in place.
func (r *ReversedMutableSequencedMap[K, V]) Clear() { r.base.Clear() }

// Entries returns a fail-fast iterator over the reversed order, i.e. the
// base's ReverseEntries.
func (r *ReversedMutableSequencedMap[K, V]) Entries() *Iterator[MapEntry[K, V]] {
	return r.base.ReverseEntries()
}

// ReverseEntries returns the reverse of Entries' order, i.e. the base's
// forward Entries.
func (r *ReversedMutableSequencedMap[K, V]) ReverseEntries() *Iterator[MapEntry[K, V]] {
	return r.base.Entries()
}

// Reversed returns the underlying base map, undoing the reversal.
func (r *ReversedMutableSequencedMap[K, V]) Reversed() *MutableSequencedMap[K, V] { return r.base }
