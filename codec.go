package champ

import (
	"encoding/gob"
	"io"
)

// WriteSet implements spec §6's wire contract: a 32-bit count prefix
// followed by every element in iteration order. Encoding itself is
// delegated to encoding/gob, so T must be gob-encodable (register any
// interface element types with gob.Register before calling this).
func WriteSet[T any](w io.Writer, s *Set[T]) error {
	enc := gob.NewEncoder(w)
	if err := enc.Encode(uint32(s.Size())); err != nil {
		return err
	}
	it := s.Iterator()
	for it.HasNext() {
		v, err := it.Next()
		if err != nil {
			return err
		}
		if err := enc.Encode(v); err != nil {
			return err
		}
	}
	return nil
}

// ReadSet reconstructs a Set written by WriteSet, inserting elements in the
// order they were encoded (irrelevant for the plain variant's element set,
// but cheap to preserve).
func ReadSet[T any](r io.Reader, hash HashFunc[T], eq EqualFunc[T]) (*Set[T], error) {
	dec := gob.NewDecoder(r)
	var count uint32
	if err := dec.Decode(&count); err != nil {
		return nil, err
	}
	s := NewSet(hash, eq)
	for i := uint32(0); i < count; i++ {
		var v T
		if err := dec.Decode(&v); err != nil {
			return nil, err
		}
		s = s.Add(v)
	}
	return s, nil
}

// WriteMap writes m as a 32-bit count prefix followed by every key/value
// entry in iteration order.
func WriteMap[K any, V any](w io.Writer, m *Map[K, V]) error {
	enc := gob.NewEncoder(w)
	if err := enc.Encode(uint32(m.Size())); err != nil {
		return err
	}
	it := m.Entries()
	for it.HasNext() {
		e, err := it.Next()
		if err != nil {
			return err
		}
		if err := enc.Encode(e.Key); err != nil {
			return err
		}
		if err := enc.Encode(e.Value); err != nil {
			return err
		}
	}
	return nil
}

// ReadMap reconstructs a Map written by WriteMap. valueEq is threaded
// through to the resulting Map so its Equal method can compare values.
func ReadMap[K any, V any](r io.Reader, hash HashFunc[K], eq EqualFunc[K], valueEq EqualFunc[V]) (*Map[K, V], error) {
	dec := gob.NewDecoder(r)
	var count uint32
	if err := dec.Decode(&count); err != nil {
		return nil, err
	}
	m := NewMap[K, V](hash, eq, valueEq)
	for i := uint32(0); i < count; i++ {
		var k K
		var v V
		if err := dec.Decode(&k); err != nil {
			return nil, err
		}
		if err := dec.Decode(&v); err != nil {
			return nil, err
		}
		m = m.Put(k, v)
	}
	return m, nil
}

// WriteSequencedSet writes s as a 32-bit count prefix followed by every
// element in insertion order, so ReadSequencedSet recovers the same order
// (spec §6, "the sequenced variant recovers the same element set and the
// same iteration order").
func WriteSequencedSet[T any](w io.Writer, s *SequencedSet[T]) error {
	enc := gob.NewEncoder(w)
	if err := enc.Encode(uint32(s.Size())); err != nil {
		return err
	}
	it := s.Iterator()
	for it.HasNext() {
		v, err := it.Next()
		if err != nil {
			return err
		}
		if err := enc.Encode(v); err != nil {
			return err
		}
	}
	return nil
}

// ReadSequencedSet reconstructs a SequencedSet written by
// WriteSequencedSet, appending elements in the order they were encoded so
// the recovered iteration order matches the original.
func ReadSequencedSet[T any](r io.Reader, hash HashFunc[T], eq EqualFunc[T]) (*SequencedSet[T], error) {
	dec := gob.NewDecoder(r)
	var count uint32
	if err := dec.Decode(&count); err != nil {
		return nil, err
	}
	s := NewSequencedSet(hash, eq)
	for i := uint32(0); i < count; i++ {
		var v T
		if err := dec.Decode(&v); err != nil {
			return nil, err
		}
		s = s.AddLast(v)
	}
	return s, nil
}

// WriteSequencedMap writes m as a 32-bit count prefix followed by every
// entry in insertion order.
func WriteSequencedMap[K any, V any](w io.Writer, m *SequencedMap[K, V]) error {
	enc := gob.NewEncoder(w)
	if err := enc.Encode(uint32(m.Size())); err != nil {
		return err
	}
	it := m.Entries()
	for it.HasNext() {
		e, err := it.Next()
		if err != nil {
			return err
		}
		if err := enc.Encode(e.Key); err != nil {
			return err
		}
		if err := enc.Encode(e.Value); err != nil {
			return err
		}
	}
	return nil
}

// ReadSequencedMap reconstructs a SequencedMap written by
// WriteSequencedMap, preserving entry order.
func ReadSequencedMap[K any, V any](r io.Reader, hash HashFunc[K], eq EqualFunc[K]) (*SequencedMap[K, V], error) {
	dec := gob.NewDecoder(r)
	var count uint32
	if err := dec.Decode(&count); err != nil {
		return nil, err
	}
	m := NewSequencedMap[K, V](hash, eq)
	for i := uint32(0); i < count; i++ {
		var k K
		var v V
		if err := dec.Decode(&k); err != nil {
			return nil, err
		}
		if err := dec.Decode(&v); err != nil {
			return nil, err
		}
		m = m.PutLast(k, v)
	}
	return m, nil
}
