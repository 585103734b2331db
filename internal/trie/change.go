package trie

// HashFn computes the 32-bit hash of a stored datum.
type HashFn[D any] func(D) uint32

// EqualFn reports whether two stored data are the same element/entry.
type EqualFn[D any] func(a, b D) bool

// ReplaceFn combines an existing datum with an incoming one, as used by
// add/put and by addFirst/addLast and putFirst/putLast on the sequenced
// variants. It is the one point of variation the spec's single update path
// allows (see spec 4.C.2 / design note "Replace combinators").
//
// The spec phrases the no-op case as "result is identity-equal to old"; Go
// generic values have no reference identity to compare, so the combinator
// reports the no-op explicitly via changed instead of the engine inferring
// it from a pointer comparison. KeepOld/TakeNew below are the two
// unconditional combinators; the sequenced set uses KeepOld, and the
// sequenced map supplies a combinator that keeps the old Seq, takes the
// incoming value and always reports a change.
type ReplaceFn[D any] func(old, incoming D) (result D, changed bool)

// Details is the change descriptor produced by Update/Remove: whether the
// trie changed, whether a matching datum was found, and the prior datum
// (needed by callers to decrement size, recover an old value, or read a
// dislodged sequence number).
type Details[D any] struct {
	Modified bool
	Updated  bool
	Data     D
}

// Reset clears a Details for reuse across a batch of operations.
func (d *Details[D]) Reset() {
	var zero D
	d.Modified = false
	d.Updated = false
	d.Data = zero
}

// KeepOld is a ReplaceFn that always keeps the existing value, reporting no
// change. Useful for set-like "add if absent" semantics.
func KeepOld[D any](old, _ D) (D, bool) { return old, false }

// TakeNew is a ReplaceFn that always keeps the incoming value, reporting a
// change -- the put-style combinator (the sets' add uses KeepOld).
func TakeNew[D any](_, incoming D) (D, bool) { return incoming, true }
