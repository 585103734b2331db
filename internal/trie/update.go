package trie

// Find implements spec 4.C.1: walk the trie by masked hash, returning the
// stored datum equal to data and true, or the zero value and false.
func Find[D any](n Node[D], data D, hash uint32, shift uint, eq EqualFn[D]) (D, bool) {
	switch t := n.(type) {
	case *BitmapIndexedNode[D]:
		m := mask(hash, shift)
		b := bitpos(m)

		switch {
		case t.dataMap&b != 0:
			cand := t.getDataByBit(b)
			if eq(cand, data) {
				return cand, true
			}
		case t.nodeMap&b != 0:
			return Find(t.getNodeByBit(b), data, hash, shift+BitPartitionSize, eq)
		}

		var zero D
		return zero, false

	case *CollisionNode[D]:
		if t.hash == hash {
			for _, e := range t.entries {
				if eq(e, data) {
					return e, true
				}
			}
		}
		var zero D
		return zero, false
	}

	var zero D
	return zero, false
}

// Update implements spec 4.C.2. owner authorizes in-place mutation of any
// node it is the recorded owner of; pass nil for a purely persistent
// update. replace combines an existing datum with the incoming one and is
// the sole point of variation shared by add/put/addFirst/addLast (spec
// design note "Replace combinators").
func Update[D any](n Node[D], owner *Owner, data D, hash uint32, shift uint, det *Details[D], replace ReplaceFn[D], eq EqualFn[D], hf HashFn[D]) Node[D] {
	switch t := n.(type) {
	case *BitmapIndexedNode[D]:
		m := mask(hash, shift)
		b := bitpos(m)

		if t.dataMap&b != 0 {
			idx := t.dataIndex(b)
			old := t.getData(idx)

			if eq(old, data) {
				newData, changed := replace(old, data)
				det.Updated = true
				det.Data = old
				if !changed {
					det.Modified = false
					return t
				}
				det.Modified = true
				return t.withDataReplaced(owner, idx, newData)
			}

			// Same bit, different element: split one level deeper (case 4).
			det.Modified = true
			det.Updated = false
			child := mergeTwo[D](owner, old, hf(old), data, hash, shift+BitPartitionSize)
			return t.withDataReplacedByNode(owner, b, child)
		}

		if t.nodeMap&b != 0 {
			idx := t.nodeIndex(b)
			child := t.getNode(idx)
			newChild := Update(child, owner, data, hash, shift+BitPartitionSize, det, replace, eq, hf)
			if newChild == child {
				return t
			}
			return t.withNodeReplaced(owner, idx, newChild)
		}

		det.Modified = true
		det.Updated = false
		return t.withDataInserted(owner, b, data)

	case *CollisionNode[D]:
		return updateCollision(t, owner, data, det, replace, eq)
	}

	panic("trie: unknown node type")
}

func updateCollision[D any](t *CollisionNode[D], owner *Owner, data D, det *Details[D], replace ReplaceFn[D], eq EqualFn[D]) Node[D] {
	for i, e := range t.entries {
		if !eq(e, data) {
			continue
		}

		newData, changed := replace(e, data)
		det.Updated = true
		det.Data = e
		if !changed {
			det.Modified = false
			return t
		}
		det.Modified = true

		if owns(t.owner, owner) {
			t.entries[i] = newData
			return t
		}
		entries := append([]D(nil), t.entries...)
		entries[i] = newData
		return &CollisionNode[D]{hash: t.hash, entries: entries, owner: owner}
	}

	det.Modified = true
	det.Updated = false

	if owns(t.owner, owner) {
		t.entries = append(t.entries, data)
		return t
	}
	entries := make([]D, len(t.entries)+1)
	copy(entries, t.entries)
	entries[len(t.entries)] = data
	return &CollisionNode[D]{hash: t.hash, entries: entries, owner: owner}
}

// Remove implements spec 4.C.3, including the leaf-collapse case required
// by testable property 7: a node left holding exactly one inline data entry
// and no children is never returned standing on its own, it is always
// inlined into its parent as a single data slot one level up.
func Remove[D any](n Node[D], owner *Owner, data D, hash uint32, shift uint, det *Details[D], eq EqualFn[D], hf HashFn[D]) Node[D] {
	switch t := n.(type) {
	case *BitmapIndexedNode[D]:
		m := mask(hash, shift)
		b := bitpos(m)

		if t.dataMap&b != 0 {
			idx := t.dataIndex(b)
			cand := t.getData(idx)
			if !eq(cand, data) {
				return t
			}
			det.Modified = true
			det.Data = cand

			if shift > 0 && t.dataArity() == 2 && t.nodeArity() == 0 {
				var otherIdx int
				if idx == 0 {
					otherIdx = 1
				}
				other := t.getData(otherIdx)
				return newSingleDataNode[D](bitpos(mask(hf(other), 0)), other)
			}

			return t.withDataRemoved(owner, b)
		}

		if t.nodeMap&b != 0 {
			idx := t.nodeIndex(b)
			child := t.getNode(idx)
			newChild := Remove(child, owner, data, hash, shift+BitPartitionSize, det, eq, hf)
			if !det.Modified {
				return t
			}

			switch c := newChild.(type) {
			case *BitmapIndexedNode[D]:
				if c.hasDataArityOne() {
					return t.withNodeReplacedByData(owner, b, c.singleData())
				}
			case *CollisionNode[D]:
				if len(c.entries) == 1 {
					return t.withNodeReplacedByData(owner, b, c.entries[0])
				}
			}
			return t.withNodeReplaced(owner, idx, newChild)
		}

		return t

	case *CollisionNode[D]:
		for i, e := range t.entries {
			if !eq(e, data) {
				continue
			}
			det.Modified = true
			det.Data = e

			if len(t.entries) == 2 {
				other := t.entries[0]
				if i == 0 {
					other = t.entries[1]
				}
				return newSingleDataNode[D](bitpos(mask(hf(other), 0)), other)
			}

			entries := make([]D, 0, len(t.entries)-1)
			entries = append(entries, t.entries[:i]...)
			entries = append(entries, t.entries[i+1:]...)

			if owns(t.owner, owner) {
				t.entries = entries
				return t
			}
			return &CollisionNode[D]{hash: t.hash, entries: entries, owner: owner}
		}
		return t
	}

	panic("trie: unknown node type")
}
