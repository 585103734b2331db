package trie

// withDataReplaced replaces the data at content index idx with a new value
// of the same arity (no bitmap change), mutating in place when owner is
// permitted to edit this node and copying otherwise.
func (n *BitmapIndexedNode[D]) withDataReplaced(owner *Owner, idx int, data D) *BitmapIndexedNode[D] {
	if owns(n.owner, owner) {
		n.content[idx] = data
		return n
	}
	content := append([]any(nil), n.content...)
	content[idx] = data
	return &BitmapIndexedNode[D]{dataMap: n.dataMap, nodeMap: n.nodeMap, content: content, owner: owner}
}

// withNodeReplaced replaces the child at content index idx with a new
// child, mutating in place when permitted.
func (n *BitmapIndexedNode[D]) withNodeReplaced(owner *Owner, idx int, child Node[D]) *BitmapIndexedNode[D] {
	if owns(n.owner, owner) {
		n.content[idx] = child
		return n
	}
	content := append([]any(nil), n.content...)
	content[idx] = child
	return &BitmapIndexedNode[D]{dataMap: n.dataMap, nodeMap: n.nodeMap, content: content, owner: owner}
}

// withDataInserted inlines a brand-new data entry at bit, which must
// currently be clear in both bitmaps.
func (n *BitmapIndexedNode[D]) withDataInserted(owner *Owner, bit uint32, data D) *BitmapIndexedNode[D] {
	idx := n.dataIndex(bit)
	content := make([]any, len(n.content)+1)
	copy(content[:idx], n.content[:idx])
	content[idx] = data
	copy(content[idx+1:], n.content[idx:])
	newDataMap := n.dataMap | bit

	if owns(n.owner, owner) {
		n.dataMap = newDataMap
		n.content = content
		return n
	}
	return &BitmapIndexedNode[D]{dataMap: newDataMap, nodeMap: n.nodeMap, content: content, owner: owner}
}

// withDataRemoved removes the data entry at bit, which must currently be
// set in dataMap.
func (n *BitmapIndexedNode[D]) withDataRemoved(owner *Owner, bit uint32) *BitmapIndexedNode[D] {
	idx := n.dataIndex(bit)
	content := make([]any, len(n.content)-1)
	copy(content[:idx], n.content[:idx])
	copy(content[idx:], n.content[idx+1:])
	newDataMap := n.dataMap &^ bit

	if owns(n.owner, owner) {
		n.dataMap = newDataMap
		n.content = content
		return n
	}
	return &BitmapIndexedNode[D]{dataMap: newDataMap, nodeMap: n.nodeMap, content: content, owner: owner}
}

// rebuildNode constructs a fresh node from scratch given the desired
// bitmaps and per-bit lookups. It is used only for the two slot-kind
// transitions below, where a one-slot splice would have to juggle both the
// data and node regions of content at once; a full rebuild from the (at
// most 32-wide) bitmaps is cheap and hard to get wrong.
func rebuildNode[D any](owner *Owner, dataMap, nodeMap uint32, dataAt func(bit uint32) D, nodeAt func(bit uint32) Node[D]) *BitmapIndexedNode[D] {
	dataBits := bitsAscending(dataMap)
	nodeBits := bitsAscending(nodeMap)
	content := make([]any, len(dataBits)+len(nodeBits))

	for i, b := range dataBits {
		content[i] = dataAt(b)
	}
	for i := range nodeBits {
		// nodes are stored in descending bit-position order at the back
		b := nodeBits[len(nodeBits)-1-i]
		content[len(dataBits)+i] = nodeAt(b)
	}
	return &BitmapIndexedNode[D]{dataMap: dataMap, nodeMap: nodeMap, content: content, owner: owner}
}

// withDataReplacedByNode moves the inline data at bit out into a child node
// (spec 4.C.2 case 4): clears the bit in dataMap, sets it in nodeMap.
func (n *BitmapIndexedNode[D]) withDataReplacedByNode(owner *Owner, bit uint32, child Node[D]) *BitmapIndexedNode[D] {
	newDataMap := n.dataMap &^ bit
	newNodeMap := n.nodeMap | bit
	return rebuildNode[D](owner, newDataMap, newNodeMap,
		func(b uint32) D { return n.getDataByBit(b) },
		func(b uint32) Node[D] {
			if b == bit {
				return child
			}
			return n.getNodeByBit(b)
		})
}

// withNodeReplacedByData inlines a collapsed child's sole entry at bit
// (spec 4.C.3 "child became a single-entry node"): clears the bit in
// nodeMap, sets it in dataMap.
func (n *BitmapIndexedNode[D]) withNodeReplacedByData(owner *Owner, bit uint32, data D) *BitmapIndexedNode[D] {
	newDataMap := n.dataMap | bit
	newNodeMap := n.nodeMap &^ bit
	return rebuildNode[D](owner, newDataMap, newNodeMap,
		func(b uint32) D {
			if b == bit {
				return data
			}
			return n.getDataByBit(b)
		},
		func(b uint32) Node[D] { return n.getNodeByBit(b) })
}

// mergeTwo builds the smallest subtree containing two data entries that
// collided at shift (spec 4.C.2 case 4's recursive split). At the maximum
// depth it falls back to a CollisionNode.
func mergeTwo[D any](owner *Owner, d0 D, hash0 uint32, d1 D, hash1 uint32, shift uint) Node[D] {
	if shift >= HashBits {
		return &CollisionNode[D]{hash: hash0, entries: []D{d0, d1}, owner: owner}
	}

	m0, m1 := mask(hash0, shift), mask(hash1, shift)
	if m0 != m1 {
		b0, b1 := bitpos(m0), bitpos(m1)
		content := make([]any, 2)
		if m0 < m1 {
			content[0], content[1] = d0, d1
		} else {
			content[0], content[1] = d1, d0
		}
		return &BitmapIndexedNode[D]{dataMap: b0 | b1, content: content, owner: owner}
	}

	child := mergeTwo(owner, d0, hash0, d1, hash1, shift+BitPartitionSize)
	return &BitmapIndexedNode[D]{nodeMap: bitpos(m0), content: []any{child}, owner: owner}
}
