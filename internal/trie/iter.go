package trie

// frame is one level of the fixed-depth iteration stack: the node being
// visited and a cursor into its content (data slots first, then children,
// matching storage order).
type frame[D any] struct {
	node   *BitmapIndexedNode[D]
	cursor int
}

// Iterator walks a trie in arbitrary order: at each node it yields every
// inline data entry before descending depth-first into children, per spec
// 4.E. The stack is bounded by MaxDepth, so storage is O(1) regardless of
// trie size.
type Iterator[D any] struct {
	stack   []frame[D]
	coll    *CollisionNode[D]
	collIdx int
	cur     D
	ok      bool
}

// NewIterator returns an iterator over every datum reachable from root.
func NewIterator[D any](root Node[D]) *Iterator[D] {
	it := &Iterator[D]{stack: make([]frame[D], 0, MaxDepth)}
	it.push(root)
	it.advance()
	return it
}

func (it *Iterator[D]) push(n Node[D]) {
	switch t := n.(type) {
	case *BitmapIndexedNode[D]:
		it.stack = append(it.stack, frame[D]{node: t})
	case *CollisionNode[D]:
		it.coll = t
		it.collIdx = 0
	}
}

// HasNext reports whether Next would yield another datum.
func (it *Iterator[D]) HasNext() bool { return it.ok }

// Next returns the next datum in the traversal. It panics with
// ErrNoSuchElement if HasNext is false, matching the Java iterator contract
// the spec mandates (an unchecked condition, not a recoverable error).
func (it *Iterator[D]) Next() D {
	if !it.ok {
		panic(ErrNoSuchElement)
	}
	v := it.cur
	it.advance()
	return v
}

func (it *Iterator[D]) advance() {
	for {
		if it.coll != nil {
			if it.collIdx < len(it.coll.entries) {
				it.cur = it.coll.entries[it.collIdx]
				it.collIdx++
				it.ok = true
				return
			}
			it.coll = nil
		}

		if len(it.stack) == 0 {
			it.ok = false
			return
		}

		top := &it.stack[len(it.stack)-1]
		da := top.node.dataArity()
		total := da + top.node.nodeArity()

		if top.cursor < da {
			it.cur = top.node.getData(top.cursor)
			top.cursor++
			it.ok = true
			return
		}

		if top.cursor < total {
			child := top.node.getNode(top.cursor)
			top.cursor++
			it.push(child)
			continue
		}

		it.stack = it.stack[:len(it.stack)-1]
	}
}

// Count drains an arbitrary-order traversal of root, returning how many
// data entries it holds. Used by tests checking "size equals iteration
// length" (testable property 4) without threading a separate size field.
func Count[D any](root Node[D]) int {
	n := 0
	it := NewIterator[D](root)
	for it.HasNext() {
		it.Next()
		n++
	}
	return n
}

// Collect drains an arbitrary-order traversal of root into a slice.
func Collect[D any](root Node[D]) []D {
	out := make([]D, 0, 8)
	it := NewIterator[D](root)
	for it.HasNext() {
		out = append(out, it.Next())
	}
	return out
}
