package trie

// Owner is an ownership token: an allocation whose identity, not its
// contents, marks which mutable view may edit a node in place. It is the Go
// rendition of the "allocation whose identity is compared" branch of the
// spec's ownership-token design note -- the same trick the teacher uses for
// its own unsetPtr sentinel (qptrie/twig.go: `unsafe.Pointer(new(struct{}))`
// exists purely so its *address* differs from every real pointer).
type Owner struct{ _ byte }

// NewOwner allocates a fresh, distinct token in O(1).
func NewOwner() *Owner {
	return &Owner{}
}

// owns reports whether a node tagged with nodeOwner may be mutated in place
// by a caller holding caller. A nil nodeOwner means the node is shared
// (published via an immutable view) and must always be copied.
func owns(nodeOwner, caller *Owner) bool {
	return nodeOwner != nil && caller != nil && nodeOwner == caller
}
