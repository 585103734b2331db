// Package trie implements the CHAMP (Compressed Hash-Array Mapped Prefix-tree)
// node model and the update/remove/find/iteration engine shared by every
// public set and map type in the parent champ package.
//
// A trie consists of a number of connected nodes. Every non-leaf node is a
// BitmapIndexedNode holding, in one mixed slice, inline data entries at the
// front and child node pointers at the back; two 32-bit bitmaps (dataMap,
// nodeMap) say which of the 32 possible slots at this level are occupied and
// by which kind. A CollisionNode appears only where two distinct elements
// share a full 32-bit hash.
//
// Node bitpack (conceptually, spread across two fields rather than packed
// into one word as the teacher's qptrie.Twig does, since Go's struct layout
// makes packing unnecessary for a 32-way fan-out):
//
//	BitmapIndexedNode:  dataMap uint32, nodeMap uint32, content []any
//	CollisionNode:      hash    uint32, entries []D
//
// content holds, in order: inline data (ascending bit-position order of
// dataMap), then child Node[D] references (descending bit-position order of
// nodeMap) -- mirroring qptrie's own "data at front, children at back of one
// mixed array" layout, generalized from a 64-bit bitpack to two uint32
// bitmaps because CHAMP's partition size is 5 bits (32-way) rather than
// qptrie's variable nibble width.
package trie
