// Package champ implements persistent and mutable hash-trie sets and maps
// built on a Compressed Hash-Array Mapped Prefix-tree (CHAMP): a 32-way
// bitmap-indexed trie that keeps inline data and child node references in
// one compact array per node, and shares structure between versions via
// copy-path-on-write.
//
// Four collection shapes are exported: Set and Map give structurally
// shared, persistent snapshots; MutableSet and MutableMap give a
// single-owner, in-place-editable view built on the same trie; and the
// Sequenced variants of each additionally track insertion order, with
// periodic renumbering keeping that order representable in a fixed-width
// counter indefinitely.
//
// The trie engine itself lives in internal/trie and is not exported: this
// package is the stable surface, parameterized by a caller-supplied hash
// function and, where identity matters, an equality function.
package champ
