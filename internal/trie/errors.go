package trie

import "errors"

// Sentinel errors for the five error kinds of spec 7. They live here (and
// are re-exported, not copied, by the champ package) so the iteration and
// update engine can raise them without an import cycle back to the public
// API package.
var (
	ErrNoSuchElement          = errors.New("champ: no such element")
	ErrConcurrentModification = errors.New("champ: concurrent structural modification")
	ErrIllegalState           = errors.New("champ: illegal iterator state")
	ErrIllegalArgument        = errors.New("champ: illegal argument")
	ErrUnsupportedOperation   = errors.New("champ: unsupported mutation")
)
