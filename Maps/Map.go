// Package Maps declares the contract shared by this module's dictionary
// implementations, parallel to Sets for the set side.
package Maps

import "github.com/g-m-twostay/ibf/ibfutil"

// Pair is a recovered key/value association, as returned by ListAll.
type Pair[K ibfutil.Integer, V ibfutil.Integer] struct {
	Key   K
	Value V
}

// ProbabilisticMap is a dictionary that trades certainty for a fixed,
// up-front memory budget: Get can come back ambiguous instead of a clean
// hit or miss, and full enumeration can fail once too many pairs have been
// packed in.
type ProbabilisticMap[K ibfutil.Integer, V ibfutil.Integer] interface {
	// Insert records the association key -> value. Insert never fails; a
	// directory that's over capacity degrades Get and ListAll instead of
	// rejecting new pairs.
	Insert(key K, value V)

	// Remove deletes the association for key when Get(key) reports a
	// definitive hit. When key's presence can't be settled from a pure
	// bucket, Remove does nothing.
	Remove(key K)

	// Contains reports whether key was inserted, might have been, or
	// wasn't, without recovering its value.
	Contains(key K) ibfutil.ContainsResult

	// Get attempts to recover the value associated with key. ok is false
	// when key's presence can't be settled from a pure bucket.
	Get(key K) (value V, ok bool)

	// ListAll attempts to recover every inserted pair. It fails (ok false)
	// once the structure holds more pairs than its directory can
	// unambiguously decode.
	ListAll() (pairs []Pair[K, V], ok bool)

	// Size reports how many pairs have been inserted and not yet removed.
	Size() int
}
