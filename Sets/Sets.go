// Package Sets declares the contract shared by this module's set
// implementations, the way Maps.ProbabilisticMap declares it for the
// dictionary side.
package Sets

import "github.com/g-m-twostay/ibf/ibfutil"

// ProbabilisticSet is a set that trades certainty for a fixed, up-front
// memory budget: membership can come back as "maybe" instead of "yes" or
// "no", and full enumeration can fail outright once too many elements have
// been packed in.
type ProbabilisticSet[E ibfutil.Integer] interface {
	// Insert records e. Insert never fails; a directory that's over capacity
	// degrades Contains and ListAll instead of rejecting new elements.
	Insert(e E)

	// Remove deletes e. Removing an element that was never inserted corrupts
	// the structure's bookkeeping for whatever unrelated elements happen to
	// share a bucket with e; callers must only remove what they inserted.
	Remove(e E)

	// Contains reports whether e was inserted, might have been, or wasn't.
	Contains(e E) ibfutil.ContainsResult

	// ListAll attempts to recover every inserted element. It fails (ok
	// false) once the structure holds more elements than its directory can
	// unambiguously decode.
	ListAll() (elems []E, ok bool)

	// Size reports how many elements have been inserted and not yet removed.
	Size() int
}
