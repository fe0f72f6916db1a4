package IBF

import (
	"github.com/g-m-twostay/ibf/Sets"
	"github.com/g-m-twostay/ibf/ibfutil"
)

// DefaultK is the number of hash seeds used per element when a caller
// doesn't need to override it. Three seeds is the point in the reference
// implementation where added seeds stop meaningfully improving the pure
// bucket rate for typical load factors.
const DefaultK = 3

type bucket[E ibfutil.Integer] struct {
	cumulative E
	count      int32
}

// IBF is an Invertible Bloom Filter over an Integer element type E. Its
// directory size and seed count are both fixed for the object's lifetime;
// see Sets.ProbabilisticSet for the operations it exposes.
type IBF[E ibfutil.Integer] struct {
	dir     []bucket[E]
	seeds   []uint64
	size    int
	hash    ibfutil.HashFunc[E]
	scratch []int
}

var _ Sets.ProbabilisticSet[uint64] = (*IBF[uint64])(nil)

// NewK builds an IBF with a directory of m buckets and k independently
// drawn seeds, hashing elements with h. genSeed controls only the seed
// draw, not per-insert randomness, so two filters built with the same m,
// k, and genSeed always assign the same element to the same buckets.
func NewK[E ibfutil.Integer](k, m int, genSeed uint32, h ibfutil.HashFunc[E]) *IBF[E] {
	if m <= 0 {
		panic("IBF: directory size must be positive")
	}
	if k <= 0 {
		panic("IBF: seed count must be positive")
	}
	return &IBF[E]{
		dir:     make([]bucket[E], m),
		seeds:   ibfutil.GenerateSeeds(k, genSeed),
		hash:    h,
		scratch: make([]int, 0, k),
	}
}

// New builds an IBF with DefaultK seeds and the Murmur3Finalizer hasher.
func New[E ibfutil.Integer](m int, genSeed uint32) *IBF[E] {
	return NewK[E](DefaultK, m, genSeed, ibfutil.Murmur3Finalizer[E])
}

func (f *IBF[E]) indices(e E) []int {
	return ibfutil.Indices(f.hash, e, f.seeds, len(f.dir), f.scratch)
}

// Insert records e. See Sets.ProbabilisticSet.
func (f *IBF[E]) Insert(e E) {
	for _, i := range f.indices(e) {
		f.dir[i].cumulative ^= e
		f.dir[i].count++
	}
	f.size++
}

// Remove deletes e. See Sets.ProbabilisticSet; removing an element that was
// never inserted corrupts every bucket it touches.
func (f *IBF[E]) Remove(e E) {
	for _, i := range f.indices(e) {
		f.dir[i].cumulative ^= e
		f.dir[i].count--
	}
	f.size--
}

// Contains reports whether e was inserted, might have been, or wasn't.
//
// Any zero-count bucket among e's indices is definitive: e would have
// touched it on Insert, so its absence rules e out entirely. Any pure
// (count == 1) bucket is also definitive: it is single-handedly explained
// by whichever one element put it there, so it settles e's membership by
// direct comparison. Contains only degrades to MightExist when every one
// of e's buckets is occupied by two or more elements XORed together.
func (f *IBF[E]) Contains(e E) ibfutil.ContainsResult {
	for _, i := range f.indices(e) {
		b := f.dir[i]
		switch b.count {
		case 0:
			return ibfutil.NotFound
		case 1:
			if b.cumulative == e {
				return ibfutil.Exists
			}
			return ibfutil.NotFound
		}
	}
	return ibfutil.MightExist
}

// Size reports how many elements have been inserted and not yet removed.
func (f *IBF[E]) Size() int {
	return f.size
}

// DirectorySize reports the fixed bucket count this filter was built with.
func (f *IBF[E]) DirectorySize() int {
	return len(f.dir)
}

// ListSeeds returns a copy of the seeds this filter hashes elements with.
func (f *IBF[E]) ListSeeds() []uint64 {
	cp := make([]uint64, len(f.seeds))
	copy(cp, f.seeds)
	return cp
}

// ListAll attempts to recover every inserted element by peeling pure
// buckets off a scratch copy of the directory, leaving f itself untouched.
// It fails once no bucket is pure but elements remain unrecovered.
func (f *IBF[E]) ListAll() ([]E, bool) {
	dir := make([]bucket[E], len(f.dir))
	copy(dir, f.dir)
	scratch := make([]int, 0, len(f.seeds))

	countAt := func(i int) int { return int(dir[i].count) }
	emit := func(i int) E { return dir[i].cumulative }
	removeAt := func(i int) []int {
		e := dir[i].cumulative
		idx := ibfutil.Indices(f.hash, e, f.seeds, len(dir), scratch)
		for _, j := range idx {
			dir[j].cumulative ^= e
			dir[j].count--
		}
		return idx
	}

	return ibfutil.Peel[E](len(dir), f.size, countAt, emit, removeAt)
}
