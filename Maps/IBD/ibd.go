package IBD

import (
	"github.com/g-m-twostay/ibf/Maps"
	"github.com/g-m-twostay/ibf/ibfutil"
)

// DefaultK mirrors IBF.DefaultK; three seeds is where added seeds stop
// meaningfully improving the pure bucket rate for typical load factors.
const DefaultK = 3

type bucket[K ibfutil.Integer, V ibfutil.Integer] struct {
	cumulativeKey   K
	cumulativeValue V
	count           int32
}

// IBD is an Invertible Bloom Dictionary over Integer key and value types.
// Its directory size and seed count are both fixed for the object's
// lifetime; see Maps.ProbabilisticMap for the operations it exposes.
type IBD[K ibfutil.Integer, V ibfutil.Integer] struct {
	dir     []bucket[K, V]
	seeds   []uint64
	size    int
	hash    ibfutil.HashFunc[K]
	scratch []int
}

var _ Maps.ProbabilisticMap[uint64, uint64] = (*IBD[uint64, uint64])(nil)

// NewK builds an IBD with a directory of m buckets and k independently
// drawn seeds, hashing keys with h. genSeed controls only the seed draw:
// two dictionaries built with the same m, k, and genSeed always assign a
// given key to the same buckets.
func NewK[K ibfutil.Integer, V ibfutil.Integer](k, m int, genSeed uint32, h ibfutil.HashFunc[K]) *IBD[K, V] {
	if m <= 0 {
		panic("IBD: directory size must be positive")
	}
	if k <= 0 {
		panic("IBD: seed count must be positive")
	}
	return &IBD[K, V]{
		dir:     make([]bucket[K, V], m),
		seeds:   ibfutil.GenerateSeeds(k, genSeed),
		hash:    h,
		scratch: make([]int, 0, k),
	}
}

// New builds an IBD with DefaultK seeds and the Murmur3Finalizer hasher
// applied to keys.
func New[K ibfutil.Integer, V ibfutil.Integer](m int, genSeed uint32) *IBD[K, V] {
	return NewK[K, V](DefaultK, m, genSeed, ibfutil.Murmur3Finalizer[K])
}

func (d *IBD[K, V]) indices(key K) []int {
	return ibfutil.Indices(d.hash, key, d.seeds, len(d.dir), d.scratch)
}

// Insert records key -> value. See Maps.ProbabilisticMap.
func (d *IBD[K, V]) Insert(key K, value V) {
	for _, i := range d.indices(key) {
		d.dir[i].cumulativeKey ^= key
		d.dir[i].cumulativeValue ^= value
		d.dir[i].count++
	}
	d.size++
}

// Remove deletes the pair for key. It calls Get(key) itself and XORs the
// recovered value out alongside the key; when Get can't settle key from a
// pure bucket, Remove does nothing. Like the reference implementation, it
// uses a successful get as remove's precondition rather than contains.
func (d *IBD[K, V]) Remove(key K) {
	value, ok := d.Get(key)
	if !ok {
		return
	}
	for _, i := range d.indices(key) {
		d.dir[i].cumulativeKey ^= key
		d.dir[i].cumulativeValue ^= value
		d.dir[i].count--
	}
	d.size--
}

// Contains reports whether key was inserted, might have been, or wasn't.
// See IBF.Contains for why a zero-count or pure bucket is always
// definitive and a multiply-occupied one never is.
func (d *IBD[K, V]) Contains(key K) ibfutil.ContainsResult {
	for _, i := range d.indices(key) {
		b := d.dir[i]
		switch b.count {
		case 0:
			return ibfutil.NotFound
		case 1:
			if b.cumulativeKey == key {
				return ibfutil.Exists
			}
			return ibfutil.NotFound
		}
	}
	return ibfutil.MightExist
}

// Get attempts to recover the value stored for key. It stops at the first
// pure bucket among key's indices rather than requiring all of them to
// agree, since one pure bucket already settles the question.
func (d *IBD[K, V]) Get(key K) (V, bool) {
	for _, i := range d.indices(key) {
		b := d.dir[i]
		if b.count == 0 {
			var zero V
			return zero, false
		}
		if b.count == 1 {
			if b.cumulativeKey == key {
				return b.cumulativeValue, true
			}
			var zero V
			return zero, false
		}
	}
	var zero V
	return zero, false
}

// Size reports how many pairs have been inserted and not yet removed.
func (d *IBD[K, V]) Size() int {
	return d.size
}

// DirectorySize reports the fixed bucket count this dictionary was built
// with.
func (d *IBD[K, V]) DirectorySize() int {
	return len(d.dir)
}

// ListSeeds returns a copy of the seeds this dictionary hashes keys with.
func (d *IBD[K, V]) ListSeeds() []uint64 {
	cp := make([]uint64, len(d.seeds))
	copy(cp, d.seeds)
	return cp
}

// ListAll attempts to recover every inserted pair by peeling pure buckets
// off a scratch copy of the directory, leaving d itself untouched.
func (d *IBD[K, V]) ListAll() ([]Maps.Pair[K, V], bool) {
	dir := make([]bucket[K, V], len(d.dir))
	copy(dir, d.dir)
	scratch := make([]int, 0, len(d.seeds))

	countAt := func(i int) int { return int(dir[i].count) }
	emit := func(i int) Maps.Pair[K, V] {
		return Maps.Pair[K, V]{Key: dir[i].cumulativeKey, Value: dir[i].cumulativeValue}
	}
	removeAt := func(i int) []int {
		key, value := dir[i].cumulativeKey, dir[i].cumulativeValue
		idx := ibfutil.Indices(d.hash, key, d.seeds, len(dir), scratch)
		for _, j := range idx {
			dir[j].cumulativeKey ^= key
			dir[j].cumulativeValue ^= value
			dir[j].count--
		}
		return idx
	}

	return ibfutil.Peel[Maps.Pair[K, V]](len(dir), d.size, countAt, emit, removeAt)
}
