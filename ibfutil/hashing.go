package ibfutil

// Integer is the set of fixed-width integer kinds usable as a Key or a
// Value: types with a bitwise XOR operator and a zero identity element.
type Integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// HashFunc mixes a Key into an unsigned integer with good avalanche
// properties. It must be pure: the same key always yields the same hash.
// hash_index then re-keys H's output with each of the K seeds rather than
// running K independent hash functions.
type HashFunc[K Integer] func(K) uint64

// Murmur3Finalizer is the 64-bit finalizer mix from MurmurHash3. It's the
// reference hasher that IBF.New and IBD.New install, and so the one the IBF
// and IBD tests run against. Narrower
// key types are widened to uint64 before mixing.
func Murmur3Finalizer[K Integer](k K) uint64 {
	x := uint64(k)
	x ^= x >> 33
	x *= 0xff51afd7ed558ccd
	x ^= x >> 33
	x *= 0xc4ceb9fe1a85ec53
	x ^= x >> 33
	return x
}
