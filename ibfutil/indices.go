package ibfutil

// Indices computes the (up to) K bucket indices a key maps to in a
// directory of m buckets, writing them into dst and returning the used
// prefix. dst is truncated and appended to; with capacity >= len(seeds) no
// allocation happens.
//
// hash_index(key, seed) = (H(key) XOR seed) mod m. Two seeds can legally
// collide on the same index for a given key (birthday collisions among K
// small seeds are not rare once m is small), and a caller that XORs or
// counts that index twice would cancel it back out of the bucket instead of
// recording it. Indices dedups so every distinct index touched by key is
// reported exactly once, regardless of how many seeds mapped to it.
func Indices[K Integer](h HashFunc[K], key K, seeds []uint64, m int, dst []int) []int {
	hk := h(key)
	dst = dst[:0]
	for _, s := range seeds {
		idx := int((hk ^ s) % uint64(m))
		dup := false
		for _, d := range dst {
			if d == idx {
				dup = true
				break
			}
		}
		if !dup {
			dst = append(dst, idx)
		}
	}
	return dst
}
