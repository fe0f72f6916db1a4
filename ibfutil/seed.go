package ibfutil

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/rand"
)

// GenerateSeeds draws k pairwise-distinct 64-bit seeds from a generator
// seeded with genSeed, by rejection sampling. K is expected to be small (the
// default is 3), so a linear scan against the seeds drawn so far is cheaper
// and simpler than backing it with a set.
func GenerateSeeds(k int, genSeed uint32) []uint64 {
	rng := rand.New(rand.NewSource(int64(genSeed)))
	seeds := make([]uint64, 0, k)
next:
	for len(seeds) < k {
		candidate := rng.Uint64()
		for _, s := range seeds {
			if s == candidate {
				continue next
			}
		}
		seeds = append(seeds, candidate)
	}
	return seeds
}

// EntropySeed draws a generator seed from the OS entropy pool, for callers
// who don't need reproducible seeding across runs.
func EntropySeed() uint32 {
	var b [4]byte
	if _, err := cryptorand.Read(b[:]); err != nil {
		panic("ibfutil: reading entropy seed: " + err.Error())
	}
	return binary.BigEndian.Uint32(b[:])
}
