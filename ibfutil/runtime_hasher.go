package ibfutil

import (
	_ "runtime"
	"unsafe"
)

//go:linkname rtHash runtime.memhash
//go:noescape
func rtHash(ptr unsafe.Pointer, seed uint, len uintptr) uint

//go:linkname rtHash64 runtime.memhash64
//go:noescape
func rtHash64(ptr unsafe.Pointer, seed uint) uint

//go:linkname rtHash32 runtime.memhash32
//go:noescape
func rtHash32(ptr unsafe.Pointer, seed uint) uint

// RuntimeSeed selects one of the Go runtime's own hash functions. It's an
// alternative to Murmur3Finalizer for callers who want to avoid writing
// their own mixer and don't mind depending on runtime internals outside the
// Go 1 compatibility promise.
type RuntimeSeed uint

// HashRuntime hashes k's memory representation using the runtime hasher
// seeded by s. It dispatches on width the same way the runtime's own map
// implementation does, rather than always taking the generic byte-range path.
func HashRuntime[K Integer](s RuntimeSeed, k K) uint64 {
	switch unsafe.Sizeof(k) {
	case 4:
		return uint64(rtHash32(unsafe.Pointer(&k), uint(s)))
	case 8:
		return uint64(rtHash64(unsafe.Pointer(&k), uint(s)))
	default:
		return uint64(rtHash(unsafe.Pointer(&k), uint(s), unsafe.Sizeof(k)))
	}
}
