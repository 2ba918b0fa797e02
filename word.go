package bitmac

import (
	"math/bits"
	"unsafe"
)

// Word is the set of unsigned integer types usable as bitmap storage words.
//
// A bitmap stores its bits packed into words of a single width; the width is
// fixed by the type argument and never changes at runtime.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// wordBits returns the number of bits in W.
func wordBits[W Word]() int {
	var z W
	return int(unsafe.Sizeof(z)) * 8
}

// wordBytes returns the number of bytes in W.
func wordBytes[W Word]() int {
	var z W
	return int(unsafe.Sizeof(z))
}

// onesCount returns the number of set bits in w.
func onesCount[W Word](w W) int {
	return bits.OnesCount64(uint64(w))
}
