// Package bitmac provides generic bitmaps over pluggable word containers.
//
// A bitmap is three orthogonal choices: a word type (uint8 through uint64),
// a storage container, and a bit order. The bit order decides which physical
// bit of a word a logical index addresses: LSB numbers bit 0 as the least
// significant bit, MSB as the most significant bit.
//
// # Quick Start
//
// Fixed-length bitmap over a caller-owned byte slice:
//
//	buf := make([]uint8, 2)
//	bm := bitmac.NewStaticBitmap(bitmac.FixedFrom(buf), bitmac.LSB)
//	bm.Set(0, true)
//	bm.Set(9, true)
//	fmt.Println(bm.Get(9)) // true; buf now holds the bits
//
// Growable bitmap that sizes itself to the highest set index:
//
//	bm := bitmac.NewGrowable[uint8](bitmac.LSB)
//	bm.Set(100, true)
//	fmt.Println(bm.Len()) // 104 bits, 13 words
//
// # Containers
//
// Storage is behind small capability interfaces. Fixed and Slice wrap word
// slices (fixed-length and resizable), Scalar turns a single word into a
// one-slot container, View is read-only, and Buffer draws pooled byte
// storage for short-lived bitmaps. Anything implementing the interfaces
// works, including caller types over memory-mapped regions.
//
// # Growth
//
// VarBitmap delegates sizing to a GrowStrategy. MinimumGrowth resizes to the
// exact fit, FixedGrowth rounds up to a step multiple, LimitGrowth bounds
// the final size, and ForceGrowth makes clears past the bound grow too.
//
// # Set Algebra
//
// Intersection and union come in three shapes each: into a caller-supplied
// destination, into a freshly allocated container, or as a popcount without
// materializing the result. Intersections span the shorter operand, unions
// the longer one.
package bitmac
