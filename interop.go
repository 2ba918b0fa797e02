package bitmac

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"
)

// Interop bridges to the widely used compressed and uncompressed bitmap
// libraries. Conversions go through logical bit indices, so the bit order of
// the source or destination container is honored.

// ToRoaring returns a roaring bitmap holding the indices of the set bits of
// c under order o.
func ToRoaring[W Word](c Container[W], o BitOrder) *roaring.Bitmap {
	rb := roaring.New()
	for idx := range oneBits[W](c, o) {
		rb.Add(uint32(idx))
	}
	return rb
}

// FromRoaring returns a growable bitmap with order o holding the members of
// rb as set bits.
func FromRoaring[W Word](rb *roaring.Bitmap, o BitOrder) *VarBitmap[W] {
	b := NewGrowable[W](o)
	rb.Iterate(func(x uint32) bool {
		b.Set(int(x), true)
		return true
	})
	return b
}

// ToBitSet returns a bits-and-blooms bitset holding the indices of the set
// bits of c under order o.
func ToBitSet[W Word](c Container[W], o BitOrder) *bitset.BitSet {
	bs := bitset.New(uint(c.Bits()))
	for idx := range oneBits[W](c, o) {
		bs.Set(uint(idx))
	}
	return bs
}

// FromBitSet returns a growable bitmap with order o holding the members of
// bs as set bits.
func FromBitSet[W Word](bs *bitset.BitSet, o BitOrder) *VarBitmap[W] {
	b := NewGrowable[W](o)
	for idx, ok := bs.NextSet(0); ok; idx, ok = bs.NextSet(idx + 1) {
		b.Set(int(idx), true)
	}
	return b
}
