package bitmac

import "iter"

// VarBitmap is a bitmap that grows on demand. A set past the current bound
// asks the grow strategy for a new word count and resizes the storage before
// writing; a clear past the bound is a no-op unless the strategy forces
// growth. Reads never grow.
type VarBitmap[W Word] struct {
	data  ResizableContainer[W]
	order BitOrder
	grow  GrowStrategy
}

// NewVarBitmap creates a growable bitmap over data with the given bit order
// and grow strategy. The bitmap takes no copy; it reads and writes data
// directly.
func NewVarBitmap[W Word](data ResizableContainer[W], order BitOrder, grow GrowStrategy) *VarBitmap[W] {
	return &VarBitmap[W]{data: data, order: order, grow: grow}
}

// NewGrowable creates an empty Slice-backed growable bitmap with the default
// exact-fit strategy.
func NewGrowable[W Word](order BitOrder) *VarBitmap[W] {
	return NewVarBitmap[W](NewSlice[W](0), order, MinimumGrowth{})
}

// Get reports whether bit idx is set. Indices at or past Len read as false.
func (b *VarBitmap[W]) Get(idx int) bool {
	return getBit(b.data, b.order, idx)
}

// TrySet sets bit idx to val, growing the storage when idx lies past the
// current bound. Clearing past the bound is a no-op unless the strategy
// forces growth. Errors come from the grow strategy; an in-bounds write
// never fails.
func (b *VarBitmap[W]) TrySet(idx int, val bool) error {
	if idx < 0 {
		return &ErrOutOfBounds{Index: idx, Bits: b.data.Bits()}
	}
	if idx < b.data.Bits() {
		setBitUnchecked(b.data, b.order, idx, val)
		return nil
	}
	if !val && !b.grow.ForceGrow() {
		return nil
	}
	width := wordBits[W]()
	minWords := idx/width + 1
	words, err := b.grow.Grow(minWords, b.data.Words(), idx)
	if err != nil {
		return err
	}
	if words < minWords {
		words = minWords
	}
	if words != b.data.Words() {
		b.data.Resize(words, 0)
	}
	setBitUnchecked(b.data, b.order, idx, val)
	return nil
}

// Set sets bit idx to val. It panics when the grow strategy rejects the
// required growth; use TrySet to handle that case.
func (b *VarBitmap[W]) Set(idx int, val bool) {
	if err := b.TrySet(idx, val); err != nil {
		panic("bitmac: " + err.Error())
	}
}

// CountOnes returns the number of set bits.
func (b *VarBitmap[W]) CountOnes() int { return CountOnes(b.data) }

// CountZeros returns the number of clear bits.
func (b *VarBitmap[W]) CountZeros() int { return CountZeros(b.data) }

// Len returns the current length in bits.
func (b *VarBitmap[W]) Len() int { return b.data.Bits() }

// Order returns the bit order.
func (b *VarBitmap[W]) Order() BitOrder { return b.order }

// Storage returns the backing container.
func (b *VarBitmap[W]) Storage() ResizableContainer[W] { return b.data }

// All iterates over every bit index and its value, in ascending order.
func (b *VarBitmap[W]) All() iter.Seq2[int, bool] {
	return allBits[W](b.data, b.order)
}

// Backward iterates over every bit index and its value, in descending order.
func (b *VarBitmap[W]) Backward() iter.Seq2[int, bool] {
	return backwardBits[W](b.data, b.order)
}

// Ones iterates over the indices of set bits, in ascending order.
func (b *VarBitmap[W]) Ones() iter.Seq[int] {
	return oneBits[W](b.data, b.order)
}

// WordSeq iterates over the storage words, in ascending slot order.
func (b *VarBitmap[W]) WordSeq() iter.Seq[W] {
	return wordSeq[W](b.data)
}

// IntersectionIn writes the intersection with other into dst. It panics when
// dst is too small; see TryIntersectionIn.
func (b *VarBitmap[W]) IntersectionIn(other Container[W], dst MutableContainer[W]) {
	IntersectionIn(dst, b.data, other)
}

// TryIntersectionIn writes the intersection with other into dst, reporting
// *ErrSmallContainer when dst cannot hold the result.
func (b *VarBitmap[W]) TryIntersectionIn(other Container[W], dst MutableContainer[W]) error {
	return TryIntersectionIn(dst, b.data, other)
}

// Intersection returns the intersection with other in a fresh Slice.
func (b *VarBitmap[W]) Intersection(other Container[W]) *Slice[W] {
	return Intersection(b.data, other, SliceAllocator[W]())
}

// IntersectionLen returns the number of set bits in the intersection with
// other without materializing it.
func (b *VarBitmap[W]) IntersectionLen(other Container[W]) int {
	return IntersectionLen(b.data, other)
}

// UnionIn writes the union with other into dst. It panics when dst is too
// small; see TryUnionIn.
func (b *VarBitmap[W]) UnionIn(other Container[W], dst MutableContainer[W]) {
	UnionIn(dst, b.data, other)
}

// TryUnionIn writes the union with other into dst, reporting
// *ErrSmallContainer when dst cannot hold the result.
func (b *VarBitmap[W]) TryUnionIn(other Container[W], dst MutableContainer[W]) error {
	return TryUnionIn(dst, b.data, other)
}

// Union returns the union with other in a fresh Slice.
func (b *VarBitmap[W]) Union(other Container[W]) *Slice[W] {
	return Union(b.data, other, SliceAllocator[W]())
}

// UnionLen returns the number of set bits in the union with other without
// materializing it.
func (b *VarBitmap[W]) UnionLen(other Container[W]) int {
	return UnionLen(b.data, other)
}

// String formats the backing words as binary byte groups.
func (b *VarBitmap[W]) String() string { return formatWords[W](b.data) }
