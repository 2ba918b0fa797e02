package bitmac

import "iter"

// StaticBitmap is a bitmap of fixed length. Reads past the bound see false;
// writes past the bound fail. The zero length is the backing container's.
type StaticBitmap[W Word] struct {
	data  MutableContainer[W]
	order BitOrder
}

// NewStaticBitmap creates a fixed-length bitmap over data with the given bit
// order. The bitmap takes no copy; it reads and writes data directly.
func NewStaticBitmap[W Word](data MutableContainer[W], order BitOrder) *StaticBitmap[W] {
	return &StaticBitmap[W]{data: data, order: order}
}

// Get reports whether bit idx is set. Indices at or past Len read as false.
func (b *StaticBitmap[W]) Get(idx int) bool {
	return getBit(b.data, b.order, idx)
}

// TrySet sets bit idx to val, reporting *ErrOutOfBounds when idx is outside
// the bitmap.
func (b *StaticBitmap[W]) TrySet(idx int, val bool) error {
	return trySetBit(b.data, b.order, idx, val)
}

// Set sets bit idx to val. It panics when idx is outside the bitmap; use
// TrySet to handle that case.
func (b *StaticBitmap[W]) Set(idx int, val bool) {
	if err := b.TrySet(idx, val); err != nil {
		panic("bitmac: " + err.Error())
	}
}

// CountOnes returns the number of set bits.
func (b *StaticBitmap[W]) CountOnes() int { return CountOnes(b.data) }

// CountZeros returns the number of clear bits.
func (b *StaticBitmap[W]) CountZeros() int { return CountZeros(b.data) }

// Len returns the length in bits.
func (b *StaticBitmap[W]) Len() int { return b.data.Bits() }

// Order returns the bit order.
func (b *StaticBitmap[W]) Order() BitOrder { return b.order }

// Storage returns the backing container.
func (b *StaticBitmap[W]) Storage() MutableContainer[W] { return b.data }

// All iterates over every bit index and its value, in ascending order.
func (b *StaticBitmap[W]) All() iter.Seq2[int, bool] {
	return allBits[W](b.data, b.order)
}

// Backward iterates over every bit index and its value, in descending order.
func (b *StaticBitmap[W]) Backward() iter.Seq2[int, bool] {
	return backwardBits[W](b.data, b.order)
}

// Ones iterates over the indices of set bits, in ascending order.
func (b *StaticBitmap[W]) Ones() iter.Seq[int] {
	return oneBits[W](b.data, b.order)
}

// WordSeq iterates over the storage words, in ascending slot order.
func (b *StaticBitmap[W]) WordSeq() iter.Seq[W] {
	return wordSeq[W](b.data)
}

// IntersectionIn writes the intersection with other into dst. It panics when
// dst is too small; see TryIntersectionIn.
func (b *StaticBitmap[W]) IntersectionIn(other Container[W], dst MutableContainer[W]) {
	IntersectionIn(dst, b.data, other)
}

// TryIntersectionIn writes the intersection with other into dst, reporting
// *ErrSmallContainer when dst cannot hold the result.
func (b *StaticBitmap[W]) TryIntersectionIn(other Container[W], dst MutableContainer[W]) error {
	return TryIntersectionIn(dst, b.data, other)
}

// Intersection returns the intersection with other in a fresh Slice.
func (b *StaticBitmap[W]) Intersection(other Container[W]) *Slice[W] {
	return Intersection(b.data, other, SliceAllocator[W]())
}

// IntersectionLen returns the number of set bits in the intersection with
// other without materializing it.
func (b *StaticBitmap[W]) IntersectionLen(other Container[W]) int {
	return IntersectionLen(b.data, other)
}

// UnionIn writes the union with other into dst. It panics when dst is too
// small; see TryUnionIn.
func (b *StaticBitmap[W]) UnionIn(other Container[W], dst MutableContainer[W]) {
	UnionIn(dst, b.data, other)
}

// TryUnionIn writes the union with other into dst, reporting
// *ErrSmallContainer when dst cannot hold the result.
func (b *StaticBitmap[W]) TryUnionIn(other Container[W], dst MutableContainer[W]) error {
	return TryUnionIn(dst, b.data, other)
}

// Union returns the union with other in a fresh Slice.
func (b *StaticBitmap[W]) Union(other Container[W]) *Slice[W] {
	return Union(b.data, other, SliceAllocator[W]())
}

// UnionLen returns the number of set bits in the union with other without
// materializing it.
func (b *StaticBitmap[W]) UnionLen(other Container[W]) int {
	return UnionLen(b.data, other)
}

// String formats the backing words as binary byte groups.
func (b *StaticBitmap[W]) String() string { return formatWords[W](b.data) }

func allBits[W Word](c Container[W], o BitOrder) iter.Seq2[int, bool] {
	return func(yield func(int, bool) bool) {
		for i := 0; i < c.Bits(); i++ {
			if !yield(i, getBit(c, o, i)) {
				return
			}
		}
	}
}

func backwardBits[W Word](c Container[W], o BitOrder) iter.Seq2[int, bool] {
	return func(yield func(int, bool) bool) {
		for i := c.Bits() - 1; i >= 0; i-- {
			if !yield(i, getBit(c, o, i)) {
				return
			}
		}
	}
}

func wordSeq[W Word](c Container[W]) iter.Seq[W] {
	return func(yield func(W) bool) {
		for i := 0; i < c.Words(); i++ {
			if !yield(c.WordAt(i)) {
				return
			}
		}
	}
}

func oneBits[W Word](c Container[W], o BitOrder) iter.Seq[int] {
	return func(yield func(int) bool) {
		width := wordBits[W]()
		for slot := 0; slot < c.Words(); slot++ {
			w := c.WordAt(slot)
			if w == 0 {
				continue
			}
			for bit := 0; bit < width; bit++ {
				if GetBit(o, w, bit) && !yield(slot*width+bit) {
					return
				}
			}
		}
	}
}
