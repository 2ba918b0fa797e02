package bitmac

// The intersection of two containers spans the overlapping word prefix:
// the result holds min(lhs.Words(), rhs.Words()) words, each the bitwise AND
// of the operands' words at the same slot. Bit order does not matter here
// because AND is position-wise on the physical words.

// TryIntersectionIn writes the intersection of lhs and rhs into dst. dst
// needs at least min(lhs.Words(), rhs.Words()) words; a smaller dst fails
// with *ErrSmallContainer and is left untouched. Words of dst past the
// result are not modified.
func TryIntersectionIn[W Word](dst MutableContainer[W], lhs, rhs Container[W]) error {
	words := min(lhs.Words(), rhs.Words())
	if dst.Words() < words {
		return &ErrSmallContainer{Required: words, Actual: dst.Words()}
	}
	for i := 0; i < words; i++ {
		dst.SetWord(i, lhs.WordAt(i)&rhs.WordAt(i))
	}
	return nil
}

// IntersectionIn writes the intersection of lhs and rhs into dst. It panics
// when dst is too small; use TryIntersectionIn to handle that case.
func IntersectionIn[W Word](dst MutableContainer[W], lhs, rhs Container[W]) {
	if err := TryIntersectionIn(dst, lhs, rhs); err != nil {
		panic("bitmac: " + err.Error())
	}
}

// TryIntersection materializes the intersection of lhs and rhs in a fresh
// container from alloc. The allocator is asked for exactly
// min(lhs.Words(), rhs.Words()) words; its error is returned as-is.
func TryIntersection[W Word, C MutableContainer[W]](lhs, rhs Container[W], alloc Allocator[W, C]) (C, error) {
	dst, err := alloc(min(lhs.Words(), rhs.Words()))
	if err != nil {
		var zero C
		return zero, err
	}
	for i := 0; i < dst.Words(); i++ {
		dst.SetWord(i, lhs.WordAt(i)&rhs.WordAt(i))
	}
	return dst, nil
}

// Intersection materializes the intersection of lhs and rhs in a fresh
// container from alloc. It panics when the allocator fails; use
// TryIntersection to handle that case.
func Intersection[W Word, C MutableContainer[W]](lhs, rhs Container[W], alloc Allocator[W, C]) C {
	dst, err := TryIntersection(lhs, rhs, alloc)
	if err != nil {
		panic("bitmac: " + err.Error())
	}
	return dst
}

// IntersectionLen returns the number of set bits in the intersection of lhs
// and rhs without materializing it.
func IntersectionLen[W Word](lhs, rhs Container[W]) int {
	words := min(lhs.Words(), rhs.Words())
	n := 0
	for i := 0; i < words; i++ {
		n += onesCount(lhs.WordAt(i) & rhs.WordAt(i))
	}
	return n
}
