package bitmac

// The union of two containers spans the longer operand: the overlapping word
// prefix is OR-ed slot by slot, and the longer operand's tail is copied
// verbatim. Bit order does not matter here because OR is position-wise on
// the physical words.

// TryUnionIn writes the union of lhs and rhs into dst. dst needs at least
// max(lhs.Words(), rhs.Words()) words; a smaller dst fails with
// *ErrSmallContainer and is left untouched. Words of dst past the result
// are not modified.
func TryUnionIn[W Word](dst MutableContainer[W], lhs, rhs Container[W]) error {
	words := max(lhs.Words(), rhs.Words())
	if dst.Words() < words {
		return &ErrSmallContainer{Required: words, Actual: dst.Words()}
	}
	unionInto(dst, lhs, rhs)
	return nil
}

// UnionIn writes the union of lhs and rhs into dst. It panics when dst is
// too small; use TryUnionIn to handle that case.
func UnionIn[W Word](dst MutableContainer[W], lhs, rhs Container[W]) {
	if err := TryUnionIn(dst, lhs, rhs); err != nil {
		panic("bitmac: " + err.Error())
	}
}

// TryUnion materializes the union of lhs and rhs in a fresh container from
// alloc. The allocator is asked for exactly max(lhs.Words(), rhs.Words())
// words; its error is returned as-is.
func TryUnion[W Word, C MutableContainer[W]](lhs, rhs Container[W], alloc Allocator[W, C]) (C, error) {
	dst, err := alloc(max(lhs.Words(), rhs.Words()))
	if err != nil {
		var zero C
		return zero, err
	}
	unionInto(dst, lhs, rhs)
	return dst, nil
}

// Union materializes the union of lhs and rhs in a fresh container from
// alloc. It panics when the allocator fails; use TryUnion to handle that
// case.
func Union[W Word, C MutableContainer[W]](lhs, rhs Container[W], alloc Allocator[W, C]) C {
	dst, err := TryUnion(lhs, rhs, alloc)
	if err != nil {
		panic("bitmac: " + err.Error())
	}
	return dst
}

// UnionLen returns the number of set bits in the union of lhs and rhs
// without materializing it.
func UnionLen[W Word](lhs, rhs Container[W]) int {
	overlap := min(lhs.Words(), rhs.Words())
	n := 0
	for i := 0; i < overlap; i++ {
		n += onesCount(lhs.WordAt(i) | rhs.WordAt(i))
	}
	longer := lhs
	if rhs.Words() > lhs.Words() {
		longer = rhs
	}
	for i := overlap; i < longer.Words(); i++ {
		n += onesCount(longer.WordAt(i))
	}
	return n
}

func unionInto[W Word](dst MutableContainer[W], lhs, rhs Container[W]) {
	overlap := min(lhs.Words(), rhs.Words())
	for i := 0; i < overlap; i++ {
		dst.SetWord(i, lhs.WordAt(i)|rhs.WordAt(i))
	}
	longer := lhs
	if rhs.Words() > lhs.Words() {
		longer = rhs
	}
	for i := overlap; i < longer.Words(); i++ {
		dst.SetWord(i, longer.WordAt(i))
	}
}
