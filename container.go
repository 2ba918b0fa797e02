package bitmac

// Container is the read capability a bitmap needs from its storage:
// random access to the Nth word plus the word and bit counts.
//
// Bits returns the logical length in bits. For multi-word containers this is
// Words() * bit width; Scalar overrides the derivation to state its width
// directly.
type Container[W Word] interface {
	// WordAt returns the idx-th storage word. idx must be in [0, Words()).
	WordAt(idx int) W
	// Words returns the number of stored words.
	Words() int
	// Bits returns the number of addressable bits.
	Bits() int
}

// MutableContainer extends Container with word-level mutation.
type MutableContainer[W Word] interface {
	Container[W]
	// SetWord replaces the idx-th storage word. idx must be in [0, Words()).
	SetWord(idx int, w W)
}

// ResizableContainer extends MutableContainer with the ability to change the
// number of stored words. Only the growable bitmap requires it.
type ResizableContainer[W Word] interface {
	MutableContainer[W]
	// Resize grows or shrinks the container to exactly words words, filling
	// any newly created words with fill.
	Resize(words int, fill W)
}

// Allocator creates a container holding exactly words zero-filled words.
// Allocators back the set-algebra operations that materialize a fresh
// destination; an allocator for a fixed-capacity type fails with
// *ErrCapacityMismatch when asked for a word count it cannot hold exactly.
type Allocator[W Word, C MutableContainer[W]] func(words int) (C, error)

// getBit is the shared bit-read derivation: false past the container's
// bounds, otherwise the order-resolved bit of the owning word.
func getBit[W Word](c Container[W], o BitOrder, idx int) bool {
	if idx < 0 || idx >= c.Bits() {
		return false
	}
	width := wordBits[W]()
	return GetBit(o, c.WordAt(idx/width), idx%width)
}

// setBitUnchecked writes a bit without bounds checking. The caller must have
// established idx < c.Bits().
func setBitUnchecked[W Word](c MutableContainer[W], o BitOrder, idx int, val bool) {
	width := wordBits[W]()
	slot := idx / width
	c.SetWord(slot, SetBit(o, c.WordAt(slot), idx%width, val))
}

// trySetBit is the shared bounds-checked bit write.
func trySetBit[W Word](c MutableContainer[W], o BitOrder, idx int, val bool) error {
	if idx < 0 || idx >= c.Bits() {
		return &ErrOutOfBounds{Index: idx, Bits: c.Bits()}
	}
	setBitUnchecked(c, o, idx, val)
	return nil
}

// CountOnes returns the number of set bits in c.
func CountOnes[W Word](c Container[W]) int {
	n := 0
	for i := 0; i < c.Words(); i++ {
		n += onesCount(c.WordAt(i))
	}
	return n
}

// CountZeros returns the number of clear bits in c.
func CountZeros[W Word](c Container[W]) int {
	return c.Bits() - CountOnes(c)
}

// Get reports whether bit idx is set in c under order o. Indices at or past
// c.Bits() read as false; Get never fails.
func Get[W Word](c Container[W], o BitOrder, idx int) bool {
	return getBit(c, o, idx)
}

// TrySet sets bit idx in c under order o, reporting *ErrOutOfBounds when idx
// is outside the container.
func TrySet[W Word](c MutableContainer[W], o BitOrder, idx int, val bool) error {
	return trySetBit(c, o, idx, val)
}
