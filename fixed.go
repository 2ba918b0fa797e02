package bitmac

// Fixed is a word container whose length is fixed at construction. It cannot
// grow, so out-of-range writes on a bitmap backed by it always fail. Wrapping
// a caller-owned slice with FixedFrom makes mutations visible to the caller.
type Fixed[W Word] struct {
	words []W
}

// NewFixed creates a Fixed holding words zero-filled words.
func NewFixed[W Word](words int) *Fixed[W] {
	return &Fixed[W]{words: make([]W, words)}
}

// FixedFrom adopts words as the backing storage without copying.
func FixedFrom[W Word](words []W) *Fixed[W] {
	return &Fixed[W]{words: words}
}

// WordAt returns the idx-th word.
func (f *Fixed[W]) WordAt(idx int) W { return f.words[idx] }

// Words returns the number of stored words.
func (f *Fixed[W]) Words() int { return len(f.words) }

// Bits returns the number of addressable bits.
func (f *Fixed[W]) Bits() int { return len(f.words) * wordBits[W]() }

// SetWord replaces the idx-th word.
func (f *Fixed[W]) SetWord(idx int, w W) { f.words[idx] = w }

// Raw returns the backing slice. Mutations are visible to the container.
func (f *Fixed[W]) Raw() []W { return f.words }

// String formats the words as binary byte groups.
func (f *Fixed[W]) String() string { return formatWords[W](f) }

// FixedAllocator returns an Allocator producing zero-filled Fixed containers
// of exactly capacity words. Requests for any other word count fail with
// *ErrCapacityMismatch.
func FixedAllocator[W Word](capacity int) Allocator[W, *Fixed[W]] {
	return func(words int) (*Fixed[W], error) {
		if words != capacity {
			return nil, &ErrCapacityMismatch{Requested: words, Capacity: capacity}
		}
		return NewFixed[W](capacity), nil
	}
}

// View is a read-only word container over a borrowed slice. It implements
// only the read capability, so it can back reads and act as a set-algebra
// operand but never as a destination.
type View[W Word] struct {
	words []W
}

// ViewOf wraps words as a read-only container without copying.
func ViewOf[W Word](words []W) View[W] {
	return View[W]{words: words}
}

// WordAt returns the idx-th word.
func (v View[W]) WordAt(idx int) W { return v.words[idx] }

// Words returns the number of stored words.
func (v View[W]) Words() int { return len(v.words) }

// Bits returns the number of addressable bits.
func (v View[W]) Bits() int { return len(v.words) * wordBits[W]() }

// String formats the words as binary byte groups.
func (v View[W]) String() string { return formatWords[W](v) }
