package bitmac

// Slice is a growable word container backed by a Go slice. It is the default
// storage for growable bitmaps and for freshly allocated set-algebra results.
type Slice[W Word] struct {
	words []W
}

// NewSlice creates a Slice holding words zero-filled words.
func NewSlice[W Word](words int) *Slice[W] {
	return &Slice[W]{words: make([]W, words)}
}

// SliceFrom adopts words as the backing storage without copying.
func SliceFrom[W Word](words []W) *Slice[W] {
	return &Slice[W]{words: words}
}

// WordAt returns the idx-th word.
func (s *Slice[W]) WordAt(idx int) W { return s.words[idx] }

// Words returns the number of stored words.
func (s *Slice[W]) Words() int { return len(s.words) }

// Bits returns the number of addressable bits.
func (s *Slice[W]) Bits() int { return len(s.words) * wordBits[W]() }

// SetWord replaces the idx-th word.
func (s *Slice[W]) SetWord(idx int, w W) { s.words[idx] = w }

// Resize grows or shrinks the container to exactly words words, filling any
// newly created words with fill.
func (s *Slice[W]) Resize(words int, fill W) {
	if words <= len(s.words) {
		s.words = s.words[:words]
		return
	}
	if words <= cap(s.words) {
		old := len(s.words)
		s.words = s.words[:words]
		for i := old; i < words; i++ {
			s.words[i] = fill
		}
		return
	}
	grown := make([]W, words)
	copy(grown, s.words)
	if fill != 0 {
		for i := len(s.words); i < words; i++ {
			grown[i] = fill
		}
	}
	s.words = grown
}

// Raw returns the backing slice. Mutations are visible to the container.
func (s *Slice[W]) Raw() []W { return s.words }

// String formats the words as binary byte groups.
func (s *Slice[W]) String() string { return formatWords[W](s) }

// SliceAllocator returns an Allocator producing zero-filled Slices. It never
// fails.
func SliceAllocator[W Word]() Allocator[W, *Slice[W]] {
	return func(words int) (*Slice[W], error) {
		return NewSlice[W](words), nil
	}
}
