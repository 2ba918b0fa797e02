package bitmac

import "fmt"

// Scalar treats a single word as a one-slot container. Bit indices at or
// past the word's width are out of range.
type Scalar[W Word] struct {
	word W
}

// NewScalar creates a zero-valued Scalar.
func NewScalar[W Word]() *Scalar[W] {
	return &Scalar[W]{}
}

// ScalarOf creates a Scalar holding w.
func ScalarOf[W Word](w W) *Scalar[W] {
	return &Scalar[W]{word: w}
}

// WordAt returns the word. idx must be 0.
func (s *Scalar[W]) WordAt(idx int) W {
	if idx != 0 {
		panic(fmt.Sprintf("bitmac: scalar container has a single word, got index %d", idx))
	}
	return s.word
}

// Words returns 1.
func (s *Scalar[W]) Words() int { return 1 }

// Bits returns the bit width of W.
func (s *Scalar[W]) Bits() int { return wordBits[W]() }

// SetWord replaces the word. idx must be 0.
func (s *Scalar[W]) SetWord(idx int, w W) {
	if idx != 0 {
		panic(fmt.Sprintf("bitmac: scalar container has a single word, got index %d", idx))
	}
	s.word = w
}

// Value returns the stored word.
func (s *Scalar[W]) Value() W { return s.word }

// String formats the word as binary byte groups.
func (s *Scalar[W]) String() string { return formatWords[W](s) }

// ScalarAllocator returns an Allocator producing zero-valued Scalars.
// Requests for any word count other than 1 fail with *ErrCapacityMismatch.
func ScalarAllocator[W Word]() Allocator[W, *Scalar[W]] {
	return func(words int) (*Scalar[W], error) {
		if words != 1 {
			return nil, &ErrCapacityMismatch{Requested: words, Capacity: 1}
		}
		return NewScalar[W](), nil
	}
}
