package bitmac

import "fmt"

// ErrOutOfBounds indicates a write index past the capacity of a
// non-growable bitmap.
type ErrOutOfBounds struct {
	Index int
	Bits  int
}

func (e *ErrOutOfBounds) Error() string {
	return fmt.Sprintf("bit index %d out of bounds [0, %d)", e.Index, e.Bits)
}

// ErrResizeRejected indicates that a grow strategy declined to extend the
// container to the requested word count.
type ErrResizeRejected struct {
	Words int // requested final word count
	Limit int // configured ceiling that was exceeded
}

func (e *ErrResizeRejected) Error() string {
	return fmt.Sprintf("resize to %d words rejected: over limit %d", e.Words, e.Limit)
}

// ErrSmallContainer indicates a caller-supplied destination that cannot hold
// the required word count of a set-algebra result. The operation never
// silently truncates.
type ErrSmallContainer struct {
	Required int
	Actual   int
}

func (e *ErrSmallContainer) Error() string {
	return fmt.Sprintf("destination container needs at least %d words, has %d", e.Required, e.Actual)
}

// ErrCapacityMismatch indicates a fixed-capacity allocator asked for a word
// count it cannot hold exactly.
type ErrCapacityMismatch struct {
	Requested int
	Capacity  int
}

func (e *ErrCapacityMismatch) Error() string {
	return fmt.Sprintf("container holds exactly %d words, requested %d", e.Capacity, e.Requested)
}
