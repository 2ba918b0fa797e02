package bitmac

import "fmt"

// BitOrder selects the numbering convention that maps a logical intra-word
// bit index to a physical mask within the word.
type BitOrder uint8

const (
	// LSB numbers bit 0 as the least significant bit of a word:
	// the mask for index i is 1 << i.
	LSB BitOrder = iota
	// MSB numbers bit 0 as the most significant bit of a word:
	// the mask for index i is 1 << (width-1-i).
	MSB
)

// String implements fmt.Stringer.
func (o BitOrder) String() string {
	switch o {
	case LSB:
		return "LSB"
	case MSB:
		return "MSB"
	default:
		return fmt.Sprintf("BitOrder(%d)", uint8(o))
	}
}

// orderMask returns the single-bit mask for intra-word index idx under o.
// idx must be in [0, width); violating that is a caller bug, not a
// recoverable condition. All callers bounds-check before deriving idx.
func orderMask[W Word](o BitOrder, idx int) W {
	width := wordBits[W]()
	if idx < 0 || idx >= width {
		panic(fmt.Sprintf("bitmac: intra-word bit index %d out of range [0, %d)", idx, width))
	}
	switch o {
	case MSB:
		return W(1) << (width - 1 - idx)
	default:
		return W(1) << idx
	}
}

// SetBit returns w with the bit at intra-word index idx set to state,
// under order o. Panics if idx is outside [0, bit width of W).
func SetBit[W Word](o BitOrder, w W, idx int, state bool) W {
	mask := orderMask[W](o, idx)
	if state {
		return w | mask
	}
	return w &^ mask
}

// GetBit reports whether the bit at intra-word index idx is set in w,
// under order o. Panics if idx is outside [0, bit width of W).
func GetBit[W Word](o BitOrder, w W, idx int) bool {
	return w&orderMask[W](o, idx) != 0
}
