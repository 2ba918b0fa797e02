package bitmac

// GrowStrategy decides how a growable bitmap extends its storage when a set
// lands past the current bound.
//
// Grow receives the minimum word count that would make the write fit, the
// current word count, and the bit index that triggered the request. It
// returns the word count to resize to, or an error to reject the growth.
// Results below minWords are clamped up to minWords by the caller, so a
// strategy can never shrink the container or leave the triggering write
// unsatisfied.
type GrowStrategy interface {
	Grow(minWords, oldWords, bitIdx int) (int, error)
	// ForceGrow reports whether clearing a bit past the bound should grow
	// the container instead of being a no-op.
	ForceGrow() bool
}

// MinimumGrowth grows to exactly the minimum required word count. It is the
// default strategy and never fails.
type MinimumGrowth struct{}

func (MinimumGrowth) Grow(minWords, _, _ int) (int, error) { return minWords, nil }

func (MinimumGrowth) ForceGrow() bool { return false }

// FixedGrowth grows in multiples of Step words, rounding the minimum required
// count up to the next multiple. Larger steps trade memory for fewer resizes.
type FixedGrowth struct {
	Step int
}

func (g FixedGrowth) Grow(minWords, _, _ int) (int, error) {
	if minWords%g.Step == 0 {
		return minWords, nil
	}
	return (minWords/g.Step + 1) * g.Step, nil
}

func (FixedGrowth) ForceGrow() bool { return false }

// LimitGrowth wraps another strategy and rejects any growth whose result
// would exceed Limit words, turning unbounded growable bitmaps into bounded
// ones without changing the inner sizing policy.
type LimitGrowth struct {
	Inner GrowStrategy
	Limit int
}

func (g LimitGrowth) Grow(minWords, oldWords, bitIdx int) (int, error) {
	words, err := g.Inner.Grow(minWords, oldWords, bitIdx)
	if err != nil {
		return 0, err
	}
	if words > g.Limit {
		return 0, &ErrResizeRejected{Words: words, Limit: g.Limit}
	}
	return words, nil
}

func (g LimitGrowth) ForceGrow() bool { return g.Inner.ForceGrow() }

// ForceGrowth wraps another strategy so that clearing a bit past the bound
// grows the container too, making the bitmap's length track the highest
// touched index regardless of the written value.
type ForceGrowth struct {
	Inner GrowStrategy
}

func (g ForceGrowth) Grow(minWords, oldWords, bitIdx int) (int, error) {
	return g.Inner.Grow(minWords, oldWords, bitIdx)
}

func (ForceGrowth) ForceGrow() bool { return true }
