package interpolation

import "sort"

// CheckStrictlyIncreasing returns a DomainError if xs is not strictly
// increasing. Sequences of length 0 or 1 pass trivially.
func CheckStrictlyIncreasing(xs []float64) error {
	for i := 0; i+1 < len(xs); i++ {
		if xs[i] >= xs[i+1] {
			return Domainf("coordinate sequence is not strictly increasing at index %d: %g >= %g",
				i, xs[i], xs[i+1])
		}
	}
	return nil
}

// Bracket returns the lower index l of the interval [xs[l], xs[l+1]]
// containing x, clamped to [0, len(xs)-2] so that l+1 is always a valid
// index. An exact hit on an interior grid point returns that point's own
// index. For x below xs[0] it returns 0 and for x at or above the last
// sample it returns len(xs)-2; callers apply their own boundary policy on
// top of the clamped bracket.
//
// xs must be strictly increasing with len(xs) >= 2.
func Bracket(xs []float64, x float64) int {
	// the smallest index whose sample lies strictly above x; the bracket
	// is the interval just below it
	i := sort.Search(len(xs), func(k int) bool { return xs[k] > x })
	l := i - 1
	if l < 0 {
		l = 0
	}
	if l > len(xs)-2 {
		l = len(xs) - 2
	}
	return l
}

// bracketPeriodic is Bracket without the upper clamp: queries at or above
// the last sample return len(xs)-1, marking the interval that wraps around
// the period boundary. Callers guarantee x >= xs[0].
func bracketPeriodic(xs []float64, x float64) int {
	i := sort.Search(len(xs), func(k int) bool { return xs[k] > x })
	return i - 1
}
