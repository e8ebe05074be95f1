// Package interpolation precomputes index/weight tables for interpolating
// values sampled on a strictly increasing 1-D coordinate grid onto an
// arbitrary set of query coordinates.
//
// A table is built once per (input grid, output grid) pair and can then be
// applied to any number of value arrays sampled on the input grid without
// recomputing the brackets. Four policies are provided: linear,
// nearest-neighbor, piecewise-constant and periodic-linear.
package interpolation

import "fmt"

// DomainError reports an input coordinate sequence or query level that
// violates the contract of an interpolation or column operation.
type DomainError struct {
	Msg string
}

func (e *DomainError) Error() string { return e.Msg }

// Domainf builds a DomainError from a format string.
func Domainf(format string, args ...interface{}) *DomainError {
	return &DomainError{Msg: fmt.Sprintf(format, args...)}
}

// Interpolation holds precomputed bracket indexes and blend weights, one
// triple per output point. For every output point j,
//
//	0 <= Left(j) <= Right(j) < len(inputX)  and  0 <= Alpha(j) <= 1.
//
// The table is immutable after construction and safe for concurrent reads.
type Interpolation struct {
	left  []int
	right []int
	alpha []float64
}

// Len returns the number of output points the table was built for.
func (ip *Interpolation) Len() int { return len(ip.alpha) }

// Left returns the lower bracket index for output point j.
func (ip *Interpolation) Left(j int) int { return ip.left[j] }

// Right returns the upper bracket index for output point j.
func (ip *Interpolation) Right(j int) int { return ip.right[j] }

// Alpha returns the blend weight for output point j.
func (ip *Interpolation) Alpha(j int) float64 { return ip.alpha[j] }

// Interpolate applies the precomputed table to values sampled on the input
// grid. values must have one entry per input grid point. The result has one
// entry per output point:
//
//	result[j] = values[Left(j)] + Alpha(j)*(values[Right(j)] - values[Left(j)])
//
// A weight of 0 selects the left sample verbatim and a weight of 1 the
// right one, so the same primitive serves all four policies.
func (ip *Interpolation) Interpolate(values []float64) []float64 {
	result := make([]float64, len(ip.alpha))
	for k := range result {
		l, r := ip.left[k], ip.right[k]
		result[k] = values[l] + ip.alpha[k]*(values[r]-values[l])
	}
	return result
}

func newTable(n int) *Interpolation {
	return &Interpolation{
		left:  make([]int, n),
		right: make([]int, n),
		alpha: make([]float64, n),
	}
}

// initLinear computes linear interpolation indexes and weights.
//
// Boundary policy: query points at or below inputX[0] get the bracket
// (0, 0) with weight 0, exact hits on a grid point get a collapsed bracket
// with weight 0, and points beyond inputX[len-1] keep the last bracket with
// weight pinned to 1. Both cases clamp rather than extrapolate.
func initLinear(inputX, outputX []float64) (*Interpolation, error) {
	ip := newTable(len(outputX))

	// the trivial case: a single-point or empty input grid
	if len(inputX) < 2 {
		return ip, nil
	}

	if err := CheckStrictlyIncreasing(inputX); err != nil {
		return nil, err
	}

	for i, x := range outputX {
		l := Bracket(inputX, x)

		r := l
		if x > inputX[l] {
			r = l + 1
		}

		ip.left[i] = l
		ip.right[i] = r

		switch {
		case l == r:
			// exact hit or extrapolation on the left
			ip.alpha[i] = 0.0
		case x <= inputX[r]:
			ip.alpha[i] = (x - inputX[l]) / (inputX[r] - inputX[l])
		default:
			// extrapolation on the right
			ip.alpha[i] = 1.0
		}
	}

	return ip, nil
}

// NewLinear builds a piecewise-linear interpolation table from inputX onto
// outputX. inputX must be strictly increasing; outputX is unrestricted.
// Query points outside the input range clamp to the boundary samples.
func NewLinear(inputX, outputX []float64) (*Interpolation, error) {
	return initLinear(inputX, outputX)
}

// NewNearestNeighbor builds a nearest-neighbor table: the linear weights
// are snapped to 0 or 1 so Interpolate always returns one of the two
// bracketing input samples verbatim.
func NewNearestNeighbor(inputX, outputX []float64) (*Interpolation, error) {
	ip, err := initLinear(inputX, outputX)
	if err != nil {
		return nil, err
	}
	for j, a := range ip.alpha {
		if a > 0.5 {
			ip.alpha[j] = 1.0
		} else {
			ip.alpha[j] = 0.0
		}
	}
	return ip, nil
}

// NewPiecewiseConstant builds a step-function table: every output point
// maps to the sample at the lower end of its bracket, so Interpolate
// returns input values verbatim.
func NewPiecewiseConstant(inputX, outputX []float64) (*Interpolation, error) {
	ip := newTable(len(outputX))

	// the trivial case
	if len(inputX) < 2 {
		return ip, nil
	}

	if err := CheckStrictlyIncreasing(inputX); err != nil {
		return nil, err
	}

	for i, x := range outputX {
		l := Bracket(inputX, x)
		ip.left[i] = l
		ip.right[i] = l
		ip.alpha[i] = 0.0
	}

	return ip, nil
}

// NewLinearPeriodic builds a linear table for data that repeat with the
// given period, such as one year of monthly records. Query points between
// the last sample and inputX[0]+period (and points below inputX[0]) are
// interpolated across the wrap by blending the last and first samples over
// the synthetic interval of length (period - inputX[len-1]) + inputX[0],
// so there is no discontinuity at the period boundary.
//
// Query points are expected to lie within one period of the samples;
// callers holding an unbounded time axis should reduce it modulo the
// period first.
func NewLinearPeriodic(inputX, outputX []float64, period float64) (*Interpolation, error) {
	ip := newTable(len(outputX))

	// the trivial case
	if len(inputX) < 2 {
		return ip, nil
	}

	if err := CheckStrictlyIncreasing(inputX); err != nil {
		return nil, err
	}

	n := len(inputX)
	for i, x := range outputX {
		var l, r int
		if x < inputX[0] {
			// below the first sample: the wrapped bracket
			l = n - 1
			r = 0
		} else {
			l = bracketPeriodic(inputX, x)
			if l+1 < n {
				r = l + 1
			} else {
				r = 0
			}
		}

		var alpha float64
		if l < r {
			alpha = (x - inputX[l]) / (inputX[r] - inputX[l])
		} else {
			// the bracket wraps around the period boundary
			x0 := inputX[0]
			dx := (period - inputX[l]) + x0
			if x > x0 {
				alpha = (x - inputX[l]) / dx
			} else {
				alpha = 1.0 - (inputX[r]-x)/dx
			}
		}

		ip.left[i] = l
		ip.right[i] = r
		ip.alpha[i] = alpha
	}

	return ip, nil
}
