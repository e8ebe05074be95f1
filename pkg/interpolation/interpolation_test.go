package interpolation

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
)

// TestLinearIdentity verifies that interpolating a grid onto itself
// returns the input values unchanged.
func TestLinearIdentity(t *testing.T) {
	inputX := []float64{0, 0.5, 1.25, 2, 3.5}

	ip, err := NewLinear(inputX, inputX)
	if err != nil {
		t.Fatalf("NewLinear failed: %v", err)
	}

	got := ip.Interpolate(inputX)
	if !floats.EqualApprox(got, inputX, 1e-14) {
		t.Errorf("self-interpolation changed the values: got %v, want %v", got, inputX)
	}
}

// TestLinearConcreteScenario checks the documented index/weight behavior
// on a small grid, including clamping on both sides.
func TestLinearConcreteScenario(t *testing.T) {
	inputX := []float64{0, 1, 2, 3}
	outputX := []float64{-1, 0, 1.5, 3, 5}
	values := []float64{10, 20, 30, 40}

	ip, err := NewLinear(inputX, outputX)
	if err != nil {
		t.Fatalf("NewLinear failed: %v", err)
	}

	want := []float64{10, 10, 25, 40, 40}
	got := ip.Interpolate(values)
	if !floats.EqualApprox(got, want, 1e-14) {
		t.Errorf("got %v, want %v", got, want)
	}

	// The postconditions must hold for every output point.
	for j := 0; j < ip.Len(); j++ {
		l, r, a := ip.Left(j), ip.Right(j), ip.Alpha(j)
		if l < 0 || l > r || r >= len(inputX) {
			t.Errorf("point %d: invalid bracket (%d, %d)", j, l, r)
		}
		if a < 0 || a > 1 {
			t.Errorf("point %d: weight %g outside [0, 1]", j, a)
		}
	}
}

// TestLinearExactHit verifies that a query exactly on a grid point gets a
// collapsed bracket with weight zero.
func TestLinearExactHit(t *testing.T) {
	inputX := []float64{0, 1, 2, 3}

	ip, err := NewLinear(inputX, []float64{2})
	if err != nil {
		t.Fatalf("NewLinear failed: %v", err)
	}

	if ip.Left(0) != 2 || ip.Right(0) != 2 {
		t.Errorf("expected collapsed bracket (2, 2), got (%d, %d)", ip.Left(0), ip.Right(0))
	}
	if ip.Alpha(0) != 0 {
		t.Errorf("expected weight 0 on an exact hit, got %g", ip.Alpha(0))
	}
}

// TestLinearDegenerate verifies the trivial single-point and empty input
// grids: one trivial bracket with weight zero.
func TestLinearDegenerate(t *testing.T) {
	for _, inputX := range [][]float64{nil, {5}} {
		ip, err := NewLinear(inputX, []float64{-1, 0, 1})
		if err != nil {
			t.Fatalf("NewLinear(%v) failed: %v", inputX, err)
		}
		for j := 0; j < ip.Len(); j++ {
			if ip.Left(j) != 0 || ip.Right(j) != 0 || ip.Alpha(j) != 0 {
				t.Errorf("input %v point %d: got (%d, %d, %g), want (0, 0, 0)",
					inputX, j, ip.Left(j), ip.Right(j), ip.Alpha(j))
			}
		}
	}
}

// TestLinearRejectsUnsortedInput verifies that a non-strictly-increasing
// input grid is a DomainError for every policy.
func TestLinearRejectsUnsortedInput(t *testing.T) {
	bad := []float64{0, 1, 1, 2}
	out := []float64{0.5}

	constructors := map[string]func() (*Interpolation, error){
		"linear":             func() (*Interpolation, error) { return NewLinear(bad, out) },
		"nearest-neighbor":   func() (*Interpolation, error) { return NewNearestNeighbor(bad, out) },
		"piecewise-constant": func() (*Interpolation, error) { return NewPiecewiseConstant(bad, out) },
		"periodic":           func() (*Interpolation, error) { return NewLinearPeriodic(bad, out, 3) },
	}

	for name, construct := range constructors {
		_, err := construct()
		var de *DomainError
		if !errors.As(err, &de) {
			t.Errorf("%s: expected a DomainError for unsorted input, got %v", name, err)
		}
	}
}

// TestNearestNeighbor verifies that weights snap to 0 or 1 and the result
// is always one of the two bracketing input values verbatim.
func TestNearestNeighbor(t *testing.T) {
	inputX := []float64{0, 1, 2, 3}
	outputX := []float64{-0.5, 0.4, 0.6, 1.6, 2.9, 3.7}
	values := []float64{10, 20, 30, 40}

	ip, err := NewNearestNeighbor(inputX, outputX)
	if err != nil {
		t.Fatalf("NewNearestNeighbor failed: %v", err)
	}

	for j := 0; j < ip.Len(); j++ {
		if a := ip.Alpha(j); a != 0 && a != 1 {
			t.Errorf("point %d: weight %g is neither 0 nor 1", j, a)
		}
	}

	want := []float64{10, 10, 20, 30, 40, 40}
	got := ip.Interpolate(values)
	if !floats.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

// TestPiecewiseConstant verifies the step-function policy: collapsed
// brackets, zero weights, left-sample results.
func TestPiecewiseConstant(t *testing.T) {
	inputX := []float64{0, 1, 2, 3}
	outputX := []float64{-1, 0.5, 1, 1.9, 2.5, 4}
	values := []float64{10, 20, 30, 40}

	ip, err := NewPiecewiseConstant(inputX, outputX)
	if err != nil {
		t.Fatalf("NewPiecewiseConstant failed: %v", err)
	}

	for j := 0; j < ip.Len(); j++ {
		if ip.Left(j) != ip.Right(j) {
			t.Errorf("point %d: bracket (%d, %d) is not collapsed", j, ip.Left(j), ip.Right(j))
		}
		if ip.Alpha(j) != 0 {
			t.Errorf("point %d: weight %g is not 0", j, ip.Alpha(j))
		}
	}

	// Queries at or beyond the last sample clamp to the last bracket's
	// left end.
	want := []float64{10, 10, 20, 20, 30, 30}
	got := ip.Interpolate(values)
	if !floats.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

// TestLinearPeriodicWrapContinuity verifies that the periodic policy has
// no discontinuity at the period boundary: a query at inputX[0]+period
// equals a query at inputX[0], and queries approaching the boundary from
// either side agree.
func TestLinearPeriodicWrapContinuity(t *testing.T) {
	// Monthly samples at mid-month over a unit year.
	times := make([]float64, 12)
	values := make([]float64, 12)
	for m := range times {
		times[m] = (float64(m) + 0.5) / 12
		values[m] = math.Sin(2 * math.Pi * float64(m) / 12)
	}
	const period = 1.0

	eval := func(x float64) float64 {
		ip, err := NewLinearPeriodic(times, []float64{x}, period)
		if err != nil {
			t.Fatalf("NewLinearPeriodic failed: %v", err)
		}
		return ip.Interpolate(values)[0]
	}

	if got, want := eval(times[0]+period), eval(times[0]); math.Abs(got-want) > 1e-14 {
		t.Errorf("value at inputX[0]+period = %g, want %g", got, want)
	}

	const delta = 0.01
	below := eval(times[0] - delta)
	wrapped := eval(times[0] - delta + period)
	if math.Abs(below-wrapped) > 1e-14 {
		t.Errorf("query below inputX[0] gave %g, same point from the right gave %g", below, wrapped)
	}
}

// TestLinearPeriodicInterior verifies that away from the wrap the periodic
// policy agrees with plain linear interpolation.
func TestLinearPeriodicInterior(t *testing.T) {
	times := []float64{0.1, 0.3, 0.5, 0.7, 0.9}
	values := []float64{1, 4, 2, 8, 5}
	outputX := []float64{0.2, 0.35, 0.6, 0.85}

	periodic, err := NewLinearPeriodic(times, outputX, 1.0)
	if err != nil {
		t.Fatalf("NewLinearPeriodic failed: %v", err)
	}
	linear, err := NewLinear(times, outputX)
	if err != nil {
		t.Fatalf("NewLinear failed: %v", err)
	}

	got := periodic.Interpolate(values)
	want := linear.Interpolate(values)
	if !floats.EqualApprox(got, want, 1e-14) {
		t.Errorf("interior periodic values %v differ from linear %v", got, want)
	}
}

// TestLinearPeriodicWeightsInRange checks the weight postcondition across
// the wrap interval, where the synthetic interval length is used.
func TestLinearPeriodicWeightsInRange(t *testing.T) {
	times := []float64{0.1, 0.4, 0.8}
	outputX := []float64{0, 0.05, 0.1, 0.5, 0.8, 0.9, 1.05}

	ip, err := NewLinearPeriodic(times, outputX, 1.0)
	if err != nil {
		t.Fatalf("NewLinearPeriodic failed: %v", err)
	}

	for j := 0; j < ip.Len(); j++ {
		l, r, a := ip.Left(j), ip.Right(j), ip.Alpha(j)
		if l < 0 || l >= len(times) || r < 0 || r >= len(times) {
			t.Errorf("point %d: bracket (%d, %d) outside the input grid", j, l, r)
		}
		if a < 0 || a > 1 {
			t.Errorf("point %d: weight %g outside [0, 1]", j, a)
		}
	}
}

// TestBracket checks the clamped bracket search directly.
func TestBracket(t *testing.T) {
	xs := []float64{0, 1, 2, 3}

	cases := []struct {
		x    float64
		want int
	}{
		{-5, 0},
		{0, 0},
		{0.5, 0},
		{1, 1},
		{1.5, 1},
		{2.999, 2},
		{3, 2},
		{7, 2},
	}

	for _, c := range cases {
		if got := Bracket(xs, c.x); got != c.want {
			t.Errorf("Bracket(%v, %g) = %d, want %d", xs, c.x, got, c.want)
		}
	}
}

// TestCheckStrictlyIncreasing covers accepting and rejecting sequences.
func TestCheckStrictlyIncreasing(t *testing.T) {
	good := [][]float64{nil, {1}, {1, 2}, {-3, 0, 7}}
	for _, xs := range good {
		if err := CheckStrictlyIncreasing(xs); err != nil {
			t.Errorf("CheckStrictlyIncreasing(%v) = %v, want nil", xs, err)
		}
	}

	bad := [][]float64{{1, 1}, {2, 1}, {0, 1, 1, 2}}
	for _, xs := range bad {
		var de *DomainError
		if err := CheckStrictlyIncreasing(xs); !errors.As(err, &de) {
			t.Errorf("CheckStrictlyIncreasing(%v) = %v, want a DomainError", xs, err)
		}
	}
}
