package forcing

import (
	"math"
	"testing"
)

func monthlySeries(t *testing.T) *PeriodicSeries {
	t.Helper()
	times := make([]float64, 12)
	values := make([]float64, 12)
	for m := range times {
		times[m] = (float64(m) + 0.5) / 12
		values[m] = math.Cos(2 * math.Pi * float64(m) / 12)
	}
	s, err := NewPeriodicSeries(times, values, 1.0)
	if err != nil {
		t.Fatalf("NewPeriodicSeries failed: %v", err)
	}
	return s
}

// TestEvalWrapContinuity verifies that sampling is periodic and continuous
// across the year boundary.
func TestEvalWrapContinuity(t *testing.T) {
	s := monthlySeries(t)

	for _, tt := range []float64{0, 0.25, 0.7} {
		a, err := s.Eval(tt)
		if err != nil {
			t.Fatalf("Eval(%g) failed: %v", tt, err)
		}
		b, err := s.Eval(tt + 3*s.Period())
		if err != nil {
			t.Fatalf("Eval failed: %v", err)
		}
		if math.Abs(a-b) > 1e-12 {
			t.Errorf("t=%g: value %g differs from three periods later %g", tt, a, b)
		}
	}

	// negative times wrap too
	a, _ := s.Eval(-0.1)
	b, _ := s.Eval(0.9)
	if math.Abs(a-b) > 1e-12 {
		t.Errorf("Eval(-0.1) = %g differs from Eval(0.9) = %g", a, b)
	}
}

// TestEvalAtSamples verifies that sampling at the record times returns the
// record values.
func TestEvalAtSamples(t *testing.T) {
	times := []float64{0.1, 0.4, 0.8}
	values := []float64{3, -2, 5}
	s, err := NewPeriodicSeries(times, values, 1.0)
	if err != nil {
		t.Fatalf("NewPeriodicSeries failed: %v", err)
	}

	got, err := s.EvalAll(times)
	if err != nil {
		t.Fatalf("EvalAll failed: %v", err)
	}
	for k := range times {
		if math.Abs(got[k]-values[k]) > 1e-12 {
			t.Errorf("value at sample %d is %g, want %g", k, got[k], values[k])
		}
	}
}

// TestNewPeriodicSeriesValidation covers the rejection paths.
func TestNewPeriodicSeriesValidation(t *testing.T) {
	cases := []struct {
		name   string
		times  []float64
		values []float64
		period float64
	}{
		{"length mismatch", []float64{0, 0.5}, []float64{1}, 1},
		{"too short", []float64{0.5}, []float64{1}, 1},
		{"bad period", []float64{0, 0.5}, []float64{1, 2}, 0},
		{"not increasing", []float64{0.5, 0.5}, []float64{1, 2}, 1},
		{"outside period", []float64{0, 1.5}, []float64{1, 2}, 1},
	}
	for _, c := range cases {
		if _, err := NewPeriodicSeries(c.times, c.values, c.period); err == nil {
			t.Errorf("%s: expected an error", c.name)
		}
	}
}
