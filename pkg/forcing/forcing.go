// Package forcing samples periodic forcing records, such as one year of
// monthly climate data, at arbitrary model times. Sampling interpolates
// linearly across the period boundary, so an annual cycle has no jump
// between December and January.
package forcing

import (
	"fmt"
	"math"

	"icesheet3d/pkg/interpolation"
)

// PeriodicSeries holds one full period of a forcing record. Times are
// strictly increasing and lie in [0, period); evaluation wraps any query
// time into that window first.
type PeriodicSeries struct {
	times  []float64
	values []float64
	period float64
}

// NewPeriodicSeries validates and wraps one period of samples. times and
// values must have equal length, times must be strictly increasing, and
// every time must lie in [0, period).
func NewPeriodicSeries(times, values []float64, period float64) (*PeriodicSeries, error) {
	if len(times) != len(values) {
		return nil, fmt.Errorf("forcing series has %d times but %d values", len(times), len(values))
	}
	if len(times) < 2 {
		return nil, fmt.Errorf("forcing series needs at least two samples, got %d", len(times))
	}
	if period <= 0 {
		return nil, fmt.Errorf("forcing period must be positive, got %g", period)
	}
	if err := interpolation.CheckStrictlyIncreasing(times); err != nil {
		return nil, err
	}
	if times[0] < 0 || times[len(times)-1] >= period {
		return nil, interpolation.Domainf("forcing sample times [%g, %g] do not fit inside one period of length %g",
			times[0], times[len(times)-1], period)
	}
	return &PeriodicSeries{times: times, values: values, period: period}, nil
}

// Period returns the length of one cycle.
func (s *PeriodicSeries) Period() float64 { return s.period }

// wrap reduces t into [0, period).
func (s *PeriodicSeries) wrap(t float64) float64 {
	t = math.Mod(t, s.period)
	if t < 0 {
		t += s.period
	}
	return t
}

// EvalAll samples the series at each of the given times.
func (s *PeriodicSeries) EvalAll(ts []float64) ([]float64, error) {
	wrapped := make([]float64, len(ts))
	for i, t := range ts {
		wrapped[i] = s.wrap(t)
	}
	ip, err := interpolation.NewLinearPeriodic(s.times, wrapped, s.period)
	if err != nil {
		return nil, err
	}
	return ip.Interpolate(s.values), nil
}

// Eval samples the series at a single time.
func (s *PeriodicSeries) Eval(t float64) (float64, error) {
	out, err := s.EvalAll([]float64{t})
	if err != nil {
		return 0, err
	}
	return out[0], nil
}
