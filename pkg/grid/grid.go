// Package grid provides the structured-grid descriptor shared by the field
// storage and interpolation code: horizontal cell counts and ownership
// ranges, and the vertical level coordinates for the ice column [0, Lz]
// and the bedrock column [-Lbz, 0].
package grid

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Vertical spacing kinds for the ice levels.
const (
	// EqualSpacing places the Mz ice levels at equal distances.
	EqualSpacing = "equal"

	// QuadraticSpacing refines the ice levels near the base, where
	// vertical gradients are largest. The refinement is controlled by
	// the Lambda parameter: smaller values concentrate more levels near
	// z = 0.
	QuadraticSpacing = "quadratic"
)

// Grid describes one rectangular tile of the computational domain together
// with the vertical level coordinates shared by every column on it. The
// descriptor is immutable from the point of view of field operations; only
// ExtendZ changes it, and only by appending ice levels.
type Grid struct {
	// Horizontal cell counts and half-extents of the whole domain.
	Mx, My int
	Lx, Ly float64

	// Owned horizontal index ranges: this tile owns i in [XS, XS+XM)
	// and j in [YS, YS+YM). For a single-process run the tile is the
	// whole domain.
	XS, XM, YS, YM int

	// Ice column: Mz levels spanning [0, Lz], strictly increasing, with
	// ZLevels[0] == 0 and ZLevels[Mz-1] == Lz.
	Mz      int
	Lz      float64
	ZLevels []float64

	// Bedrock column: Mbz levels spanning [-Lbz, 0], equally spaced,
	// with ZBLevels[Mbz-1] == 0. Mbz == 1 collapses to the single level
	// z = 0.
	Mbz      int
	Lbz      float64
	ZBLevels []float64

	// EquallySpaced tells column queries whether the ice levels are
	// regular, so they can skip the local-quadratic fit.
	EquallySpaced bool
}

// New builds a grid from params, generating the vertical levels. The tile
// owns the whole horizontal domain; distributed drivers narrow XS/XM/YS/YM
// after construction.
func New(p Params) (*Grid, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	g := &Grid{
		Mx: p.Mx, My: p.My,
		Lx: p.Lx, Ly: p.Ly,
		XS: 0, XM: p.Mx,
		YS: 0, YM: p.My,
		Mz:  p.Mz,
		Lz:  p.Lz,
		Mbz: p.Mbz,
		Lbz: p.Lbz,

		EquallySpaced: p.Spacing != QuadraticSpacing,
	}

	switch p.Spacing {
	case "", EqualSpacing:
		g.ZLevels = floats.Span(make([]float64, p.Mz), 0, p.Lz)
	case QuadraticSpacing:
		g.ZLevels = quadraticLevels(p.Mz, p.Lz, p.Lambda)
	default:
		return nil, fmt.Errorf("unknown vertical spacing %q", p.Spacing)
	}

	if p.Mbz == 1 {
		g.ZBLevels = []float64{0}
	} else {
		g.ZBLevels = floats.Span(make([]float64, p.Mbz), -p.Lbz, 0)
	}

	return g, nil
}

// quadraticLevels maps the uniform parameter zeta in [0, 1] through
// z = Lz * zeta * (zeta + lambda) / (1 + lambda), which compresses the
// levels toward the base for small lambda and approaches equal spacing as
// lambda grows.
func quadraticLevels(mz int, lz, lambda float64) []float64 {
	levels := make([]float64, mz)
	for k := range levels {
		zeta := float64(k) / float64(mz-1)
		levels[k] = lz * zeta * (zeta + lambda) / (1 + lambda)
	}
	// pin the endpoints against round-off
	levels[0] = 0
	levels[mz-1] = lz
	return levels
}

// OwnsHorizontal reports whether cell (i, j) is inside the owned tile.
func (g *Grid) OwnsHorizontal(i, j int) bool {
	return i >= g.XS && i < g.XS+g.XM && j >= g.YS && j < g.YS+g.YM
}

// ExtendZ replaces the ice levels with a longer sequence of which the
// current levels are an exact prefix, updating Mz and Lz. This is the grid
// half of growing a field vertically: the descriptor is extended first,
// then each 3-D field re-allocates its columns.
func (g *Grid) ExtendZ(newLevels []float64) error {
	if len(newLevels) < g.Mz {
		return fmt.Errorf("cannot extend vertical grid from %d to %d levels: level count may only grow",
			g.Mz, len(newLevels))
	}
	for k, z := range g.ZLevels {
		if newLevels[k] != z {
			return fmt.Errorf("extended levels do not preserve existing level %d: %g != %g",
				k, newLevels[k], z)
		}
	}
	for k := g.Mz; k < len(newLevels); k++ {
		if newLevels[k] <= newLevels[k-1] {
			return fmt.Errorf("extended levels are not strictly increasing at index %d", k)
		}
	}

	g.ZLevels = newLevels
	g.Mz = len(newLevels)
	g.Lz = newLevels[g.Mz-1]
	return nil
}
