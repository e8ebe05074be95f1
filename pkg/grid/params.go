package grid

import "fmt"

// Params holds the grid geometry as read from a configuration file.
type Params struct {
	// Horizontal cell counts
	Mx int `yaml:"mx"`
	My int `yaml:"my"`

	// Horizontal half-extents in meters
	Lx float64 `yaml:"lx"`
	Ly float64 `yaml:"ly"`

	// Ice column: Mz levels over [0, Lz]
	Mz int     `yaml:"mz"`
	Lz float64 `yaml:"lz"`

	// Bedrock column: Mbz levels over [-Lbz, 0]
	Mbz int     `yaml:"mbz"`
	Lbz float64 `yaml:"lbz"`

	// Spacing is "equal" (default) or "quadratic"
	Spacing string `yaml:"spacing"`

	// Lambda controls quadratic refinement near the base; ignored for
	// equal spacing
	Lambda float64 `yaml:"lambda"`
}

// DefaultParams returns a small single-tile geometry suitable for tests
// and demonstrations.
func DefaultParams() Params {
	return Params{
		Mx: 61, My: 61,
		Lx: 1500e3, Ly: 1500e3,
		Mz: 31, Lz: 4000,
		Mbz: 1, Lbz: 0,
		Spacing: EqualSpacing,
		Lambda:  4.0,
	}
}

func (p Params) validate() error {
	if p.Mx < 1 || p.My < 1 {
		return fmt.Errorf("horizontal cell counts must be positive, got Mx=%d My=%d", p.Mx, p.My)
	}
	if p.Mz < 2 {
		return fmt.Errorf("at least two ice levels are required, got Mz=%d", p.Mz)
	}
	if p.Lz <= 0 {
		return fmt.Errorf("ice domain height must be positive, got Lz=%g", p.Lz)
	}
	if p.Mbz < 1 {
		return fmt.Errorf("at least one bedrock level is required, got Mbz=%d", p.Mbz)
	}
	if p.Mbz > 1 && p.Lbz <= 0 {
		return fmt.Errorf("bedrock depth must be positive when Mbz > 1, got Lbz=%g", p.Lbz)
	}
	if p.Spacing == QuadraticSpacing && p.Lambda <= 0 {
		return fmt.Errorf("quadratic spacing requires lambda > 0, got %g", p.Lambda)
	}
	return nil
}
