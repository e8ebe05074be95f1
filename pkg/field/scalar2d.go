package field

import (
	"gonum.org/v1/gonum/mat"

	"icesheet3d/pkg/grid"
)

// Scalar2D is a 2-D scalar field over the owned horizontal tile of a
// grid, one value per cell. It serves as the input to surface extraction
// (per-cell ice thickness), the output of slice and surface extraction,
// and the per-column fill source for vertical extension.
type Scalar2D struct {
	name string
	g    *grid.Grid
	m    *mat.Dense // XM rows by YM columns, row = i - XS
}

// NewScalar2D allocates a zero-filled 2-D field on the owned tile of g.
func NewScalar2D(g *grid.Grid, name string) *Scalar2D {
	return &Scalar2D{
		name: name,
		g:    g,
		m:    mat.NewDense(g.XM, g.YM, nil),
	}
}

// Name returns the field's name, used in error messages.
func (s *Scalar2D) Name() string { return s.name }

// Grid returns the grid the field is defined on.
func (s *Scalar2D) Grid() *grid.Grid { return s.g }

// Value returns the value at global cell (i, j). The cell must be owned.
func (s *Scalar2D) Value(i, j int) float64 {
	return s.m.At(i-s.g.XS, j-s.g.YS)
}

// SetValue stores v at global cell (i, j). The cell must be owned.
func (s *Scalar2D) SetValue(i, j int, v float64) {
	s.m.Set(i-s.g.XS, j-s.g.YS, v)
}

// Fill sets every cell of the field to v.
func (s *Scalar2D) Fill(v float64) {
	raw := s.m.RawMatrix().Data
	for k := range raw {
		raw[k] = v
	}
}

// Dense exposes the backing matrix for bulk numerical work, such as image
// rendering or statistics. Rows map to i - XS and columns to j - YS.
func (s *Scalar2D) Dense() *mat.Dense { return s.m }
