package field

import "icesheet3d/internal/models"

// HorizontalSlice extracts the values at level z over the owned tile into
// a new 2-D field, interpolating within each column.
func (f *Column3D) HorizontalSlice(z float64) (*Scalar2D, error) {
	out := NewScalar2D(f.g, f.name+"_slice")
	g := f.g
	for i := g.XS; i < g.XS+g.XM; i++ {
		for j := g.YS; j < g.YS+g.YM; j++ {
			v, err := f.ValueAtLevel(i, j, z)
			if err != nil {
				return nil, err
			}
			out.SetValue(i, j, v)
		}
	}
	return out, nil
}

// Surface extracts the values at the upper surface given by the per-cell
// thickness field: the value of each owned column at z = thickness(i, j).
func (f *Column3D) Surface(thickness *Scalar2D) (*Scalar2D, error) {
	out := NewScalar2D(f.g, f.name+"_surface")
	g := f.g
	for i := g.XS; i < g.XS+g.XM; i++ {
		for j := g.YS; j < g.YS+g.YM; j++ {
			v, err := f.ValueAtLevel(i, j, thickness.Value(i, j))
			if err != nil {
				return nil, err
			}
			out.SetValue(i, j, v)
		}
	}
	return out, nil
}

// Sounding returns the full stored column at (i, j) together with its
// level coordinates, as copies safe to hold across later writes.
func (f *Column3D) Sounding(i, j int) (models.Sounding, error) {
	values, err := f.Column(i, j)
	if err != nil {
		return models.Sounding{}, err
	}
	levels := make([]float64, f.mz)
	copy(levels, f.Levels())
	return models.Sounding{
		I: i, J: j,
		Profile: models.Profile{Levels: levels, Values: values},
	}, nil
}
