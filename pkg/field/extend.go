package field

import "fmt"

// copyToExtended allocates storage for the grid's current level count and
// copies the first oldMz levels of every column into it. The field itself
// is not modified; on any failure the caller's state is intact.
func (f *Column3D) copyToExtended(oldMz int) (buf []float64, newMz int, err error) {
	if err := f.checkAllocated(); err != nil {
		return nil, 0, err
	}
	if oldMz != f.mz {
		return nil, 0, fmt.Errorf("field %q holds %d levels, caller claims %d",
			f.name, f.mz, oldMz)
	}

	newMz = len(f.Levels())
	if newMz < oldMz {
		return nil, 0, fmt.Errorf("field %q: cannot extend from %d to %d levels: level count may only grow",
			f.name, oldMz, newMz)
	}

	buf, err = f.allocColumns(newMz)
	if err != nil {
		return nil, 0, err
	}

	// Copy every allocated column, halo included, so previously valid
	// levels survive bit-for-bit even in ghost cells.
	nx, ny := f.tileSize()
	for c := 0; c < nx*ny; c++ {
		copy(buf[c*newMz:c*newMz+oldMz], f.data[c*oldMz:(c+1)*oldMz])
	}
	return buf, newMz, nil
}

// ExtendVertically grows the field to the grid's current level count,
// which must have been extended first (see grid.Grid.ExtendZ). Values at
// levels below oldMz are preserved unchanged; the new levels are filled
// with fillValue. If the field is ghosted a halo exchange follows, so the
// new levels are consistent across tiles.
//
// The operation either succeeds completely or leaves the field in its
// prior state.
func (f *Column3D) ExtendVertically(oldMz int, fillValue float64) error {
	buf, newMz, err := f.copyToExtended(oldMz)
	if err != nil {
		return err
	}

	nx, ny := f.tileSize()
	for c := 0; c < nx*ny; c++ {
		col := buf[c*newMz : (c+1)*newMz]
		for k := oldMz; k < newMz; k++ {
			col[k] = fillValue
		}
	}

	f.data = buf
	f.mz = newMz
	return f.exchange()
}

// ExtendVerticallyFrom is ExtendVertically with a per-column fill: the new
// levels of the column at (i, j) take the value of fill at (i, j). Only
// owned columns are filled directly; for ghosted fields the halo's new
// levels arrive through the exchange.
func (f *Column3D) ExtendVerticallyFrom(oldMz int, fill *Scalar2D) error {
	buf, newMz, err := f.copyToExtended(oldMz)
	if err != nil {
		return err
	}

	g := f.g
	_, ny := f.tileSize()
	for i := g.XS; i < g.XS+g.XM; i++ {
		for j := g.YS; j < g.YS+g.YM; j++ {
			c := (i-g.XS+f.ghostWidth)*ny + (j - g.YS + f.ghostWidth)
			col := buf[c*newMz : (c+1)*newMz]
			v := fill.Value(i, j)
			for k := oldMz; k < newMz; k++ {
				col[k] = v
			}
		}
	}

	f.data = buf
	f.mz = newMz
	return f.exchange()
}
