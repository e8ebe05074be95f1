// Package field implements scalar field storage on a structured grid: 2-D
// per-cell fields and the 3-D column store with its vertical interpolation
// and extension operations.
package field

import (
	"fmt"
	"math"

	"icesheet3d/pkg/grid"
	"icesheet3d/pkg/interpolation"
)

const (
	// levelEpsilon absorbs floating-point grid-construction error when
	// checking whether a query level is inside the vertical domain.
	levelEpsilon = 1e-6

	// coverageEpsilon is the slack allowed when checking that an input
	// column spans the whole stored level range.
	coverageEpsilon = 1e-3
)

type columnKind int

const (
	iceKind columnKind = iota
	bedrockKind
)

// Column3D stores one scalar value per vertical level per horizontal cell.
// The vertical level coordinates come from the grid descriptor and are
// shared read-only by every column. An instance is either an ice field
// (levels spanning [0, Lz]) or a bedrock field (levels spanning [-Lbz, 0]).
//
// A ghost width of zero makes the field global: it holds only the owned
// tile. A positive ghost width adds a halo of that many cells on each side,
// which stencil access requires. The store does no synchronization itself;
// refreshing the halo after writes is the job of the attached Exchanger.
type Column3D struct {
	name       string
	g          *grid.Grid
	kind       columnKind
	ghostWidth int

	mz   int       // current level count; tracks the grid after ExtendVertically
	data []float64 // column-contiguous: (i, j, k) -> ((i', j') * mz + k)

	exchanger Exchanger
}

// New returns an unallocated ice-column field on g. ghostWidth is the halo
// width in cells; zero makes the field global. Call Allocate before use.
func New(g *grid.Grid, name string, ghostWidth int) *Column3D {
	return &Column3D{name: name, g: g, kind: iceKind, ghostWidth: ghostWidth}
}

// NewBedrock returns an unallocated bedrock-column field on g, spanning
// [-Lbz, 0]. Bedrock fields are always global and never carry ghosts.
func NewBedrock(g *grid.Grid, name string) *Column3D {
	return &Column3D{name: name, g: g, kind: bedrockKind}
}

// Name returns the field's name, used in error messages.
func (f *Column3D) Name() string { return f.name }

// Grid returns the grid the field is defined on.
func (f *Column3D) Grid() *grid.Grid { return f.g }

// Ghosted reports whether the field carries a halo.
func (f *Column3D) Ghosted() bool { return f.ghostWidth > 0 }

// LevelCount returns the current number of vertical levels.
func (f *Column3D) LevelCount() int { return f.mz }

// Levels returns the shared vertical level coordinates. The slice is owned
// by the grid descriptor and must not be modified.
func (f *Column3D) Levels() []float64 {
	if f.kind == bedrockKind {
		return f.g.ZBLevels
	}
	return f.g.ZLevels
}

// levelRange returns the legal vertical domain [zMin, zMax] of the field.
func (f *Column3D) levelRange() (zMin, zMax float64) {
	if f.kind == bedrockKind {
		return -f.g.Lbz, 0
	}
	return 0, f.g.Lz
}

// SetExchanger attaches the halo-exchange service invoked after operations
// that rewrite levels visible to neighboring tiles.
func (f *Column3D) SetExchanger(e Exchanger) { f.exchanger = e }

// Allocate reserves column storage for the field. Allocating twice without
// an intervening Destroy returns an AlreadyAllocatedError.
func (f *Column3D) Allocate() error {
	if f.data != nil {
		return &AlreadyAllocatedError{Field: f.name}
	}

	mz := len(f.Levels())
	buf, err := f.allocColumns(mz)
	if err != nil {
		return err
	}

	f.data = buf
	f.mz = mz
	return nil
}

// Destroy releases the field's storage. The field may be allocated again
// afterwards.
func (f *Column3D) Destroy() {
	f.data = nil
	f.mz = 0
}

func (f *Column3D) checkAllocated() error {
	if f.data == nil {
		return fmt.Errorf("field %q is not allocated", f.name)
	}
	return nil
}

// tileSize returns the allocated horizontal extent including the halo.
func (f *Column3D) tileSize() (nx, ny int) {
	return f.g.XM + 2*f.ghostWidth, f.g.YM + 2*f.ghostWidth
}

// allocColumns reserves a buffer for mz levels over the haloed tile.
func (f *Column3D) allocColumns(mz int) ([]float64, error) {
	nx, ny := f.tileSize()
	if mz < 1 {
		return nil, &AllocationError{Field: f.name,
			Cause: fmt.Errorf("invalid level count %d", mz)}
	}
	if mz > math.MaxInt/8/(nx*ny) {
		return nil, &AllocationError{Field: f.name,
			Cause: fmt.Errorf("column storage of %d x %d x %d values exceeds the address space", nx, ny, mz)}
	}
	return make([]float64, nx*ny*mz), nil
}

// column returns the backing storage of the column at global cell (i, j).
// The cell must lie on the owned tile or, for ghosted fields, in the halo.
func (f *Column3D) column(i, j int) []float64 {
	_, ny := f.tileSize()
	base := ((i-f.g.XS+f.ghostWidth)*ny + (j - f.g.YS + f.ghostWidth)) * f.mz
	return f.data[base : base+f.mz]
}

// checkLegalLevel rejects query levels outside the vertical domain, with a
// small tolerance for grid-construction round-off at the boundaries.
func (f *Column3D) checkLegalLevel(z float64) error {
	zMin, zMax := f.levelRange()
	if z < zMin-levelEpsilon || z > zMax+levelEpsilon {
		return interpolation.Domainf("level z = %g is outside the vertical domain [%g, %g] of field %q",
			z, zMin, zMax, f.name)
	}
	return nil
}

// SetAll fills every level of every column with c.
func (f *Column3D) SetAll(c float64) error {
	if err := f.checkAllocated(); err != nil {
		return err
	}
	for k := range f.data {
		f.data[k] = c
	}
	return nil
}

// SetColumn fills every level of the column at (i, j) with c.
func (f *Column3D) SetColumn(i, j int, c float64) error {
	if err := f.checkAllocated(); err != nil {
		return err
	}
	col := f.column(i, j)
	for k := range col {
		col[k] = c
	}
	return nil
}

// SetColumnValues overwrites the column at (i, j) verbatim. values must
// have exactly one entry per stored level.
func (f *Column3D) SetColumnValues(i, j int, values []float64) error {
	if err := f.checkAllocated(); err != nil {
		return err
	}
	if len(values) != f.mz {
		return fmt.Errorf("field %q holds %d levels per column, got %d values",
			f.name, f.mz, len(values))
	}
	copy(f.column(i, j), values)
	return nil
}

// Column returns a copy of the column at (i, j).
func (f *Column3D) Column(i, j int) ([]float64, error) {
	if err := f.checkAllocated(); err != nil {
		return nil, err
	}
	out := make([]float64, f.mz)
	copy(out, f.column(i, j))
	return out, nil
}

// SetColumnPL overwrites the column at (i, j) by piecewise-linear
// interpolation of the samples (zIn, vIn) onto the stored levels.
//
// zIn must be strictly increasing and must cover the whole stored level
// range: extrapolation is disallowed here by contract, so zIn[0] may not
// lie above the bottom of the domain and zIn[len-1] may not lie below its
// top (within a small tolerance). On error the column is left unchanged.
func (f *Column3D) SetColumnPL(i, j int, zIn, vIn []float64) error {
	if err := f.checkAllocated(); err != nil {
		return err
	}
	if len(zIn) != len(vIn) {
		return fmt.Errorf("field %q: level and value counts differ: %d != %d",
			f.name, len(zIn), len(vIn))
	}
	if len(zIn) < 2 {
		return interpolation.Domainf("field %q: at least two input samples are required, got %d",
			f.name, len(zIn))
	}

	zMin, zMax := f.levelRange()
	if zIn[0] > zMin+coverageEpsilon {
		return interpolation.Domainf("field %q: input levels start at %g, above the bottom of the domain at %g; interpolation would require extrapolating",
			f.name, zIn[0], zMin)
	}
	if zIn[len(zIn)-1] < zMax-coverageEpsilon {
		return interpolation.Domainf("field %q: input levels end at %g, below the top of the domain at %g; interpolation would require extrapolating",
			f.name, zIn[len(zIn)-1], zMax)
	}
	if err := interpolation.CheckStrictlyIncreasing(zIn); err != nil {
		return err
	}

	ip, err := interpolation.NewLinear(zIn, f.Levels())
	if err != nil {
		return err
	}
	copy(f.column(i, j), ip.Interpolate(vIn))
	return nil
}

// ValueAtLevel returns the value at level z in the column at (i, j), by
// linear interpolation between the two enclosing stored levels. Levels
// outside the vertical domain (beyond the boundary tolerance) are a
// DomainError; levels between the domain boundary and the first or last
// stored level clamp to the boundary value.
func (f *Column3D) ValueAtLevel(i, j int, z float64) (float64, error) {
	if err := f.checkAllocated(); err != nil {
		return 0, err
	}
	if err := f.checkLegalLevel(z); err != nil {
		return 0, err
	}

	levels := f.Levels()
	col := f.column(i, j)
	switch {
	case z >= levels[f.mz-1]:
		return col[f.mz-1], nil
	case z <= levels[0]:
		return col[0], nil
	}

	l := interpolation.Bracket(levels, z)
	incr := (z - levels[l]) / (levels[l+1] - levels[l])
	return col[l] + incr*(col[l+1]-col[l]), nil
}

// Star holds interpolated values on the five-point horizontal stencil at
// one vertical level: the center cell (i, j) and its four neighbors.
type Star struct {
	Center float64
	IP     float64 // (i+1, j)
	IM     float64 // (i-1, j)
	JP     float64 // (i, j+1)
	JM     float64 // (i, j-1)
}

// StencilAtLevel returns the values at level z on the five-point stencil
// around (i, j), all interpolated with the same vertical bracket and
// weight. The field must be ghosted so the neighbor columns are present,
// and the caller must have refreshed the halo beforehand.
func (f *Column3D) StencilAtLevel(i, j int, z float64) (Star, error) {
	if err := f.checkAllocated(); err != nil {
		return Star{}, err
	}
	if err := f.checkLegalLevel(z); err != nil {
		return Star{}, err
	}
	if f.ghostWidth == 0 {
		return Star{}, &ConfigMismatchError{Field: f.name,
			Msg: "stencil access requires a ghosted field"}
	}

	levels := f.Levels()
	var kbz int
	var incr float64
	switch {
	case z >= levels[f.mz-1]:
		kbz, incr = f.mz-1, 0
	case z <= levels[0]:
		kbz, incr = 0, 0
	default:
		kbz = interpolation.Bracket(levels, z)
		incr = (z - levels[kbz]) / (levels[kbz+1] - levels[kbz])
	}

	at := func(ci, cj int) float64 {
		col := f.column(ci, cj)
		if kbz < f.mz-1 {
			return col[kbz] + incr*(col[kbz+1]-col[kbz])
		}
		return col[kbz]
	}

	return Star{
		Center: at(i, j),
		IP:     at(i+1, j),
		IM:     at(i-1, j),
		JP:     at(i, j+1),
		JM:     at(i, j-1),
	}, nil
}

// ColumnAtLevelsPL returns the values of the column at (i, j) at the query
// levels zOut, by piecewise-linear interpolation between stored levels.
//
// zOut must be strictly increasing and start inside the vertical domain.
// Query levels above the top stored level extrapolate flat, repeating the
// top value: downstream consumers ask for report heights that may exceed
// the ice surface, so unlike SetColumnPL this is not an error.
func (f *Column3D) ColumnAtLevelsPL(i, j int, zOut []float64) ([]float64, error) {
	if err := f.checkAllocated(); err != nil {
		return nil, err
	}
	if len(zOut) == 0 {
		return nil, nil
	}
	if err := f.checkLegalLevel(zOut[0]); err != nil {
		return nil, err
	}
	if err := interpolation.CheckStrictlyIncreasing(zOut); err != nil {
		return nil, err
	}

	// The shared index/weight table clamps at both boundaries, which is
	// exactly the flat extrapolation this operation wants.
	ip, err := interpolation.NewLinear(f.Levels(), zOut)
	if err != nil {
		return nil, err
	}
	return ip.Interpolate(f.column(i, j)), nil
}

// ColumnAtLevelsQUAD returns the values of the column at (i, j) at the
// query levels zOut, fitting a local quadratic through three consecutive
// stored samples. This captures curvature in smoothly varying profiles
// better than piecewise-linear interpolation on irregular grids.
//
// Validation and flat top-extrapolation match ColumnAtLevelsPL. Brackets
// within one interval of the top fall back to linear interpolation, where
// a third sample above is not available.
func (f *Column3D) ColumnAtLevelsQUAD(i, j int, zOut []float64) ([]float64, error) {
	if err := f.checkAllocated(); err != nil {
		return nil, err
	}
	if len(zOut) == 0 {
		return nil, nil
	}
	if err := f.checkLegalLevel(zOut[0]); err != nil {
		return nil, err
	}
	if err := interpolation.CheckStrictlyIncreasing(zOut); err != nil {
		return nil, err
	}

	levels := f.Levels()
	col := f.column(i, j)
	out := make([]float64, len(zOut))
	for k, z := range zOut {
		if z >= levels[f.mz-1] {
			out[k] = col[f.mz-1]
			continue
		}
		if z <= levels[0] {
			out[k] = col[0]
			continue
		}

		l := interpolation.Bracket(levels, z)
		z0, f0 := levels[l], col[l]
		if l >= f.mz-2 {
			// not enough samples above for a quadratic
			incr := (z - z0) / (levels[l+1] - z0)
			out[k] = f0 + incr*(col[l+1]-f0)
			continue
		}

		// Newton's divided-difference form through the samples at
		// l, l+1, l+2, evaluated at the offset s above z0.
		dz1 := levels[l+1] - z0
		dz2 := levels[l+2] - z0
		d1 := (col[l+1] - f0) / dz1
		d2 := (col[l+2] - f0) / dz2
		c := (d2 - d1) / (dz2 - dz1)
		b := d1 - c*dz1
		s := z - z0
		out[k] = f0 + s*(b+c*s)
	}
	return out, nil
}

// ColumnAtLevels dispatches to ColumnAtLevelsPL when the stored levels are
// equally spaced and to ColumnAtLevelsQUAD otherwise; the quadratic fit
// buys nothing on a regular grid.
func (f *Column3D) ColumnAtLevels(equallySpaced bool, i, j int, zOut []float64) ([]float64, error) {
	if equallySpaced {
		return f.ColumnAtLevelsPL(i, j, zOut)
	}
	return f.ColumnAtLevelsQUAD(i, j, zOut)
}

// HasNaN reports whether any owned column holds a NaN, which usually means
// an uninitialized or corrupted field.
func (f *Column3D) HasNaN() bool {
	if f.data == nil {
		return false
	}
	g := f.g
	for i := g.XS; i < g.XS+g.XM; i++ {
		for j := g.YS; j < g.YS+g.YM; j++ {
			for _, v := range f.column(i, j) {
				if math.IsNaN(v) {
					return true
				}
			}
		}
	}
	return false
}
