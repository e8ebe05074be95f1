package models

// Profile pairs vertical level coordinates with the values sampled at
// them. Levels are strictly increasing; the two slices have equal length.
type Profile struct {
	// Levels are the vertical coordinates in meters.
	Levels []float64

	// Values are the sampled quantity, one per level.
	Values []float64
}

// Sounding is a complete stored column at one horizontal grid cell.
type Sounding struct {
	// I, J are the horizontal indices of the cell the column was read
	// from.
	I, J int

	Profile
}
