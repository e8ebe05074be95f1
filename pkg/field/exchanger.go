package field

// Exchanger refreshes the ghost halo of a Column3D from the neighboring
// tiles. The transfer is two-phase so an implementation can overlap
// communication with other work; Begin starts it and End blocks until the
// halo is consistent.
//
// The store treats the exchange as opaque: it only requires that after a
// successful Begin/End pair every ghost cell holds its owner's current
// values.
type Exchanger interface {
	Begin(f *Column3D) error
	End(f *Column3D) error
}

// NoopExchanger is the exchanger for single-tile runs, where the halo has
// no neighbors to read from.
type NoopExchanger struct{}

// Begin implements Exchanger.
func (NoopExchanger) Begin(*Column3D) error { return nil }

// End implements Exchanger.
func (NoopExchanger) End(*Column3D) error { return nil }

// exchange runs a full Begin/End cycle if the field is ghosted and has an
// exchanger attached.
func (f *Column3D) exchange() error {
	if f.ghostWidth == 0 || f.exchanger == nil {
		return nil
	}
	if err := f.exchanger.Begin(f); err != nil {
		return err
	}
	return f.exchanger.End(f)
}
