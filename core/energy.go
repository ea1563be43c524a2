package core

// Int64Energy is the concrete Energy implementation for models with
// integer-valued energies (the common case for lattice spin models, whose
// energy is a sum of ±1 coupling terms). It is comparable and orderable,
// so it can be used directly as a histogram.Histogram key.
type Int64Energy int64

// Add returns the receiver plus other, which must also be Int64Energy.
// Panics if other is a different concrete Energy type — mixing energy
// representations within one simulation is a programmer error.
func (e Int64Energy) Add(other Energy) Energy {
	o, ok := other.(Int64Energy)
	if !ok {
		panic("core: Int64Energy.Add called with a non-Int64Energy operand")
	}

	return e + o
}

// Less reports whether e orders before other.
func (e Int64Energy) Less(other Energy) bool {
	o, ok := other.(Int64Energy)
	if !ok {
		panic("core: Int64Energy.Less called with a non-Int64Energy operand")
	}

	return e < o
}

// Float64Energy is the concrete Energy implementation for models with
// continuous energies (e.g. off-lattice particle systems), typically
// paired with histogram.Binned rather than histogram.Histocrete.
type Float64Energy float64

// Add returns the receiver plus other, which must also be Float64Energy.
func (e Float64Energy) Add(other Energy) Energy {
	o, ok := other.(Float64Energy)
	if !ok {
		panic("core: Float64Energy.Add called with a non-Float64Energy operand")
	}

	return e + o
}

// Less reports whether e orders before other.
func (e Float64Energy) Less(other Energy) bool {
	o, ok := other.(Float64Energy)
	if !ok {
		panic("core: Float64Energy.Less called with a non-Float64Energy operand")
	}

	return e < o
}
