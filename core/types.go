package core

import "github.com/katalvlaran/gocasinns/rng"

// Energy is a value type usable as a histogram key (Wang–Landau) and
// combinable via addition. Implementations must have value semantics:
// comparisons and arithmetic must not mutate the receiver.
//
// comparable is embedded so an Energy can be used directly as a Go map
// key, matching histogram.Histogram's key constraint.
type Energy interface {
	comparable

	// Add returns the sum of the receiver and other.
	Add(other Energy) Energy

	// Less reports whether the receiver orders before other. Only used for
	// ordered iteration (histogram.Histogram.Keys); ties are broken by the
	// underlying key type's own equality.
	Less(other Energy) bool
}

// Temperature scales an Energy into a dimensionless Boltzmann exponent.
// Typed separately from Energy so an implementer can, for example, use an
// array of per-axis inverse temperatures for a field-resolved model while
// still producing a plain float64 for the acceptance test.
type Temperature interface {
	// Multiply returns beta * e as a plain float64.
	Multiply(e Energy) float64
}

// Beta is the common case of Temperature: a single scalar inverse
// temperature 1/(k_B T).
type Beta float64

// Multiply implements Temperature for a scalar Int64Energy or Float64Energy
// delta, and panics for any other Energy type.
func (b Beta) Multiply(e Energy) float64 {
	switch v := e.(type) {
	case Int64Energy:
		return float64(b) * float64(v)
	case Float64Energy:
		return float64(b) * float64(v)
	default:
		panic("core: Beta.Multiply called with an Energy type it does not know how to scale")
	}
}

// Step encapsulates one candidate mutation of a Configuration. A Step is a
// one-shot object: ProposeStep must return a fresh Step each call, and
// Execute must be called at most once per Step.
//
// Between proposal and Execute, the owning Configuration must remain
// unchanged; after Execute, the Configuration's CurrentEnergy must equal
// the pre-execute energy plus DeltaE.
type Step interface {
	// IsExecutable reports whether this move is legal in the configuration
	// state it was proposed against.
	IsExecutable() bool

	// DeltaE is the exact, deterministic signed energy change Execute would
	// cause. Must be safe to call on a non-executable step (implementations
	// typically return the zero Energy in that case, though callers must
	// not rely on this and should always guard with IsExecutable first).
	DeltaE() Energy

	// SelectionProbabilityFactor is q = p(reverse)/p(forward), the ratio of
	// proposal densities. Must be > 0; returns 1 for symmetric proposals.
	SelectionProbabilityFactor() float64

	// Execute mutates the owning Configuration in place. Must be called at
	// most once per Step instance.
	Execute()
}

// Configuration is the abstract physical state driven by a sampling
// engine: something with a size, a current energy, and the ability to
// propose a candidate Step given an RNG.
type Configuration interface {
	// SystemSize is the cardinality of elementary sites (e.g. lattice
	// spins). Used by autocorrelation sampling to space measurements by
	// one "sweep".
	SystemSize() int

	// CurrentEnergy is the configuration's present total energy.
	CurrentEnergy() Energy

	// ProposeStep returns a candidate Step, advancing rng's state and
	// nothing else. Must not mutate the Configuration.
	ProposeStep(r rng.RNG) Step
}
