package isingmodel

import (
	"github.com/katalvlaran/gocasinns/core"
	"github.com/katalvlaran/gocasinns/rng"
)

// Lattice is a periodic-boundary 1-D chain of ±1 spins, coupled by the
// nearest-neighbor Hamiltonian E = -Σ_i s_i·s_{i+1} (sum over each bond
// once, i wrapping around N).
type Lattice struct {
	spins  []int8
	energy core.Int64Energy
}

// NewLattice builds a Lattice of n spins, each independently ±1 drawn
// from r, with its energy computed from scratch.
func NewLattice(n int, r rng.RNG) *Lattice {
	spins := make([]int8, n)
	for i := range spins {
		if r.UniformInt(2) == 0 {
			spins[i] = -1
		} else {
			spins[i] = 1
		}
	}
	l := &Lattice{spins: spins}
	l.energy = l.computeEnergy()
	return l
}

// NewLatticeFromSpins builds a Lattice from an explicit spin sequence
// (each element must be -1 or 1), useful for tests wanting a fixed
// starting configuration.
func NewLatticeFromSpins(spins []int8) *Lattice {
	l := &Lattice{spins: append([]int8(nil), spins...)}
	l.energy = l.computeEnergy()
	return l
}

func (l *Lattice) computeEnergy() core.Int64Energy {
	n := len(l.spins)
	var e int64
	for i := 0; i < n; i++ {
		e += -int64(l.spins[i]) * int64(l.spins[(i+1)%n])
	}
	return core.Int64Energy(e)
}

// SystemSize implements core.Configuration.
func (l *Lattice) SystemSize() int {
	return len(l.spins)
}

// CurrentEnergy implements core.Configuration.
func (l *Lattice) CurrentEnergy() core.Energy {
	return l.energy
}

// Spin returns the spin at site i (-1 or 1).
func (l *Lattice) Spin(i int) int8 {
	return l.spins[i]
}

// Magnetization is the sum of every spin.
func (l *Lattice) Magnetization() int64 {
	var m int64
	for _, s := range l.spins {
		m += int64(s)
	}
	return m
}

// ProposeStep implements core.Configuration: pick a uniformly random site
// and propose flipping it.
func (l *Lattice) ProposeStep(r rng.RNG) core.Step {
	n := len(l.spins)
	i := int(r.UniformInt(uint32(n)))

	left := l.spins[(i-1+n)%n]
	right := l.spins[(i+1)%n]
	s := l.spins[i]

	// Flipping site i changes E by 2*s*(left+right): each of the two
	// bonds touching i flips sign.
	delta := core.Int64Energy(2 * int64(s) * int64(left+right))

	return &flipStep{lattice: l, index: i, delta: delta}
}

type flipStep struct {
	lattice *Lattice
	index   int
	delta   core.Int64Energy
}

// IsExecutable implements core.Step: every single-spin flip on a
// periodic chain is always legal.
func (s *flipStep) IsExecutable() bool {
	return true
}

// DeltaE implements core.Step.
func (s *flipStep) DeltaE() core.Energy {
	return s.delta
}

// SelectionProbabilityFactor implements core.Step: uniform random-site
// selection is symmetric.
func (s *flipStep) SelectionProbabilityFactor() float64 {
	return 1.0
}

// Execute implements core.Step.
func (s *flipStep) Execute() {
	s.lattice.spins[s.index] = -s.lattice.spins[s.index]
	s.lattice.energy = s.lattice.energy.Add(s.delta).(core.Int64Energy)
}
