package simulation_test

import (
	"github.com/katalvlaran/gocasinns/core"
	"github.com/katalvlaran/gocasinns/rng"
)

// fakeConfiguration is a minimal core.Configuration used only to exercise
// simulation.Base without depending on a real physical model.
type fakeConfiguration struct {
	energy core.Int64Energy
}

func (f *fakeConfiguration) SystemSize() int             { return 1 }
func (f *fakeConfiguration) CurrentEnergy() core.Energy   { return f.energy }
func (f *fakeConfiguration) ProposeStep(r rng.RNG) core.Step {
	return fakeStep{delta: core.Int64Energy(1)}
}

type fakeStep struct {
	delta core.Int64Energy
}

func (s fakeStep) IsExecutable() bool                  { return true }
func (s fakeStep) DeltaE() core.Energy                 { return s.delta }
func (s fakeStep) SelectionProbabilityFactor() float64 { return 1 }
func (s fakeStep) Execute()                            {}
