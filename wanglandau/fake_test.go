package wanglandau_test

import (
	"github.com/katalvlaran/gocasinns/core"
	"github.com/katalvlaran/gocasinns/rng"
)

// fakeRNG returns a scripted, cycling sequence of Uniform01 values.
type fakeRNG struct {
	uniforms []float64
	pos      int
}

func (f *fakeRNG) Seed(uint64) {}

func (f *fakeRNG) Uniform01() float64 {
	if len(f.uniforms) == 0 {
		panic("fakeRNG: no uniforms scripted")
	}
	v := f.uniforms[f.pos%len(f.uniforms)]
	f.pos++
	return v
}

func (f *fakeRNG) UniformInt(n uint32) uint32 { return 0 }

// walkConfiguration is a 3-state ring (-1, 0, 1) whose ProposeStep always
// steps to the neighbor in a fixed direction, wrapping around; every step
// is executable with a symmetric (q=1) proposal.
type walkConfiguration struct {
	energy core.Int64Energy
}

func (c *walkConfiguration) SystemSize() int { return 1 }

func (c *walkConfiguration) CurrentEnergy() core.Energy { return c.energy }

func (c *walkConfiguration) ProposeStep(r rng.RNG) core.Step {
	// Step to the next ring position: -1 -> 0 -> 1 -> -1 -> ...
	var delta int64
	switch c.energy {
	case -1, 0:
		delta = 1
	case 1:
		delta = -2
	}
	return &walkStep{config: c, delta: core.Int64Energy(delta)}
}

type walkStep struct {
	config *walkConfiguration
	delta  core.Int64Energy
}

func (s *walkStep) IsExecutable() bool                  { return true }
func (s *walkStep) DeltaE() core.Energy                 { return s.delta }
func (s *walkStep) SelectionProbabilityFactor() float64 { return 1.0 }
func (s *walkStep) Execute()                            { s.config.energy = s.config.energy.Add(s.delta).(core.Int64Energy) }
