package metropolis_test

import (
	"github.com/katalvlaran/gocasinns/core"
	"github.com/katalvlaran/gocasinns/rng"
)

// fakeRNG returns a scripted sequence of Uniform01 values, panicking if
// asked for more than were scripted. Used to make acceptance-rule tests
// deterministic without depending on PCG32's exact output stream.
type fakeRNG struct {
	uniforms []float64
	pos      int
}

func (f *fakeRNG) Seed(uint64) {}

func (f *fakeRNG) Uniform01() float64 {
	if f.pos >= len(f.uniforms) {
		panic("fakeRNG: exhausted scripted uniforms")
	}
	v := f.uniforms[f.pos]
	f.pos++
	return v
}

func (f *fakeRNG) UniformInt(n uint32) uint32 { return 0 }

// spinConfiguration is a minimal Configuration whose ProposeStep replays a
// scripted sequence of energy deltas, each a symmetric (q=1) step.
type spinConfiguration struct {
	energy core.Int64Energy
	deltas []int64
	pos    int
}

func (c *spinConfiguration) SystemSize() int { return 1 }

func (c *spinConfiguration) CurrentEnergy() core.Energy { return c.energy }

func (c *spinConfiguration) ProposeStep(r rng.RNG) core.Step {
	d := c.deltas[c.pos%len(c.deltas)]
	c.pos++
	return &spinStep{config: c, delta: core.Int64Energy(d)}
}

type spinStep struct {
	config *spinConfiguration
	delta  core.Int64Energy
}

func (s *spinStep) IsExecutable() bool                  { return true }
func (s *spinStep) DeltaE() core.Energy                 { return s.delta }
func (s *spinStep) SelectionProbabilityFactor() float64 { return 1.0 }
func (s *spinStep) Execute()                            { s.config.energy = s.config.energy.Add(s.delta).(core.Int64Energy) }

// nonExecutableConfiguration always proposes a step that refuses execution.
type nonExecutableConfiguration struct {
	energy core.Int64Energy
}

func (c *nonExecutableConfiguration) SystemSize() int             { return 1 }
func (c *nonExecutableConfiguration) CurrentEnergy() core.Energy   { return c.energy }
func (c *nonExecutableConfiguration) ProposeStep(r rng.RNG) core.Step {
	return nonExecutableStep{}
}

type nonExecutableStep struct{}

func (nonExecutableStep) IsExecutable() bool                  { return false }
func (nonExecutableStep) DeltaE() core.Energy                 { return core.Int64Energy(0) }
func (nonExecutableStep) SelectionProbabilityFactor() float64 { return 1.0 }
func (nonExecutableStep) Execute()                            { panic("must not be called") }

// float64Observable observes a configuration's energy as a plain float64.
type float64Observable struct{}

func (float64Observable) Observe(c *spinConfiguration) float64 {
	return float64(c.energy)
}
