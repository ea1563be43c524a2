package simulation_test

import (
	"testing"

	"github.com/katalvlaran/gocasinns/simulation"
	"github.com/stretchr/testify/assert"
)

func TestNewBase_WiresRNGLoggerAndName(t *testing.T) {
	config := &fakeConfiguration{energy: 0}
	base := simulation.NewBase[*fakeConfiguration](config, 42, "test-engine", "DEBUG")

	assert.NotNil(t, base.RNG)
	assert.NotNil(t, base.Logger)
	assert.Equal(t, "test-engine", base.Name)
	assert.False(t, base.IsTerminating)
}

func TestBase_SetRandomSeedIsReproducible(t *testing.T) {
	config := &fakeConfiguration{energy: 0}
	base := simulation.NewBase[*fakeConfiguration](config, 1, "seed-test", "INFO")

	base.SetRandomSeed(7)
	first := base.RNG.Uniform01()

	base.SetRandomSeed(7)
	second := base.RNG.Uniform01()

	assert.Equal(t, first, second)
}

func TestBase_DispatchMeasurementInvokesSignal(t *testing.T) {
	config := &fakeConfiguration{energy: 0}
	base := simulation.NewBase[*fakeConfiguration](config, 1, "dispatch-test", "INFO")

	called := false
	base.MeasurementSignal = func(b *simulation.Base[*fakeConfiguration]) { called = true }
	base.DispatchMeasurement()

	assert.True(t, called)
}

func TestBase_DispatchSweepInvokesSignal(t *testing.T) {
	config := &fakeConfiguration{energy: 0}
	base := simulation.NewBase[*fakeConfiguration](config, 1, "sweep-test", "INFO")

	called := false
	base.SweepSignal = func(b *simulation.Base[*fakeConfiguration]) { called = true }
	base.DispatchSweep()

	assert.True(t, called)
}

func TestBase_DispatchSweepNilSignalIsNoop(t *testing.T) {
	config := &fakeConfiguration{energy: 0}
	base := simulation.NewBase[*fakeConfiguration](config, 1, "sweep-noop-test", "INFO")
	assert.NotPanics(t, func() { base.DispatchSweep() })
}
