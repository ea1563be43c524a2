package metropolis

import (
	"math"

	logging "github.com/op/go-logging"

	"github.com/katalvlaran/gocasinns/core"
	"github.com/katalvlaran/gocasinns/observable"
	"github.com/katalvlaran/gocasinns/simulation"
)

// Engine drives fixed-temperature Metropolis–Hastings sampling over one
// Configuration.
type Engine[C core.Configuration] struct {
	base   *simulation.Base[C]
	params Parameters
}

// New constructs an Engine wired to a freshly seeded RNG.
func New[C core.Configuration](params Parameters, config C, seed uint64) (*Engine[C], error) {
	return &Engine[C]{
		base:   simulation.NewBase[C](config, seed, "metropolis", "INFO"),
		params: params,
	}, nil
}

// Base exposes the shared lifecycle state (RNG, logger, callback slots,
// save/load) underlying this Engine.
func (e *Engine[C]) Base() *simulation.Base[C] {
	return e.base
}

// DoSteps runs n Metropolis steps at inverse temperature beta. A rejected
// or non-executable step never advances the RNG beyond the single
// ProposeStep/Uniform01 draws the acceptance test itself consumes.
func (e *Engine[C]) DoSteps(n uint64, beta float64) {
	for i := uint64(0); i < n; i++ {
		step := e.base.Configuration.ProposeStep(e.base.RNG)
		e.base.DispatchStep()

		if !step.IsExecutable() {
			continue
		}

		x := core.Beta(beta).Multiply(step.DeltaE())
		q := step.SelectionProbabilityFactor()
		u := e.base.RNG.Uniform01()

		if x <= -math.Log(q) || u < (1/q)*math.Exp(-x) {
			step.Execute()
		}
	}
}

// DoSteps cannot carry a type parameter of its own (Go methods may not
// introduce new type parameters beyond the receiver's), so the
// value-typed operations below — DoSimulation, DoSimulationMultiBeta,
// Sample and SampleMultiBeta — are package-level generic functions taking
// *Engine[C] rather than methods on it.

// DoSimulation equilibrates for RelaxationSteps, then collects
// MeasurementNumber observations spaced by StepsBetweenMeasurement steps,
// feeding each into acc. Returns early, preserving whatever acc has
// already collected, if a POSIX signal arrives.
func DoSimulation[C core.Configuration, V any](e *Engine[C], beta float64, acc observable.Accumulator[V], obs observable.Observable[C, V]) {
	e.DoSteps(e.params.RelaxationSteps, beta)

	for m := uint64(0); m < e.params.MeasurementNumber; m++ {
		e.DoSteps(e.params.StepsBetweenMeasurement, beta)
		e.base.DispatchMeasurement()
		acc.Accumulate(obs.Observe(e.base.Configuration))

		if e.base.CheckForPOSIXSignal() {
			if e.base.Logger.IsEnabledFor(logging.INFO) {
				e.base.Logger.Infof("interrupted after %d/%d measurements at beta=%g", m+1, e.params.MeasurementNumber, beta)
			}
			return
		}
	}
}

// Sample is the accumulator-free convenience form of DoSimulation: it
// collects every measurement into a fresh VectorAccumulator and returns
// the resulting slice.
func Sample[C core.Configuration, V any](e *Engine[C], beta float64, obs observable.Observable[C, V]) []V {
	acc := observable.NewVectorAccumulator[V](int(e.params.MeasurementNumber))
	DoSimulation[C, V](e, beta, acc, obs)
	return acc.Samples()
}

// DoSimulationMultiBeta runs DoSimulation once per (beta, accumulator)
// pair in order, in place against the same Configuration — the
// Configuration is never reset between β values, so callers control
// whatever warm-start behavior they want between temperatures. Stops
// early on a POSIX signal. Returns ErrLengthMismatch if betas and accs
// have different lengths.
func DoSimulationMultiBeta[C core.Configuration, V any](e *Engine[C], betas []float64, accs []observable.Accumulator[V], obs observable.Observable[C, V]) error {
	if len(betas) != len(accs) {
		return ErrLengthMismatch
	}

	for i, beta := range betas {
		if e.base.IsTerminating {
			if e.base.Logger.IsEnabledFor(logging.INFO) {
				e.base.Logger.Infof("multi-beta run interrupted before beta index %d/%d", i, len(betas))
			}
			break
		}
		DoSimulation[C, V](e, beta, accs[i], obs)
	}
	return nil
}

// SampleMultiBeta is the accumulator-free convenience form of
// DoSimulationMultiBeta: it returns one slice of measurements per β,
// indexed [betaIndex][measurementIndex].
func SampleMultiBeta[C core.Configuration, V any](e *Engine[C], betas []float64, obs observable.Observable[C, V]) [][]V {
	result := make([][]V, len(betas))
	for i, beta := range betas {
		if e.base.IsTerminating {
			break
		}
		result[i] = Sample[C, V](e, beta, obs)
	}
	return result
}
