package simulation

import (
	logging "github.com/op/go-logging"

	"github.com/katalvlaran/gocasinns/core"
	"github.com/katalvlaran/gocasinns/rng"
)

// Base holds the lifecycle state shared by every sampling engine: RNG,
// a non-owning reference to the Configuration under simulation,
// termination/callback plumbing, a module-scoped logger, and an instance
// name used to label this engine's Prometheus series.
type Base[C core.Configuration] struct {
	// RNG drives every stochastic decision the owning engine makes.
	RNG rng.RNG

	// Configuration is the physical state being sampled. Base does not own
	// it: the caller constructs it, retains it, and is responsible for its
	// lifetime across a Save/Load round-trip.
	Configuration C

	// IsTerminating latches true once CheckForPOSIXSignal observes a
	// termination signal. Outer loops must check it between iterations.
	IsTerminating bool

	// MeasurementSignal, if non-nil, is invoked once per measurement with
	// the engine's Base. Single-subscriber slot; a caller wanting
	// multiple observers should compose them into one function.
	MeasurementSignal func(*Base[C])

	// SweepSignal, if non-nil, is invoked once per sweep-sized block of
	// steps (Wang–Landau refinement, in particular). Same single-
	// subscriber contract as MeasurementSignal.
	SweepSignal func(*Base[C])

	// Logger is a module-scoped logger tagged with Name.
	Logger *logging.Logger

	// Name identifies this engine instance in log lines and Prometheus
	// label values.
	Name string
}

// NewBase constructs a Base wired to a freshly seeded rng.PCG32, a
// logger scoped to name at the given level, and the process-wide POSIX
// signal handler (installed at most once per process).
func NewBase[C core.Configuration](config C, seed uint64, name, logLevel string) *Base[C] {
	installPOSIXSignalHandler()

	return &Base[C]{
		RNG:           rng.NewPCG32(seed),
		Configuration: config,
		Logger:        NewLogger(logLevel, name),
		Name:          name,
	}
}

// SetRandomSeed reseeds b's RNG, discarding its prior state.
func (b *Base[C]) SetRandomSeed(seed uint64) {
	b.RNG.Seed(seed)
}

// DispatchMeasurement increments the measurement counter and invokes
// MeasurementSignal, if set.
func (b *Base[C]) DispatchMeasurement() {
	b.recordMeasurement()
	if b.Logger.IsEnabledFor(logging.DEBUG) {
		b.Logger.Debugf("%s: measurement dispatched", b.Name)
	}
	if b.MeasurementSignal != nil {
		b.MeasurementSignal(b)
	}
}

// DispatchSweep increments no counter of its own (steps are counted
// individually via DispatchStep) and invokes SweepSignal, if set.
func (b *Base[C]) DispatchSweep() {
	if b.SweepSignal != nil {
		b.SweepSignal(b)
	}
}

// DispatchStep increments the step counter. Called once per proposed
// step regardless of acceptance. The DEBUG line is guarded by
// IsEnabledFor so formatting cost is never paid inside the per-step loop
// unless the caller explicitly asked for step-level logging.
func (b *Base[C]) DispatchStep() {
	b.recordStep()
	if b.Logger.IsEnabledFor(logging.DEBUG) {
		b.Logger.Debugf("%s: step dispatched", b.Name)
	}
}
