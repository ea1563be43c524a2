package wanglandau

import (
	"math"

	logging "github.com/op/go-logging"

	"github.com/katalvlaran/gocasinns/core"
	"github.com/katalvlaran/gocasinns/histogram"
	"github.com/katalvlaran/gocasinns/simulation"
)

// Engine drives Wang–Landau flat-histogram sampling over one
// Configuration whose energy type is E.
type Engine[C core.Configuration, E core.Energy] struct {
	base   *simulation.Base[C]
	params Parameters
	lnF    float64

	s *histogram.Histocrete[E, float64]
	h *histogram.Histocrete[E, int64]
}

// New constructs an Engine wired to a freshly seeded RNG. Returns
// ErrInvalidModificationFactorFinal (also raised when
// ModificationFactorFinal is not strictly below the effective initial
// factor), ErrInvalidMultiplier, or ErrInvalidFlatness if params is out
// of range. If params.SweepSteps is zero, it defaults to
// config.SystemSize().
func New[C core.Configuration, E core.Energy](params Parameters, config C, seed uint64) (*Engine[C, E], error) {
	initial := params.ModificationFactorInitial
	if initial == 0 {
		initial = 1.0
	}

	if err := params.validate(initial); err != nil {
		return nil, err
	}

	if params.SweepSteps == 0 {
		params.SweepSteps = uint64(config.SystemSize())
	}

	return &Engine[C, E]{
		base:   simulation.NewBase[C](config, seed, "wanglandau", "INFO"),
		params: params,
		lnF:    initial,
		s:      histogram.NewHistocrete[E, float64](),
		h:      histogram.NewHistocrete[E, int64](),
	}, nil
}

// Base exposes the shared lifecycle state (RNG, logger, callback slots,
// save/load) underlying this Engine.
func (e *Engine[C, E]) Base() *simulation.Base[C] {
	return e.base
}

// ModificationFactor is the engine's current ln_f.
func (e *Engine[C, E]) ModificationFactor() float64 {
	return e.lnF
}

func (e *Engine[C, E]) currentEnergy() E {
	return e.base.Configuration.CurrentEnergy().(E)
}

// DoSteps runs n single Wang–Landau steps at the engine's current
// modification factor. Both S[E_cur] and H[E_cur] are updated on every
// step, whether or not the proposed move was executable or accepted: the
// walker occupies E_cur for that step regardless of what its next move
// turns out to be.
func (e *Engine[C, E]) DoSteps(n uint64) {
	for i := uint64(0); i < n; i++ {
		eCur := e.currentEnergy()
		step := e.base.Configuration.ProposeStep(e.base.RNG)
		e.base.DispatchStep()

		if step.IsExecutable() {
			eNew := eCur.Add(step.DeltaE()).(E)
			q := step.SelectionProbabilityFactor()
			sCur, _ := e.s.Lookup(eCur) // unseen energy: implicit S=0
			sNew, _ := e.s.Lookup(eNew)
			u := e.base.RNG.Uniform01()

			if u < q*math.Exp(sCur-sNew) {
				step.Execute()
				eCur = eNew
			}
		}

		e.s.Add(eCur, e.lnF)
		e.h.Add(eCur, 1)
	}
}

// DoSimulation runs the refinement loop: repeatedly sweeps SweepSteps
// steps and dispatches SweepSignal until H's flatness reaches
// Parameters.Flatness, then multiplies ln_f by
// ModificationFactorMultiplier and resets H (S is preserved). Terminates
// early, leaving ln_f and S/H at their last state, if a POSIX signal
// arrives or ln_f falls to or below ModificationFactorFinal.
func (e *Engine[C, E]) DoSimulation() {
	for e.lnF > e.params.ModificationFactorFinal {
		if e.base.CheckForPOSIXSignal() {
			e.logInterrupted()
			return
		}

		for {
			e.DoSteps(e.params.SweepSteps)
			e.base.DispatchSweep()

			if e.base.CheckForPOSIXSignal() {
				e.logInterrupted()
				return
			}
			if e.h.Flatness() >= e.params.Flatness {
				break
			}
		}

		e.lnF *= e.params.ModificationFactorMultiplier
		e.h.Reset()

		if e.base.Logger.IsEnabledFor(logging.INFO) {
			e.base.Logger.Infof("refinement stage complete: ln_f=%g flatness_threshold=%g", e.lnF, e.params.Flatness)
		}
	}
}

// logInterrupted emits the INFO-level interruption event a POSIX signal
// triggers mid-refinement, leaving ln_f and S/H at their last state.
func (e *Engine[C, E]) logInterrupted() {
	if e.base.Logger.IsEnabledFor(logging.INFO) {
		e.base.Logger.Infof("interrupted mid-refinement: ln_f=%g", e.lnF)
	}
}

// GetDensityOfStates returns a copy of the log-density-of-states
// histogram S[E]; mutating the result does not affect the engine.
// Physical g(E) is exp(S[E]); the engine keeps log form throughout to
// avoid overflow.
func (e *Engine[C, E]) GetDensityOfStates() histogram.Histogram[E, float64] {
	snapshot := histogram.NewHistocrete[E, float64]()
	for _, k := range e.s.Keys() {
		v, _ := e.s.Lookup(k)
		snapshot.Insert(k, v)
	}
	return snapshot
}
