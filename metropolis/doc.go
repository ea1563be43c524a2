// Package metropolis implements fixed-temperature Metropolis–Hastings
// sampling: equilibration, cadence-controlled measurement, multi-β
// sweeps, and autocorrelation analysis, built on top of simulation.Base.
//
// The acceptance test follows the generalized Metropolis–Hastings rule
// for possibly asymmetric proposals, accepting a step iff
// β·ΔE ≤ -ln(q) or u < (1/q)·exp(-β·ΔE), where q is the proposal's
// selection-probability ratio. The first arm short-circuits guaranteed
// acceptances without ever calling exp.
package metropolis
