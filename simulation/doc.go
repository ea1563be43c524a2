// Package simulation provides the lifecycle scaffolding shared by every
// sampling engine in this module: a non-owning reference to the
// Configuration under simulation, its RNG, cooperative POSIX-signal
// termination, measurement/sweep callback slots, structured logging, and
// gob-based save/load of engine state.
//
// Base never touches the Configuration's identity across a save/load
// round-trip: callers are responsible for reconstructing an identical
// Configuration before calling Load, exactly as spec'd for bit-identical
// resumed sampling.
package simulation
