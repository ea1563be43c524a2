package simulation

import "errors"

// ErrUnsupportedRNG is returned by Save and Load when the Base's RNG is
// not a *rng.PCG32, the only RNG implementation this module knows how to
// serialize.
var ErrUnsupportedRNG = errors.New("simulation: save/load requires a *rng.PCG32")
