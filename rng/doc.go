// Package rng defines the random-number capability consumed by every
// sampling engine in gocasinns, plus one concrete, seedable, serializable
// implementation.
//
// The engines make no distributional assumptions beyond "uniform on
// [0,1)" and "uniform integer below n". Anything satisfying RNG — a
// wrapper around math/rand, a hardware TRNG, a replayed recorded stream —
// can be plugged into a Metropolis or Wang–Landau engine.
//
// PCG32 is the module's own reference generator: a permuted congruential
// generator with two explicit uint64 fields (state and stream), following
// the design of Melissa O'Neill's PCG family. Explicit, small state makes
// it trivial to gob-encode for save/load round-tripping (see the
// simulation package), unlike math/rand.Rand, whose internal state is not
// exported.
package rng
