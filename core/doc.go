// Package core defines the minimal contracts shared by every sampling engine
// in gocasinns: Configuration, Step, Energy and Temperature.
//
// A Configuration is an opaque physical state — a spin lattice, a particle
// arrangement, anything with a total energy and a notion of "propose a
// candidate mutation". A Step is that candidate mutation: it can report
// whether it is legal, what it would cost in energy, how asymmetric its
// proposal density is relative to its reverse, and how to actually apply
// itself. Neither the Metropolis nor the Wang–Landau engine inspects the
// concrete type behind these interfaces; they only call the methods below.
//
// Implementations own their own concurrency story. The engines in this
// module are single-threaded per instance (see the simulation package) and
// call ProposeStep and Execute strictly sequentially, so a Configuration
// need not be safe for concurrent use by itself.
package core
