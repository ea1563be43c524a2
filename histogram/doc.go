// Package histogram provides the keyed numeric container the Wang–Landau
// engine uses for its incidence histogram H[E] and log-density-of-states
// S[E], and that Metropolis-adjacent tooling can use for arbitrary binned
// observables.
//
// Two implementations satisfy the same Histogram interface:
//
//	Histocrete[K,V] — keys are used verbatim (discrete/unbinned energies,
//	                  the common case for lattice spin models with integer
//	                  energy).
//	Binned[V]       — a binning functor phi(x) = r + w*floor((x-r)/w) maps
//	                  raw float64 x-values into bucket keys before storage
//	                  (continuous energies).
//
// Both track only the bins actually inserted; flatness and mean/min are
// computed exclusively over non-zero-incidence bins, so an unreachable
// energy can never stall Wang–Landau's flatness criterion.
package histogram
