// Package wanglandau implements Wang–Landau flat-histogram sampling: a
// single-step update rule that always credits the current energy
// regardless of acceptance, and a modification-factor refinement loop
// gated on the incidence histogram's flatness.
//
// The engine tracks a log-density-of-states histogram S[E] and an
// incidence histogram H[E], both starting empty; an energy nobody has
// visited yet implicitly has S[E]=0, which makes it look infinitely
// attractive the first time the walk reaches it.
package wanglandau
