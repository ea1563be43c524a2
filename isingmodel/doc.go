// Package isingmodel provides a reference Configuration/Step
// implementation for this module's own tests, benchmarks and demo
// programs: a periodic-boundary 1-D Ising spin chain with
// single-spin-flip proposals. It is not part of the sampling engines'
// public contract.
package isingmodel
