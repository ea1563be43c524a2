package isingmodel

import (
	"github.com/katalvlaran/gocasinns/core"
	"github.com/katalvlaran/gocasinns/observable"
)

// EnergyObservable observes a Lattice's current total energy as a
// float64, suitable for feeding a MeanVarianceAccumulator or
// AutocorrelationFunction.
type EnergyObservable struct{}

// Observe implements observable.Observable.
func (EnergyObservable) Observe(l *Lattice) float64 {
	return float64(l.CurrentEnergy().(core.Int64Energy))
}

// MagnetizationObservable observes a Lattice's total magnetization.
type MagnetizationObservable struct{}

// Observe implements observable.Observable.
func (MagnetizationObservable) Observe(l *Lattice) float64 {
	return float64(l.Magnetization())
}

var (
	_ observable.Observable[*Lattice, float64] = EnergyObservable{}
	_ observable.Observable[*Lattice, float64] = MagnetizationObservable{}
)
