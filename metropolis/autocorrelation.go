package metropolis

import (
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/gocasinns/observable"
)

// AutocorrelationFunction equilibrates, then collects
// maximalTime*simulationTimeFactor + 1 samples of obs spaced one sweep
// (SystemSize steps) apart, and returns the length-(maximalTime+1)
// autocorrelation vector C(t) = ⟨f[s]·f[s+t]⟩_s − ⟨f⟩². The 0-lag entry
// uses identical indices, giving ⟨f²⟩ − ⟨f⟩².
func (e *Engine[C]) AutocorrelationFunction(beta float64, maximalTime, simulationTimeFactor uint, obs observable.Observable[C, float64]) []float64 {
	e.DoSteps(e.params.RelaxationSteps, beta)

	sweep := uint64(e.base.Configuration.SystemSize())
	sampleCount := uint64(maximalTime)*uint64(simulationTimeFactor) + 1
	samples := make([]float64, sampleCount)
	for i := range samples {
		e.DoSteps(sweep, beta)
		samples[i] = obs.Observe(e.base.Configuration)
	}

	mean := stat.Mean(samples, nil)

	c := make([]float64, maximalTime+1)
	for t := uint(0); t <= maximalTime; t++ {
		var sum float64
		for s := uint(0); s < simulationTimeFactor; s++ {
			base := uint64(s) * uint64(maximalTime)
			sum += samples[base] * samples[base+uint64(t)]
		}
		c[t] = sum/float64(simulationTimeFactor) - mean*mean
	}
	return c
}

// IntegratedAutocorrelationTime computes
// τ_int = 1 + 2·Σ_{t=1}^{maximalTime-1} (1 - t/maximalTime)·C(t)/C(0).
// Returns ErrDegenerateAutocorrelation if C(0) == 0.
func (e *Engine[C]) IntegratedAutocorrelationTime(c []float64, maximalTime uint) (float64, error) {
	if len(c) == 0 || c[0] == 0 {
		return 0, ErrDegenerateAutocorrelation
	}

	tau := 1.0
	for t := uint(1); t < maximalTime; t++ {
		tau += 2 * (1 - float64(t)/float64(maximalTime)) * c[t] / c[0]
	}
	return tau, nil
}
