package simulation

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	stepsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gocasinns_steps_total",
		Help: "Total number of candidate steps proposed by a sampling engine, labelled by engine instance name.",
	}, []string{"engine"})

	measurementsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gocasinns_measurements_total",
		Help: "Total number of observable measurements dispatched by a sampling engine, labelled by engine instance name.",
	}, []string{"engine"})
)

// recordStep increments the package-level step counter for b's engine name.
func (b *Base[C]) recordStep() {
	stepsTotal.WithLabelValues(b.Name).Inc()
}

// recordMeasurement increments the package-level measurement counter for
// b's engine name.
func (b *Base[C]) recordMeasurement() {
	measurementsTotal.WithLabelValues(b.Name).Inc()
}
