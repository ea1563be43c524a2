package metropolis

// Parameters configures one Engine: how long to equilibrate before the
// first measurement, how many measurements to collect, and how many
// steps separate consecutive measurements.
type Parameters struct {
	// RelaxationSteps is the number of unmeasured steps run once, before
	// the measurement loop begins.
	RelaxationSteps uint64

	// MeasurementNumber is how many observable measurements a simulation
	// run collects.
	MeasurementNumber uint64

	// StepsBetweenMeasurement is how many steps run between one
	// measurement and the next.
	StepsBetweenMeasurement uint64
}
