package metropolis

import "errors"

// ErrLengthMismatch is returned by DoSimulationMultiBeta when the number
// of accumulators does not match the number of β values, an edge case
// spec.md leaves unspecified and Go's stronger typing makes natural to
// reject outright rather than silently truncate.
var ErrLengthMismatch = errors.New("metropolis: len(betas) != len(accumulators)")

// ErrDegenerateAutocorrelation is returned by IntegratedAutocorrelationTime
// when C(0) == 0, which would make every term of the sum divide by zero.
var ErrDegenerateAutocorrelation = errors.New("metropolis: autocorrelation is degenerate, C(0) == 0")
