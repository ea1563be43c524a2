package rng

import "errors"

// ErrZeroBound is returned by callers that choose to validate UniformInt's
// argument themselves rather than rely on its panic-on-misuse contract.
var ErrZeroBound = errors.New("rng: bound must be non-zero")
