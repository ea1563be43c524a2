package histogram

import "errors"

// ErrZeroBinWidth is returned by NewBinned when constructed with a
// non-positive bin width, which would make the binning functor
// phi(x) = r + w*floor((x-r)/w) divide by zero.
var ErrZeroBinWidth = errors.New("histogram: bin width must be positive")

// ErrBinSetMismatch is the panic value of Binned.AddHistogram and
// Binned.Divide when the two operands were not built from the same
// reference point and width, so their bin keys are not comparable.
var ErrBinSetMismatch = errors.New("histogram: operands have incompatible bin sets")
