package wanglandau

import "errors"

// ErrInvalidModificationFactorFinal is returned by New when
// ModificationFactorFinal is not strictly positive, or is not strictly
// below the effective initial modification factor (ModificationFactorInitial,
// or 1.0 if that is left zero).
var ErrInvalidModificationFactorFinal = errors.New("wanglandau: ModificationFactorFinal must be > 0 and < ModificationFactorInitial")

// ErrInvalidMultiplier is returned by New when ModificationFactorMultiplier
// is outside the open interval (0,1).
var ErrInvalidMultiplier = errors.New("wanglandau: ModificationFactorMultiplier must be in (0,1)")

// ErrInvalidFlatness is returned by New when Flatness is outside the
// half-open interval (0,1].
var ErrInvalidFlatness = errors.New("wanglandau: Flatness must be in (0,1]")
