package histogram

import "math"

// Binned is a Histogram over a continuous float64 domain, bucketed by the
// functor phi(x) = reference + width*floor((x-reference)/width). It
// delegates storage to an internal Histocrete keyed by the bucket's own
// left edge, so two Binned values built from the same reference/width
// share a comparable bin set.
type Binned[V Numeric] struct {
	reference float64
	width     float64
	bins      *Histocrete[float64, V]
}

// NewBinned constructs an empty Binned with the given reference point and
// bin width. Returns ErrZeroBinWidth if width is not positive.
func NewBinned[V Numeric](reference, width float64) (*Binned[V], error) {
	if width <= 0 {
		return nil, ErrZeroBinWidth
	}
	return &Binned[V]{
		reference: reference,
		width:     width,
		bins:      NewHistocrete[float64, V](),
	}, nil
}

// bucket applies phi(x) = reference + width*floor((x-reference)/width).
func (b *Binned[V]) bucket(x float64) float64 {
	return b.reference + b.width*math.Floor((x-b.reference)/b.width)
}

// Insert implements Histogram, bucketing x via phi before storing v.
func (b *Binned[V]) Insert(x float64, v V) {
	b.bins.Insert(b.bucket(x), v)
}

// Add implements Histogram, bucketing x via phi before accumulating delta.
func (b *Binned[V]) Add(x float64, delta V) {
	b.bins.Add(b.bucket(x), delta)
}

// Lookup implements Histogram, bucketing x via phi before reading.
func (b *Binned[V]) Lookup(x float64) (V, bool) {
	return b.bins.Lookup(b.bucket(x))
}

// Keys implements Histogram, returning each occupied bucket's left edge in
// ascending order.
func (b *Binned[V]) Keys() []float64 {
	return b.bins.Keys()
}

// Len implements Histogram.
func (b *Binned[V]) Len() int {
	return b.bins.Len()
}

// MinY implements Histogram.
func (b *Binned[V]) MinY() V {
	return b.bins.MinY()
}

// MeanY implements Histogram.
func (b *Binned[V]) MeanY() float64 {
	return b.bins.MeanY()
}

// Flatness implements Histogram.
func (b *Binned[V]) Flatness() float64 {
	return b.bins.Flatness()
}

// sameBinSet reports whether b and other were built from the same
// reference point and bin width, and are therefore safe to combine
// bin-by-bin.
func (b *Binned[V]) sameBinSet(other *Binned[V]) bool {
	return b.reference == other.reference && b.width == other.width
}

// AddHistogram pointwise-adds b and other into a fresh Binned sharing b's
// bin geometry.
// Panics via ErrBinSetMismatch if b and other were not built with the same
// reference and width.
func (b *Binned[V]) AddHistogram(other *Binned[V]) *Binned[V] {
	if !b.sameBinSet(other) {
		panic(ErrBinSetMismatch)
	}
	result, _ := NewBinned[V](b.reference, b.width)
	for _, k := range b.bins.Keys() {
		v, _ := b.bins.Lookup(k)
		result.bins.Insert(k, v)
	}
	for _, k := range other.bins.Keys() {
		v, _ := other.bins.Lookup(k)
		result.bins.Add(k, v)
	}
	return result
}

// Divide returns a new float64-valued Binned holding b's values divided
// pointwise by other's, over the union of both bin sets (a bin absent from
// one side contributes zero). Panics via ErrBinSetMismatch if b and other
// were not built with the same reference and width.
func (b *Binned[V]) Divide(other *Binned[V]) *Binned[float64] {
	if !b.sameBinSet(other) {
		panic(ErrBinSetMismatch)
	}
	result, _ := NewBinned[float64](b.reference, b.width)
	seen := make(map[float64]struct{})
	for _, k := range b.bins.Keys() {
		numerator, _ := b.bins.Lookup(k)
		denominator, ok := other.bins.Lookup(k)
		if ok && denominator != 0 {
			result.bins.Insert(k, float64(numerator)/float64(denominator))
		} else {
			result.bins.Insert(k, 0)
		}
		seen[k] = struct{}{}
	}
	for _, k := range other.bins.Keys() {
		if _, ok := seen[k]; ok {
			continue
		}
		result.bins.Insert(k, 0)
	}
	return result
}

// InitializeEmptyLike copies other's occupied bin set into b with every
// value reset to zero, leaving bins b already held but other does not
// untouched.
func (b *Binned[V]) InitializeEmptyLike(other *Binned[V]) {
	for _, k := range other.bins.Keys() {
		b.bins.Insert(k, 0)
	}
}
