package histogram

import (
	"sort"

	"github.com/katalvlaran/gocasinns/core"
)

// Histocrete is a Histogram over keys used verbatim — no binning. It is
// the natural incidence/log-density container for models whose energy is
// already a discrete quantity (e.g. integer lattice-spin energies).
type Histocrete[K comparable, V Numeric] struct {
	values map[K]V
}

// NewHistocrete returns an empty Histocrete.
func NewHistocrete[K comparable, V Numeric]() *Histocrete[K, V] {
	return &Histocrete[K, V]{values: make(map[K]V)}
}

// Insert implements Histogram.
func (h *Histocrete[K, V]) Insert(k K, v V) {
	h.values[k] = v
}

// Add implements Histogram.
func (h *Histocrete[K, V]) Add(k K, delta V) {
	h.values[k] += delta
}

// Lookup implements Histogram.
func (h *Histocrete[K, V]) Lookup(k K) (V, bool) {
	v, ok := h.values[k]
	return v, ok
}

// Len implements Histogram.
func (h *Histocrete[K, V]) Len() int {
	return len(h.values)
}

// Reset clears every stored value to the zero value without discarding the
// key set — used by Wang–Landau to reset its incidence histogram between
// refinement stages while preserving which energies have been observed.
func (h *Histocrete[K, V]) Reset() {
	for k := range h.values {
		h.values[k] = 0
	}
}

// Keys implements Histogram, returning keys in ascending order. Ordering
// is resolved for the builtin int64/float64/int kinds directly, and for
// any core.Energy-implementing key type (e.g. core.Int64Energy,
// core.Float64Energy) via its own Less method. A key type outside both
// categories is returned in unspecified (map-iteration) order.
func (h *Histocrete[K, V]) Keys() []K {
	keys := make([]K, 0, len(h.values))
	for k := range h.values {
		keys = append(keys, k)
	}
	sortComparable(keys)
	return keys
}

// MinY implements Histogram, ignoring zero-incidence entries.
func (h *Histocrete[K, V]) MinY() V {
	var min V
	first := true
	for _, v := range h.values {
		if v == 0 {
			continue
		}
		if first || v < min {
			min = v
			first = false
		}
	}
	return min
}

// MeanY implements Histogram, ignoring zero-incidence entries.
func (h *Histocrete[K, V]) MeanY() float64 {
	var sum float64
	var count int
	for _, v := range h.values {
		if v == 0 {
			continue
		}
		sum += float64(v)
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// Flatness implements Histogram: MinY / MeanY over non-zero-incidence
// bins. Returns 0 for an empty histogram or one whose mean is zero.
func (h *Histocrete[K, V]) Flatness() float64 {
	mean := h.MeanY()
	if mean == 0 {
		return 0
	}
	return float64(h.MinY()) / mean
}

// sortComparable sorts s in ascending order using reflection-free type
// switches over the concrete kinds this module actually uses as histogram
// keys (Int64Energy and Float64Energy from the core package, and plain
// int64/float64). Falls back to leaving the slice in map-iteration order
// (non-deterministic) for any other comparable type, which only affects
// iteration order, never correctness of Flatness/MinY/MeanY.
func sortComparable[K comparable](s []K) {
	if len(s) < 2 {
		return
	}

	switch any(s[0]).(type) {
	case int64:
		vs := any(s).([]int64)
		sort.Slice(vs, func(i, j int) bool { return vs[i] < vs[j] })
	case float64:
		vs := any(s).([]float64)
		sort.Slice(vs, func(i, j int) bool { return vs[i] < vs[j] })
	case int:
		vs := any(s).([]int)
		sort.Slice(vs, func(i, j int) bool { return vs[i] < vs[j] })
	default:
		sortViaEnergyLess(s)
	}
}

// sortViaEnergyLess sorts s in place if K's dynamic values implement
// core.Energy; otherwise it leaves s in map-iteration order.
func sortViaEnergyLess[K comparable](s []K) {
	energies := make([]core.Energy, len(s))
	for i, k := range s {
		e, ok := any(k).(core.Energy)
		if !ok {
			return
		}
		energies[i] = e
	}
	idx := make([]int, len(s))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool { return energies[idx[i]].Less(energies[idx[j]]) })
	sorted := make([]K, len(s))
	for i, j := range idx {
		sorted[i] = s[j]
	}
	copy(s, sorted)
}
