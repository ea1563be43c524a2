package histogram

// Histogram is a keyed numeric container: insert/lookup by key, iterate in
// key order, and compute the flatness statistics Wang–Landau's refinement
// loop depends on.
//
// Flatness and the min/mean it is built from are defined over
// non-zero-incidence entries only: an energy nobody has visited yet must
// not be required to be "filled" to satisfy flatness, and must not be
// able to stall convergence just because it exists as a zero-valued map
// entry.
type Histogram[K comparable, V Numeric] interface {
	// Insert sets the value stored at k, replacing any prior value.
	Insert(k K, v V)

	// Add increments the value stored at k by delta, inserting a fresh
	// entry (delta) if k was absent.
	Add(k K, delta V)

	// Lookup returns the value at k and whether k is present.
	Lookup(k K) (V, bool)

	// Keys returns the histogram's keys in ascending key order.
	Keys() []K

	// Len is the number of distinct keys currently stored.
	Len() int

	// MinY is the minimum stored value over non-zero-incidence bins. Zero
	// if the histogram is empty.
	MinY() V

	// MeanY is the arithmetic mean of stored values over non-zero-incidence
	// bins. Zero if the histogram is empty.
	MeanY() float64

	// Flatness is MinY / MeanY over non-zero-incidence bins. Zero if the
	// histogram is empty or MeanY is zero.
	Flatness() float64
}

// Numeric constrains the value type a Histogram can store: anything that
// is addable and comparable to zero for the purposes of incidence
// filtering. int64 covers Wang–Landau's incidence counts H[E]; float64
// covers its log-density-of-states S[E].
type Numeric interface {
	~int64 | ~float64
}
