package rng

// PCG32 is a permuted congruential generator with 64 bits of state and a
// fixed odd increment ("stream"), following Melissa O'Neill's PCG design
// (http://www.pcg-random.org). The state is two explicit uint64 fields, so
// a PCG32 gob-encodes as-is with no custom MarshalBinary needed — the
// property this generator was chosen for, since math/rand.Rand does not
// expose its internal state for serialization.
//
// A zero-value PCG32 is not seeded; use NewPCG32 or call Seed before first
// use.
type PCG32 struct {
	State uint64 // current 64-bit LCG state
	Inc   uint64 // odd increment; selects the output stream
}

const (
	pcgMultiplier uint64 = 6364136223846793005
	pcgDefaultInc uint64 = 1442695040888963407
)

// NewPCG32 constructs a PCG32 seeded from seed, using the library's default
// stream selector. Two generators created with the same seed produce
// identical streams.
func NewPCG32(seed uint64) *PCG32 {
	p := &PCG32{}
	p.SeedStream(seed, pcgDefaultInc)
	return p
}

// Seed reseeds the generator using the default stream, discarding any
// previously selected stream. It satisfies the RNG interface.
func (p *PCG32) Seed(seed uint64) {
	p.SeedStream(seed, pcgDefaultInc)
}

// SeedStream reseeds the generator with an explicit seed and stream
// selector. seq is forced odd, as PCG's increment must be odd to guarantee
// a full-period LCG.
func (p *PCG32) SeedStream(seed, seq uint64) {
	p.State = 0
	p.Inc = (seq << 1) | 1
	p.next()
	p.State += seed
	p.next()
}

// next advances the LCG state and returns one permuted 32-bit output.
func (p *PCG32) next() uint32 {
	old := p.State
	p.State = old*pcgMultiplier + p.Inc

	xorshifted := uint32(((old >> 18) ^ old) >> 27)
	rot := uint32(old >> 59)

	return (xorshifted >> rot) | (xorshifted << ((-rot) & 31))
}

// Uniform32 returns a raw pseudo-random uint32, the generator's native
// output width.
func (p *PCG32) Uniform32() uint32 {
	return p.next()
}

// Uniform01 returns a pseudo-random float64 in [0,1), built from 53 bits
// of the underlying stream (two draws) for full float64 mantissa
// resolution.
func (p *PCG32) Uniform01() float64 {
	hi := uint64(p.next() >> 6)  // 26 bits
	lo := uint64(p.next() >> 5)  // 27 bits
	return (float64(hi)*(1<<27) + float64(lo)) / (1 << 53)
}

// UniformInt returns a pseudo-random uint32 in [0,n) using OpenBSD-style
// modulo-rejection sampling: draws below 2^32 mod n are rejected, so the
// accepted range has a length that is a multiple of n, which avoids the
// modulo bias a plain `r % n` would introduce whenever n does not evenly
// divide 2^32. Panics if n == 0.
func (p *PCG32) UniformInt(n uint32) uint32 {
	if n == 0 {
		panic("rng: UniformInt called with n == 0")
	}

	threshold := -n % n
	for {
		r := p.next()
		if r >= threshold {
			return r % n
		}
	}
}
