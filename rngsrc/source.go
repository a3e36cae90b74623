package rngsrc

import "math/rand"

// Source is the uniform randomness source consulted by graph moves, ensemble
// policies, and acceptance rules. It wraps a single *rand.Rand; callers must
// not share a Source across goroutines.
type Source struct {
	rng *rand.Rand
}

// New returns a Source seeded deterministically. The same seed always
// produces the same sequence of draws, regardless of platform.
func New(seed int64) *Source {
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

// FromRand wraps an already-constructed *rand.Rand. Passing nil panics:
// every caller is expected to own a real RNG before reaching this point.
func FromRand(r *rand.Rand) *Source {
	if r == nil {
		panic("rngsrc: FromRand called with nil *rand.Rand")
	}
	return &Source{rng: r}
}

// Uniform draws a real number in [0,1).
func (s *Source) Uniform() float64 {
	return s.rng.Float64()
}

// UniformVertex draws an integer in [0,n). Panics if n<=0: callers always
// know n statically from the graph size.
func (s *Source) UniformVertex(n int) int {
	if n <= 0 {
		panic("rngsrc: UniformVertex called with n<=0")
	}
	return s.rng.Intn(n)
}

// Rand exposes the underlying *rand.Rand for callers (gonum helpers, tests)
// that need the full math/rand surface rather than the narrow Uniform API.
func (s *Source) Rand() *rand.Rand {
	return s.rng
}
