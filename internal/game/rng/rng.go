// Package rng provides the randomness abstraction for the Shadow City
// reward and risk engines. Every stochastic decision in the game draws
// from a Source so that tests can substitute deterministic values.
package rng

// Source is the randomness provider for reward rolls and risk draws.
//
// Implementations MUST be safe for concurrent use.
type Source interface {
	// Float64 returns a uniform random float64 in [0, 1).
	Float64() float64

	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}

// IntRange returns a uniform random int in the inclusive range [lo, hi]
// drawn from src.
//
// Precondition: src must be non-nil; lo <= hi.
func IntRange(src Source, lo, hi int) int {
	if lo > hi {
		panic("rng: IntRange called with lo > hi")
	}
	return src.Intn(hi-lo+1) + lo
}
