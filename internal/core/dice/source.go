package dice

import "math/rand/v2"

// Source supplies uniformly distributed integers.
//
// IntN returns a value in [0, n) and is only called with n > 0.
// Implementations shared across goroutines must be safe for concurrent use.
// *rand.Rand from math/rand/v2 satisfies Source but is not concurrency safe;
// see internal/random for a shared implementation.
type Source interface {
	IntN(n int) int
}

// globalSource draws from the math/rand/v2 top-level generator, which is
// seeded from system entropy and safe for concurrent use.
type globalSource struct{}

func (globalSource) IntN(n int) int {
	return rand.IntN(n)
}
