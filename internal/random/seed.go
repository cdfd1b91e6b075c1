// Package random provides entropy-seeded random sources for dice rolls.
//
// It uses crypto/rand to seed a PCG generator once, then serves draws from
// that generator under a lock so one Source can be shared by every caller.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"sync"

	apperrors "github.com/louisbranch/dieroll/internal/platform/errors"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return binary.LittleEndian.Uint64(b[:]), nil
}

// Source is a PCG generator that is safe for concurrent use.
type Source struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSource returns a Source seeded from crypto/rand. Seeding failures carry
// CodeRandomUnavailable.
func NewSource() (*Source, error) {
	return newSource(NewSeed)
}

func newSource(seedFunc func() (uint64, error)) (*Source, error) {
	hi, err := seedFunc()
	if err != nil {
		return nil, unavailable(err)
	}
	lo, err := seedFunc()
	if err != nil {
		return nil, unavailable(err)
	}
	return &Source{rng: rand.New(rand.NewPCG(hi, lo))}, nil
}

// IntN returns a uniformly distributed value in [0, n). It panics if n <= 0.
func (s *Source) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}

func unavailable(err error) error {
	return apperrors.Wrap(apperrors.CodeRandomUnavailable, fmt.Sprintf("init random source: %v", err), err)
}
