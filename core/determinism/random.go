package determinism

import (
	"math/rand/v2"
	"sync"
)

// RandomSource draws the pseudo-random numbers used by market simulation
type RandomSource interface {
	// IntN returns a value in [0, n)
	IntN(n int) int
}

// lockedSource makes a *rand.Rand safe for concurrent batches.
type lockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func (s *lockedSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}

// NewSeededSource returns a reproducible source. The same seed yields the same sequence.
func NewSeededSource(seed uint64) RandomSource {
	return &lockedSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

type systemSource struct{}

func (systemSource) IntN(n int) int {
	return rand.IntN(n)
}

// NewSystemSource returns the process-wide random source.
func NewSystemSource() RandomSource {
	return systemSource{}
}

// ConstantSource always returns the same offset, clamped into [0, n).
type ConstantSource int

// IntN implements RandomSource
func (c ConstantSource) IntN(n int) int {
	v := int(c)
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}
