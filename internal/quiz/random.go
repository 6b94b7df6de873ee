package quiz

import (
	"math/rand/v2"
	"time"
)

// Source supplies uniformly distributed integers. *rand.Rand satisfies it.
type Source interface {
	// IntN returns a value in [0, n). n is always > 0.
	IntN(n int) int
}

// NewSource returns a PCG-backed source. A zero seed seeds from the clock.
func NewSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}

// PickRandomIndex returns an index in [0, bound) drawn from src.
// The result may equal any previous pick; consecutive repeats are allowed.
func PickRandomIndex(bound int, src Source) int {
	if bound <= 1 {
		return 0
	}
	return src.IntN(bound)
}
