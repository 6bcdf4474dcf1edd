package combat

import (
	"math/rand/v2"
	"sync"
)

// Rand is the randomness a Resolver draws from. Tests inject fixed sources.
type Rand interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// IntN returns a value in [0, n).
	IntN(n int) int
}

type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewRand returns a goroutine-safe PCG source with the given seeds.
func NewRand(seed1, seed2 uint64) Rand {
	return &lockedRand{r: rand.New(rand.NewPCG(seed1, seed2))}
}

// DefaultRand returns a randomly seeded source.
func DefaultRand() Rand {
	return NewRand(rand.Uint64(), rand.Uint64())
}

func (l *lockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}

func (l *lockedRand) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.IntN(n)
}
