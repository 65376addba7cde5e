package random

import (
	"math/rand"
	"sync"
	"time"
)

// Source yields the random numbers used for ticket generation and seat
// occupancy. Kept as an interface so tests can supply a seeded sequence.
type Source interface {
	// Intn returns a uniform value in [0, n).
	Intn(n int) int
}

type lockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a time-seeded Source safe for use from concurrent handlers.
func New() Source {
	return &lockedSource{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewSeeded returns a deterministic Source for tests.
func NewSeeded(seed int64) Source {
	return &lockedSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *lockedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}
