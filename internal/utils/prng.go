// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"

	"go-city-builder/internal/defs"
)

// PRNGService wraps a seeded math/rand generator so every random choice in the
// city can be replayed from a single seed.
type PRNGService struct {
	seed int64
	rng  *rand.Rand
}

// NewPRNGService creates a generator for seed. A zero seed uses the current time.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed the generator was created with.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Intn returns a random integer in [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Pick chooses a catalog index uniformly at random. It returns -1 for an empty catalog.
func (s *PRNGService) Pick(catalog defs.Catalog) int {
	if len(catalog) == 0 {
		return -1
	}
	return s.Intn(len(catalog))
}
