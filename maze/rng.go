package maze

import "math/rand"

// Rand is the random-number source consumed by generators and behaviors.
// Injecting it keeps generation deterministic under a fixed seed.
type Rand interface {
	// Intn returns a uniformly random int in [0, n). Panics if n <= 0.
	Intn(n int) int

	// Float32 returns a uniformly random float32 in [0.0, 1.0).
	Float32() float32
}

// NewRand returns a seeded Rand backed by math/rand. The returned source
// is not safe for concurrent use; each maze session owns its own.
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}
