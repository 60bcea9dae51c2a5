// Package rng provides the random sources used for seating tie-breaks.
package rng

import (
	"math/rand/v2"
	"time"

	"github.com/zeebo/xxh3"
)

// New returns a time-seeded random source.
//
// Two calls return independent sources; arrangements differ between runs.
func New() *rand.Rand {
	return rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64())) //nolint:gosec // tie-breaking only
}

// NewSeeded returns a random source derived from a free-form seed string.
//
// The 128-bit xxh3 hash of seed initializes a PCG generator, so the same seed
// always reproduces the same sequence. This makes a published seating plan
// reproducible from its seed and inputs.
//
// Parameters:
//   - seed: Any string, e.g. the event date "2024-05-17"
//
// Returns:
//   - *rand.Rand: Deterministic random source
func NewSeeded(seed string) *rand.Rand {
	sum := xxh3.HashString128(seed)

	return rand.New(rand.NewPCG(sum.Hi, sum.Lo)) //nolint:gosec // tie-breaking only
}
