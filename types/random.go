package types

// RandomSource provides the randomness used for tie-breaking.
//
// *math/rand/v2.Rand satisfies this interface. Tests inject a seeded source
// for reproducible arrangements.
type RandomSource interface {
	// Shuffle pseudo-randomizes the order of n elements using swap.
	Shuffle(n int, swap func(i, j int))
}
