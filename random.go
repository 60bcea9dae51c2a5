package coffeetable

import "github.com/Axel-Naumann/coffeetable/internal/rng"

// NewRandom returns the random source for a seed.
//
// An empty seed yields a time-seeded source. Any other seed yields the same
// sequence every time, so a seating plan can be reproduced from its seed,
// roster and history.
//
// Example:
//
//	strat := strategy.NewGreedy(strategy.WithRandom(coffeetable.NewRandom(cfg.Seed)))
func NewRandom(seed string) RandomSource {
	if seed == "" {
		return rng.New()
	}

	return rng.NewSeeded(seed)
}
