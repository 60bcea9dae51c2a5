package types

import "strings"

// PairSeparator joins the two names of a canonical pair key.
const PairSeparator = "+"

// CostMatrix maps canonical pair keys to accumulated familiarity cost.
//
// The matrix is sparse: pairs never seated together have no entry, and Cost
// reports zero for them. Keys must be built with PairKey so that every
// unordered pair has exactly one entry.
type CostMatrix map[string]float64

// PairKey returns the canonical key for the unordered pair (a, b).
//
// The lexicographically smaller name always comes first, so PairKey(a, b) == PairKey(b, a).
func PairKey(a, b string) string {
	if b < a {
		a, b = b, a
	}

	return a + PairSeparator + b
}

// SplitPairKey splits a canonical pair key back into its two names.
//
// Names containing PairSeparator make the split ambiguous; the first
// separator wins.
func SplitPairKey(key string) (string, string, bool) {
	return strings.Cut(key, PairSeparator)
}

// Cost returns the accumulated cost of seating a and b together (0 when unknown).
func (m CostMatrix) Cost(a, b string) float64 {
	return m[PairKey(a, b)]
}

// Add accumulates incr onto the cost of the pair (a, b).
func (m CostMatrix) Add(a, b string, incr float64) {
	m[PairKey(a, b)] += incr
}
