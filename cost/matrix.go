package cost

import (
	"math"
	"slices"
	"strings"

	"github.com/Axel-Naumann/coffeetable/types"
)

// Pair is a single entry of a cost matrix.
type Pair struct {
	A    string
	B    string
	Cost float64
}

// Weight returns the cost increment for an encounter in a round of the given age.
//
// Age 0 weighs 1, age 1 weighs 0.5, age 2 weighs 0.25 and so on.
func Weight(age int) float64 {
	return math.Ldexp(1, -age)
}

// BuildMatrix derives the familiarity cost matrix from the seating history.
//
// The algorithm:
//  1. Walk rounds newest first; the round index is its age
//  2. For every table, keep only names present in participants
//  3. Add Weight(age) to every unordered pair of distinct kept names
//
// Names that appear in the history but not in participants are ignored.
// A name listed twice at one table is only paired with the names seated
// before its first occurrence.
//
// Parameters:
//   - participants: Current participant names
//   - history: Past seating rounds, newest first
//
// Returns:
//   - types.CostMatrix: Sparse pair costs (empty for an empty history)
//
// Example:
//
//	costs := cost.BuildMatrix(
//	    []string{"A", "B", "C"},
//	    types.History{{{"A", "B"}}, {{"A", "C"}}},
//	)
//	costs.Cost("A", "B") // 1
//	costs.Cost("A", "C") // 0.5
func BuildMatrix(participants []string, history types.History) types.CostMatrix {
	present := make(map[string]struct{}, len(participants))
	for _, name := range participants {
		present[name] = struct{}{}
	}

	costs := make(types.CostMatrix)
	for age, round := range history {
		incr := Weight(age)
		for _, table := range round {
			accumulateTable(costs, present, table, incr)
		}
	}

	return costs
}

func accumulateTable(costs types.CostMatrix, present map[string]struct{}, table types.Table, incr float64) {
	if len(table) < 2 {
		return
	}

	for i, person := range table {
		if _, ok := present[person]; !ok {
			continue
		}

		for _, other := range table[:i] {
			if other == person {
				break
			}
			if _, ok := present[other]; !ok {
				continue
			}
			costs.Add(person, other, incr)
		}
	}
}

// Realized returns the familiarity cost an assignment actually incurs.
//
// It sums the pair cost of every unordered pair seated at the same table.
// Lower is better; zero means nobody meets a recent table mate again.
func Realized(assignment types.Assignment, costs types.CostMatrix) float64 {
	total := 0.0
	for _, table := range assignment {
		for i := range table {
			for j := i + 1; j < len(table); j++ {
				total += costs.Cost(table[i], table[j])
			}
		}
	}

	return total
}

// Pairs returns the matrix entries sorted by descending cost, then by key.
func Pairs(costs types.CostMatrix) []Pair {
	keys := make([]string, 0, len(costs))
	for key := range costs {
		keys = append(keys, key)
	}

	slices.SortFunc(keys, func(a, b string) int {
		if costs[a] != costs[b] {
			if costs[a] > costs[b] {
				return -1
			}

			return 1
		}

		return strings.Compare(a, b)
	})

	pairs := make([]Pair, 0, len(keys))
	for _, key := range keys {
		a, b, _ := types.SplitPairKey(key)
		pairs = append(pairs, Pair{A: a, B: b, Cost: costs[key]})
	}

	return pairs
}
