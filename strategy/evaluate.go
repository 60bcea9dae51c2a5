package strategy

import (
	"math"

	"github.com/Axel-Naumann/coffeetable/types"
)

// NoTable is returned by Evaluate when no table has room.
const NoTable = -1

// pressureFloor is the pressure reported when no table raises it: it means
// "no pressure" and is above the cost of any empty or single-occupant table.
const pressureFloor = -1.0

const (
	// seedingBonus is subtracted for tables with fewer than two occupants, so
	// empty and single tables are seeded before any table is stacked.
	seedingBonus = 1.0

	// emptinessBonus is divided by 1+occupancy and subtracted, a mild and
	// decaying preference for emptier tables.
	emptinessBonus = 0.5
)

// Evaluate computes where person would best sit and how hard they are to seat.
//
// For every table with room (occupancy < capacity) the adjusted cost is:
//
//	sum of costs.Cost(person, q) over occupants q
//	- 1                          if the table has fewer than 2 occupants
//	- 0.5 / (1 + occupancy)
//
// Full tables are skipped entirely: they are neither a placement candidate
// nor part of the pressure.
//
// Parameters:
//   - person: Candidate participant, not yet seated
//   - tables: Assignment under construction (read only)
//   - costs: Pairwise familiarity costs
//   - capacity: Maximum participants per table
//
// Returns:
//   - best: Index of the table with the lowest adjusted cost (first wins ties), NoTable if none has room
//   - pressure: Highest adjusted cost over tables with room, floored at -1
func Evaluate(person string, tables types.Assignment, costs types.CostMatrix, capacity float64) (best int, pressure float64) {
	best = NoTable
	bestCost := math.Inf(1)
	pressure = pressureFloor

	for idx, table := range tables {
		if !types.HasRoom(len(table), capacity) {
			continue
		}

		c := tableCost(person, table, costs)
		if c > pressure {
			pressure = c
		}
		if c < bestCost {
			bestCost = c
			best = idx
		}
	}

	return best, pressure
}

func tableCost(person string, table types.Table, costs types.CostMatrix) float64 {
	c := 0.0
	for _, other := range table {
		c += costs.Cost(person, other)
	}

	if len(table) < 2 {
		c -= seedingBonus
	}
	c -= emptinessBonus / float64(1+len(table))

	return c
}
