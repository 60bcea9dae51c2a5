package types

// SeatingStrategy distributes participants onto capacity-limited tables.
//
// Strategies implement different seating algorithms:
//   - Greedy: Pressure-ordered placement that avoids recent re-encounters
//   - RoundRobin: Naive dealing that ignores history
//   - Custom: User-defined algorithms
//
// The Planner calls Distribute once per run, after building the cost matrix
// from the stored history.
//
// Strategy implementations should:
//   - Create exactly TableCount(len(participants), capacity) tables
//   - Seat every participant exactly once
//   - Never exceed capacity at any table
//   - Never mutate the participants slice or the cost matrix
type SeatingStrategy interface {
	// Distribute seats participants at tables.
	//
	// Parameters:
	//   - costs: Pairwise familiarity costs (absent pairs cost 0)
	//   - participants: Names to seat
	//   - capacity: Maximum participants per table (>= 1, may be fractional)
	//
	// Returns:
	//   - Assignment: Tables of names, index = table number
	Distribute(costs CostMatrix, participants []string, capacity float64) Assignment
}
