// Package strategy provides built-in seating strategy implementations.
//
// Seating strategies determine how participants are distributed across tables.
// The package includes two built-in strategies:
//
//   - Greedy: Pressure-ordered placement that avoids recent re-encounters (recommended)
//   - RoundRobin: Naive dealing in input order that ignores the history
//
// # Greedy
//
// Greedy repeatedly picks the unplaced participant with the highest pressure
// (the worst cost they would incur at any table that still has room) and seats
// them at their cheapest table. Placing hard-to-seat participants first while
// most tables are still open approximates minimizing the maximum re-encounter
// cost. It is a heuristic, not an optimal solver.
//
// Ties are broken by a random shuffle of the participants; inject a seeded
// source with WithRandom for reproducible plans.
//
// # RoundRobin
//
// RoundRobin deals participants onto tables in input order. It is the baseline
// the greedy strategy is compared against.
//
// Custom strategies can be implemented by satisfying the types.SeatingStrategy interface.
package strategy
