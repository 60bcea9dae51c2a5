// Package cost builds the pairwise familiarity cost used by seating strategies.
//
// Every time two current participants shared a table in a past round, the
// pair's cost grows by 1/2^age, where age 0 is the most recent round. Recent
// encounters therefore dominate, and a round six events ago weighs 1/64.
//
// The resulting types.CostMatrix is sparse: pairs never seated together have
// no entry and read as zero cost.
package cost
