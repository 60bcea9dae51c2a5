package strategy

import "github.com/Axel-Naumann/coffeetable/types"

// RoundRobin implements naive round-robin seating that ignores the history.
type RoundRobin struct{}

var _ types.SeatingStrategy = (*RoundRobin)(nil)

// NewRoundRobin creates a new round-robin strategy.
//
// The strategy deals participants onto tables in input order, like dealing
// cards. It balances table sizes but ignores the cost matrix, so it serves as
// the baseline the greedy strategy must never do worse than on average.
//
// Example:
//
//	strat := strategy.NewRoundRobin()
//	planner, err := coffeetable.NewPlanner(&cfg, src, store, strat)
func NewRoundRobin() *RoundRobin {
	return &RoundRobin{}
}

// Distribute deals participants onto TableCount(len(participants), capacity) tables.
//
// Participant i goes to table i mod tableCount. Since tableCount >= n/capacity,
// no table receives more than ceil(capacity) participants.
func (rr *RoundRobin) Distribute(_ types.CostMatrix, participants []string, capacity float64) types.Assignment {
	tables := newTables(types.TableCount(len(participants), capacity))

	for i, person := range participants {
		idx := i % len(tables)
		tables[idx] = append(tables[idx], person)
	}

	return tables
}
