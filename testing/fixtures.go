package testing

import (
	"fmt"

	"github.com/Axel-Naumann/coffeetable/types"
)

// IdentityShuffle is a types.RandomSource that leaves the order unchanged.
//
// Strategies shuffle the roster before seating; with IdentityShuffle the
// outcome depends only on the roster order and the costs.
type IdentityShuffle struct{}

var _ types.RandomSource = IdentityShuffle{}

// Shuffle does nothing.
func (IdentityShuffle) Shuffle(int, func(i, j int)) {}

// Roster returns n distinct participant names p00, p01, ...
func Roster(n int) []string {
	names := make([]string, n)
	for i := range n {
		names[i] = fmt.Sprintf("p%02d", i)
	}

	return names
}

// HistoryOf builds a history from literal rounds, newest first.
//
// Example:
//
//	h := cttest.HistoryOf(
//	    [][]string{{"alice", "bob"}, {"carol"}}, // last week
//	    [][]string{{"alice", "carol"}, {"bob"}}, // the week before
//	)
func HistoryOf(rounds ...[][]string) types.History {
	h := make(types.History, len(rounds))
	for i, round := range rounds {
		r := make(types.SeatingRound, len(round))
		for j, table := range round {
			r[j] = append(types.Table(nil), table...)
		}
		h[i] = r
	}

	return h
}
