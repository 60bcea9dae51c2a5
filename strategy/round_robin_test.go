package strategy

import (
	"testing"

	"github.com/stretchr/testify/require"

	cttest "github.com/Axel-Naumann/coffeetable/testing"
	"github.com/Axel-Naumann/coffeetable/types"
)

func TestRoundRobin_Distribute(t *testing.T) {
	t.Run("deals participants evenly", func(t *testing.T) {
		tables := NewRoundRobin().Distribute(nil, []string{"A", "B", "C", "D", "E", "F"}, 2)

		require.Equal(t, types.Assignment{{"A", "D"}, {"B", "E"}, {"C", "F"}}, tables)
	})

	t.Run("handles uneven distribution", func(t *testing.T) {
		tables := NewRoundRobin().Distribute(nil, []string{"A", "B", "C", "D", "E"}, 3)

		require.Equal(t, types.Assignment{{"A", "C", "E"}, {"B", "D"}}, tables)
	})

	t.Run("no participants", func(t *testing.T) {
		require.Empty(t, NewRoundRobin().Distribute(nil, nil, 3))
	})
}

// TestSeatingStrategy_Invariants verifies the contract shared by all strategies.
func TestSeatingStrategy_Invariants(t *testing.T) {
	strategies := map[string]types.SeatingStrategy{
		"Greedy":     NewGreedy(),
		"RoundRobin": NewRoundRobin(),
	}

	for name, strat := range strategies {
		t.Run(name, func(t *testing.T) {
			for n := 0; n <= 13; n++ {
				for _, capacity := range []float64{1, 2, 2.5, 3, 4} {
					participants := cttest.Roster(n)

					tables := strat.Distribute(types.CostMatrix{}, participants, capacity)

					cttest.RequireValidAssignment(t, participants, capacity, tables)
				}
			}
		})
	}
}
