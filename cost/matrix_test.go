package cost

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Axel-Naumann/coffeetable/types"
)

func TestWeight(t *testing.T) {
	t.Parallel()

	require.Equal(t, 1.0, Weight(0))
	require.Equal(t, 0.5, Weight(1))
	require.Equal(t, 0.25, Weight(2))
	require.Equal(t, 1.0/64, Weight(6))
}

func TestBuildMatrix(t *testing.T) {
	t.Run("empty history yields empty matrix", func(t *testing.T) {
		costs := BuildMatrix([]string{"A", "B"}, nil)

		require.NotNil(t, costs)
		require.Empty(t, costs)
	})

	t.Run("weights decay with age", func(t *testing.T) {
		history := types.History{
			{{"A", "B"}},
			{{"A", "C"}},
		}

		costs := BuildMatrix([]string{"A", "B", "C"}, history)

		require.Len(t, costs, 2)
		require.Equal(t, 1.0, costs.Cost("A", "B"))
		require.Equal(t, 0.5, costs.Cost("A", "C"))
		require.Zero(t, costs.Cost("B", "C"))
	})

	t.Run("accumulates repeated encounters", func(t *testing.T) {
		history := types.History{
			{{"B", "A"}, {"C", "D"}},
			{{"A", "B", "C"}},
			{{"D"}, {"A", "B"}},
		}

		costs := BuildMatrix([]string{"A", "B", "C", "D"}, history)

		require.Equal(t, 1.75, costs.Cost("A", "B"))
		require.Equal(t, 0.5, costs.Cost("A", "C"))
		require.Equal(t, 0.5, costs.Cost("B", "C"))
		require.Equal(t, 1.0, costs.Cost("C", "D"))
		require.Zero(t, costs.Cost("A", "D"))
	})

	t.Run("ignores names not in current participants", func(t *testing.T) {
		history := types.History{
			{{"A", "Gone", "B"}, {"Gone", "C"}},
		}

		costs := BuildMatrix([]string{"A", "B", "C"}, history)

		require.Equal(t, types.CostMatrix{"A+B": 1}, costs)
	})

	t.Run("tables with a single qualifying name add nothing", func(t *testing.T) {
		history := types.History{
			{{"A"}, {"B", "Gone"}, {}},
		}

		costs := BuildMatrix([]string{"A", "B"}, history)

		require.Empty(t, costs)
	})

	t.Run("keys are canonical", func(t *testing.T) {
		history := types.History{{{"Zoe", "Anna"}}}

		costs := BuildMatrix([]string{"Anna", "Zoe"}, history)

		_, ok := costs["Anna+Zoe"]
		require.True(t, ok)
		require.Equal(t, costs.Cost("Zoe", "Anna"), costs.Cost("Anna", "Zoe"))
	})

	t.Run("does not mutate inputs", func(t *testing.T) {
		participants := []string{"B", "A"}
		history := types.History{{{"B", "A"}}}

		_ = BuildMatrix(participants, history)

		require.Equal(t, []string{"B", "A"}, participants)
		require.Equal(t, types.History{{{"B", "A"}}}, history)
	})
}

func TestBuildMatrix_MatchesPairwiseDefinition(t *testing.T) {
	participants := []string{"A", "B", "C", "D", "E"}
	history := types.History{
		{{"A", "B", "C"}, {"D", "E"}},
		{{"A", "D"}, {"B", "C", "E", "X"}},
		{{"A", "B"}, {"C", "D"}, {"E"}},
		{{"E", "A", "C"}, {"B", "D"}},
	}

	costs := BuildMatrix(participants, history)

	for i, a := range participants {
		for _, b := range participants[i+1:] {
			want := 0.0
			for age, round := range history {
				for _, table := range round {
					if containsName(table, a) && containsName(table, b) {
						want += Weight(age)
					}
				}
			}
			require.InDelta(t, want, costs.Cost(a, b), 1e-12, "pair %s/%s", a, b)
		}
	}
}

func TestBuildMatrix_Idempotent(t *testing.T) {
	participants := []string{"A", "B", "C", "D"}
	history := types.History{
		{{"A", "B"}, {"C", "D"}},
		{{"A", "C"}, {"B", "D"}},
		{{"A", "D"}, {"B", "C"}},
	}

	first := BuildMatrix(participants, history)
	second := BuildMatrix(participants, history)

	require.Equal(t, first, second)
}

func TestRealized(t *testing.T) {
	costs := types.CostMatrix{"A+B": 1, "A+C": 0.5}

	require.Equal(t, 1.0, Realized(types.Assignment{{"A", "B"}, {"C"}}, costs))
	require.Equal(t, 0.5, Realized(types.Assignment{{"C", "A"}, {"B"}}, costs))
	require.Equal(t, 1.5, Realized(types.Assignment{{"A", "B", "C"}}, costs))
	require.Zero(t, Realized(nil, costs))
}

func TestPairs(t *testing.T) {
	costs := types.CostMatrix{"A+C": 0.5, "A+B": 1, "B+C": 0.5}

	pairs := Pairs(costs)

	require.Equal(t, []Pair{
		{A: "A", B: "B", Cost: 1},
		{A: "A", B: "C", Cost: 0.5},
		{A: "B", B: "C", Cost: 0.5},
	}, pairs)
	require.Empty(t, Pairs(types.CostMatrix{}))
}

func containsName(table types.Table, name string) bool {
	for _, n := range table {
		if n == name {
			return true
		}
	}

	return false
}
