package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTableCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		n        int
		capacity float64
		want     int
	}{
		{name: "no participants", n: 0, capacity: 3, want: 0},
		{name: "exact fit", n: 6, capacity: 3, want: 2},
		{name: "remainder opens a table", n: 7, capacity: 3, want: 3},
		{name: "single seat tables", n: 2, capacity: 1, want: 2},
		{name: "fractional capacity", n: 5, capacity: 2.5, want: 2},
		{name: "fractional capacity rounds up", n: 6, capacity: 2.5, want: 3},
		{name: "non-positive capacity seats everybody alone", n: 4, capacity: 0, want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, TableCount(tt.n, tt.capacity))
		})
	}
}

func TestHasRoom(t *testing.T) {
	t.Parallel()

	require.True(t, HasRoom(0, 1))
	require.False(t, HasRoom(1, 1))
	require.True(t, HasRoom(2, 2.5))
	require.False(t, HasRoom(3, 2.5))
}

func TestHistoryRecord(t *testing.T) {
	t.Parallel()

	older := SeatingRound{{"A", "B"}, {"C"}}
	newer := SeatingRound{{"A", "C"}, {"B"}}

	t.Run("prepends newest round", func(t *testing.T) {
		h := History{older}
		got := h.Record(newer, false)

		require.Equal(t, History{newer, older}, got)
		require.Equal(t, History{older}, h, "receiver must not change")
	})

	t.Run("replace newest swaps index zero", func(t *testing.T) {
		h := History{older}
		got := h.Record(newer, true)

		require.Equal(t, History{newer}, got)
		require.Equal(t, History{older}, h)
	})

	t.Run("replace newest on empty history prepends", func(t *testing.T) {
		got := History{}.Record(newer, true)

		require.Equal(t, History{newer}, got)
	})

	t.Run("recorded round is a copy", func(t *testing.T) {
		round := SeatingRound{{"A", "B"}}
		got := History{}.Record(round, false)
		round[0][0] = "Z"

		require.Equal(t, "A", got[0][0][0])
	})
}

func TestHistoryTrim(t *testing.T) {
	t.Parallel()

	h := History{}
	for i := 0; i < 8; i++ {
		h = h.Record(SeatingRound{{string(rune('A' + i))}}, false)
	}

	trimmed := h.Trim(DefaultMaxHistoryRounds)
	require.Len(t, trimmed, DefaultMaxHistoryRounds)
	require.Equal(t, h[0], trimmed[0], "newest round is kept")
	require.Equal(t, h[5], trimmed[5])
	require.Len(t, h, 8, "receiver must not change")

	require.Len(t, h.Trim(0), 8, "non-positive cap keeps everything")
	require.Len(t, History{}.Trim(3), 0)
}

func TestHistoryJSON(t *testing.T) {
	t.Parallel()

	var h History
	require.NoError(t, json.Unmarshal([]byte(`[[["A","B"],["C"]],[["A","C"]]]`), &h))
	require.Equal(t, History{
		{{"A", "B"}, {"C"}},
		{{"A", "C"}},
	}, h)

	data, err := json.Marshal(h)
	require.NoError(t, err)
	require.JSONEq(t, `[[["A","B"],["C"]],[["A","C"]]]`, string(data))
}

func TestAssignment(t *testing.T) {
	t.Parallel()

	a := Assignment{{"A", "B"}, nil, {"C"}}

	require.Equal(t, 3, a.Size())
	require.Equal(t, []string{"A", "B", "C"}, a.Participants())

	round := a.Round()
	require.Equal(t, SeatingRound{{"A", "B"}, {}, {"C"}}, round)

	round[0][0] = "Z"
	require.Equal(t, "A", a[0][0], "round must be a copy")
}
