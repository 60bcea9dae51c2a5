package testing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Axel-Naumann/coffeetable/types"
)

// RequireValidAssignment fails the test unless tables is a complete seating of
// participants.
//
// Checked invariants:
//   - the table count is types.TableCount(len(participants), capacity)
//   - every participant is seated exactly once and nobody else is seated
//   - no table holds more than capacity participants (a table may reach
//     ceil(capacity) because occupancy is compared before each placement)
//
// Parameters:
//   - t: testing handle
//   - participants: the roster that was distributed (distinct names)
//   - capacity: the capacity passed to Distribute (>= 1)
//   - tables: the strategy's result
func RequireValidAssignment(t testing.TB, participants []string, capacity float64, tables types.Assignment) {
	t.Helper()

	require.Len(t, tables, types.TableCount(len(participants), capacity))

	seen := make(map[string]int, len(participants))
	for idx, table := range tables {
		require.Less(t, float64(len(table)-1), capacity, "table %d over capacity", idx)
		for _, name := range table {
			seen[name]++
		}
	}

	require.Len(t, seen, len(participants))
	for _, name := range participants {
		require.Equal(t, 1, seen[name], "%s must be seated exactly once", name)
	}
}
