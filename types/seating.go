package types

import "math"

// Table is an ordered list of participant names seated together.
//
// The order is placement order, not seating order around the table.
type Table []string

// SeatingRound is the completed table assignment of one past event.
type SeatingRound []Table

// History is an ordered list of seating rounds, newest first.
//
// The index of a round is its age: 0 is the most recent event. The JSON form
// is an array of arrays of arrays of names, e.g. [[["A","B"],["C"]]].
type History []SeatingRound

// Assignment is the result of distributing participants onto tables.
//
// The index of a table is its table number (zero-based).
type Assignment []Table

// DefaultMaxHistoryRounds is the number of rounds kept by default.
const DefaultMaxHistoryRounds = 6

// TableCount returns the number of tables needed to seat n participants with
// at most capacity participants per table.
//
// Capacity may be fractional: it is used as ceil(n / capacity) for the table
// count and as a direct "occupancy < capacity" comparison for eligibility.
//
// Parameters:
//   - n: Number of participants
//   - capacity: Maximum participants per table (should be >= 1)
//
// Returns:
//   - int: Number of tables (0 when n is 0, n when capacity is not positive)
func TableCount(n int, capacity float64) int {
	if n <= 0 {
		return 0
	}
	if capacity <= 0 || math.IsNaN(capacity) {
		return n
	}

	return max(1, int(math.Ceil(float64(n)/capacity)))
}

// HasRoom reports whether a table with the given occupancy can take one more participant.
func HasRoom(occupancy int, capacity float64) bool {
	return float64(occupancy) < capacity
}

// Clone returns a deep copy of the table.
func (t Table) Clone() Table {
	if t == nil {
		return nil
	}

	out := make(Table, len(t))
	copy(out, t)

	return out
}

// Clone returns a deep copy of the round.
func (r SeatingRound) Clone() SeatingRound {
	if r == nil {
		return nil
	}

	out := make(SeatingRound, len(r))
	for i, table := range r {
		out[i] = table.Clone()
	}

	return out
}

// Clone returns a deep copy of the history.
func (h History) Clone() History {
	if h == nil {
		return nil
	}

	out := make(History, len(h))
	for i, round := range h {
		out[i] = round.Clone()
	}

	return out
}

// Record returns a new history with round stored as the newest entry.
//
// When replaceNewest is true and the history is not empty, the newest round is
// replaced instead of pushed down. This supports re-running a distribution for
// the same event without aging the previous attempt.
//
// The receiver is not modified.
//
// Parameters:
//   - round: The seating round to record
//   - replaceNewest: Replace index 0 instead of prepending
//
// Returns:
//   - History: New history, newest first
func (h History) Record(round SeatingRound, replaceNewest bool) History {
	if replaceNewest && len(h) > 0 {
		out := h.Clone()
		out[0] = round.Clone()

		return out
	}

	out := make(History, 0, len(h)+1)
	out = append(out, round.Clone())
	out = append(out, h.Clone()...)

	return out
}

// Trim returns the newest maxRounds rounds of the history.
//
// A non-positive maxRounds leaves the history unchanged. The receiver is not modified.
func (h History) Trim(maxRounds int) History {
	if maxRounds <= 0 || len(h) <= maxRounds {
		return h.Clone()
	}

	return h[:maxRounds].Clone()
}

// Participants returns every name in the assignment in table order.
func (a Assignment) Participants() []string {
	names := make([]string, 0, a.Size())
	for _, table := range a {
		names = append(names, table...)
	}

	return names
}

// Size returns the total number of seated participants.
func (a Assignment) Size() int {
	n := 0
	for _, table := range a {
		n += len(table)
	}

	return n
}

// Round converts the assignment to a seating round suitable for History.Record.
func (a Assignment) Round() SeatingRound {
	round := make(SeatingRound, len(a))
	for i, table := range a {
		round[i] = table.Clone()
		if round[i] == nil {
			round[i] = Table{}
		}
	}

	return round
}
