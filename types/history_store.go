package types

import "context"

// HistoryStore loads and saves the seating history of an event.
//
// The core never talks to a store directly: the Planner loads the history
// before distributing and saves the updated history afterwards.
//
// Implementations should:
//   - Return an empty History (not an error) when nothing was stored yet
//   - Store the complete history on Save (not a delta)
//   - Be safe for concurrent use
type HistoryStore interface {
	// Load returns the stored history for event, newest round first.
	Load(ctx context.Context, event string) (History, error)

	// Save replaces the stored history for event.
	Save(ctx context.Context, event string, history History) error
}
