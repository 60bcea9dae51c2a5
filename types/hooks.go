package types

import "context"

// Hooks defines callbacks for Planner events.
//
// All hooks are optional and called synchronously from Plan, after the
// corresponding step completed. Hook errors are logged but never fail the plan.
//
// Example:
//
//	hooks := &coffeetable.Hooks{
//	    OnPlanned: func(ctx context.Context, tables coffeetable.Assignment, cost float64) error {
//	        return notifyChannel(ctx, tables)
//	    },
//	}
type Hooks struct {
	// OnPlanned is called when a new assignment has been distributed.
	// realizedCost is the familiarity cost of the assignment against the history.
	OnPlanned func(ctx context.Context, assignment Assignment, realizedCost float64) error

	// OnHistorySaved is called after the updated history was stored.
	// rounds is the number of rounds kept.
	OnHistorySaved func(ctx context.Context, event string, rounds int) error

	// OnError is called when a planning run fails.
	OnError func(ctx context.Context, err error) error
}
