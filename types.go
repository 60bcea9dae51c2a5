package coffeetable

import "github.com/Axel-Naumann/coffeetable/types"

// Re-export types from the types package.
//
// Subpackages (cost, strategy, store, source) depend on `types` rather than on
// the root package, which keeps the import graph acyclic while still offering
// coffeetable.Assignment, coffeetable.Logger, etc. to users.
type (
	Table        = types.Table
	SeatingRound = types.SeatingRound
	History      = types.History
	Assignment   = types.Assignment
	CostMatrix   = types.CostMatrix
)

// Re-export interfaces from the types package for convenience.
type (
	SeatingStrategy   = types.SeatingStrategy
	ParticipantSource = types.ParticipantSource
	HistoryStore      = types.HistoryStore
	RandomSource      = types.RandomSource
	MetricsCollector  = types.MetricsCollector
	Logger            = types.Logger
	Hooks             = types.Hooks
)
