package types

// MetricsCollector defines methods for recording operational metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// Methods may be called from several planners at once and must be thread-safe.
//
// This interface composes smaller, domain-focused interfaces for better modularity.
type MetricsCollector interface {
	PlannerMetrics
	StrategyMetrics
	StoreMetrics
}

// PlannerMetrics defines metrics for complete planning runs.
type PlannerMetrics interface {
	// RecordPlanDuration records the time taken for a planning run.
	//
	// Parameters:
	//   - duration: Time taken in seconds
	RecordPlanDuration(duration float64)

	// RecordPlanAttempt records a planning run outcome.
	//
	// Parameters:
	//   - result: "recorded", "dry_run" or "failed"
	RecordPlanAttempt(result string)

	// RecordParticipantCount sets the number of participants of the last run (gauge metric).
	RecordParticipantCount(count int)

	// RecordTableCount sets the number of tables of the last run (gauge metric).
	RecordTableCount(count int)

	// RecordRealizedCost sets the familiarity cost realized by the last assignment (gauge metric).
	RecordRealizedCost(cost float64)

	// RecordHistoryRounds sets the number of rounds kept in the history (gauge metric).
	RecordHistoryRounds(count int)
}

// StrategyMetrics defines metrics for seating strategies.
type StrategyMetrics interface {
	// RecordPlacement records one participant placed by a strategy.
	//
	// Parameters:
	//   - strategy: Strategy name ("greedy", "round_robin")
	//   - forced: true when no eligible table existed and the fallback table was used
	RecordPlacement(strategy string, forced bool)
}

// StoreMetrics defines metrics for history store operations.
type StoreMetrics interface {
	// RecordStoreOperationDuration records history store latency.
	//
	// Parameters:
	//   - backend: Store backend ("file", "nats", "memory")
	//   - operation: Operation type ("load", "save")
	//   - duration: Time taken in seconds
	RecordStoreOperationDuration(backend, operation string, duration float64)
}
