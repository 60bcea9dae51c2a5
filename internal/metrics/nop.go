// Package metrics provides types.MetricsCollector implementations.
package metrics

import "github.com/Axel-Naumann/coffeetable/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Useful for testing or when external
// metrics collection is used.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Example:
//
//	planner, err := coffeetable.NewPlanner(&cfg, src, store, strat, coffeetable.WithMetrics(metrics.NewNop()))
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// PlannerMetrics implementation

// RecordPlanDuration discards the plan duration metric.
func (n *NopMetrics) RecordPlanDuration(_ /* duration */ float64) {
	// No-op
}

// RecordPlanAttempt discards the plan attempt metric.
func (n *NopMetrics) RecordPlanAttempt(_ /* result */ string) {
	// No-op
}

// RecordParticipantCount discards the participant count metric.
func (n *NopMetrics) RecordParticipantCount(_ /* count */ int) {
	// No-op
}

// RecordTableCount discards the table count metric.
func (n *NopMetrics) RecordTableCount(_ /* count */ int) {
	// No-op
}

// RecordRealizedCost discards the realized cost metric.
func (n *NopMetrics) RecordRealizedCost(_ /* cost */ float64) {
	// No-op
}

// RecordHistoryRounds discards the history rounds metric.
func (n *NopMetrics) RecordHistoryRounds(_ /* count */ int) {
	// No-op
}

// StrategyMetrics implementation

// RecordPlacement discards the placement metric.
func (n *NopMetrics) RecordPlacement(_ /* strategy */ string, _ /* forced */ bool) {
	// No-op
}

// StoreMetrics implementation

// RecordStoreOperationDuration discards the store latency metric.
func (n *NopMetrics) RecordStoreOperationDuration(_ /* backend */, _ /* operation */ string, _ /* duration */ float64) {
	// No-op
}
