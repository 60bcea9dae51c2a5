// Package types provides core type definitions and interfaces for the coffeetable library.
//
// This package contains shared types that are used across multiple packages in the
// coffeetable library. By keeping these types in a separate package, we avoid import cycles
// between the main coffeetable package and its strategy, cost and store implementations.
//
// Key types:
//   - Table, SeatingRound, History: Past and present seatings
//   - Assignment: The result of distributing participants onto tables
//   - CostMatrix: Sparse pairwise familiarity cost
//   - SeatingStrategy, ParticipantSource, HistoryStore: Pluggable collaborators
//   - Logger: Structured logging interface
//   - MetricsCollector: Metrics recording interface
package types
