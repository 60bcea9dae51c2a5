package types

import "errors"

// Sentinel errors for the coffeetable library.
//
// These errors provide type-safe error checking using errors.Is() and errors.As().
// All components should use these sentinel errors for known error conditions
// and wrap external errors with context using fmt.Errorf("%s: %w", msg, err).
//
// The seating core (cost matrix, evaluator, distributor) returns no errors:
// inputs are validated by the Planner and the store boundary before they reach it.

// Planner errors - Public API errors returned by Planner.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidCapacity is returned when the per-table capacity is below one.
	ErrInvalidCapacity = errors.New("capacity must be at least 1")

	// ErrParticipantSourceRequired is returned when participant source is nil.
	ErrParticipantSourceRequired = errors.New("participant source is required")

	// ErrHistoryStoreRequired is returned when history store is nil.
	ErrHistoryStoreRequired = errors.New("history store is required")

	// ErrSeatingStrategyRequired is returned when seating strategy is nil.
	ErrSeatingStrategyRequired = errors.New("seating strategy is required")

	// ErrNoParticipants is reported through hooks and logs when the roster is empty.
	ErrNoParticipants = errors.New("no participants")

	// ErrParticipantsFailed is returned when the participant source fails.
	ErrParticipantsFailed = errors.New("failed to list participants")
)

// Store errors - History store errors.
var (
	// ErrHistoryLoadFailed is returned when loading the history fails.
	ErrHistoryLoadFailed = errors.New("failed to load history")

	// ErrHistorySaveFailed is returned when saving the history fails.
	ErrHistorySaveFailed = errors.New("failed to save history")

	// ErrMalformedHistory is returned when a stored history blob cannot be decoded.
	ErrMalformedHistory = errors.New("malformed history")

	// ErrInvalidEventName is returned when an event name is not a valid store key.
	ErrInvalidEventName = errors.New("invalid event name")
)
