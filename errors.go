package coffeetable

import "github.com/Axel-Naumann/coffeetable/types"

// Sentinel errors returned by the Planner and the history stores.
//
// They are defined in the types package so that subpackages can return them.
var (
	ErrInvalidConfig             = types.ErrInvalidConfig
	ErrInvalidCapacity           = types.ErrInvalidCapacity
	ErrParticipantSourceRequired = types.ErrParticipantSourceRequired
	ErrHistoryStoreRequired      = types.ErrHistoryStoreRequired
	ErrSeatingStrategyRequired   = types.ErrSeatingStrategyRequired
	ErrNoParticipants            = types.ErrNoParticipants
	ErrParticipantsFailed        = types.ErrParticipantsFailed
	ErrHistoryLoadFailed         = types.ErrHistoryLoadFailed
	ErrHistorySaveFailed         = types.ErrHistorySaveFailed
	ErrMalformedHistory          = types.ErrMalformedHistory
	ErrInvalidEventName          = types.ErrInvalidEventName
)
