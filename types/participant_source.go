package types

import "context"

// ParticipantSource provides the list of participants for the next event.
//
// Implementations can read various backends:
//   - Static: fixed list for testing
//   - Text/File: newline separated names with "#" comments
//   - Custom: any roster lookup
//
// Returned names must be trimmed and non-empty. Uniqueness is the source's
// responsibility; duplicate names are not detected downstream.
type ParticipantSource interface {
	// ListParticipants returns the current participants.
	//
	// Parameters:
	//   - ctx: Context for cancellation and timeout
	//
	// Returns:
	//   - []string: Participant names
	//   - error: Lookup error (nil on success)
	ListParticipants(ctx context.Context) ([]string, error)
}
