// Package testing provides test utilities for coffeetable.
//
// It bundles an embedded NATS server for exercising the JetStream history
// store, a logger that writes through testing.T, and small fixtures for
// building rosters and seating histories. It follows Go's convention of
// shipping test helpers in a dedicated package (similar to net/http/httptest).
//
// Key utilities:
//   - StartEmbeddedNATS: Single NATS server with JetStream
//   - CreateJetStreamKV: Convenience wrapper for KV bucket creation
//   - NewTestLogger: types.Logger backed by testing.T
//   - Roster, HistoryOf, IdentityShuffle: deterministic fixtures
//
// Example usage:
//
//	import (
//	    "testing"
//	    cttest "github.com/Axel-Naumann/coffeetable/testing"
//	)
//
//	func TestMyStore(t *testing.T) {
//	    _, nc := cttest.StartEmbeddedNATS(t)
//	    kv := cttest.CreateJetStreamKV(t, nc, "history")
//	    // Use kv for your tests
//	}
package testing
