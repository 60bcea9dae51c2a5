// Package store provides types.HistoryStore implementations.
//
// Three backends are available:
//   - Memory: in-process, for tests and dry runs
//   - File: one JSON document per event in a directory
//   - KV: a NATS JetStream KeyValue bucket, for planners on several hosts
//
// All backends share the same JSON encoding (see EncodeHistory) and reject
// event names that are not valid NATS KV keys, so a history can be moved
// between backends by copying the document.
package store
