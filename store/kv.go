package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go/jetstream"

	"github.com/Axel-Naumann/coffeetable/internal/kvutil"
	"github.com/Axel-Naumann/coffeetable/internal/natsutil"
	"github.com/Axel-Naumann/coffeetable/types"
)

const (
	backendKV = "nats"

	// DefaultBucket is the KV bucket used when none is configured.
	DefaultBucket = "coffeetable-history"

	bucketCreateRetries = 3

	// operationAttempts bounds retries of a Get or Put that failed on connectivity.
	operationAttempts = 3
	retryBackoff      = 50 * time.Millisecond
)

// KV stores histories in a NATS JetStream KeyValue bucket, one key per event.
//
// The bucket keeps only the latest revision of each key: the history document
// already carries the past rounds.
type KV struct {
	kv   jetstream.KeyValue
	opts options
}

var _ types.HistoryStore = (*KV)(nil)

// NewKV opens the bucket, creating it when it does not exist yet.
//
// Parameters:
//   - ctx: Context bounding bucket creation
//   - js: JetStream context
//   - bucket: Bucket name (DefaultBucket when empty)
//   - opts: Store options
//
// Returns:
//   - *KV: The store
//   - error: Bucket creation error after retries
//
// Example:
//
//	nc, _ := nats.Connect(nats.DefaultURL)
//	js, _ := jetstream.New(nc)
//	st, err := store.NewKV(ctx, js, "coffeetable-history")
func NewKV(ctx context.Context, js jetstream.JetStream, bucket string, opts ...Option) (*KV, error) {
	if bucket == "" {
		bucket = DefaultBucket
	}

	kv, err := kvutil.EnsureKVBucketWithRetry(ctx, js, jetstream.KeyValueConfig{
		Bucket:      bucket,
		Description: "coffeetable seating history",
		History:     1,
	}, bucketCreateRetries)
	if err != nil {
		return nil, err
	}

	return NewKVFromBucket(kv, opts...), nil
}

// NewKVFromBucket wraps an already opened bucket.
func NewKVFromBucket(kv jetstream.KeyValue, opts ...Option) *KV {
	return &KV{kv: kv, opts: applyOptions(opts)}
}

// Load fetches and decodes the event's history. A missing key is an empty history.
func (s *KV) Load(ctx context.Context, event string) (types.History, error) {
	defer s.opts.observe(backendKV, "load", time.Now())

	if err := ValidateEvent(event); err != nil {
		return nil, err
	}

	var entry jetstream.KeyValueEntry
	err := s.retry(ctx, "load", event, func(opCtx context.Context) error {
		var getErr error
		entry, getErr = s.kv.Get(opCtx, event)

		return getErr
	})
	if errors.Is(err, jetstream.ErrKeyNotFound) {
		s.opts.logger.Debug("no stored history", "backend", backendKV, "bucket", s.kv.Bucket(), "event", event)
		return types.History{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrHistoryLoadFailed, err)
	}

	history, err := DecodeHistory(entry.Value())
	if err != nil {
		return nil, fmt.Errorf("%s/%s: %w", s.kv.Bucket(), event, err)
	}

	return history, nil
}

// Save encodes history and puts it under the event key.
func (s *KV) Save(ctx context.Context, event string, history types.History) error {
	defer s.opts.observe(backendKV, "save", time.Now())

	if err := ValidateEvent(event); err != nil {
		return err
	}

	data, err := EncodeHistory(history)
	if err != nil {
		return fmt.Errorf("%w: %w", types.ErrHistorySaveFailed, err)
	}

	var revision uint64
	err = s.retry(ctx, "save", event, func(opCtx context.Context) error {
		var putErr error
		revision, putErr = s.kv.Put(opCtx, event, data)

		return putErr
	})
	if err != nil {
		return fmt.Errorf("%w: %w", types.ErrHistorySaveFailed, err)
	}

	s.opts.logger.Debug("history saved",
		"backend", backendKV,
		"bucket", s.kv.Bucket(),
		"event", event,
		"rounds", len(history),
		"revision", revision,
	)

	return nil
}

// retry runs op with a per-attempt timeout and retries connectivity failures
// with exponential backoff. Other errors are returned immediately.
func (s *KV) retry(ctx context.Context, operation, event string, op func(context.Context) error) error {
	var err error
	for attempt := 0; attempt < operationAttempts; attempt++ {
		opCtx, cancel := context.WithTimeout(ctx, s.opts.operationTimeout)
		err = op(opCtx)
		cancel()

		if err == nil || !natsutil.IsConnectivityError(err) || ctx.Err() != nil {
			return err
		}

		s.opts.logger.Warn("history store unreachable, retrying",
			"backend", backendKV,
			"operation", operation,
			"event", event,
			"attempt", attempt+1,
			"error", err,
		)

		if attempt < operationAttempts-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(retryBackoff << attempt):
			}
		}
	}

	return err
}
