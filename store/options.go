package store

import (
	"time"

	"github.com/Axel-Naumann/coffeetable/internal/logging"
	"github.com/Axel-Naumann/coffeetable/internal/metrics"
	"github.com/Axel-Naumann/coffeetable/types"
)

const defaultOperationTimeout = 5 * time.Second

// Option configures a history store.
type Option func(*options)

type options struct {
	logger           types.Logger
	metrics          types.StoreMetrics
	operationTimeout time.Duration
}

func defaultOptions() options {
	return options{
		logger:           logging.NewNop(),
		metrics:          metrics.NewNop(),
		operationTimeout: defaultOperationTimeout,
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithLogger sets the logger used by the store.
func WithLogger(logger types.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMetrics sets the collector receiving load and save latencies.
func WithMetrics(m types.StoreMetrics) Option {
	return func(o *options) {
		if m != nil {
			o.metrics = m
		}
	}
}

// WithOperationTimeout bounds each KV request.
//
// Only the KV backend uses it; the default is 5s.
func WithOperationTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.operationTimeout = d
		}
	}
}

func (o *options) observe(backend, operation string, start time.Time) {
	o.metrics.RecordStoreOperationDuration(backend, operation, time.Since(start).Seconds())
}
