package natsutil

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/require"
)

func TestIsConnectivityError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "timeout", err: nats.ErrTimeout, want: true},
		{name: "wrapped no servers", err: fmt.Errorf("get: %w", nats.ErrNoServers), want: true},
		{name: "disconnected", err: nats.ErrDisconnected, want: true},
		{name: "no stream response", err: jetstream.ErrNoStreamResponse, want: true},
		{name: "deadline", err: context.DeadlineExceeded, want: true},
		{name: "refused text", err: errors.New("dial tcp: connection refused"), want: true},
		{name: "key not found", err: jetstream.ErrKeyNotFound, want: false},
		{name: "bucket not found", err: jetstream.ErrBucketNotFound, want: false},
		{name: "canceled", err: context.Canceled, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, IsConnectivityError(tt.err))
		})
	}
}
