package store

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Axel-Naumann/coffeetable/types"
)

// recordingMetrics counts store operations per backend and operation.
type recordingMetrics struct {
	mu    sync.Mutex
	calls map[string]int
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{calls: make(map[string]int)}
}

func (r *recordingMetrics) RecordStoreOperationDuration(backend, operation string, duration float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if duration >= 0 {
		r.calls[backend+"/"+operation]++
	}
}

func (r *recordingMetrics) count(key string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.calls[key]
}

// exerciseStore runs the behavior every backend must share.
func exerciseStore(t *testing.T, st types.HistoryStore) {
	t.Helper()
	ctx := context.Background()

	t.Run("missing event is empty", func(t *testing.T) {
		h, err := st.Load(ctx, "never-saved")
		require.NoError(t, err)
		require.NotNil(t, h)
		require.Empty(t, h)
	})

	t.Run("save then load", func(t *testing.T) {
		in := types.History{{{"alice", "bob"}, {"carol"}}, {{"alice", "carol"}, {"bob"}}}
		require.NoError(t, st.Save(ctx, "weekly", in))

		out, err := st.Load(ctx, "weekly")
		require.NoError(t, err)
		require.Equal(t, in, out)
	})

	t.Run("save replaces", func(t *testing.T) {
		require.NoError(t, st.Save(ctx, "replace", types.History{{{"a"}}}))
		require.NoError(t, st.Save(ctx, "replace", types.History{{{"b", "c"}}}))

		out, err := st.Load(ctx, "replace")
		require.NoError(t, err)
		require.Equal(t, types.History{{{"b", "c"}}}, out)
	})

	t.Run("events are isolated", func(t *testing.T) {
		require.NoError(t, st.Save(ctx, "event-a", types.History{{{"a"}}}))
		require.NoError(t, st.Save(ctx, "event-b", types.History{{{"b"}}}))

		a, err := st.Load(ctx, "event-a")
		require.NoError(t, err)
		require.Equal(t, types.History{{{"a"}}}, a)
	})

	t.Run("invalid event name", func(t *testing.T) {
		_, err := st.Load(ctx, "../etc/passwd")
		require.ErrorIs(t, err, types.ErrInvalidEventName)

		err = st.Save(ctx, "with space", types.History{})
		require.ErrorIs(t, err, types.ErrInvalidEventName)
	})
}
