package testing

import (
	"testing"
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/require"
)

func TestStartEmbeddedNATS(t *testing.T) {
	ns, nc := StartEmbeddedNATS(t)

	require.NotNil(t, ns)
	require.True(t, nc.IsConnected())
	require.True(t, ns.ReadyForConnections(1*time.Second))

	js, err := jetstream.New(nc)
	require.NoError(t, err)

	info, err := js.AccountInfo(t.Context())
	require.NoError(t, err)
	require.NotNil(t, info)
}

func TestStartEmbeddedNATS_ParallelTests(t *testing.T) {
	t.Parallel()

	for range 3 {
		t.Run("parallel", func(t *testing.T) {
			t.Parallel()

			_, nc := StartEmbeddedNATS(t)
			require.True(t, nc.IsConnected())
		})
	}
}

func TestCreateJetStreamKV(t *testing.T) {
	ctx := t.Context()
	_, nc := StartEmbeddedNATS(t)

	kv1 := CreateJetStreamKV(t, nc, "bucket-1")
	kv2 := CreateJetStreamKV(t, nc, "bucket-2")

	_, err := kv1.Put(ctx, "event", []byte("value1"))
	require.NoError(t, err)
	_, err = kv2.Put(ctx, "event", []byte("value2"))
	require.NoError(t, err)

	entry1, err := kv1.Get(ctx, "event")
	require.NoError(t, err)
	require.Equal(t, []byte("value1"), entry1.Value())

	entry2, err := kv2.Get(ctx, "event")
	require.NoError(t, err)
	require.Equal(t, []byte("value2"), entry2.Value())
}

func TestFixtures(t *testing.T) {
	t.Run("roster names are distinct and ordered", func(t *testing.T) {
		require.Equal(t, []string{"p00", "p01", "p02"}, Roster(3))
		require.Empty(t, Roster(0))
	})

	t.Run("history keeps newest first", func(t *testing.T) {
		h := HistoryOf(
			[][]string{{"a", "b"}},
			[][]string{{"a"}, {"b"}},
		)
		require.Len(t, h, 2)
		require.Len(t, h[0], 1)
		require.Len(t, h[1], 2)
	})

	t.Run("identity shuffle never swaps", func(t *testing.T) {
		IdentityShuffle{}.Shuffle(10, func(i, j int) {
			t.Fatalf("unexpected swap %d %d", i, j)
		})
	})
}
