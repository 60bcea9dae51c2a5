package store

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Axel-Naumann/coffeetable/types"
)

func TestDecodeHistory(t *testing.T) {
	t.Run("empty document is empty history", func(t *testing.T) {
		for _, doc := range []string{"", "  \n", "null", "[]"} {
			h, err := DecodeHistory([]byte(doc))
			require.NoError(t, err, doc)
			require.NotNil(t, h, doc)
			require.Empty(t, h, doc)
		}
	})

	t.Run("names are trimmed", func(t *testing.T) {
		h, err := DecodeHistory([]byte(`[[[" alice ","bob\n"],["carol"]],[["alice","carol"]]]`))
		require.NoError(t, err)
		require.Equal(t, types.History{
			{{"alice", "bob"}, {"carol"}},
			{{"alice", "carol"}},
		}, h)
	})

	t.Run("empty name is malformed", func(t *testing.T) {
		_, err := DecodeHistory([]byte(`[[["alice","  "]]]`))
		require.ErrorIs(t, err, types.ErrMalformedHistory)
	})

	t.Run("wrong shape is malformed", func(t *testing.T) {
		for _, doc := range []string{`{"a":1}`, `[["alice"]]`, `[[[1,2]]]`, `[[[`} {
			_, err := DecodeHistory([]byte(doc))
			require.ErrorIs(t, err, types.ErrMalformedHistory, doc)
		}
	})
}

func TestEncodeHistory(t *testing.T) {
	t.Run("nil tables become empty arrays", func(t *testing.T) {
		data, err := EncodeHistory(types.History{{nil, {"a"}}})
		require.NoError(t, err)
		require.JSONEq(t, `[[[],["a"]]]`, string(data))
	})

	t.Run("nil history is an empty array", func(t *testing.T) {
		data, err := EncodeHistory(nil)
		require.NoError(t, err)
		require.JSONEq(t, `[]`, string(data))
	})

	t.Run("decode reads what encode writes", func(t *testing.T) {
		in := types.History{{{"a", "b"}, {"c"}}, {{"a", "c"}, {"b"}}}
		data, err := EncodeHistory(in)
		require.NoError(t, err)

		out, err := DecodeHistory(data)
		require.NoError(t, err)
		require.Equal(t, in, out)
	})

	t.Run("names are trimmed before writing", func(t *testing.T) {
		data, err := EncodeHistory(types.History{{{" a ", "b\t"}, {"c"}}})
		require.NoError(t, err)
		require.JSONEq(t, `[[["a","b"],["c"]]]`, string(data))

		out, err := DecodeHistory(data)
		require.NoError(t, err)
		require.Equal(t, types.History{{{"a", "b"}, {"c"}}}, out)
	})

	t.Run("empty name is rejected like decode rejects it", func(t *testing.T) {
		for _, name := range []string{"", "   "} {
			_, err := EncodeHistory(types.History{{{"a"}, {"b", name}}})
			require.ErrorIs(t, err, types.ErrMalformedHistory)

			_, err = DecodeHistory([]byte(`[[["a"],["b",` + strconv.Quote(name) + `]]]`))
			require.ErrorIs(t, err, types.ErrMalformedHistory)
		}
	})
}

func TestValidateEvent(t *testing.T) {
	require.NoError(t, ValidateEvent("friday-coffee"))
	require.ErrorIs(t, ValidateEvent(""), types.ErrInvalidEventName)
	require.ErrorIs(t, ValidateEvent("../escape"), types.ErrInvalidEventName)
	require.ErrorIs(t, ValidateEvent("a/b"), types.ErrInvalidEventName)
}
