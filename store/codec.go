package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Axel-Naumann/coffeetable/internal/kvutil"
	"github.com/Axel-Naumann/coffeetable/types"
)

// DecodeHistory parses a stored history document.
//
// The document is a JSON array of rounds, each an array of tables, each an
// array of names, newest round first. Names are trimmed; a name that is empty
// after trimming makes the whole document malformed. An empty document or
// JSON null decodes to an empty history.
//
// Returns:
//   - types.History: The decoded history (never nil)
//   - error: ErrMalformedHistory wrapping the cause
func DecodeHistory(data []byte) (types.History, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return types.History{}, nil
	}

	var raw [][][]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrMalformedHistory, err)
	}

	history := make(types.History, 0, len(raw))
	for age, round := range raw {
		r := make(types.SeatingRound, 0, len(round))
		for tableNo, table := range round {
			t := make(types.Table, 0, len(table))
			for _, name := range table {
				name = strings.TrimSpace(name)
				if name == "" {
					return nil, fmt.Errorf("%w: empty name at round %d table %d",
						types.ErrMalformedHistory, age, tableNo)
				}
				t = append(t, name)
			}
			r = append(r, t)
		}
		history = append(history, r)
	}

	return history, nil
}

// EncodeHistory serializes a history in the format read by DecodeHistory.
//
// Names are trimmed like DecodeHistory does, and a name that is empty after
// trimming is rejected with ErrMalformedHistory, so every encoded document
// decodes again. Nil rounds and tables are written as empty arrays rather than null.
func EncodeHistory(history types.History) ([]byte, error) {
	raw := make([][][]string, len(history))
	for i, round := range history {
		raw[i] = make([][]string, len(round))
		for j, table := range round {
			names := make([]string, 0, len(table))
			for _, name := range table {
				name = strings.TrimSpace(name)
				if name == "" {
					return nil, fmt.Errorf("%w: empty name at round %d table %d",
						types.ErrMalformedHistory, i, j)
				}
				names = append(names, name)
			}
			raw[i][j] = names
		}
	}

	data, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("encode history: %w", err)
	}

	return data, nil
}

// ValidateEvent checks that event can be used as a file name and KV key.
func ValidateEvent(event string) error {
	if !kvutil.ValidKey(event) {
		return fmt.Errorf("%w: %q", types.ErrInvalidEventName, event)
	}

	return nil
}
