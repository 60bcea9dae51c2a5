package store

import (
	"context"
	"time"

	"github.com/puzpuzpuz/xsync/v4"

	"github.com/Axel-Naumann/coffeetable/types"
)

const backendMemory = "memory"

// Memory is an in-process history store.
//
// Histories are deep-copied on the way in and out, so callers may mutate
// what they pass or receive.
type Memory struct {
	histories *xsync.Map[string, types.History]
	opts      options
}

var _ types.HistoryStore = (*Memory)(nil)

// NewMemory creates an empty in-memory store.
func NewMemory(opts ...Option) *Memory {
	return &Memory{
		histories: xsync.NewMap[string, types.History](),
		opts:      applyOptions(opts),
	}
}

// Load returns a copy of the stored history, or an empty history.
func (m *Memory) Load(ctx context.Context, event string) (types.History, error) {
	defer m.opts.observe(backendMemory, "load", time.Now())

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := ValidateEvent(event); err != nil {
		return nil, err
	}

	history, ok := m.histories.Load(event)
	if !ok || history == nil {
		return types.History{}, nil
	}

	return history.Clone(), nil
}

// Save stores a copy of history under event.
func (m *Memory) Save(ctx context.Context, event string, history types.History) error {
	defer m.opts.observe(backendMemory, "save", time.Now())

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := ValidateEvent(event); err != nil {
		return err
	}

	m.histories.Store(event, history.Clone())
	m.opts.logger.Debug("history saved", "backend", backendMemory, "event", event, "rounds", len(history))

	return nil
}

// Events returns the names of all events with a stored history, in no particular order.
func (m *Memory) Events() []string {
	events := make([]string, 0, m.histories.Size())
	m.histories.Range(func(event string, _ types.History) bool {
		events = append(events, event)
		return true
	})

	return events
}
