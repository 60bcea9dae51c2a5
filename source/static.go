package source

import (
	"context"
	"sync"

	"github.com/Axel-Naumann/coffeetable/types"
)

// Static implements a participant source with a fixed list of names.
type Static struct {
	mu    sync.RWMutex
	names []string
}

var _ types.ParticipantSource = (*Static)(nil)

// NewStatic creates a new static participant source.
//
// The list is copied; later changes to names do not affect the source.
//
// Example:
//
//	src := source.NewStatic([]string{"Anna", "Bernd", "Chiara"})
//	planner, err := coffeetable.NewPlanner(&cfg, src, store.NewMemory(), strategy.NewGreedy())
func NewStatic(names []string) *Static {
	return &Static{names: append([]string(nil), names...)}
}

// ListParticipants returns a copy of the static list.
func (s *Static) ListParticipants(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]string, len(s.names))
	copy(result, s.names)

	return result, nil
}

// Update replaces the list of names.
//
// Useful in tests and long-running processes where the roster changes
// between events.
func (s *Static) Update(names []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.names = append([]string(nil), names...)
}
