// Package hooks provides default Planner hook implementations.
package hooks

import (
	"context"

	"github.com/Axel-Naumann/coffeetable/types"
)

// NopHooks implements Hooks with no-op callbacks.
//
// This is the default implementation used when no custom hooks are provided,
// eliminating the need for nil checks throughout the codebase.
type NopHooks struct{}

// Compile-time assertions that NopHooks implements hook callbacks.
var (
	_ func(context.Context, types.Assignment, float64) error = (*NopHooks)(nil).OnPlanned
	_ func(context.Context, string, int) error               = (*NopHooks)(nil).OnHistorySaved
	_ func(context.Context, error) error                     = (*NopHooks)(nil).OnError
)

// NewNop creates a new no-op hooks implementation.
func NewNop() types.Hooks {
	h := &NopHooks{}

	return types.Hooks{
		OnPlanned:      h.OnPlanned,
		OnHistorySaved: h.OnHistorySaved,
		OnError:        h.OnError,
	}
}

// Fill returns a copy of hooks with every nil callback replaced by a no-op.
//
// A nil hooks pointer yields the full no-op set.
func Fill(hooks *types.Hooks) types.Hooks {
	filled := NewNop()
	if hooks == nil {
		return filled
	}

	if hooks.OnPlanned != nil {
		filled.OnPlanned = hooks.OnPlanned
	}
	if hooks.OnHistorySaved != nil {
		filled.OnHistorySaved = hooks.OnHistorySaved
	}
	if hooks.OnError != nil {
		filled.OnError = hooks.OnError
	}

	return filled
}

// OnPlanned is a no-op implementation.
func (h *NopHooks) OnPlanned(_ context.Context, _ types.Assignment, _ float64) error {
	return nil
}

// OnHistorySaved is a no-op implementation.
func (h *NopHooks) OnHistorySaved(_ context.Context, _ string, _ int) error {
	return nil
}

// OnError is a no-op implementation.
func (h *NopHooks) OnError(_ context.Context, _ error) error {
	return nil
}
