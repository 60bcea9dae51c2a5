package testing

import (
	"testing"

	"github.com/Axel-Naumann/coffeetable/internal/logging"
	"github.com/Axel-Naumann/coffeetable/types"
)

// NewTestLogger creates a new logger instance that writes to the testing.T logger.
// This is useful for seeing planner and store output during test runs.
func NewTestLogger(t testing.TB) types.Logger {
	return logging.NewTest(t)
}
