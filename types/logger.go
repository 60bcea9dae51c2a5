package types

// Logger is the structured logger used by the planner, strategies and stores.
//
// The method set matches zap.SugaredLogger, so a sugared zap logger can be
// passed directly; internal/logging adapts log/slog. Every method takes the
// message followed by alternating keys and values.
type Logger interface {
	// Debug logs diagnostic detail such as per-run pressure decisions.
	Debug(msg string, keysAndValues ...any)

	// Info logs normal progress such as a completed plan.
	Info(msg string, keysAndValues ...any)

	// Warn logs suspicious but recoverable conditions (empty roster, clamped config).
	Warn(msg string, keysAndValues ...any)

	// Error logs failures that abort the current operation.
	Error(msg string, keysAndValues ...any)

	// Fatal logs the message and terminates the process.
	//
	// Test and no-op implementations may choose not to exit.
	Fatal(msg string, keysAndValues ...any)
}
