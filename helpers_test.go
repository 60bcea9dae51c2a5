package coffeetable

import (
	"fmt"
	"math"
	"sync"
)

func posInf() float64 { return math.Inf(1) }

// recordingLogger keeps every message by level.
type recordingLogger struct {
	mu      sync.Mutex
	entries map[string][]string
}

var _ Logger = (*recordingLogger)(nil)

func newRecordingLogger() *recordingLogger {
	return &recordingLogger{entries: make(map[string][]string)}
}

func (l *recordingLogger) log(level, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries[level] = append(l.entries[level], msg)
}

func (l *recordingLogger) messages(level string) []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]string(nil), l.entries[level]...)
}

func (l *recordingLogger) Debug(msg string, _ ...any) { l.log("DEBUG", msg) }
func (l *recordingLogger) Info(msg string, _ ...any)  { l.log("INFO", msg) }
func (l *recordingLogger) Warn(msg string, _ ...any)  { l.log("WARN", msg) }
func (l *recordingLogger) Error(msg string, _ ...any) { l.log("ERROR", msg) }
func (l *recordingLogger) Fatal(msg string, _ ...any) { panic(fmt.Sprintf("fatal: %s", msg)) }

// recordingMetrics counts plan attempts by result and keeps the last gauges.
type recordingMetrics struct {
	mu            sync.Mutex
	attempts      map[string]int
	participants  int
	tables        int
	realizedCost  float64
	historyRounds int
	placements    int
}

var _ MetricsCollector = (*recordingMetrics)(nil)

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{attempts: make(map[string]int)}
}

func (m *recordingMetrics) RecordPlanDuration(float64) {}

func (m *recordingMetrics) RecordPlanAttempt(result string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.attempts[result]++
}

func (m *recordingMetrics) RecordParticipantCount(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.participants = count
}

func (m *recordingMetrics) RecordTableCount(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tables = count
}

func (m *recordingMetrics) RecordRealizedCost(cost float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.realizedCost = cost
}

func (m *recordingMetrics) RecordHistoryRounds(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.historyRounds = count
}

func (m *recordingMetrics) RecordPlacement(string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.placements++
}

func (m *recordingMetrics) RecordStoreOperationDuration(string, string, float64) {}

func (m *recordingMetrics) attemptCount(result string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.attempts[result]
}
