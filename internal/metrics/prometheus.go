package metrics

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Axel-Naumann/coffeetable/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Metrics are created and registered lazily on first use, so constructing a
// collector that is never used registers nothing.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	planDuration     prometheus.Histogram
	planAttempts     *prometheus.CounterVec
	participants     prometheus.Gauge
	tables           prometheus.Gauge
	realizedCost     prometheus.Gauge
	historyRounds    prometheus.Gauge
	placements       *prometheus.CounterVec
	storeOpDurations *prometheus.HistogramVec
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "coffeetable" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "coffeetable"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.planDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "planner",
			Name:      "plan_duration_seconds",
			Help:      "Duration of complete planning runs in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12), // 0.5ms .. ~1s
		})

		p.planAttempts = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "planner",
			Name:      "plans_total",
			Help:      "Planning runs by result (recorded, dry_run, failed).",
		}, []string{"result"})

		p.participants = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "planner",
			Name:      "participants",
			Help:      "Number of participants in the last planning run.",
		})

		p.tables = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "planner",
			Name:      "tables",
			Help:      "Number of tables in the last planning run.",
		})

		p.realizedCost = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "planner",
			Name:      "realized_cost",
			Help:      "Familiarity cost realized by the last assignment.",
		})

		p.historyRounds = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "planner",
			Name:      "history_rounds",
			Help:      "Number of seating rounds kept in the history.",
		})

		p.placements = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "strategy",
			Name:      "placements_total",
			Help:      "Participants placed by strategy; forced=true when no eligible table existed.",
		}, []string{"strategy", "forced"})

		p.storeOpDurations = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "store",
			Name:      "operation_duration_seconds",
			Help:      "History store operation latency in seconds by backend and operation.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 9), // 0.1ms .. ~6.5s
		}, []string{"backend", "op"})

		p.reg.MustRegister(p.planDuration)
		p.reg.MustRegister(p.planAttempts)
		p.reg.MustRegister(p.participants)
		p.reg.MustRegister(p.tables)
		p.reg.MustRegister(p.realizedCost)
		p.reg.MustRegister(p.historyRounds)
		p.reg.MustRegister(p.placements)
		p.reg.MustRegister(p.storeOpDurations)
	})
}

// PlannerMetrics implementation

// RecordPlanDuration observes a planning run duration in seconds.
func (p *PrometheusCollector) RecordPlanDuration(duration float64) {
	p.ensureRegistered()
	p.planDuration.Observe(duration)
}

// RecordPlanAttempt counts a planning run by result.
func (p *PrometheusCollector) RecordPlanAttempt(result string) {
	p.ensureRegistered()
	p.planAttempts.WithLabelValues(result).Inc()
}

// RecordParticipantCount sets the participant gauge.
func (p *PrometheusCollector) RecordParticipantCount(count int) {
	p.ensureRegistered()
	p.participants.Set(float64(count))
}

// RecordTableCount sets the table gauge.
func (p *PrometheusCollector) RecordTableCount(count int) {
	p.ensureRegistered()
	p.tables.Set(float64(count))
}

// RecordRealizedCost sets the realized cost gauge.
func (p *PrometheusCollector) RecordRealizedCost(cost float64) {
	p.ensureRegistered()
	p.realizedCost.Set(cost)
}

// RecordHistoryRounds sets the history rounds gauge.
func (p *PrometheusCollector) RecordHistoryRounds(count int) {
	p.ensureRegistered()
	p.historyRounds.Set(float64(count))
}

// StrategyMetrics implementation

// RecordPlacement counts one placed participant.
func (p *PrometheusCollector) RecordPlacement(strategy string, forced bool) {
	p.ensureRegistered()
	p.placements.WithLabelValues(strategy, strconv.FormatBool(forced)).Inc()
}

// StoreMetrics implementation

// RecordStoreOperationDuration observes a store operation latency in seconds.
func (p *PrometheusCollector) RecordStoreOperationDuration(backend, operation string, duration float64) {
	p.ensureRegistered()
	p.storeOpDurations.WithLabelValues(backend, operation).Observe(duration)
}
