package coffeetable

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Axel-Naumann/coffeetable/cost"
	"github.com/Axel-Naumann/coffeetable/internal/hooks"
	"github.com/Axel-Naumann/coffeetable/internal/logging"
	"github.com/Axel-Naumann/coffeetable/internal/metrics"
)

// Plan attempt results reported to MetricsCollector.RecordPlanAttempt.
const (
	resultRecorded = "recorded"
	resultDryRun   = "dry_run"
	resultFailed   = "failed"
)

// Result is the outcome of one planning run.
type Result struct {
	// Assignment holds the tables, table number = index.
	Assignment Assignment

	// Costs is the familiarity matrix the assignment was optimized against.
	Costs CostMatrix

	// RealizedCost is the total familiarity cost of Assignment (lower is better).
	RealizedCost float64

	// History is the stored history after the run: the updated history when
	// Recorded, otherwise the history that was loaded.
	History History

	// Recorded reports whether the assignment was saved to the history store.
	Recorded bool
}

// Planner seats a roster of participants for one recurring event.
//
// Each run lists the participants, loads the event's history, builds the
// familiarity cost matrix, distributes everybody onto tables and, unless it
// is a dry run, records the new round and saves the trimmed history.
//
// Thread Safety:
//   - Plan and Preview are safe for concurrent use
//   - Runs are serialized so two runs never interleave load and save
type Planner struct {
	cfg      Config
	source   ParticipantSource
	store    HistoryStore
	strategy SeatingStrategy

	hooks   Hooks
	metrics MetricsCollector
	logger  Logger

	mu sync.Mutex
}

// NewPlanner creates a new Planner with the provided configuration.
//
// Parameters:
//   - cfg: Configuration (defaults are filled in, then validated)
//   - source: Participant source for the roster
//   - store: History store for past rounds
//   - strategy: Seating strategy (recommended: strategy.NewGreedy()); it owns
//     all randomness, so cfg.Seed only takes effect through the strategy's
//     random source
//   - opts: Optional configuration (hooks, metrics, logger)
//
// Returns:
//   - *Planner: Initialized planner instance
//   - error: ErrInvalidConfig, ErrInvalidCapacity or a missing-dependency error
//
// Example:
//
//	cfg := coffeetable.DefaultConfig()
//	cfg.Event = "friday-coffee"
//	cfg.Seed = "2024-06-01"
//	src := source.NewFile("participants.txt")
//	seating := strategy.NewGreedy(strategy.WithRandom(coffeetable.NewRandom(cfg.Seed)))
//	planner, err := coffeetable.NewPlanner(&cfg, src, store.NewFile("."), seating)
func NewPlanner(cfg *Config, source ParticipantSource, store HistoryStore, strategy SeatingStrategy, opts ...Option) (*Planner, error) {
	if cfg == nil {
		return nil, ErrInvalidConfig
	}
	if source == nil {
		return nil, ErrParticipantSourceRequired
	}
	if store == nil {
		return nil, ErrHistoryStoreRequired
	}
	if strategy == nil {
		return nil, ErrSeatingStrategyRequired
	}

	SetDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	options := &plannerOptions{}
	for _, opt := range opts {
		opt(options)
	}

	metricsCollector := options.metrics
	if metricsCollector == nil {
		metricsCollector = metrics.NewNop()
	}

	loggerInstance := options.logger
	if loggerInstance == nil {
		loggerInstance = logging.NewNop()
	}

	cfg.ValidateWithWarnings(loggerInstance)

	return &Planner{
		cfg:      *cfg,
		source:   source,
		store:    store,
		strategy: strategy,
		hooks:    hooks.Fill(options.hooks),
		metrics:  metricsCollector,
		logger:   loggerInstance,
	}, nil
}

// Config returns a copy of the planner's effective configuration.
func (p *Planner) Config() Config {
	return p.cfg
}

// Plan runs one planning round and records it unless Config.DryRun is set.
//
// With Config.Retry the new round replaces the newest recorded round. The
// saved history is trimmed to Config.MaxHistoryRounds. An empty roster yields
// an empty assignment and nothing is recorded.
//
// Parameters:
//   - ctx: Context for the source and store calls
//
// Returns:
//   - Result: The assignment and its cost
//   - error: ErrParticipantsFailed, ErrHistoryLoadFailed or ErrHistorySaveFailed (wrapped)
func (p *Planner) Plan(ctx context.Context) (Result, error) {
	return p.run(ctx, !p.cfg.DryRun)
}

// Preview runs one planning round without recording it.
func (p *Planner) Preview(ctx context.Context) (Result, error) {
	return p.run(ctx, false)
}

func (p *Planner) run(ctx context.Context, record bool) (Result, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	start := time.Now()

	participants, err := p.source.ListParticipants(ctx)
	if err != nil {
		return Result{}, p.fail(ctx, fmt.Errorf("%w: %w", ErrParticipantsFailed, err))
	}
	if len(participants) == 0 {
		p.logger.Warn("nothing to seat", "event", p.cfg.Event, "reason", ErrNoParticipants)
	}

	history, err := p.store.Load(ctx, p.cfg.Event)
	if err != nil {
		return Result{}, p.fail(ctx, wrapIfNot(err, ErrHistoryLoadFailed))
	}

	costs := cost.BuildMatrix(participants, history)
	assignment := p.strategy.Distribute(costs, participants, p.cfg.MaxPerTable)
	realized := cost.Realized(assignment, costs)

	p.logger.Info("participants seated",
		"event", p.cfg.Event,
		"participants", len(participants),
		"tables", len(assignment),
		"historyRounds", len(history),
		"realizedCost", realized,
	)

	if err := p.hooks.OnPlanned(ctx, assignment, realized); err != nil {
		p.logger.Warn("OnPlanned hook failed", "error", err)
	}

	result := Result{
		Assignment:   assignment,
		Costs:        costs,
		RealizedCost: realized,
		History:      history,
	}

	if record && len(participants) > 0 {
		updated := history.Record(assignment.Round(), p.cfg.Retry).Trim(p.cfg.MaxHistoryRounds)
		if err := p.store.Save(ctx, p.cfg.Event, updated); err != nil {
			return Result{}, p.fail(ctx, wrapIfNot(err, ErrHistorySaveFailed))
		}

		p.logger.Info("history recorded",
			"event", p.cfg.Event,
			"rounds", len(updated),
			"replacedNewest", p.cfg.Retry && len(history) > 0,
		)

		if err := p.hooks.OnHistorySaved(ctx, p.cfg.Event, len(updated)); err != nil {
			p.logger.Warn("OnHistorySaved hook failed", "error", err)
		}

		result.History = updated
		result.Recorded = true
	}

	p.metrics.RecordPlanDuration(time.Since(start).Seconds())
	p.metrics.RecordParticipantCount(len(participants))
	p.metrics.RecordTableCount(len(assignment))
	p.metrics.RecordRealizedCost(realized)
	p.metrics.RecordHistoryRounds(len(result.History))
	if result.Recorded {
		p.metrics.RecordPlanAttempt(resultRecorded)
	} else {
		p.metrics.RecordPlanAttempt(resultDryRun)
	}

	return result, nil
}

// fail reports err through metrics, logs and hooks, and returns it.
func (p *Planner) fail(ctx context.Context, err error) error {
	p.metrics.RecordPlanAttempt(resultFailed)
	p.logger.Error("planning failed", "event", p.cfg.Event, "error", err)

	if hookErr := p.hooks.OnError(ctx, err); hookErr != nil {
		p.logger.Warn("OnError hook failed", "error", hookErr)
	}

	return err
}

// wrapIfNot wraps err with sentinel unless it already matches it.
func wrapIfNot(err, sentinel error) error {
	if errors.Is(err, sentinel) {
		return err
	}

	return fmt.Errorf("%w: %w", sentinel, err)
}
