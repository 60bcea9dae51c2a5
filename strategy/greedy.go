package strategy

import (
	"math"
	"slices"
	"sync"

	"github.com/Axel-Naumann/coffeetable/internal/logging"
	"github.com/Axel-Naumann/coffeetable/internal/metrics"
	"github.com/Axel-Naumann/coffeetable/internal/rng"
	"github.com/Axel-Naumann/coffeetable/types"
)

const greedyName = "greedy"

// Greedy implements pressure-ordered greedy seating.
type Greedy struct {
	mu      sync.Mutex // guards random, which is usually not safe for concurrent use
	random  types.RandomSource
	logger  types.Logger
	metrics types.MetricsCollector
}

var _ types.SeatingStrategy = (*Greedy)(nil)

// GreedyOption configures a Greedy strategy.
type GreedyOption func(*Greedy)

// NewGreedy creates a new greedy seating strategy.
//
// Parameters:
//   - opts: Optional configuration (WithRandom, WithLogger, WithMetrics)
//
// Returns:
//   - *Greedy: Initialized greedy strategy ready for use
//
// Example:
//
//	strat := strategy.NewGreedy(strategy.WithRandom(rand.New(rand.NewPCG(1, 2))))
//	tables := strat.Distribute(costs, participants, 3)
func NewGreedy(opts ...GreedyOption) *Greedy {
	g := &Greedy{}

	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}

	if g.random == nil {
		g.random = rng.New()
	}
	if g.logger == nil {
		g.logger = logging.NewNop()
	}
	if g.metrics == nil {
		g.metrics = metrics.NewNop()
	}

	return g
}

// WithRandom sets the random source used for the initial shuffle.
func WithRandom(random types.RandomSource) GreedyOption {
	return func(g *Greedy) {
		g.random = random
	}
}

// WithLogger sets the logger used for per-placement debug output.
func WithLogger(logger types.Logger) GreedyOption {
	return func(g *Greedy) {
		g.logger = logger
	}
}

// WithMetrics sets the metrics collector used to count placements.
func WithMetrics(m types.MetricsCollector) GreedyOption {
	return func(g *Greedy) {
		g.metrics = m
	}
}

// Distribute seats participants with the greedy pressure heuristic.
//
// The algorithm:
//  1. Create TableCount(len(participants), capacity) empty tables
//  2. Shuffle a private copy of participants (tie-breaking only)
//  3. Seat the first shuffled participant at table 0
//  4. Until everybody is seated: evaluate every unplaced participant, pick the
//     one with strictly highest pressure (first wins ties) and seat them at
//     their own best table
//
// The participants slice and the cost matrix are never modified. Repeated
// calls may return different arrangements, but always the same number of
// tables, every participant exactly once, and no table beyond capacity.
//
// Parameters:
//   - costs: Pairwise familiarity costs
//   - participants: Names to seat
//   - capacity: Maximum participants per table (>= 1)
//
// Returns:
//   - types.Assignment: Tables of names (empty when participants is empty)
func (g *Greedy) Distribute(costs types.CostMatrix, participants []string, capacity float64) types.Assignment {
	tables := newTables(types.TableCount(len(participants), capacity))
	if len(participants) == 0 {
		return tables
	}

	remaining := slices.Clone(participants)
	g.shuffle(remaining)

	tables[0] = append(tables[0], remaining[0])
	g.metrics.RecordPlacement(greedyName, false)
	remaining = remaining[1:]

	for len(remaining) > 0 {
		pick, table, pressure := selectNext(remaining, tables, costs, capacity)

		forced := table == NoTable
		if forced {
			table = leastOccupied(tables)
			g.logger.Warn("no table has room; seating at least occupied table",
				"person", remaining[pick],
				"table", table,
				"capacity", capacity,
			)
		}

		g.logger.Debug("seated participant",
			"person", remaining[pick],
			"table", table,
			"pressure", pressure,
		)

		tables[table] = append(tables[table], remaining[pick])
		g.metrics.RecordPlacement(greedyName, forced)
		remaining = slices.Delete(remaining, pick, pick+1)
	}

	return tables
}

func (g *Greedy) shuffle(names []string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.random.Shuffle(len(names), func(i, j int) {
		names[i], names[j] = names[j], names[i]
	})
}

// selectNext returns the index in remaining of the participant with the highest
// pressure, together with that participant's best table and pressure.
func selectNext(remaining []string, tables types.Assignment, costs types.CostMatrix, capacity float64) (int, int, float64) {
	pick := 0
	pickTable := NoTable
	highest := math.Inf(-1)

	for idx, person := range remaining {
		best, pressure := Evaluate(person, tables, costs, capacity)
		if pressure > highest {
			highest = pressure
			pick = idx
			pickTable = best
		}
	}

	return pick, pickTable, highest
}

func leastOccupied(tables types.Assignment) int {
	least := 0
	for idx, table := range tables {
		if len(table) < len(tables[least]) {
			least = idx
		}
	}

	return least
}

func newTables(count int) types.Assignment {
	tables := make(types.Assignment, count)
	for i := range tables {
		tables[i] = types.Table{}
	}

	return tables
}
