package coffeetable

import (
	"fmt"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Axel-Naumann/coffeetable/internal/kvutil"
	"github.com/Axel-Naumann/coffeetable/types"
)

// History backends accepted by HistoryConfig.Backend.
const (
	BackendFile   = "file"
	BackendNATS   = "nats"
	BackendMemory = "memory"
)

// HistoryConfig selects and configures the history store.
type HistoryConfig struct {
	// Backend is one of "file", "nats" or "memory".
	Backend string `yaml:"backend"`

	// Path is the directory holding <event>.json documents (file backend).
	Path string `yaml:"path"`

	// URL is the NATS server URL (nats backend).
	URL string `yaml:"url"`

	// Bucket is the JetStream KV bucket name (nats backend).
	Bucket string `yaml:"bucket"`

	// OperationTimeout bounds each KV request (nats backend).
	OperationTimeout time.Duration `yaml:"operationTimeout"`
}

// Config is the configuration for the Planner.
type Config struct {
	// MaxPerTable is the maximum number of participants per table.
	//
	// Fractional values are accepted: the table count is ceil(n / MaxPerTable)
	// and a table accepts another participant while its occupancy is below it.
	// Must be at least 1.
	MaxPerTable float64 `yaml:"maxPerTable"`

	// Event names the recurring event. Each event keeps its own history.
	// Must be a valid NATS KV key, which also makes it a safe file name.
	Event string `yaml:"event"`

	// MaxHistoryRounds is the number of past rounds kept after recording.
	MaxHistoryRounds int `yaml:"maxHistoryRounds"`

	// DryRun distributes without recording the result.
	DryRun bool `yaml:"dryRun"`

	// Retry replaces the newest recorded round instead of adding a new one.
	// Use it to re-plan an event whose seating was already recorded.
	Retry bool `yaml:"retry"`

	// Seed makes shuffling reproducible when set. Empty means time-seeded.
	//
	// The planner does not read it: randomness belongs to the strategy, so
	// callers seed it with strategy.WithRandom(coffeetable.NewRandom(cfg.Seed)).
	Seed string `yaml:"seed"`

	// History configures the history store.
	History HistoryConfig `yaml:"history"`
}

// DefaultConfig returns a Config with sensible defaults.
//
// Returns:
//   - Config: Configuration with default values
func DefaultConfig() Config {
	return Config{
		MaxPerTable:      3,
		Event:            "coffeetable",
		MaxHistoryRounds: types.DefaultMaxHistoryRounds,
		History: HistoryConfig{
			Backend:          BackendFile,
			Path:             ".",
			Bucket:           "coffeetable-history",
			OperationTimeout: 5 * time.Second,
		},
	}
}

// SetDefaults fills in missing configuration values with defaults.
//
// DryRun, Retry and Seed have meaningful zero values and are left untouched.
//
// Parameters:
//   - cfg: Config to apply defaults to (modified in place)
func SetDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.MaxPerTable == 0 {
		cfg.MaxPerTable = defaults.MaxPerTable
	}
	if cfg.Event == "" {
		cfg.Event = defaults.Event
	}
	if cfg.MaxHistoryRounds == 0 {
		cfg.MaxHistoryRounds = defaults.MaxHistoryRounds
	}
	if cfg.History.Backend == "" {
		cfg.History.Backend = defaults.History.Backend
	}
	if cfg.History.Path == "" {
		cfg.History.Path = defaults.History.Path
	}
	if cfg.History.Bucket == "" {
		cfg.History.Bucket = defaults.History.Bucket
	}
	if cfg.History.OperationTimeout == 0 {
		cfg.History.OperationTimeout = defaults.History.OperationTimeout
	}
}

// Validate checks configuration constraints and returns error for invalid values.
//
// Hard Validation Rules:
//   - MaxPerTable >= 1 and finite
//   - Event is a valid NATS KV key
//   - MaxHistoryRounds >= 1
//   - History.Backend is "file", "nats" or "memory"
//   - History.URL is set for the nats backend
//
// Returns:
//   - error: Validation error wrapping ErrInvalidConfig or ErrInvalidCapacity, nil if valid
func (cfg *Config) Validate() error {
	if math.IsNaN(cfg.MaxPerTable) || math.IsInf(cfg.MaxPerTable, 0) || cfg.MaxPerTable < 1 {
		return fmt.Errorf("%w: MaxPerTable is %v", types.ErrInvalidCapacity, cfg.MaxPerTable)
	}

	if !kvutil.ValidKey(cfg.Event) {
		return fmt.Errorf("%w: %w: %q", types.ErrInvalidConfig, types.ErrInvalidEventName, cfg.Event)
	}

	if cfg.MaxHistoryRounds < 1 {
		return fmt.Errorf("%w: MaxHistoryRounds must be >= 1, got %d", types.ErrInvalidConfig, cfg.MaxHistoryRounds)
	}

	switch cfg.History.Backend {
	case BackendFile, BackendMemory:
	case BackendNATS:
		if cfg.History.URL == "" {
			return fmt.Errorf("%w: history.url is required for the nats backend", types.ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown history backend %q", types.ErrInvalidConfig, cfg.History.Backend)
	}

	return nil
}

// ValidateWithWarnings logs warnings for legal but unusual values.
//
// This is called after Validate() in NewPlanner() to provide operator guidance.
//
// Parameters:
//   - logger: Logger instance for warning output
func (cfg *Config) ValidateWithWarnings(logger Logger) {
	if cfg.MaxPerTable != math.Trunc(cfg.MaxPerTable) {
		logger.Warn(
			"MaxPerTable is fractional, table count and table limit round differently",
			"maxPerTable", cfg.MaxPerTable,
		)
	}

	if cfg.MaxHistoryRounds > 2*types.DefaultMaxHistoryRounds {
		logger.Warn(
			"MaxHistoryRounds is large, old rounds contribute almost nothing",
			"maxHistoryRounds", cfg.MaxHistoryRounds,
			"recommended", types.DefaultMaxHistoryRounds,
		)
	}

	if cfg.DryRun && cfg.Retry {
		logger.Warn("Retry has no effect on a dry run")
	}

	if cfg.History.Backend == BackendMemory && !cfg.DryRun {
		logger.Warn("memory history backend does not outlive the process")
	}
}

// LoadConfig reads a YAML configuration file and applies defaults.
//
// The result is not validated; call Validate before use.
//
// Parameters:
//   - path: Path to the YAML file
//
// Returns:
//   - *Config: Loaded configuration with defaults filled in
//   - error: Read or parse error
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	SetDefaults(&cfg)

	return &cfg, nil
}

// TestConfig returns a configuration for tests: in-memory history and a fixed seed.
//
// Example:
//
//	cfg := coffeetable.TestConfig()
//	cfg.MaxPerTable = 4
//	planner, err := coffeetable.NewPlanner(&cfg, src, store.NewMemory(), strategy.NewGreedy())
func TestConfig() Config {
	cfg := DefaultConfig()
	cfg.Event = "test"
	cfg.Seed = "test" // only reproducible when the strategy is seeded from it
	cfg.History.Backend = BackendMemory

	return cfg
}
