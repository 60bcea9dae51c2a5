// Command coffeetable prints a seating plan for a recurring event and records
// it in the event's history so the next plan avoids repeating table mates.
//
// Usage:
//
//	coffeetable [flags] [name ...]
//
// Names given as arguments replace the participants file. With
// --participants - the roster is read from standard input, one name per line.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/pflag"

	"github.com/Axel-Naumann/coffeetable"
	"github.com/Axel-Naumann/coffeetable/cost"
	"github.com/Axel-Naumann/coffeetable/internal/logging"
	"github.com/Axel-Naumann/coffeetable/internal/metrics"
	"github.com/Axel-Naumann/coffeetable/source"
	"github.com/Axel-Naumann/coffeetable/store"
	"github.com/Axel-Naumann/coffeetable/strategy"
)

const defaultParticipantsFile = "names.txt"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// flags holds the command line. Config-backed flags only override the loaded
// configuration when set explicitly.
type flags struct {
	set *pflag.FlagSet

	configPath   string
	maxPerTable  float64
	dryRun       bool
	retry        bool
	history      string
	backend      string
	participants string
	event        string
	seed         string
	natsURL      string
	bucket       string
	maxRounds    int
	showCosts    bool
	metricsAddr  string
	logLevel     string
}

func parseFlags(args []string, stderr io.Writer) (*flags, error) {
	f := &flags{set: pflag.NewFlagSet("coffeetable", pflag.ContinueOnError)}
	fs := f.set
	fs.SetOutput(stderr)

	fs.StringVar(&f.configPath, "config", "", "YAML configuration file")
	fs.Float64Var(&f.maxPerTable, "max", 3, "maximum number of persons per table")
	fs.BoolVar(&f.dryRun, "dry-run", false, "do not remember the new assignment")
	fs.BoolVar(&f.retry, "retry", false, "replace the most recently recorded round instead of adding one")
	fs.StringVar(&f.history, "history", ".", "directory holding <event>.json history files")
	fs.StringVar(&f.backend, "backend", coffeetable.BackendFile, "history backend: file, nats or memory")
	fs.StringVarP(&f.participants, "participants", "p", defaultParticipantsFile, "participants file, one name per line (- for stdin)")
	fs.StringVarP(&f.event, "event", "e", "coffeetable", "event name, selects the history")
	fs.StringVar(&f.seed, "seed", "", "seed for reproducible tie-breaking")
	fs.StringVar(&f.natsURL, "nats-url", "", "NATS server URL; implies --backend nats")
	fs.StringVar(&f.bucket, "bucket", store.DefaultBucket, "JetStream KV bucket for the nats backend")
	fs.IntVar(&f.maxRounds, "max-history", 6, "number of past rounds to keep")
	fs.BoolVar(&f.showCosts, "show-costs", false, "print the familiarity cost of every known pair")
	fs.StringVar(&f.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address while running")
	fs.StringVar(&f.logLevel, "log-level", "warn", "log level: debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return f, nil
}

// config merges the configuration file (if any) with explicitly set flags.
func (f *flags) config() (*coffeetable.Config, error) {
	cfg := coffeetable.DefaultConfig()
	if f.configPath != "" {
		loaded, err := coffeetable.LoadConfig(f.configPath)
		if err != nil {
			return nil, err
		}
		cfg = *loaded
	}

	changed := f.set.Changed
	if changed("max") {
		cfg.MaxPerTable = f.maxPerTable
	}
	if changed("dry-run") {
		cfg.DryRun = f.dryRun
	}
	if changed("retry") {
		cfg.Retry = f.retry
	}
	if changed("event") {
		cfg.Event = f.event
	}
	if changed("seed") {
		cfg.Seed = f.seed
	}
	if changed("max-history") {
		cfg.MaxHistoryRounds = f.maxRounds
	}
	if changed("history") {
		cfg.History.Path = f.history
	}
	if changed("backend") {
		cfg.History.Backend = f.backend
	}
	if changed("bucket") {
		cfg.History.Bucket = f.bucket
	}
	if changed("nats-url") {
		cfg.History.URL = f.natsURL
		if !changed("backend") {
			cfg.History.Backend = coffeetable.BackendNATS
		}
	}

	coffeetable.SetDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	f, err := parseFlags(args, stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		return 2
	}

	level, err := logging.ParseLevel(f.logLevel)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	logger := logging.NewSlogText(stderr, level)

	cfg, err := f.config()
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		return 2
	}

	reg := prometheus.NewRegistry()
	collector := metrics.NewPrometheus(reg, "")
	if f.metricsAddr != "" {
		shutdown, err := serveMetrics(f.metricsAddr, reg, logger)
		if err != nil {
			logger.Error("failed to serve metrics", "addr", f.metricsAddr, "error", err)
			return 1
		}
		defer shutdown()
	}

	src, err := participantSource(f, stdin)
	if err != nil {
		logger.Error("failed to read participants", "error", err)
		return 1
	}

	storeOpts := []store.Option{
		store.WithLogger(logger),
		store.WithMetrics(collector),
		store.WithOperationTimeout(cfg.History.OperationTimeout),
	}
	st, closeStore, err := historyStore(ctx, cfg, storeOpts)
	if err != nil {
		logger.Error("failed to open history store", "backend", cfg.History.Backend, "error", err)
		return 1
	}
	defer closeStore()

	strat := strategy.NewGreedy(
		strategy.WithRandom(coffeetable.NewRandom(cfg.Seed)),
		strategy.WithLogger(logger),
		strategy.WithMetrics(collector),
	)

	planner, err := coffeetable.NewPlanner(cfg, src, st, strat,
		coffeetable.WithLogger(logger),
		coffeetable.WithMetrics(collector),
	)
	if err != nil {
		logger.Error("failed to create planner", "error", err)
		return 2
	}

	result, err := planner.Plan(ctx)
	if err != nil {
		logger.Error("planning failed", "error", err)
		return 1
	}

	printResult(stdout, cfg, result, f.showCosts)

	return 0
}

func participantSource(f *flags, stdin io.Reader) (coffeetable.ParticipantSource, error) {
	if args := f.set.Args(); len(args) > 0 {
		return source.NewStatic(source.NormalizeNames(args)), nil
	}

	if f.participants == "-" {
		names, err := source.ParseParticipants(stdin)
		if err != nil {
			return nil, err
		}

		return source.NewStatic(names), nil
	}

	return source.NewFile(f.participants), nil
}

func historyStore(ctx context.Context, cfg *coffeetable.Config, opts []store.Option) (coffeetable.HistoryStore, func(), error) {
	switch cfg.History.Backend {
	case coffeetable.BackendMemory:
		return store.NewMemory(opts...), func() {}, nil
	case coffeetable.BackendNATS:
		nc, err := nats.Connect(cfg.History.URL, nats.Name("coffeetable"), nats.Timeout(cfg.History.OperationTimeout))
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to NATS: %w", err)
		}

		js, err := jetstream.New(nc)
		if err != nil {
			nc.Close()
			return nil, nil, fmt.Errorf("failed to init JetStream: %w", err)
		}

		st, err := store.NewKV(ctx, js, cfg.History.Bucket, opts...)
		if err != nil {
			nc.Close()
			return nil, nil, err
		}

		return st, nc.Close, nil
	default:
		return store.NewFile(cfg.History.Path, opts...), func() {}, nil
	}
}

func serveMetrics(addr string, gatherer prometheus.Gatherer, logger coffeetable.Logger) (func(), error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	srv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Warn("metrics server stopped", "error", err)
		}
	}()
	logger.Info("serving metrics", "addr", ln.Addr().String())

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}, nil
}

func printResult(w io.Writer, cfg *coffeetable.Config, result coffeetable.Result, showCosts bool) {
	for i, table := range result.Assignment {
		fmt.Fprintf(w, "Table %d: %s\n", i+1, strings.Join(table, ", "))
	}

	if showCosts {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Familiarity (%d pairs, realized cost %.4f):\n", len(result.Costs), result.RealizedCost)
		for _, pair := range cost.Pairs(result.Costs) {
			fmt.Fprintf(w, "  %s + %s: %.4f\n", pair.A, pair.B, pair.Cost)
		}
	}

	switch {
	case result.Recorded:
	case len(result.Assignment) == 0:
		fmt.Fprintln(w, "Nobody to seat.")
	default:
		fmt.Fprintf(w, "Dry-run mode; not storing distribution for event %q.\n", cfg.Event)
	}
}
