// Package coffeetable seats the participants of a recurring event at tables so
// that people who sat together recently are unlikely to meet again.
//
// Every past seating round adds a familiarity cost to each pair that shared a
// table, weighted 1/2^age so last week's neighbours count more than those of a
// month ago. A greedy distributor then places the hardest-to-seat participant
// first, each at the table where they know the fewest people.
//
// # Quick Start
//
//	cfg := coffeetable.DefaultConfig()
//	cfg.Event = "friday-coffee"
//	cfg.MaxPerTable = 4
//
//	src := source.NewFile("participants.txt")
//	st := store.NewFile("/var/lib/coffeetable")
//	strat := strategy.NewGreedy(strategy.WithRandom(coffeetable.NewRandom(cfg.Seed)))
//
//	planner, err := coffeetable.NewPlanner(&cfg, src, st, strat)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := planner.Plan(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for i, table := range result.Assignment {
//	    fmt.Printf("Table %d: %s\n", i+1, strings.Join(table, ", "))
//	}
//
// # Packages
//
//   - cost: familiarity cost matrix from a seating history
//   - strategy: table evaluation and the greedy distributor
//   - source: participant rosters (static, text, file)
//   - store: seating histories (memory, JSON files, NATS JetStream KV)
//
// # History
//
// Plan records each new round as the newest history entry and keeps at most
// Config.MaxHistoryRounds rounds. Config.Retry replaces the newest round
// instead, for re-planning an event that was already recorded. Config.DryRun
// and Preview never record.
//
// See the examples/ directory and cmd/coffeetable for complete programs.
package coffeetable
