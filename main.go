package main

import (
	"cephalopod/engine"
	"cephalopod/experiments"
	"cephalopod/meta"
	"cephalopod/searcher"
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	goroutines := flag.Int("goroutines", meta.GO_ROUTINES, "Number of goroutines searching the board")
	splitPly := flag.Int("split", meta.SPLIT_PLY, "Plies below the root searched in parallel")
	stats := flag.Bool("stats", false, "Log search statistics")
	debug := flag.Bool("debug", false, "Enable debug logging")
	experiment := flag.String("experiment", "", "Run an experiment (scenarios, throughput) instead of reading a board")
	out := flag.String("out", "experiments", "Directory experiment records are written to")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if *stats || *experiment != "" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if *experiment != "" {
		if err := experiments.Run(*experiment, *out); err != nil {
			log.Fatal().Err(err).Msgf("%s experiment failed", *experiment)
		}
		return
	}

	options := []searcher.Option{
		searcher.WithGoroutines(*goroutines),
		searcher.WithSplitPly(*splitPly),
	}
	if *stats {
		options = append(options, searcher.WithMetrics())
	}

	e := engine.LocalEngine(os.Stdin, os.Stdout, searcher.NewSolver(options...))
	_, metric, err := e.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to solve board")
	}
	if *stats {
		log.Info().
			Int("terminals", metric.Terminals).
			Int("stores", metric.Stores).
			Int("retrievals", metric.Retrievals).
			Int("table-size", metric.TableSize).
			Dur("elapsed", metric.Duration).
			Msg("search statistics")
	}
}
