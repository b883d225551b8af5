package experiments

import (
	"cephalopod/experiments/metrics"
	"cephalopod/game"
	"cephalopod/searcher"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var parallelConfigs = []metrics.SolverConfig{
	{ID: 1, Goroutines: 1},
	{ID: 2, Goroutines: 2, SplitPly: 2},
	{ID: 3, Goroutines: 4, SplitPly: 2},
	{ID: 4, Goroutines: 8, SplitPly: 2},
	{ID: 5, Goroutines: 8, SplitPly: 3},
}

// Names lists the experiments Run accepts.
var Names = []string{"scenarios", "throughput"}

// Run runs the named experiment and stores its records under root.
func Run(name, root string) error {
	switch name {
	case "scenarios":
		return RunScenarioExperiment(root)
	case "throughput":
		return RunThroughputExperiment(root)
	}
	return fmt.Errorf("unknown experiment %q, want one of %v", name, Names)
}

// RunScenarioExperiment solves every reference scenario with each solver
// config and checks the hashes against the known ones.
func RunScenarioExperiment(root string) error {
	boards := make([]namedBoard, 0, len(game.Scenarios))
	for _, s := range game.Scenarios {
		boards = append(boards, namedBoard{name: s.Name, board: s.Board(), expected: s.Expected})
	}
	return runExperiment(root, "scenarios", parallelConfigs, boards)
}

type namedBoard struct {
	name     string
	board    game.Board
	expected uint32 // 0 when unknown
}

func runExperiment(root, name string, configs []metrics.SolverConfig, boards []namedBoard) error {
	log.Info().Msgf("starting %s experiment...", name)

	records := []metrics.RunRecord{}
	baseline := make(map[string]uint32, len(boards))
	for ci, config := range configs {
		log.Info().Msgf("starting config %d of %d: %+v...", ci+1, len(configs), config)
		solver := createSolver(config)

		for _, b := range boards {
			hash, metric := solver.Solve(b.board)
			records = append(records, metrics.RunRecord{
				ID:          uuid.NewString(),
				Config:      config.ID,
				Board:       b.name,
				Depth:       b.board.Depth(),
				Hash:        hash,
				Expected:    b.expected,
				SolveMetric: metric,
			})

			if b.expected != 0 && hash != b.expected {
				return fmt.Errorf("config %d: board %s hashed to %d, want %d", config.ID, b.name, hash, b.expected)
			}
			if want, ok := baseline[b.name]; ok && hash != want {
				return fmt.Errorf("config %d: board %s hashed to %d, baseline %d", config.ID, b.name, hash, want)
			}
			baseline[b.name] = hash

			log.Debug().
				Str("board", b.name).
				Uint32("hash", hash).
				Dur("elapsed", metric.Duration).
				Msg("solved")
		}
		log.Info().Msgf("completed config %d of %d", ci+1, len(configs))
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteSolverConfigs(configs); err != nil {
		return fmt.Errorf("failed to store solver configs: %w", err)
	}
	log.Info().Msg("stored solver configs")

	if err := writer.WriteRunRecords(records); err != nil {
		return fmt.Errorf("failed to write run records: %w", err)
	}
	log.Info().Msgf("stored run records in %s", writer.Dir())
	return nil
}

func createSolver(config metrics.SolverConfig) *searcher.Solver {
	options := []searcher.Option{}

	if config.Goroutines > 0 {
		options = append(options, searcher.WithGoroutines(config.Goroutines))
	}
	if config.SplitPly > 0 {
		options = append(options, searcher.WithSplitPly(config.SplitPly))
	}

	options = append(options, searcher.WithMetrics())
	return searcher.NewSolver(options...)
}
