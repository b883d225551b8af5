package searcher

import (
	"cephalopod/experiments/metrics"
	"cephalopod/game"
	"cephalopod/meta"

	"github.com/rs/zerolog/log"
)

type Option func(s *Solver)

// Solver computes the hash of a board. Every call owns a fresh memo table that
// is cleared before the call returns. A Solver runs one search at a time.
type Solver struct {
	goroutines int
	splitPly   int
	tableSize  int
	shards     int
	metrics    metrics.Collector
}

func WithGoroutines(goroutines int) Option {
	return func(s *Solver) {
		if goroutines > 0 {
			s.goroutines = goroutines
		}
	}
}

func WithSplitPly(ply int) Option {
	return func(s *Solver) {
		if ply >= 0 {
			s.splitPly = ply
		}
	}
}

func WithTableSize(size int) Option {
	return func(s *Solver) {
		if size > 0 {
			s.tableSize = size
		}
	}
}

func WithShards(shards int) Option {
	return func(s *Solver) {
		if shards > 0 {
			s.shards = shards
		}
	}
}

func WithMetrics() Option {
	return func(s *Solver) {
		s.metrics = metrics.NewCollector()
	}
}

func NewSolver(options ...Option) *Solver {
	s := &Solver{ // Default values
		goroutines: meta.GO_ROUTINES,
		splitPly:   meta.SPLIT_PLY,
		tableSize:  meta.TABLE_SIZE,
		shards:     meta.SHARDS,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *Solver) Goroutines() int {
	return s.goroutines
}

// Solve returns the hash of the terminal boards reachable from board.
func (s *Solver) Solve(board game.Board) (uint32, metrics.SolveMetric) {
	vector, metric := s.SolveVector(board)
	return vector.Hash(), metric
}

// SolveVector returns the result vector of board.
func (s *Solver) SolveVector(board game.Board) (game.Vector, metrics.SolveMetric) {
	s.metrics.Start(s.goroutines, s.splitPly)

	var table Table
	var vector game.Vector
	if s.goroutines == 1 {
		t := NewTable(s.tableSize, s.metrics)
		vector = NewPosition(board, t, s.metrics).Vector()
		table = t
	} else {
		t := NewSharedTable(s.shards, s.tableSize, s.metrics)
		vector = newParallelSearch(t, s.metrics, s.goroutines, s.splitPly).vector(board, 0)
		table = t
	}

	s.metrics.SetTableSize(table.Len())
	table.Clear()
	metric := s.metrics.Complete()

	log.Debug().
		Int("depth", board.Depth()).
		Int("goroutines", s.goroutines).
		Int("terminals", metric.Terminals).
		Int("stores", metric.Stores).
		Int("retrievals", metric.Retrievals).
		Int("table-size", metric.TableSize).
		Dur("elapsed", metric.Duration).
		Msg("solve-returning")

	return vector, metric
}
