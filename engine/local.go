package engine

import (
	"cephalopod/experiments/metrics"
	"cephalopod/searcher"
	"io"

	"github.com/rs/zerolog/log"
)

var _ Engine = (*Local)(nil)

type Local struct {
	in     io.Reader
	out    io.Writer
	solver *searcher.Solver
}

// LocalEngine solves the board read from in and writes its hash to out.
func LocalEngine(in io.Reader, out io.Writer, solver *searcher.Solver) *Local {
	if solver == nil {
		panic("engine needs a solver")
	}
	return &Local{
		in:     in,
		out:    out,
		solver: solver,
	}
}

// Run executes a single solve.
func (e *Local) Run() (uint32, metrics.SolveMetric, error) {
	board, err := ReadBoard(e.in)
	if err != nil {
		return 0, metrics.SolveMetric{}, err
	}

	log.Info().Msgf("solving board at depth %d with %d goroutine(s)", board.Depth(), e.solver.Goroutines())
	hash, metric := e.solver.Solve(board)

	if err := WriteHash(e.out, hash); err != nil {
		return 0, metric, err
	}
	return hash, metric, nil
}
