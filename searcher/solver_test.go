package searcher

import (
	"cephalopod/game"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestSolverDefaults(t *testing.T) {
	solver := NewSolver(WithGoroutines(0), WithSplitPly(-1), WithTableSize(-5), WithShards(0))

	require.Equal(t, 1, solver.Goroutines())
	require.Equal(t, 2, solver.splitPly)
	require.Equal(t, 1<<16, solver.tableSize)
	require.Equal(t, 64, solver.shards)
}

func TestSolverScenarios(t *testing.T) {
	solvers := map[string]func() *Solver{
		"sequential": func() *Solver { return NewSolver() },
		"parallel":   func() *Solver { return NewSolver(WithGoroutines(4), WithSplitPly(2)) },
	}

	for name, newSolver := range solvers {
		for _, s := range game.Scenarios {
			t.Run(name+"/"+s.Name, func(t *testing.T) {
				if s.Long && testing.Short() {
					t.Skip("long scenario")
				}

				hash, _ := newSolver().Solve(s.Board())

				require.Equal(t, s.Expected, hash)
			})
		}
	}
}

func TestSolverParallelMatchesSequential(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	boards := make([]game.Board, 0, 30)
	for n := 0; n < 30; n++ {
		boards = append(boards, game.RandomBoard(rng, 4+rng.Intn(10)))
	}
	for _, s := range game.Scenarios {
		if !s.Long {
			boards = append(boards, s.Board())
		}
	}
	sequential := NewSolver(WithMetrics())

	for _, splitPly := range []int{0, 1, 2, 3} {
		t.Run(fmt.Sprintf("split-ply-%d", splitPly), func(t *testing.T) {
			parallel := NewSolver(WithGoroutines(4), WithSplitPly(splitPly), WithShards(8), WithMetrics())

			for _, board := range boards {
				want, wantMetric := sequential.SolveVector(board)
				got, gotMetric := parallel.SolveVector(board)

				require.Equal(t, want, got, "board:\n%s", board)
				require.Equal(t, wantMetric.Terminals, gotMetric.Terminals, "board:\n%s", board)
				require.Equal(t, wantMetric.Stores, gotMetric.Stores, "board:\n%s", board)
				require.Equal(t, wantMetric.Stores, wantMetric.TableSize)
				require.Equal(t, gotMetric.Stores, gotMetric.TableSize)
				require.Equal(t, 4, gotMetric.Goroutines)
				require.Equal(t, splitPly, gotMetric.SplitPly)
			}
		})
	}
}

func TestSolverRepeatedSolves(t *testing.T) {
	board := game.NewBoard(20, [game.Cells]uint8{0, 6, 0, 2, 2, 2, 1, 6, 1})

	for _, solver := range []*Solver{
		NewSolver(WithMetrics()),
		NewSolver(WithGoroutines(8), WithSplitPly(3), WithMetrics()),
	} {
		first, firstMetric := solver.Solve(board)
		second, secondMetric := solver.Solve(board)

		require.Equal(t, first, second)
		require.Equal(t, firstMetric.Stores, secondMetric.Stores, "each solve starts from an empty table")
		require.Equal(t, firstMetric.Terminals, secondMetric.Terminals)
	}
}

func TestSolverTerminalRoot(t *testing.T) {
	board := game.NewBoard(0, [game.Cells]uint8{1, 2, 3, 4, 5, 6, 0, 0, 1})

	for _, solver := range []*Solver{NewSolver(), NewSolver(WithGoroutines(4))} {
		vector, _ := solver.SolveVector(board)
		require.Equal(t, board.Vector(), vector)
	}
}
