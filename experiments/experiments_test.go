package experiments

import (
	"cephalopod/experiments/metrics"
	"cephalopod/game"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunUnknownExperiment(t *testing.T) {
	err := Run("nope", t.TempDir())

	require.ErrorContains(t, err, "unknown experiment")
}

func TestRunExperiment(t *testing.T) {
	root := t.TempDir()
	boards := []namedBoard{
		{name: "empty", board: game.NewBoard(1, [game.Cells]uint8{}), expected: 111111111},
		{name: "unknown", board: game.NewBoard(6, [game.Cells]uint8{1, 0, 1, 0, 1, 0, 1, 0, 1})},
	}

	require.NoError(t, runExperiment(root, "test", parallelConfigs, boards))

	dirs, err := os.ReadDir(filepath.Join(root, "test"))
	require.NoError(t, err)
	require.Len(t, dirs, 1)

	f, err := os.Open(filepath.Join(root, "test", dirs[0].Name(), "run_records.csv"))
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1+len(parallelConfigs)*len(boards))
}

func TestRunExperimentWrongHash(t *testing.T) {
	root := t.TempDir()
	boards := []namedBoard{
		{name: "empty", board: game.NewBoard(1, [game.Cells]uint8{}), expected: 1},
	}

	err := runExperiment(root, "test", parallelConfigs[:1], boards)

	require.ErrorContains(t, err, "hashed to 111111111, want 1")
	_, statErr := os.Stat(filepath.Join(root, "test"))
	require.True(t, os.IsNotExist(statErr), "nothing is written for a failed experiment")
}

func TestCreateSolver(t *testing.T) {
	solver := createSolver(metrics.SolverConfig{ID: 3, Goroutines: 4, SplitPly: 2})

	require.Equal(t, 4, solver.Goroutines())
}
