package experiments

import (
	"cephalopod/game"
	"fmt"

	"golang.org/x/exp/rand"
)

const (
	NumBoards   = 16
	RandomDepth = 14
	RandomSeed  = 42
)

// RunThroughputExperiment solves the same seeded random boards with every
// solver config. All configs must agree on every hash.
func RunThroughputExperiment(root string) error {
	rng := rand.New(rand.NewSource(RandomSeed))
	boards := make([]namedBoard, 0, NumBoards)
	for i := 0; i < NumBoards; i++ {
		boards = append(boards, namedBoard{
			name:  fmt.Sprintf("random-%02d", i+1),
			board: game.RandomBoard(rng, RandomDepth),
		})
	}
	return runExperiment(root, "throughput", parallelConfigs, boards)
}
