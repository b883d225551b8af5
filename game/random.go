package game

import "golang.org/x/exp/rand"

// RandomBoard returns a board at the given depth with about half of its cells
// empty and the others holding values in [1, MaxValue].
func RandomBoard(rng *rand.Rand, depth int) Board {
	var cells [Cells]uint8
	for i := range cells {
		if rng.Intn(2) == 1 {
			cells[i] = uint8(1 + rng.Intn(MaxValue))
		}
	}
	return NewBoard(depth, cells)
}
