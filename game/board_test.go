package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestBoardCodec(t *testing.T) {
	t.Run("packing cells and depth", func(t *testing.T) {
		cells := [Cells]uint8{1, 2, 3, 4, 5, 6, 0, 0, 1}
		b := NewBoard(17, cells)

		require.Equal(t, 17, b.Depth())
		require.Equal(t, cells, b.Cells())
		for i, v := range cells {
			require.Equal(t, v, b.Cell(i), "cell %d", i)
		}
	})

	t.Run("setting a cell leaves other cells and depth untouched", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))
		for n := 0; n < 500; n++ {
			b := RandomBoard(rng, rng.Intn(256))
			for i := 0; i < Cells; i++ {
				for v := uint8(0); v <= MaxValue; v++ {
					got := b.SetCell(i, v)

					require.Equal(t, v, got.Cell(i))
					require.Equal(t, b.Depth(), got.Depth())
					for j := 0; j < Cells; j++ {
						if j != i {
							require.Equal(t, b.Cell(j), got.Cell(j), "cell %d changed by setting cell %d", j, i)
						}
					}
				}
			}
		}
	})

	t.Run("depth uses its own bits", func(t *testing.T) {
		b := NewBoard(0, [Cells]uint8{6, 6, 6, 6, 6, 6, 6, 6, 6})

		got := b.WithDepth(255)

		require.Equal(t, 255, got.Depth())
		require.Equal(t, b.Grid(), got.Grid())
		require.Equal(t, 0, got.WithDepth(0).Depth())
	})

	t.Run("empty and full boards", func(t *testing.T) {
		require.True(t, NewBoard(3, [Cells]uint8{}).Empty())
		require.False(t, NewBoard(3, [Cells]uint8{}).Full())
		require.True(t, NewBoard(3, [Cells]uint8{1, 1, 1, 1, 1, 1, 1, 1, 1}).Full())
		require.False(t, NewBoard(3, [Cells]uint8{1, 1, 1, 1, 0, 1, 1, 1, 1}).Full())
	})

	t.Run("terminal vector is the board's own cells", func(t *testing.T) {
		b := NewBoard(0, [Cells]uint8{1, 2, 3, 4, 5, 6, 0, 0, 1})

		require.Equal(t, Vector{1, 2, 3, 4, 5, 6, 0, 0, 1}, b.Vector())
	})

	t.Run("printing", func(t *testing.T) {
		b := NewBoard(4, [Cells]uint8{0, 6, 0, 2, 2, 2, 1, 6, 1})

		require.Equal(t, "Depth: 4\n0 6 0\n2 2 2\n1 6 1\n", b.String())
	})
}
