package game

import (
	"fmt"
	"strings"
)

const (
	Side  = 3
	Cells = Side * Side

	// MaxValue is the largest value a cell can hold, either placed or captured.
	MaxValue = 6
)

const (
	cellBits   = 5 // 3 bits of value plus room for a 4-term sum without carry
	valueMask  = 1<<3 - 1
	slotMask   = 1<<cellBits - 1
	depthShift = cellBits * Cells
	depthMask  = 0xFF

	gridMask  Board = 1<<depthShift - 1
	depthUnit Board = 1 << depthShift
)

// Board packs the 9 cells (row-major, 5 bits each) in the low 45 bits and the
// number of remaining moves in the 8 bits above them. No method modifies the
// Board, they return an updated Board.
type Board uint64

// NewBoard packs depth and cell values into a board key.
func NewBoard(depth int, cells [Cells]uint8) Board {
	var b Board
	for i, v := range cells {
		b = b.SetCell(i, v)
	}
	return b.WithDepth(depth)
}

func (b Board) Cell(i int) uint8 {
	return uint8(b>>(i*cellBits)) & valueMask
}

// SetCell clears slot i then writes v into it. Other slots and the depth are
// left untouched. Values above MaxValue are a caller bug.
func (b Board) SetCell(i int, v uint8) Board {
	shift := i * cellBits
	b &^= slotMask << shift
	return b | (Board(v)&slotMask)<<shift
}

func (b Board) Depth() int {
	return int(b>>depthShift) & depthMask
}

func (b Board) WithDepth(depth int) Board {
	return b&gridMask | Board(depth&depthMask)<<depthShift
}

// Grid returns the cell bits only.
func (b Board) Grid() Board {
	return b & gridMask
}

func (b Board) Cells() [Cells]uint8 {
	var cells [Cells]uint8
	for i := range cells {
		cells[i] = b.Cell(i)
	}
	return cells
}

func (b Board) Empty() bool {
	return b.Grid() == 0
}

// Full reports whether no cell is empty. A full board has no successors.
func (b Board) Full() bool {
	return occupied(b.Grid())&presenceBits == presenceBits
}

// Vector returns the result vector of a terminal board: its own cell values.
func (b Board) Vector() Vector {
	var v Vector
	for i := range v {
		v[i] = uint32(b.Cell(i))
	}
	return v
}

func (b Board) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Depth: %d\n", b.Depth())
	for r := 0; r < Side; r++ {
		for c := 0; c < Side; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%d", b.Cell(r*Side+c))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// occupied sets the lowest bit of every non-empty slot.
func occupied(grid Board) Board {
	return (grid | grid>>1 | grid>>2) & presenceBits
}
