package game

// MaxSuccessors bounds the number of successors of a board. The worst case is
// exactly 16: the four edge cells empty, the corners and the centre occupied,
// each edge cell with four capture subsets of its three neighbours. Pushing
// past the bound drops the board silently.
const MaxSuccessors = 16

// presenceBits has the lowest bit of every cell slot set.
const presenceBits Board = gridMask / slotMask

// registers names the four shifted copies of the grid that capture sums are
// computed from: A, B, C and D are the grid shifted right by 0, 2, 4 and 6
// slots. Adding registers sums up to four cells in one machine addition for
// every slot at once.
type registers uint8

const (
	regA registers = 1 << iota
	regB
	regC
	regD
)

const numRegisters = 4

// capture is one subset of registers taking part in a capture, with the
// slots it reads relative to the target cell's shift.
type capture struct {
	registers registers
	mask      Board
}

func newCapture(r registers) capture {
	var mask Board
	for k := 0; k < numRegisters; k++ {
		if r&(1<<k) != 0 {
			mask |= slotMask << (2 * k * cellBits)
		}
	}
	return capture{registers: r, mask: mask}
}

var captures = [...]capture{
	newCapture(regA | regB),
	newCapture(regA | regC),
	newCapture(regA | regD),
	newCapture(regB | regC),
	newCapture(regB | regD),
	newCapture(regC | regD),
	newCapture(regA | regB | regC),
	newCapture(regA | regB | regD),
	newCapture(regA | regC | regD),
	newCapture(regB | regC | regD),
	newCapture(regA | regB | regC | regD),
}

// neighbourhood locates the orthogonal neighbours of a cell: at slot shift,
// each register in the set holds one neighbour.
type neighbourhood struct {
	registers registers
	shift     int
}

var captureTable = [Cells]neighbourhood{
	{regA | regB, 1},               // 0: cells 1, 3
	{regA | regB | regC, 0},        // 1: cells 0, 2, 4
	{regA | regC, 1},               // 2: cells 1, 5
	{regA | regC | regD, 0},        // 3: cells 0, 4, 6
	{regA | regB | regC | regD, 1}, // 4: cells 1, 3, 5, 7
	{regA | regB | regD, 2},        // 5: cells 2, 4, 8
	{regA | regC, 3},               // 6: cells 3, 7
	{regA | regB | regC, 4},        // 7: cells 4, 6, 8
	{regA | regB, 5},               // 8: cells 5, 7
}

// Successors is a fixed-capacity list of successor boards.
type Successors struct {
	boards [MaxSuccessors]Board
	n      int
}

func (s *Successors) push(b Board) {
	if s.n < MaxSuccessors {
		s.boards[s.n] = b
		s.n++
	}
}

func (s *Successors) Len() int {
	return s.n
}

func (s *Successors) At(i int) Board {
	return s.boards[i]
}

func (s *Successors) Boards() []Board {
	return s.boards[:s.n]
}

func (b Board) Successors() Successors {
	var s Successors
	b.SuccessorsInto(&s)
	return s
}

// SuccessorsInto overwrites s with the boards reachable in one move. A board
// with no remaining depth, or without an empty cell, has none.
//
// For every empty cell, each capture subset compatible with the cell's
// neighbourhood is legal when all of its cells are occupied and their sum is
// at most MaxValue. The captured cells are emptied and the cell takes the sum.
// A cell without a legal capture gets a 1.
func (b Board) SuccessorsInto(s *Successors) {
	s.n = 0
	if b.Depth() == 0 {
		return
	}
	grid := b.Grid()
	present := occupied(grid)
	if present == presenceBits {
		return
	}

	regs := [numRegisters]Board{
		grid,
		grid >> (2 * cellBits),
		grid >> (4 * cellBits),
		grid >> (6 * cellBits),
	}
	var sums [len(captures)]Board
	for k, c := range captures {
		for r := 0; r < numRegisters; r++ {
			if c.registers&(1<<r) != 0 {
				sums[k] += regs[r]
			}
		}
	}

	next := b - depthUnit
	for i := 0; i < Cells; i++ {
		if present&(1<<(i*cellBits)) != 0 {
			continue
		}
		n := captureTable[i]
		shift := n.shift * cellBits
		captured := false
		for k, c := range captures {
			if c.registers&n.registers != c.registers {
				continue
			}
			target := c.mask << shift
			need := target & presenceBits
			if present&need != need {
				continue
			}
			sum := uint8(sums[k]>>shift) & slotMask
			if sum > MaxValue {
				continue
			}
			s.push((next &^ target).SetCell(i, sum))
			captured = true
		}
		if !captured {
			s.push(next.SetCell(i, 1))
		}
	}
}
