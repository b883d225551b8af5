package searcher

import (
	"cephalopod/experiments/metrics"
	"cephalopod/game"
)

// Position is a node of the search: a board and the table its results are
// memoized in.
type Position struct {
	board   game.Board
	table   Table
	metrics metrics.Collector
}

func NewPosition(board game.Board, table Table, collector metrics.Collector) Position {
	return Position{board: board, table: table, metrics: collector}
}

func (p Position) Board() game.Board {
	return p.board
}

func (p Position) child(board game.Board) Position {
	return Position{board: board, table: p.table, metrics: p.metrics}
}

// Vector returns the sum of the cell values of every terminal board reachable
// from p, per cell position.
func (p Position) Vector() game.Vector {
	if vector, ok := p.table.Retrieve(p.board); ok {
		return vector
	}

	var next game.Successors
	p.board.SuccessorsInto(&next)
	if next.Len() == 0 { // Terminal board
		vector := p.board.Vector()
		p.metrics.AddTerminal()
		p.table.Store(p.board, vector)
		return vector
	}

	var vector game.Vector
	for _, board := range next.Boards() {
		vector = vector.Add(p.child(board).Vector())
	}
	p.table.Store(p.board, vector)
	return vector
}

func (p Position) Hash() uint32 {
	return p.Vector().Hash()
}
