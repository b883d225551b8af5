package searcher

import (
	"cephalopod/experiments/metrics"
	"cephalopod/game"
	"strconv"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// parallelSearch fans the first splitPly plies out to goroutines and searches
// deeper plies depth first inside each of them. At most `goroutines` subtrees
// rooted at splitPly are searched at once.
//
// A canonical board is expanded at most once: concurrent visitors wait on the
// same flight, and a flight re-checks the table before expanding. Flights only
// wait on flights for boards of smaller depth, so they cannot wait on each
// other in a cycle.
type parallelSearch struct {
	table    *SharedTable
	metrics  metrics.Collector
	flight   singleflight.Group
	slots    chan struct{}
	splitPly int
}

func newParallelSearch(table *SharedTable, collector metrics.Collector, goroutines, splitPly int) *parallelSearch {
	return &parallelSearch{
		table:    table,
		metrics:  collector,
		slots:    make(chan struct{}, goroutines),
		splitPly: splitPly,
	}
}

func (s *parallelSearch) vector(board game.Board, ply int) game.Vector {
	if vector, ok := s.table.Retrieve(board); ok {
		return vector
	}

	key, transformation := board.Canonical()
	result, _, _ := s.flight.Do(strconv.FormatUint(uint64(key), 16), func() (any, error) {
		if vector, ok := s.table.Retrieve(key); ok {
			return vector, nil
		}
		vector := s.expand(key, ply)
		s.table.Store(key, vector)
		return vector, nil
	})
	return result.(game.Vector).ReverseTransform(transformation)
}

func (s *parallelSearch) expand(board game.Board, ply int) game.Vector {
	next := board.Successors()
	if next.Len() == 0 { // Terminal board
		s.metrics.AddTerminal()
		return board.Vector()
	}

	var vector game.Vector
	if ply >= s.splitPly {
		for _, child := range next.Boards() {
			vector = vector.Add(s.vector(child, ply+1))
		}
		return vector
	}

	vectors := make([]game.Vector, next.Len())
	var g errgroup.Group
	for i, child := range next.Boards() {
		i, child := i, child
		g.Go(func() error {
			if ply+1 == s.splitPly {
				s.slots <- struct{}{}
				defer func() { <-s.slots }()
			}
			vectors[i] = s.vector(child, ply+1)
			return nil
		})
	}
	_ = g.Wait()

	for _, v := range vectors {
		vector = vector.Add(v)
	}
	return vector
}
