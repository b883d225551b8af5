package searcher

import (
	"cephalopod/experiments/metrics"
	"cephalopod/game"
	"sync"
)

// Table memoizes result vectors by canonical board. Vectors are stored in the
// canonical board's orientation and turned back to the caller's orientation on
// retrieval, so every symmetric variant of a board shares one entry.
type Table interface {
	Retrieve(board game.Board) (game.Vector, bool)
	Store(board game.Board, vector game.Vector)
	Clear()
	Len() int
}

// MemoTable is a Table for use by a single goroutine.
type MemoTable struct {
	entries map[game.Board]game.Vector
	metrics metrics.Collector
}

func NewTable(sizeHint int, collector metrics.Collector) *MemoTable {
	return &MemoTable{
		entries: make(map[game.Board]game.Vector, sizeHint),
		metrics: collector,
	}
}

func (t *MemoTable) Retrieve(board game.Board) (game.Vector, bool) {
	key, transformation := board.Canonical()
	vector, ok := t.entries[key]
	if !ok {
		return game.Vector{}, false
	}
	t.metrics.AddRetrieval()
	return vector.ReverseTransform(transformation), true
}

func (t *MemoTable) Store(board game.Board, vector game.Vector) {
	key, transformation := board.Canonical()
	t.entries[key] = vector.Transform(transformation)
	t.metrics.AddStore()
}

func (t *MemoTable) Clear() {
	clear(t.entries)
}

func (t *MemoTable) Len() int {
	return len(t.entries)
}

type shard struct {
	sync.RWMutex
	entries map[game.Board]game.Vector
}

// SharedTable is a Table safe for concurrent use. Entries are spread over
// independently locked shards by canonical key.
type SharedTable struct {
	shards  []shard
	metrics metrics.Collector
}

func NewSharedTable(shards, sizeHint int, collector metrics.Collector) *SharedTable {
	if shards <= 0 {
		panic("shared table needs at least one shard")
	}
	t := &SharedTable{
		shards:  make([]shard, shards),
		metrics: collector,
	}
	for i := range t.shards {
		t.shards[i].entries = make(map[game.Board]game.Vector, sizeHint/shards)
	}
	return t
}

func (t *SharedTable) shardFor(key game.Board) *shard {
	mixed := uint64(key) * 0x9E3779B97F4A7C15
	return &t.shards[(mixed>>32)%uint64(len(t.shards))]
}

func (t *SharedTable) Retrieve(board game.Board) (game.Vector, bool) {
	key, transformation := board.Canonical()
	s := t.shardFor(key)
	s.RLock()
	vector, ok := s.entries[key]
	s.RUnlock()
	if !ok {
		return game.Vector{}, false
	}
	t.metrics.AddRetrieval()
	return vector.ReverseTransform(transformation), true
}

func (t *SharedTable) Store(board game.Board, vector game.Vector) {
	key, transformation := board.Canonical()
	s := t.shardFor(key)
	s.Lock()
	s.entries[key] = vector.Transform(transformation)
	s.Unlock()
	t.metrics.AddStore()
}

func (t *SharedTable) Clear() {
	for i := range t.shards {
		s := &t.shards[i]
		s.Lock()
		clear(s.entries)
		s.Unlock()
	}
}

func (t *SharedTable) Len() int {
	n := 0
	for i := range t.shards {
		s := &t.shards[i]
		s.RLock()
		n += len(s.entries)
		s.RUnlock()
	}
	return n
}
