package metrics

import (
	"sync/atomic"
	"time"
)

type SolveMetric struct {
	Goroutines int
	SplitPly   int
	Duration   time.Duration
	Terminals  int // terminal boards evaluated
	Stores     int // memo entries written
	Retrievals int // memo hits
	TableSize  int // memo entries alive when the search completed
}

// Collector counts search events. Implementations must be safe for use by
// multiple goroutines.
type Collector interface {
	Start(goroutines, splitPly int)
	AddTerminal()
	AddStore()
	AddRetrieval()
	SetTableSize(size int)
	Complete() SolveMetric
}

type collector struct {
	goroutines int
	splitPly   int
	startTime  time.Time
	terminals  atomic.Int64
	stores     atomic.Int64
	retrievals atomic.Int64
	tableSize  atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines, splitPly int) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.splitPly = splitPly
	m.terminals.Store(0)
	m.stores.Store(0)
	m.retrievals.Store(0)
	m.tableSize.Store(0)
}

func (m *collector) AddTerminal() {
	m.terminals.Add(1)
}

func (m *collector) AddStore() {
	m.stores.Add(1)
}

func (m *collector) AddRetrieval() {
	m.retrievals.Add(1)
}

func (m *collector) SetTableSize(size int) {
	m.tableSize.Store(int64(size))
}

func (m *collector) Complete() SolveMetric {
	return SolveMetric{
		Goroutines: m.goroutines,
		SplitPly:   m.splitPly,
		Duration:   time.Since(m.startTime),
		Terminals:  int(m.terminals.Load()),
		Stores:     int(m.stores.Load()),
		Retrievals: int(m.retrievals.Load()),
		TableSize:  int(m.tableSize.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines, splitPly int) {}
func (m *dummyCollector) AddTerminal()                   {}
func (m *dummyCollector) AddStore()                      {}
func (m *dummyCollector) AddRetrieval()                  {}
func (m *dummyCollector) SetTableSize(size int)          {}
func (m *dummyCollector) Complete() SolveMetric         { return SolveMetric{} }
