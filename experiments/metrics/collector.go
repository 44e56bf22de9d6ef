package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Budget       time.Duration
	MaxDepth     int
	Elapsed      time.Duration
	DepthReached int // deepest completed pass, 0 when the fallback action was used
	Nodes        int
	TimedOut     bool
}

type MoveMetric struct {
	Step    int
	Player  int    // Agent ID
	Action  string
	Warning string // "timeout", "illegal" or ""
	SearchMetric
}

type GameMetric struct {
	MatchID      string
	NumPlayers   int
	Seed         int64
	Winners      []int
	Scores       []float64
	Disqualified int // Agent ID, -1 if none
	StartTime    time.Time
	EndTime      time.Time
	Duration     time.Duration
	TotalMoves   int
}

type Collector interface {
	Start(budget time.Duration, maxDepth int)
	AddNode()
	CompleteDepth(depth int)
	SetTimedOut()
	Complete() SearchMetric
}

type collector struct {
	budget       time.Duration
	maxDepth     int
	startTime    time.Time
	nodes        atomic.Int32
	depthReached atomic.Int32
	timedOut     atomic.Bool
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(budget time.Duration, maxDepth int) {
	m.startTime = time.Now()
	m.budget = budget
	m.maxDepth = maxDepth
	m.nodes.Store(0)
	m.depthReached.Store(0)
	m.timedOut.Store(false)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) CompleteDepth(depth int) {
	m.depthReached.Store(int32(depth))
}

func (m *collector) SetTimedOut() {
	m.timedOut.Store(true)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Budget:       m.budget,
		MaxDepth:     m.maxDepth,
		Elapsed:      time.Since(m.startTime),
		DepthReached: int(m.depthReached.Load()),
		Nodes:        int(m.nodes.Load()),
		TimedOut:     m.timedOut.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(budget time.Duration, maxDepth int) {}
func (m *dummyCollector) AddNode()                                 {}
func (m *dummyCollector) CompleteDepth(depth int)                  {}
func (m *dummyCollector) SetTimedOut()                             {}
func (m *dummyCollector) Complete() SearchMetric                   { return SearchMetric{} }
