package searcher

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"splendor/experiments/metrics"
	"splendor/game"
)

type Option func(m *Minimax)

// Minimax is an iterative deepening alpha-beta searcher with a wall-clock budget. The
// maximizing player is the agent the search runs for; every other agent minimizes.
type Minimax struct {
	duration time.Duration
	maxDepth int
	band     int
	width    int
	evaluate game.Evaluate
	metrics  metrics.Collector
	now      func() time.Time
	stopped  atomic.Bool
}

// WithDuration sets the per-move budget. A zero budget is allowed and makes the search
// return the fallback action.
func WithDuration(duration time.Duration) Option {
	return func(m *Minimax) {
		if duration >= 0 {
			m.duration = duration
		}
	}
}

func WithMaxDepth(depth int) Option {
	return func(m *Minimax) {
		if depth > 0 {
			m.maxDepth = depth
		}
	}
}

// WithBand sets how far above the best priority an action may be and still get searched.
func WithBand(band int) Option {
	return func(m *Minimax) {
		if band >= 0 {
			m.band = band
		}
	}
}

// WithWidth caps the number of actions expanded per node.
func WithWidth(width int) Option {
	return func(m *Minimax) {
		if width > 0 {
			m.width = width
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

// WithClock replaces time.Now, letting tests control when the budget runs out.
func WithClock(now func() time.Time) Option {
	return func(m *Minimax) {
		if now != nil {
			m.now = now
		}
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		duration: DefaultDuration,
		maxDepth: DefaultMaxDepth,
		band:     DefaultBand,
		width:    DefaultWidth,
		evaluate: game.EvaluateStandard,
		metrics:  metrics.NewDummyCollector(),
		now:      time.Now,
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// search holds the bookkeeping of one SelectAction call.
type search struct {
	*Minimax
	self     int
	start    time.Time
	deadline time.Time
	nodes    int
	aborted  bool
	limited  bool // some leaf was cut off by the depth limit rather than by the game ending
}

// SelectAction returns the best action found by the deepest search pass that completed
// within the budget. Passes interrupted by the deadline are discarded. When no pass
// completes, the first legal action is returned. The result is always a member of legal.
func (m *Minimax) SelectAction(state *game.GameState, agentID int, legal []game.Action) (game.Action, metrics.SearchMetric) {
	if len(legal) == 0 {
		panic("SelectAction called without legal actions")
	}
	m.stopped.Store(false)
	m.metrics.Start(m.duration, m.maxDepth)
	start := m.now()
	s := &search{Minimax: m, self: agentID, start: start, deadline: start.Add(m.duration)}

	best := legal[0]
	for depth := 1; depth <= m.maxDepth; depth++ {
		s.limited = false
		action, ok := s.root(state, legal, depth)
		if !ok {
			m.metrics.SetTimedOut()
			break
		}
		best = action
		m.metrics.CompleteDepth(depth)
		log.Debug().Int("agent", agentID).Int("depth", depth).Int("nodes", s.nodes).
			Dur("elapsed", m.now().Sub(s.start)).Str("best", best.String()).Msg("completed search pass")
		if !s.limited { // every line ends the game before the depth limit
			break
		}
	}

	if !game.ContainsAction(legal, best) {
		log.Warn().Msgf("search picked %v which is not legal, falling back to %v", best, legal[0])
		best = legal[0]
	}
	return best, m.metrics.Complete()
}

// Stop makes a running SelectAction give up as if its budget had run out. It is safe to
// call from another goroutine.
func (m *Minimax) Stop() {
	m.stopped.Store(true)
}

func (s *search) expired() bool {
	if !s.aborted && (s.stopped.Load() || !s.now().Before(s.deadline)) {
		s.aborted = true
	}
	return s.aborted
}

// root runs one full pass at the given depth. It reports false if the deadline hit first.
func (s *search) root(state *game.GameState, legal []game.Action, depth int) (game.Action, bool) {
	if s.expired() {
		return game.Action{}, false
	}
	actions := rankActions(state, s.self, legal, s.band, s.width)

	var best game.Action
	bestValue := math.Inf(-1)
	alpha := math.Inf(-1)
	for _, action := range actions {
		child := game.ApplyAction(state.Copy(), action, s.self)
		value, ok := s.value(child, depth-1, 1, alpha, math.Inf(1))
		if !ok {
			return game.Action{}, false
		}
		if value > bestValue {
			bestValue = value
			best = action
		}
		alpha = max(alpha, value)
	}
	return best, true
}

// value is the minimax value of state with remaining plies left, ply plies below the root.
func (s *search) value(state *game.GameState, remaining, ply int, alpha, beta float64) (float64, bool) {
	s.metrics.AddNode()
	s.nodes++
	if s.expired() {
		return 0, false
	}
	if state.GameEnds() {
		return s.evaluate(state, s.self, ply), true
	}
	if remaining == 0 {
		s.limited = true
		return s.evaluate(state, s.self, ply), true
	}

	mover := state.AgentToMove
	actions := rankActions(state, mover, game.LegalActions(state, mover), s.band, s.width)
	maximizing := mover == s.self

	best := math.Inf(1)
	if maximizing {
		best = math.Inf(-1)
	}
	for _, action := range actions {
		child := game.ApplyAction(state.Copy(), action, mover)
		v, ok := s.value(child, remaining-1, ply+1, alpha, beta)
		if !ok {
			return 0, false
		}
		if maximizing {
			best = max(best, v)
			alpha = max(alpha, v)
		} else {
			best = min(best, v)
			beta = min(beta, v)
		}
		if beta <= alpha {
			break
		}
	}
	return best, true
}
