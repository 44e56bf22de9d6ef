package agent

import (
	"golang.org/x/exp/rand"

	"splendor/experiments/metrics"
	"splendor/game"
	"splendor/searcher"
)

type Agent interface {
	// SelectAction picks one of legal for agentID and reports search metrics, if any were collected
	SelectAction(state *game.GameState, agentID int, legal []game.Action) (game.Action, metrics.SearchMetric)
}

// Stopper is implemented by agents that can abandon a SelectAction still in progress.
type Stopper interface {
	Stop()
}

// First always plays the first legal action.
type First struct{}

func (First) SelectAction(state *game.GameState, agentID int, legal []game.Action) (game.Action, metrics.SearchMetric) {
	return legal[0], metrics.SearchMetric{}
}

// Random plays a uniformly random legal action.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (a *Random) SelectAction(state *game.GameState, agentID int, legal []game.Action) (game.Action, metrics.SearchMetric) {
	return legal[a.rng.Intn(len(legal))], metrics.SearchMetric{}
}

type minimaxAgent struct {
	minimax *searcher.Minimax
}

// NewMinimaxAgent returns an agent that searches with m on every turn.
func NewMinimaxAgent(m *searcher.Minimax) Agent {
	return minimaxAgent{minimax: m}
}

func (a minimaxAgent) SelectAction(state *game.GameState, agentID int, legal []game.Action) (game.Action, metrics.SearchMetric) {
	return a.minimax.SelectAction(state, agentID, legal)
}

func (a minimaxAgent) Stop() {
	a.minimax.Stop()
}
