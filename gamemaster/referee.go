package gamemaster

import (
	"github.com/pkg/errors"

	"splendor/game"
)

var (
	ErrGameOver      = errors.New("game is over - no actions allowed")
	ErrWrongTurn     = errors.New("not this agent's turn")
	ErrIllegalAction = errors.New("illegal action")
)

// Referee owns the authoritative game state. Agents only ever see copies of it.
type Referee struct {
	state *game.GameState
	moves int
}

func NewReferee(state *game.GameState) *Referee {
	return &Referee{state: state}
}

// State returns a copy of the current state.
func (r *Referee) State() *game.GameState {
	return r.state.Copy()
}

func (r *Referee) ToMove() int {
	return r.state.AgentToMove
}

// Hash identifies the current state, e.g. to line up logs of replayed games.
func (r *Referee) Hash() game.StateHash {
	return r.state.Hash()
}

func (r *Referee) Moves() int {
	return r.moves
}

func (r *Referee) GameOver() bool {
	return r.state.GameEnds()
}

// LegalActions lists the actions of the agent to move.
func (r *Referee) LegalActions() []game.Action {
	return game.LegalActions(r.state, r.state.AgentToMove)
}

// Play validates and applies an action for agentID.
func (r *Referee) Play(agentID int, action game.Action) error {
	if r.GameOver() {
		return ErrGameOver
	}
	if agentID != r.state.AgentToMove {
		return errors.Wrapf(ErrWrongTurn, "agent %d tried to move, agent %d is to move", agentID, r.state.AgentToMove)
	}
	if !game.ContainsAction(r.LegalActions(), action) {
		return errors.Wrapf(ErrIllegalAction, "agent %d played %v", agentID, action)
	}

	game.ApplyAction(r.state, action, agentID)
	r.moves++
	return nil
}

// Scores returns every agent's final score.
func (r *Referee) Scores() []float64 {
	scores := make([]float64, r.state.NumAgents())
	for i := range scores {
		scores[i] = r.state.CalScore(i)
	}
	return scores
}

func (r *Referee) Winners() []int {
	return r.state.Winners()
}
