package searcher

import (
	"splendor/game"
	"splendor/meta"
)

// ranker scores candidate actions for one agent in one state. Lower priority is better.
type ranker struct {
	state    *game.GameState
	agentID  int
	opponent int
	wealth   []game.Gems // gems plus bought cards per agent
	prefer   game.Gems   // summed noble requirements per colour
}

func newRanker(state *game.GameState, agentID int) *ranker {
	r := &ranker{
		state:    state,
		agentID:  agentID,
		opponent: state.NextAgent(agentID),
		wealth:   make([]game.Gems, state.NumAgents()),
	}
	for i, agent := range state.Agents {
		r.wealth[i] = agent.Gems.Add(agent.OwnedCounts())
	}
	for _, noble := range state.Board.Nobles {
		r.prefer = r.prefer.Add(noble.Requirement)
	}
	return r
}

// rankActions keeps the best band of actions by heuristic priority.
func rankActions(state *game.GameState, agentID int, actions []game.Action, band, width int) []game.Action {
	r := newRanker(state, agentID)
	items := make([]rankedAction, len(actions))
	for i, action := range actions {
		items[i] = rankedAction{action: action, priority: r.priority(action), seq: i}
	}
	return lowestBand(items, band, width)
}

func (r *ranker) priority(action game.Action) int {
	return MaxActionScore - r.score(action)
}

func (r *ranker) score(action game.Action) int {
	points := 0
	score := 0
	if action.Noble != nil {
		score += 100
		points += meta.NOBLE_BONUS
	}

	var net game.Gems
	if action.Type.IsBuy() {
		points += action.Card.Points
		net = net.Sub(action.Returned)
		score += r.cardScore(action)
	} else {
		net = net.Add(action.Collected).Sub(action.Returned)
	}
	score += points * 20
	score += 2 * net.Total()

	switch {
	case action.Type == game.Reserve:
		score += r.reserveScore(action.Card)
	case action.Type.IsCollect():
		score += r.progressScore(action)
	}
	return score
}

func (r *ranker) cardScore(action game.Action) int {
	score := 20 + r.prefer[action.Card.Colour]*2
	if action.Type == game.BuyFromReserve {
		score += 2
	}
	return score
}

// reserveScore values taking a card away from the opponent when they could already afford it.
func (r *ranker) reserveScore(card *game.Card) int {
	if r.opponent == r.agentID || !r.wealth[r.opponent].Covers(card.Cost) {
		return 0
	}
	owned := r.state.Agents[r.opponent].OwnedCounts()
	owned[card.Colour]++
	denied := 0
	for _, noble := range r.state.Board.Nobles {
		if owned.Covers(noble.Requirement) {
			denied = 60
			break
		}
	}
	return 7 + card.Points*10 + r.prefer[card.Colour] + denied
}

// progressScore rewards collections that bring a face-up or reserved card within reach.
func (r *ranker) progressScore(action game.Action) int {
	wealth := r.wealth[r.agentID].Add(action.Collected).Sub(action.Returned)
	best := 0
	consider := func(card *game.Card) {
		value := 3 + r.prefer[card.Colour]
		if wealth.Covers(card.Cost) {
			best = max(best, value)
			return
		}
		gap := 0
		for _, c := range game.CardColours {
			gap += max(0, card.Cost[c]-wealth[c])
		}
		if gap < 3 {
			best = max(best, value/2)
		}
	}
	for _, card := range r.state.Board.DealtList() {
		consider(card)
	}
	for _, card := range r.state.Agents[r.agentID].Reserved() {
		consider(card)
	}
	return best
}
