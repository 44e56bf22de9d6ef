package game

import (
	"math"

	"splendor/meta"
)

// Evaluate scores a state from the perspective agent's point of view; higher is better.
// depth is the number of plies between the searched root and the state.
type Evaluate func(gs *GameState, perspective int, depth int) float64

const (
	winWeight   = 100
	scoreWeight = 1.5
	nobleWeight = 2.5
	cardWeight  = 1
	gemWeight   = 1
	depthDecay  = 0.9
)

// EvaluateStandard weighs win/loss, score, noble progress, cards and gems for every
// player, decays by depth so quicker wins rank higher, and returns the perspective
// player's total minus the best opponent's.
func EvaluateStandard(gs *GameState, perspective int, depth int) float64 {
	decay := math.Pow(depthDecay, float64(depth))
	self := playerValue(gs, perspective) * decay

	opponent := math.Inf(-1)
	for id := range gs.Agents {
		if id == perspective {
			continue
		}
		opponent = max(opponent, playerValue(gs, id)*decay)
	}
	if math.IsInf(opponent, -1) {
		return self
	}
	return self - opponent
}

// EvaluateScore only compares scores, normalized between -1 and 1 against the best opponent.
func EvaluateScore(gs *GameState, perspective int, depth int) float64 {
	best := 0.0
	for id := range gs.Agents {
		if id != perspective {
			best = max(best, gs.CalScore(id))
		}
	}
	return normalize(gs.CalScore(perspective), best)
}

func playerValue(gs *GameState, id int) float64 {
	agent := gs.Agents[id]
	return winWeight*winLoss(gs, id) +
		scoreWeight*gs.CalScore(id) +
		nobleWeight*NobleProgress(gs.Board, agent) +
		cardWeight*float64(agent.BoughtCards()) +
		gemWeight*float64(agent.Gems.Total())
}

// winLoss is 1 when id has won or reached the winning score, -1 when someone else has, 0 otherwise.
func winLoss(gs *GameState, id int) float64 {
	if gs.GameEnds() {
		for _, w := range gs.Winners() {
			if w == id {
				return 1
			}
		}
		return -1
	}
	if gs.Agents[id].Score >= meta.WIN_SCORE {
		return 1
	}
	for other, agent := range gs.Agents {
		if other != id && agent.Score >= meta.WIN_SCORE {
			return -1
		}
	}
	return 0
}

// NobleProgress sums, over the nobles still on the board, the mean fraction of each
// required colour the agent already owns.
func NobleProgress(board *Board, agent *AgentState) float64 {
	owned := agent.OwnedCounts()
	total := 0.0
	for _, noble := range board.Nobles {
		progress := 0.0
		required := 0
		for _, c := range CardColours {
			need := noble.Requirement[c]
			if need == 0 {
				continue
			}
			required++
			progress += min(1, float64(owned[c])/float64(need))
		}
		if required > 0 {
			total += progress / float64(required)
		}
	}
	return total
}

// normalize converts two values into a single score between -1 and 1
func normalize(value float64, otherValue float64) float64 {
	total := value + otherValue
	if total == 0 {
		return 0
	}
	return (value - otherValue) / total
}
