package game

import (
	"fmt"

	"splendor/meta"
)

// LegalActions enumerates every legal action for agentID: distinct-colour collections,
// same-colour collections, reservations, purchases, and a pass only when nothing else is
// possible. Actions that make the agent eligible for nobles are split into one variant
// per noble.
func LegalActions(gs *GameState, agentID int) []Action {
	agent := gs.Agents[agentID]
	board := gs.Board
	owned := agent.OwnedCounts()

	potentialNobles := VisitableNobles(board, owned)
	if len(potentialNobles) == 0 {
		potentialNobles = []*Noble{nil}
	}

	var actions []Action
	emit := func(t ActionType, collected Gems, card *Card, nobles []*Noble) {
		for _, returned := range ReturnCombinations(agent.Gems, collected) {
			for _, noble := range nobles {
				actions = append(actions, Action{Type: t, Collected: collected, Returned: returned, Card: card, Noble: noble})
			}
		}
	}

	// Distinct colours, one gem each
	var available []Colour
	for _, c := range CardColours {
		if board.Gems[c] > 0 {
			available = append(available, c)
		}
	}
	m := min(collectLimit(agent.Gems.Total()), len(available))
	if m > 0 {
		forEachCombination(len(available), m, func(idx []int) {
			var collected Gems
			for _, i := range idx {
				collected[available[i]] = 1
			}
			emit(CollectDiff, collected, nil, potentialNobles)
		})
	}

	// Two of the same colour
	for _, c := range CardColours {
		if board.Gems[c] >= 4 {
			var collected Gems
			collected[c] = 2
			emit(CollectSame, collected, nil, potentialNobles)
		}
	}

	// Reserve, taking a wildcard if the bank has one
	if len(agent.Reserved()) < meta.MAX_RESERVED {
		var collected Gems
		if board.Gems[Yellow] > 0 {
			collected[Yellow] = 1
		}
		for _, card := range board.DealtList() {
			emit(Reserve, collected, card, potentialNobles)
		}
	}

	// Buy from the board, then from the reserve
	buy := func(t ActionType, card *Card) {
		if len(agent.Cards[card.Colour]) >= meta.MAX_OWNED_PER_COLOUR {
			return
		}
		payment, ok := ResourcesSufficient(agent, card.Cost)
		if !ok {
			return
		}
		after := owned
		after[card.Colour]++
		nobles := VisitableNobles(board, after)
		if len(nobles) == 0 {
			nobles = []*Noble{nil}
		}
		for _, noble := range nobles {
			actions = append(actions, Action{Type: t, Returned: payment, Card: card, Noble: noble})
		}
	}
	for _, card := range board.DealtList() {
		buy(BuyFromBoard, card)
	}
	for _, card := range agent.Reserved() {
		buy(BuyFromReserve, card)
	}

	if len(actions) == 0 {
		for _, noble := range potentialNobles {
			actions = append(actions, Action{Type: Pass, Noble: noble})
		}
	}
	if len(actions) == 0 {
		panic(fmt.Sprintf("no legal actions for agent %d", agentID))
	}
	return actions
}

// collectLimit is how many distinct colours a player holding held gems may take.
func collectLimit(held int) int {
	switch {
	case held <= 7:
		return 3
	case held == 8:
		return 2
	default:
		return 1
	}
}

// forEachCombination calls fn with every k-subset of [0, n) in lexicographic order.
// The slice passed to fn is reused between calls.
func forEachCombination(n, k int, fn func([]int)) {
	idx := make([]int, k)
	var rec func(start, depth int)
	rec = func(start, depth int) {
		if depth == k {
			fn(idx)
			return
		}
		for i := start; i <= n-(k-depth); i++ {
			idx[depth] = i
			rec(i+1, depth+1)
		}
	}
	rec(0, 0)
}
