package game

import (
	"fmt"

	"splendor/meta"
)

// ApplyAction applies action for agentID to gs in place and hands the turn to the next
// agent. Callers that need to keep gs must Copy it first. Actions that do not fit the
// state (missing cards, negative gem counts, broken cap) panic: they can only come from
// a caller that skipped LegalActions.
func ApplyAction(gs *GameState, action Action, agentID int) *GameState {
	agent := gs.Agents[agentID]
	board := gs.Board
	mustFit(gs, action, agentID)

	switch action.Type {
	case CollectDiff, CollectSame, Reserve:
		board.Gems = board.Gems.Sub(action.Collected)
		agent.Gems = agent.Gems.Add(action.Collected)
		agent.Gems = agent.Gems.Sub(action.Returned)
		board.Gems = board.Gems.Add(action.Returned)

		if action.Type == Reserve {
			mustHaveCard(action)
			if len(agent.Reserved()) >= meta.MAX_RESERVED {
				panic(fmt.Sprintf("agent %d cannot reserve more than %d cards", agentID, meta.MAX_RESERVED))
			}
			board.replaceDealt(action.Card)
			agent.appendCard(Yellow, action.Card)
		}
	case BuyFromBoard, BuyFromReserve:
		mustHaveCard(action)
		agent.Gems = agent.Gems.Sub(action.Returned)
		board.Gems = board.Gems.Add(action.Returned)

		if action.Type == BuyFromBoard {
			board.replaceDealt(action.Card)
		} else {
			agent.removeReserved(action.Card)
		}
		agent.appendCard(action.Card.Colour, action.Card)
		agent.Score += action.Card.Points
	case Pass:
	default:
		panic(fmt.Sprintf("Invalid action type %v", action.Type))
	}

	if action.Noble != nil {
		if !canVisitWith(agent.OwnedCounts(), action.Noble) {
			panic(fmt.Sprintf("agent %d does not own the cards for %v", agentID, action.Noble))
		}
		board.removeNoble(action.Noble)
		agent.addNoble(action.Noble)
	}

	board.Gems.mustBeNonNegative("board")
	agent.Gems.mustBeNonNegative(fmt.Sprintf("agent %d", agentID))
	if total := agent.Gems.Total(); total > meta.MAX_GEMS {
		panic(fmt.Sprintf("agent %d holds %d gems after %v", agentID, total, action))
	}

	last := action
	agent.LastAction = &last
	agent.Passed = action.Type == Pass
	gs.AgentToMove = gs.NextAgent(agentID)
	return gs
}

func mustHaveCard(action Action) {
	if action.Card == nil {
		panic(fmt.Sprintf("Invalid action for %v: missing card", action.Type))
	}
}

// mustFit panics when the gem legs of action cannot come from LegalActions for agentID:
// wrong collection shapes, returning a gem taken this turn, or a payment other than the
// one ResourcesSufficient prescribes.
func mustFit(gs *GameState, action Action, agentID int) {
	agent := gs.Agents[agentID]
	fail := func(reason string) {
		panic(fmt.Sprintf("Invalid action for agent %d: %v: %s", agentID, action, reason))
	}

	switch action.Type {
	case CollectDiff:
		n := action.Collected.Total()
		if n == 0 || n > collectLimit(agent.Gems.Total()) || action.Collected[Yellow] != 0 {
			fail("bad number of distinct gems")
		}
		for _, c := range CardColours {
			if action.Collected[c] > 1 {
				fail("repeated colour")
			}
		}
	case CollectSame:
		colours := 0
		for _, c := range CardColours {
			if action.Collected[c] != 0 {
				colours++
				if action.Collected[c] != 2 || gs.Board.Gems[c] < 4 {
					fail("two of a colour need a supply of four")
				}
			}
		}
		if colours != 1 || action.Collected[Yellow] != 0 {
			fail("exactly one colour must be taken")
		}
	case Reserve:
		var wildcard Gems
		wildcard[Yellow] = 1
		if !action.Collected.IsEmpty() && action.Collected != wildcard {
			fail("a reserve only takes one wildcard")
		}
	case BuyFromBoard, BuyFromReserve:
		mustHaveCard(action)
		if !action.Collected.IsEmpty() {
			fail("a purchase collects nothing")
		}
		if len(agent.Cards[action.Card.Colour]) >= meta.MAX_OWNED_PER_COLOUR {
			fail("colour already owned the maximum number of times")
		}
		payment, ok := ResourcesSufficient(agent, action.Card.Cost)
		if !ok || payment != action.Returned {
			fail(fmt.Sprintf("payment must be %v", payment))
		}
	case Pass:
		if !action.Collected.IsEmpty() || !action.Returned.IsEmpty() {
			fail("a pass moves no gems")
		}
	}

	if action.Type.IsCollect() || action.Type == Reserve {
		for c := range action.Collected {
			if action.Collected[c] > 0 && action.Returned[c] > 0 {
				fail(fmt.Sprintf("returns %s taken this turn", Colour(c)))
			}
		}
	}
}
