package game

import "splendor/meta"

// ReturnCombinations lists every distinct set of gems the player could hand back so that
// current+incoming fits the carrying cap. Colours present in incoming cannot be returned.
// A result of [{}] means nothing needs returning; an empty result means no legal return
// exists and the triggering action is illegal.
func ReturnCombinations(current, incoming Gems) []Gems {
	total := current.Total() + incoming.Total()
	if total <= meta.MAX_GEMS {
		return []Gems{{}}
	}
	k := total - meta.MAX_GEMS

	var pool Gems
	for c := range pool {
		if incoming[c] > 0 {
			continue
		}
		pool[c] = current[c] + incoming[c]
	}
	if pool.Total() < k {
		return nil
	}

	var combos []Gems
	var combo Gems
	var walk func(colour Colour, remaining int)
	walk = func(colour Colour, remaining int) {
		if remaining == 0 {
			combos = append(combos, combo)
			return
		}
		if colour == NumColours {
			return
		}
		for n := min(pool[colour], remaining); n >= 0; n-- {
			combo[colour] = n
			walk(colour+1, remaining-n)
		}
		combo[colour] = 0
	}
	walk(0, k)
	return combos
}

// ResourcesSufficient works out how agent would pay cost. Owned cards discount the price,
// coloured gems pay what is left, and wildcards cover only the remaining shortfall. The
// second result is false when the wildcards cannot cover it. A zero payment with true
// means the cards alone cover the price.
func ResourcesSufficient(agent *AgentState, cost Gems) (Gems, bool) {
	var payment Gems
	wild := agent.Gems[Yellow]
	for _, c := range CardColours {
		if cost[c] == 0 {
			continue
		}
		owned := len(agent.Cards[c])
		shortfall := max(cost[c]-agent.Gems[c]-owned, 0)
		wild -= shortfall
		if wild < 0 {
			return Gems{}, false
		}
		gemCost := max(cost[c]-owned, 0)
		gemShortfall := max(gemCost-agent.Gems[c], 0)
		payment[c] = gemCost - gemShortfall
		payment[Yellow] += gemShortfall
	}
	return payment, true
}

// canVisitWith reports whether owned card counts meet the noble's requirement.
func canVisitWith(owned Gems, noble *Noble) bool {
	return owned.Covers(noble.Requirement)
}

// VisitableNobles returns the board nobles the agent qualifies for given owned card counts.
func VisitableNobles(board *Board, owned Gems) []*Noble {
	var nobles []*Noble
	for _, noble := range board.Nobles {
		if canVisitWith(owned, noble) {
			nobles = append(nobles, noble)
		}
	}
	return nobles
}
