package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"splendor/game"
)

func passWith(code string) game.Action {
	return game.Action{Type: game.Pass, Noble: &game.Noble{Code: code}}
}

func TestLowestBand(t *testing.T) {
	items := func() []rankedAction {
		return []rankedAction{
			{action: passWith("a"), priority: 10, seq: 0},
			{action: passWith("b"), priority: 3, seq: 1},
			{action: passWith("c"), priority: 7, seq: 2},
			{action: passWith("d"), priority: 3, seq: 3},
			{action: passWith("e"), priority: 5, seq: 4},
		}
	}
	codes := func(actions []game.Action) []string {
		var out []string
		for _, a := range actions {
			out = append(out, a.Noble.Code)
		}
		return out
	}

	t.Run("keeps the band in priority order", func(t *testing.T) {
		require.Equal(t, []string{"b", "d", "e", "c"}, codes(lowestBand(items(), 4, 5)))
	})

	t.Run("caps the width", func(t *testing.T) {
		require.Equal(t, []string{"b", "d"}, codes(lowestBand(items(), 4, 2)))
	})

	t.Run("empty input", func(t *testing.T) {
		require.Empty(t, lowestBand(nil, 4, 5))
	})
}

func TestRankActions(t *testing.T) {
	t.Run("subset of the legal actions", func(t *testing.T) {
		state := game.InitialState(2, 11)
		legal := game.LegalActions(state, 0)
		ranked := rankActions(state, 0, legal, DefaultBand, DefaultWidth)

		require.NotEmpty(t, ranked)
		require.LessOrEqual(t, len(ranked), DefaultWidth)
		r := newRanker(state, 0)
		lowest := r.priority(ranked[0])
		for _, a := range legal {
			require.GreaterOrEqual(t, r.priority(a), lowest, "First ranked action should have the lowest priority")
		}
		for i, a := range ranked {
			require.True(t, game.ContainsAction(legal, a))
			require.LessOrEqual(t, r.priority(a), lowest+DefaultBand)
			if i > 0 {
				require.GreaterOrEqual(t, r.priority(a), r.priority(ranked[i-1]))
			}
		}
	})

	t.Run("points and nobles first", func(t *testing.T) {
		board := &game.Board{}
		expensive, _ := game.CardByCode("7r") // 4 points, costs 7 red
		cheap, _ := game.CardByCode("3g")     // 0 points, costs 3 green
		board.Dealt[2][0] = expensive
		board.Dealt[0][0] = cheap
		state := game.NewGameState(board, 2)
		state.Agents[0].Gems[game.Red] = 7
		state.Agents[0].Gems[game.Green] = 3

		ranked := rankActions(state, 0, game.LegalActions(state, 0), DefaultBand, DefaultWidth)
		require.Len(t, ranked, 1)
		require.Equal(t, "7r", ranked[0].Card.Code)
	})
}

func TestActionScore(t *testing.T) {
	t.Run("buy", func(t *testing.T) {
		state := game.NewGameState(&game.Board{}, 2)
		card, _ := game.CardByCode("4b") // black, 1 point
		r := newRanker(state, 0)
		action := game.Action{Type: game.BuyFromReserve, Card: card, Returned: game.Gems{game.Blue: 4}}
		// 1 point * 20 + card 20 + reserve bonus 2 - 4 gems * 2
		require.Equal(t, 34, r.score(action))
	})

	t.Run("reserve denies an affordable card", func(t *testing.T) {
		board := &game.Board{Nobles: []*game.Noble{{Code: "4g4r", Requirement: game.Gems{game.Green: 4, game.Red: 4}}}}
		card, _ := game.CardByCode("3w") // red, costs 3 white
		board.Dealt[0][0] = card
		state := game.NewGameState(board, 2)
		opponent := state.Agents[1]
		opponent.Gems[game.White] = 3
		for i := 0; i < 4; i++ {
			opponent.Cards[game.Green] = append(opponent.Cards[game.Green], &game.Card{Colour: game.Green})
		}
		for i := 0; i < 3; i++ {
			opponent.Cards[game.Red] = append(opponent.Cards[game.Red], &game.Card{Colour: game.Red})
		}

		r := newRanker(state, 0)
		action := game.Action{Type: game.Reserve, Card: card, Collected: game.Gems{game.Yellow: 1}}
		// 1 gem * 2 + 7 + 0 points + red preference 4 + noble denial 60
		require.Equal(t, 73, r.score(action))
	})

	t.Run("collect that makes a card affordable", func(t *testing.T) {
		board := &game.Board{}
		card, _ := game.CardByCode("2g1r") // black, costs 2 green 1 red
		board.Dealt[0][0] = card
		state := game.NewGameState(board, 2)
		state.Agents[0].Gems[game.Green] = 2

		r := newRanker(state, 0)
		action := game.Action{Type: game.CollectDiff, Collected: game.Gems{game.Red: 1, game.Blue: 1, game.White: 1}}
		// 3 gems * 2 + progress 3
		require.Equal(t, 9, r.score(action))
	})
}
