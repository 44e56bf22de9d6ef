package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func totalGems(gs *GameState) int {
	total := gs.Board.Gems.Total()
	for _, agent := range gs.Agents {
		total += agent.Gems.Total()
	}
	return total
}

func cardLocations(gs *GameState) map[string]int {
	seen := map[string]int{}
	for tier := range gs.Board.Decks {
		for _, card := range gs.Board.Decks[tier] {
			seen[card.Code]++
		}
		for _, card := range gs.Board.Dealt[tier] {
			if card != nil {
				seen[card.Code]++
			}
		}
	}
	for _, agent := range gs.Agents {
		for _, bucket := range agent.Cards {
			for _, card := range bucket {
				seen[card.Code]++
			}
		}
	}
	return seen
}

// playout plays random legal actions until the game ends, calling check after each one.
func playout(t *testing.T, gs *GameState, seed uint64, check func(before, after *GameState, action Action)) *GameState {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	for turn := 0; turn < 400 && !gs.GameEnds(); turn++ {
		actions := LegalActions(gs, gs.AgentToMove)
		require.NotEmpty(t, actions)

		keys := map[ActionKey]bool{}
		for _, a := range actions {
			require.False(t, keys[a.Key()], "Should not repeat action %v", a)
			keys[a.Key()] = true
		}

		action := actions[rng.Intn(len(actions))]
		next := gs.Play(action)
		check(gs, next, action)
		gs = next
	}
	return gs
}

func TestInitialState(t *testing.T) {
	t.Run("supply by player count", func(t *testing.T) {
		for players, supply := range map[int]int{2: 4, 3: 5, 4: 7} {
			gs := InitialState(players, 7)
			for _, c := range CardColours {
				require.Equal(t, supply, gs.Board.Gems[c], "players=%d colour=%s", players, c)
			}
			require.Equal(t, 5, gs.Board.Gems[Yellow])
			require.Len(t, gs.Board.Nobles, players+1)
			require.Len(t, gs.Agents, players)
			require.Len(t, gs.Board.DealtList(), 12)
		}
	})

	t.Run("deterministic under a fixed seed", func(t *testing.T) {
		a := InitialState(2, 42)
		b := InitialState(2, 42)
		for tier := range a.Board.Dealt {
			for slot := range a.Board.Dealt[tier] {
				require.Equal(t, a.Board.Dealt[tier][slot].Code, b.Board.Dealt[tier][slot].Code)
			}
		}
		require.Equal(t, a.Board.Nobles, b.Board.Nobles)
		require.Equal(t, a.Hash(), b.Hash())
	})

	t.Run("unsupported player count", func(t *testing.T) {
		require.Panics(t, func() { InitialState(5, 1) })
	})
}

func TestPlayoutInvariants(t *testing.T) {
	for _, players := range []int{2, 3, 4} {
		for seed := uint64(1); seed <= 3; seed++ {
			gs := InitialState(players, int64(seed))
			initial := totalGems(gs)

			final := playout(t, gs, seed, func(before, after *GameState, action Action) {
				require.Equal(t, initial, totalGems(after), "Should conserve gems after %v", action)

				locations := cardLocations(after)
				require.Len(t, locations, 90, "Should keep every card after %v", action)
				for code, n := range locations {
					require.Equal(t, 1, n, "Card %s should be in exactly one place", code)
				}

				for _, agent := range after.Agents {
					require.LessOrEqual(t, agent.Gems.Total(), 10)
					require.LessOrEqual(t, len(agent.Reserved()), 3)
				}
				require.Equal(t, after.NextAgent(before.AgentToMove), after.AgentToMove)
			})
			require.Equal(t, initial, totalGems(final))
		}
	}
}

func TestCopyIsolation(t *testing.T) {
	gs := InitialState(2, 9)
	rng := rand.New(rand.NewSource(9))
	for i := 0; i < 20; i++ {
		actions := LegalActions(gs, gs.AgentToMove)
		hash := gs.Hash()
		next := gs.Play(actions[rng.Intn(len(actions))])
		require.Equal(t, hash, gs.Hash(), "Play should not mutate the receiver")
		gs = next
	}
}

func TestApplyActionPanics(t *testing.T) {
	t.Run("card not on the board", func(t *testing.T) {
		gs := emptyState()
		card := mustCard(t, "3g")
		require.Panics(t, func() {
			ApplyAction(gs, Action{Type: BuyFromBoard, Card: card}, 0)
		})
	})

	t.Run("gems the bank does not have", func(t *testing.T) {
		gs := emptyState()
		require.Panics(t, func() {
			ApplyAction(gs, Action{Type: CollectSame, Collected: gems(map[Colour]int{Red: 2})}, 0)
		})
	})

	t.Run("over the cap", func(t *testing.T) {
		gs := emptyState()
		gs.Board.Gems = gems(map[Colour]int{Red: 4})
		gs.Agents[0].Gems = gems(map[Colour]int{Blue: 9})
		require.Panics(t, func() {
			ApplyAction(gs, Action{Type: CollectSame, Collected: gems(map[Colour]int{Red: 2})}, 0)
		})
	})

	t.Run("buy without paying", func(t *testing.T) {
		gs := emptyState()
		card := mustCard(t, "7r3B")
		gs.Board.Dealt[2][0] = card
		require.Panics(t, func() {
			ApplyAction(gs, Action{Type: BuyFromBoard, Card: card}, 0)
		})
		require.Zero(t, gs.Agents[0].Score, "Rejected purchase should not score")
	})

	t.Run("buy with a short payment", func(t *testing.T) {
		gs := emptyState()
		card := mustCard(t, "3g")
		gs.Board.Dealt[0][0] = card
		gs.Agents[0].Gems = gems(map[Colour]int{Green: 3})
		require.Panics(t, func() {
			ApplyAction(gs, Action{Type: BuyFromBoard, Card: card, Returned: gems(map[Colour]int{Green: 2})}, 0)
		})
	})

	t.Run("buy with the exact payment", func(t *testing.T) {
		gs := emptyState()
		card := mustCard(t, "3g")
		gs.Board.Dealt[0][0] = card
		gs.Agents[0].Gems = gems(map[Colour]int{Green: 2, Yellow: 1})
		payment, ok := ResourcesSufficient(gs.Agents[0], card.Cost)
		require.True(t, ok)
		require.NotPanics(t, func() {
			ApplyAction(gs, Action{Type: BuyFromBoard, Card: card, Returned: payment}, 0)
		})
		require.Len(t, gs.Agents[0].Cards[Black], 1)
	})

	t.Run("unearned noble", func(t *testing.T) {
		gs := emptyState()
		noble := mustNoble(t, "4g4r")
		gs.Board.Gems = gems(map[Colour]int{Red: 4})
		gs.Board.Nobles = []*Noble{noble}
		require.Panics(t, func() {
			ApplyAction(gs, Action{Type: CollectSame, Collected: gems(map[Colour]int{Red: 2}), Noble: noble}, 0)
		})
		require.Zero(t, gs.Agents[0].Score, "Rejected noble should not score")
	})

	t.Run("collection shapes", func(t *testing.T) {
		for name, action := range map[string]Action{
			"distinct with a repeat":  {Type: CollectDiff, Collected: gems(map[Colour]int{Red: 2, Blue: 1})},
			"distinct with wildcards": {Type: CollectDiff, Collected: gems(map[Colour]int{Yellow: 1, Blue: 1})},
			"four distinct":           {Type: CollectDiff, Collected: gems(map[Colour]int{Red: 1, Blue: 1, Green: 1, White: 1})},
			"same with two colours":   {Type: CollectSame, Collected: gems(map[Colour]int{Red: 2, Blue: 2})},
			"reserve two wildcards":   {Type: Reserve, Collected: gems(map[Colour]int{Yellow: 2})},
			"return what was taken":   {Type: CollectDiff, Collected: gems(map[Colour]int{Red: 1}), Returned: gems(map[Colour]int{Red: 1})},
			"pass that moves gems":    {Type: Pass, Collected: gems(map[Colour]int{Red: 1})},
		} {
			gs := emptyState()
			gs.Board.Gems = gems(map[Colour]int{Black: 7, Red: 7, Yellow: 5, Green: 7, Blue: 7, White: 7})
			gs.Board.Dealt[0][0] = mustCard(t, "3g")
			action := action
			if action.Type == Reserve {
				action.Card = gs.Board.Dealt[0][0]
			}
			require.Panics(t, func() { ApplyAction(gs, action, 0) }, name)
		}
	})
}

func TestGameEnds(t *testing.T) {
	t.Run("waits for the round to finish", func(t *testing.T) {
		gs := emptyState()
		gs.Agents[0].Score = 15
		gs.AgentToMove = 1
		require.False(t, gs.GameEnds())
		gs.AgentToMove = 0
		require.True(t, gs.GameEnds())
	})

	t.Run("everyone passed", func(t *testing.T) {
		gs := emptyState()
		gs.Agents[0].Passed = true
		require.False(t, gs.GameEnds())
		gs.Agents[1].Passed = true
		require.True(t, gs.GameEnds())
	})
}

func TestCalScore(t *testing.T) {
	gs := emptyState()
	gs.Agents[0].Score = 15
	gs.Agents[1].Score = 15
	gs.Agents[0].Cards[Red] = make([]*Card, 5)
	gs.Agents[1].Cards[Red] = make([]*Card, 6)

	require.Equal(t, 15.5, gs.CalScore(0), "Tied leader with fewer cards gets the half point")
	require.Equal(t, 15.0, gs.CalScore(1))
	require.Equal(t, []int{0}, gs.Winners())

	gs.Agents[1].Score = 16
	require.Equal(t, 15.0, gs.CalScore(0), "No bonus without a tie")
	require.Equal(t, []int{1}, gs.Winners())

	t.Run("fewest cards among the tied leaders only", func(t *testing.T) {
		gs := NewGameState(&Board{}, 3)
		gs.Agents[0].Score = 15
		gs.Agents[1].Score = 15
		gs.Agents[0].Cards[Red] = make([]*Card, 5)
		gs.Agents[1].Cards[Red] = make([]*Card, 6)
		gs.Agents[2].Cards[Red] = make([]*Card, 1) // trailing agent with fewer cards
		require.Equal(t, 15.5, gs.CalScore(0), "Trailing agents should not take the tie-break away")
		require.Equal(t, 15.0, gs.CalScore(1))
	})
}
