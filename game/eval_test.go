package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNobleProgress(t *testing.T) {
	gs := emptyState()
	gs.Board.Nobles = []*Noble{mustNoble(t, "4g4r"), mustNoble(t, "3w3b3g")}
	agent := gs.Agents[0]
	agent.Cards[Green] = make([]*Card, 4)
	agent.Cards[Red] = make([]*Card, 2)

	// 4g4r: (1 + 0.5) / 2, 3w3b3g: (0 + 0 + 1) / 3
	require.InDelta(t, 0.75+1.0/3, NobleProgress(gs.Board, agent), 1e-9)
	require.Zero(t, NobleProgress(gs.Board, gs.Agents[1]))
}

func TestEvaluateStandard(t *testing.T) {
	t.Run("symmetric position", func(t *testing.T) {
		gs := InitialState(2, 3)
		require.Zero(t, EvaluateStandard(gs, 0, 0))
	})

	t.Run("better position scores higher", func(t *testing.T) {
		gs := emptyState()
		gs.Agents[0].Score = 4
		gs.Agents[0].Gems = gems(map[Colour]int{Red: 2})
		require.InDelta(t, 1.5*4+2, EvaluateStandard(gs, 0, 0), 1e-9)
		require.InDelta(t, -(1.5*4 + 2), EvaluateStandard(gs, 1, 0), 1e-9)
	})

	t.Run("depth decay", func(t *testing.T) {
		gs := emptyState()
		gs.Agents[0].Score = 15
		gs.AgentToMove = 0
		shallow := EvaluateStandard(gs, 0, 1)
		deep := EvaluateStandard(gs, 0, 3)
		require.Greater(t, shallow, deep, "A win found sooner should be worth more")
		require.Greater(t, deep, 0.0)
	})

	t.Run("best opponent", func(t *testing.T) {
		gs := NewGameState(&Board{}, 3)
		gs.Agents[1].Score = 2
		gs.Agents[2].Score = 5
		require.InDelta(t, -1.5*5, EvaluateStandard(gs, 0, 0), 1e-9)
	})
}

func TestEvaluateScore(t *testing.T) {
	gs := emptyState()
	gs.Agents[0].Score = 3
	gs.Agents[1].Score = 1
	require.InDelta(t, 0.5, EvaluateScore(gs, 0, 0), 1e-9)
	require.InDelta(t, -0.5, EvaluateScore(gs, 1, 0), 1e-9)
}
