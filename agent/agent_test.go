package agent

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"splendor/game"
)

func TestNew(t *testing.T) {
	t.Run("first", func(t *testing.T) {
		a, err := New("first")
		require.NoError(t, err)
		require.IsType(t, First{}, a)
	})

	t.Run("random with seed", func(t *testing.T) {
		a, err := New("random:seed=3")
		require.NoError(t, err)
		require.IsType(t, &Random{}, a)
	})

	t.Run("minimax parameters", func(t *testing.T) {
		a, err := New("minimax:duration=0s,max_depth=2,eval=score,metrics")
		require.NoError(t, err)

		state := game.InitialState(2, 1)
		legal := game.LegalActions(state, 0)
		action, metric := a.SelectAction(state, 0, legal)
		require.True(t, game.ContainsAction(legal, action))
		require.Equal(t, 2, metric.MaxDepth, "Should collect metrics with the configured depth")
		require.True(t, metric.TimedOut, "Should time out with a zero budget")
	})

	t.Run("default config", func(t *testing.T) {
		a, err := New("")
		require.NoError(t, err)
		require.IsType(t, minimaxAgent{}, a)
		require.Implements(t, (*Stopper)(nil), a, "Runner should be able to stop a minimax search")
	})

	t.Run("errors", func(t *testing.T) {
		for _, config := range []string{
			"alphazero",
			"first:seed=1",
			"random:seed=abc",
			"minimax:depth=3",
			"minimax:duration=soon",
			"minimax:duration=-1s",
			"minimax:eval=magic",
		} {
			_, err := New(config)
			require.Error(t, err, "config %q", config)
		}
	})
}

func TestMinimaxConfig(t *testing.T) {
	var cfg MinimaxConfig
	err := decode(splitParams("duration=250ms, max_depth=4,band=2,width=3"), &cfg)
	require.NoError(t, err)
	require.Equal(t, MinimaxConfig{Duration: 250 * time.Millisecond, MaxDepth: 4, Band: 2, Width: 3}, cfg)
}

func TestSimpleAgents(t *testing.T) {
	state := game.InitialState(3, 8)
	legal := game.LegalActions(state, 0)

	action, _ := First{}.SelectAction(state, 0, legal)
	require.True(t, action.Equal(legal[0]))

	a, b := NewRandom(5), NewRandom(5)
	for i := 0; i < 10; i++ {
		x, _ := a.SelectAction(state, 0, legal)
		y, _ := b.SelectAction(state, 0, legal)
		require.True(t, x.Equal(y), "Same seed should pick the same actions")
		require.True(t, game.ContainsAction(legal, x))
	}
}
