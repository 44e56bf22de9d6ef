package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"splendor/agent"
	"splendor/experiments/metrics"
	"splendor/game"
	"splendor/gamemaster"
)

const (
	warningTimeout = "timeout"
	warningIllegal = "illegal"
)

// Local runs a game between in-process agents. Each agent gets a copy of the state and
// of the legal actions, and must answer within its time limit. A late or illegal answer
// earns a warning and is replaced by a random legal action; an agent reaching the
// warning limit is disqualified.
type Local struct {
	referee *gamemaster.Referee
	agents  []agent.Agent
	rng     *rand.Rand
	seed    int64
	matchID string

	timeLimit    time.Duration
	warmUp       time.Duration
	warningLimit int
	maxTurns     int

	warnings []int
	pending  []chan selection // searches that overran, per agent
}

type selection struct {
	action game.Action
	metric metrics.SearchMetric
}

func LocalEngine(agents []agent.Agent, seed int64, options ...Option) *Local {
	if len(agents) < 2 || len(agents) > 4 {
		panic(fmt.Sprintf("need two to four agents, got %d", len(agents)))
	}
	e := &Local{
		referee:  gamemaster.NewReferee(game.InitialState(len(agents), seed)),
		agents:   agents,
		rng:      rand.New(rand.NewSource(uint64(seed))),
		seed:     seed,
		matchID:  uuid.NewString(),
		warnings: make([]int, len(agents)),
		pending:  make([]chan selection, len(agents)),
	}
	defaults(e)
	for _, option := range options {
		option(e)
	}
	return e
}

// State returns a copy of the current game state.
func (e *Local) State() *game.GameState {
	return e.referee.State()
}

func (e *Local) Warnings() []int {
	return append([]int(nil), e.warnings...)
}

// Run executes the entire game loop until the game ends.
func (e *Local) Run() (metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		MatchID:      e.matchID,
		NumPlayers:   len(e.agents),
		Seed:         e.seed,
		Disqualified: -1,
		StartTime:    time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Str("match", e.matchID).Int("players", len(e.agents)).Int64("seed", e.seed).Msg("game started")

	for turn := 0; !e.referee.GameOver() && turn < e.maxTurns; turn++ {
		id := e.referee.ToMove()
		legal := e.referee.LegalActions()

		limit := e.timeLimit
		if turn < len(e.agents) {
			limit = e.warmUp
		}
		action, metric, warning := e.ask(id, legal, limit)
		if warning != "" {
			e.warnings[id]++
			log.Warn().Str("match", e.matchID).Int("agent", id).Int("turn", turn).Int("warnings", e.warnings[id]).Msgf("%s action, playing a random one", warning)
			action = legal[e.rng.Intn(len(legal))]
		}

		if err := e.referee.Play(id, action); err != nil {
			panic(fmt.Sprintf("referee rejected a vetted action: %v", err))
		}
		log.Debug().Int("agent", id).Int("turn", turn).Uint64("state", uint64(e.referee.Hash())).Msg(action.String())
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn + 1,
			Player:       id,
			Action:       action.String(),
			Warning:      warning,
			SearchMetric: metric,
		})

		if e.warnings[id] >= e.warningLimit {
			log.Warn().Str("match", e.matchID).Int("agent", id).Msg("agent disqualified")
			gameMetric.Disqualified = id
			break
		}
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = e.referee.Moves()
	if gameMetric.Disqualified >= 0 {
		gameMetric.Scores = make([]float64, len(e.agents))
		gameMetric.Scores[gameMetric.Disqualified] = -1
		for i := range e.agents {
			if i != gameMetric.Disqualified {
				gameMetric.Winners = append(gameMetric.Winners, i)
			}
		}
	} else {
		gameMetric.Scores = e.referee.Scores()
		gameMetric.Winners = e.referee.Winners()
		if !e.referee.GameOver() {
			log.Warn().Str("match", e.matchID).Msgf("stopped after %d turns without an end condition", e.maxTurns)
		}
	}

	log.Info().Str("match", e.matchID).Ints("winners", gameMetric.Winners).Floats64("scores", gameMetric.Scores).
		Int("moves", gameMetric.TotalMoves).Msg("game over")
	return gameMetric, moveMetrics
}

// ask runs the agent on copies of the state and legal actions, waiting at most limit.
// An agent that overruns is told to stop if it is an agent.Stopper. An agent is never
// asked again while its previous call is still running: waiting for that call counts
// against the new limit.
func (e *Local) ask(id int, legal []game.Action, limit time.Duration) (game.Action, metrics.SearchMetric, string) {
	timer := time.NewTimer(limit)
	defer timer.Stop()

	if previous := e.pending[id]; previous != nil {
		select {
		case <-previous:
			e.pending[id] = nil
		case <-timer.C:
			return game.Action{}, metrics.SearchMetric{}, warningTimeout
		}
	}

	state := e.referee.State()
	offered := append([]game.Action(nil), legal...)
	done := make(chan selection, 1)
	go func() {
		action, metric := e.agents[id].SelectAction(state, id, offered)
		done <- selection{action: action, metric: metric}
	}()

	select {
	case s := <-done:
		if !game.ContainsAction(legal, s.action) {
			return game.Action{}, s.metric, warningIllegal
		}
		return s.action, s.metric, ""
	case <-timer.C:
		e.pending[id] = done
		if stopper, ok := e.agents[id].(agent.Stopper); ok {
			stopper.Stop()
		}
		return game.Action{}, metrics.SearchMetric{}, warningTimeout
	}
}
