package experiments

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"splendor/agent"
	"splendor/engine"
	"splendor/experiments/metrics"
)

// Tournament plays every matchup of Players agents drawn from Agents, NumGames times each.
type Tournament struct {
	Name      string
	Players   int
	NumGames  int // Per matchup
	Seed      int64
	TimeLimit time.Duration
	OutDir    string // No files are written when empty
	Agents    []metrics.AgentConfig
}

// Result holds the records of a finished tournament and the wins per AgentConfig.ID.
// A game won by k agents credits each of them 1/k.
type Result struct {
	Games []metrics.GameRecord
	Moves []metrics.MoveRecord
	Wins  map[int]float64
}

// MatchUps lists every combination of Players distinct configs in order. With fewer configs
// than players, the single matchup repeats them round-robin.
func (t Tournament) MatchUps() [][]metrics.AgentConfig {
	if len(t.Agents) <= t.Players {
		matchup := make([]metrics.AgentConfig, t.Players)
		for i := range matchup {
			matchup[i] = t.Agents[i%len(t.Agents)]
		}
		return [][]metrics.AgentConfig{matchup}
	}

	var matchUps [][]metrics.AgentConfig
	var pick func(start int, chosen []metrics.AgentConfig)
	pick = func(start int, chosen []metrics.AgentConfig) {
		if len(chosen) == t.Players {
			matchUps = append(matchUps, append([]metrics.AgentConfig(nil), chosen...))
			return
		}
		for i := start; i < len(t.Agents); i++ {
			pick(i+1, append(chosen, t.Agents[i]))
		}
	}
	pick(0, nil)
	return matchUps
}

// Run plays the tournament and, with an OutDir, stores the records as CSV.
func Run(t Tournament) (Result, error) {
	if t.Players < 2 || t.Players > 4 {
		return Result{}, fmt.Errorf("tournament needs two to four players, got %d", t.Players)
	}
	if len(t.Agents) == 0 {
		return Result{}, fmt.Errorf("tournament needs at least one agent config")
	}
	// Fail on a bad config before playing anything
	for _, config := range t.Agents {
		if _, err := agent.New(config.Spec); err != nil {
			return Result{}, fmt.Errorf("agent %d: %w", config.ID, err)
		}
	}

	result := Result{Wins: make(map[int]float64)}
	matchUps := t.MatchUps()
	count := 0

	log.Info().Msgf("starting %s experiment...", t.Name)

	for mi, matchup := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between %v...", mi+1, len(matchUps), matchup)

		for i := 0; i < t.NumGames; i++ {
			// Rotate seats so every config gets to move first
			seats := rotate(matchup, i%t.Players)
			seed := t.Seed + int64(count)
			gameMetric, moveMetrics, err := runGame(seats, seed, t.TimeLimit)
			if err != nil {
				return result, err
			}
			count++

			ids := make([]int, len(seats))
			for s, config := range seats {
				ids[s] = config.ID
			}
			result.Games = append(result.Games, metrics.GameRecord{
				ID:         count,
				Agents:     ids,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				result.Moves = append(result.Moves, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}
			for _, w := range gameMetric.Winners {
				result.Wins[ids[w]] += 1 / float64(len(gameMetric.Winners))
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winners: %v", mi+1, len(matchUps), i+1, gameMetric.Winners)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}

	log.Info().Msgf("completed %s experiment", t.Name)

	if t.OutDir != "" {
		if err := store(t, result); err != nil {
			return result, err
		}
	}
	return result, nil
}

func store(t Tournament, result Result) error {
	writer, err := metrics.NewWriter(t.OutDir, t.Name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(t.Agents); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(result.Games); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(result.Moves); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored move records")
	return nil
}

// runGame executes a single game between freshly built agents
func runGame(seats []metrics.AgentConfig, seed int64, timeLimit time.Duration) (metrics.GameMetric, []metrics.MoveMetric, error) {
	agents := make([]agent.Agent, len(seats))
	for i, config := range seats {
		a, err := agent.New(config.Spec)
		if err != nil {
			return metrics.GameMetric{}, nil, fmt.Errorf("agent %d: %w", config.ID, err)
		}
		agents[i] = a
	}

	e := engine.LocalEngine(agents, seed, engine.WithTimeLimit(timeLimit))

	gameMetric, moveMetrics := e.Run()
	return gameMetric, moveMetrics, nil
}

func rotate(configs []metrics.AgentConfig, by int) []metrics.AgentConfig {
	out := make([]metrics.AgentConfig, 0, len(configs))
	out = append(out, configs[by:]...)
	return append(out, configs[:by]...)
}
