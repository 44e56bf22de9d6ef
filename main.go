package main

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"splendor/experiments"
	"splendor/experiments/metrics"
	"splendor/meta"
)

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).With().Timestamp().Logger()

	// A missing .env file is fine, flags fall back to the built-in defaults
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("failed to load .env")
	}

	var (
		players  int
		agents   string
		numGames int
		seed     int64
		budget   time.Duration
		out      string
		name     string
		logLevel string
	)

	flag.IntVar(&players, "players", envInt("SPLENDOR_PLAYERS", 2), "Number of players per game (2-4)")
	flag.StringVar(&agents, "agents", envString("SPLENDOR_AGENTS", "minimax;random"), "Semicolon-separated agent configs (e.g. minimax:duration=500ms,max_depth=6;random:seed=3)")
	flag.IntVar(&numGames, "games", envInt("SPLENDOR_GAMES", 1), "Games per matchup")
	flag.Int64Var(&seed, "seed", int64(envInt("SPLENDOR_SEED", 0)), "Base seed (0 = from the clock)")
	flag.DurationVar(&budget, "budget", envDuration("SPLENDOR_BUDGET", meta.TIME_LIMIT), "Time limit per move")
	flag.StringVar(&out, "out", envString("SPLENDOR_OUT", ""), "Directory for CSV records (empty = don't store)")
	flag.StringVar(&name, "name", envString("SPLENDOR_NAME", "tournament"), "Experiment name")
	flag.StringVar(&logLevel, "log-level", envString("SPLENDOR_LOG_LEVEL", "info"), "Log level")
	flag.Parse()

	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var configs []metrics.AgentConfig
	for _, spec := range strings.Split(agents, ";") {
		spec = strings.TrimSpace(spec)
		if spec == "" {
			continue
		}
		configs = append(configs, metrics.AgentConfig{ID: len(configs), Spec: spec})
	}

	result, err := experiments.Run(experiments.Tournament{
		Name:      name,
		Players:   players,
		NumGames:  numGames,
		Seed:      seed,
		TimeLimit: budget,
		OutDir:    out,
		Agents:    configs,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("tournament failed")
	}

	for _, config := range configs {
		log.Info().Int("agent", config.ID).Str("spec", config.Spec).Float64("wins", result.Wins[config.ID]).Msg("result")
	}
}

func envString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Msg("ignoring non-integer environment value")
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Msg("ignoring invalid duration")
		return fallback
	}
	return d
}
