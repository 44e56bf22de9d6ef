package agent

import (
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"

	"splendor/game"
	"splendor/searcher"
)

// DefaultConfig is used by New when given an empty config.
var DefaultConfig = "minimax"

// MinimaxConfig holds the parameters of a "minimax" agent.
type MinimaxConfig struct {
	Duration time.Duration `mapstructure:"duration"`
	MaxDepth int           `mapstructure:"max_depth"`
	Band     int           `mapstructure:"band"`
	Width    int           `mapstructure:"width"`
	Eval     string        `mapstructure:"eval"`
	Metrics  bool          `mapstructure:"metrics"`
}

type RandomConfig struct {
	Seed uint64 `mapstructure:"seed"`
}

var evaluators = map[string]game.Evaluate{
	"standard": game.EvaluateStandard,
	"score":    game.EvaluateScore,
}

// New creates an agent from a config string: the agent kind, optionally followed by a
// colon and comma-separated key=value parameters. For example
// "minimax:duration=500ms,max_depth=6", "random:seed=3" or "first".
func New(config string) (Agent, error) {
	if config == "" {
		config = DefaultConfig
	}
	kind, params := config, ""
	if i := strings.Index(config, ":"); i != -1 {
		kind, params = config[:i], config[i+1:]
	}

	switch kind {
	case "first":
		if params != "" {
			return nil, errors.Errorf("agent %q takes no parameters, got %q", kind, params)
		}
		return First{}, nil
	case "random":
		var cfg RandomConfig
		if err := decode(splitParams(params), &cfg); err != nil {
			return nil, errors.WithMessagef(err, "failed to configure agent %q", kind)
		}
		return NewRandom(cfg.Seed), nil
	case "minimax":
		cfg := MinimaxConfig{
			Duration: searcher.DefaultDuration,
			MaxDepth: searcher.DefaultMaxDepth,
			Band:     searcher.DefaultBand,
			Width:    searcher.DefaultWidth,
			Eval:     "standard",
		}
		if err := decode(splitParams(params), &cfg); err != nil {
			return nil, errors.WithMessagef(err, "failed to configure agent %q", kind)
		}
		m, err := cfg.Minimax()
		if err != nil {
			return nil, err
		}
		return NewMinimaxAgent(m), nil
	default:
		return nil, errors.Errorf("unknown agent %q", kind)
	}
}

// Minimax builds the searcher described by cfg.
func (cfg MinimaxConfig) Minimax() (*searcher.Minimax, error) {
	evaluate, ok := evaluators[cfg.Eval]
	if !ok {
		return nil, errors.Errorf("unknown evaluation function %q", cfg.Eval)
	}
	if cfg.Duration < 0 {
		return nil, errors.Errorf("negative duration %s", cfg.Duration)
	}
	options := []searcher.Option{
		searcher.WithDuration(cfg.Duration),
		searcher.WithMaxDepth(cfg.MaxDepth),
		searcher.WithBand(cfg.Band),
		searcher.WithWidth(cfg.Width),
		searcher.WithEvaluationFn(evaluate),
	}
	if cfg.Metrics {
		options = append(options, searcher.WithMetrics())
	}
	return searcher.NewMinimax(options...), nil
}

// splitParams turns "a=1,b" into {"a": "1", "b": "true"}.
func splitParams(params string) map[string]string {
	out := make(map[string]string)
	if params == "" {
		return out
	}
	for _, part := range strings.Split(params, ",") {
		key, value, found := strings.Cut(part, "=")
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		if !found {
			value = "true"
		}
		out[key] = strings.TrimSpace(value)
	}
	return out
}

func decode(params map[string]string, result any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           result,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create config decoder")
	}
	if err := decoder.Decode(params); err != nil {
		return errors.Wrapf(err, "failed to decode parameters %v", params)
	}
	return nil
}
