package engine

import (
	"time"

	"splendor/experiments/metrics"
	"splendor/meta"
)

type Engine interface {
	// Run plays a game till it ends, an agent is disqualified or the turn cap is reached
	Run() (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}

type Option func(e *Local)

// WithTimeLimit sets the budget of every move after an agent's first one.
func WithTimeLimit(limit time.Duration) Option {
	return func(e *Local) {
		if limit > 0 {
			e.timeLimit = limit
		}
	}
}

// WithWarmUp sets the budget of each agent's first move.
func WithWarmUp(limit time.Duration) Option {
	return func(e *Local) {
		if limit > 0 {
			e.warmUp = limit
		}
	}
}

func WithWarningLimit(limit int) Option {
	return func(e *Local) {
		if limit > 0 {
			e.warningLimit = limit
		}
	}
}

func WithMaxTurns(turns int) Option {
	return func(e *Local) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

func WithMatchID(id string) Option {
	return func(e *Local) {
		e.matchID = id
	}
}

func defaults(e *Local) {
	e.timeLimit = meta.TIME_LIMIT
	e.warmUp = meta.WARM_UP
	e.warningLimit = meta.WARNING_LIMIT
	e.maxTurns = meta.MAX_TURNS
}
