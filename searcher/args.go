package searcher

import "time"

// Hyperparameters for the minimax search

const DefaultDuration = 900 * time.Millisecond
const DefaultMaxDepth = 15

// Actions whose priority is within Band of the best one are expanded, at most Width of them.
const DefaultBand = 4
const DefaultWidth = 5

// MaxActionScore bounds the heuristic score of a single action: a noble plus a 3 point card.
const MaxActionScore = 100 + 3*20
