// meta/meta.go
package meta

import "time"

// WIN_SCORE is the score at which a game ends once the round completes.
const WIN_SCORE = 15

// MAX_GEMS is the carrying cap a player must respect at the end of a turn.
const MAX_GEMS = 10

// MAX_RESERVED is the number of reserved cards a player may hold.
const MAX_RESERVED = 3

// MAX_OWNED_PER_COLOUR caps how many cards of one colour a player may buy.
const MAX_OWNED_PER_COLOUR = 7

const NOBLE_BONUS = 3

// WILDCARD_SUPPLY is the number of gold gems regardless of player count.
const WILDCARD_SUPPLY = 5

// TIME_LIMIT is the per-move budget given to agents by the match runner.
const TIME_LIMIT = time.Second

// WARM_UP is the budget of each agent's first move.
const WARM_UP = 15 * time.Second

// WARNING_LIMIT disqualifies an agent after this many timeouts or illegal actions.
const WARNING_LIMIT = 3

// MAX_TURNS stops a match that somehow never reaches an end condition.
const MAX_TURNS = 300
