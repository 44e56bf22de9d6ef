package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"strings"

	"golang.org/x/exp/rand"

	"splendor/meta"
)

type StateHash uint64

// GameState represents the dynamic state of the game at any point.
type GameState struct {
	Board       *Board
	Agents      []*AgentState
	AgentToMove int
}

// InitialState deals a new game for numPlayers (2 to 4). The same seed always deals the
// same decks, face-up grid and nobles.
func InitialState(numPlayers int, seed int64) *GameState {
	rng := rand.New(rand.NewSource(uint64(seed)))
	return NewGameState(NewBoard(numPlayers, rng), numPlayers)
}

// NewGameState wraps an already prepared board. Tests use it to build exact positions.
func NewGameState(board *Board, numPlayers int) *GameState {
	gs := &GameState{
		Board:  board,
		Agents: make([]*AgentState, numPlayers),
	}
	for i := range gs.Agents {
		gs.Agents[i] = NewAgentState(i)
	}
	return gs
}

// Copy returns a state that can be mutated without affecting gs. Cards and nobles are
// immutable and shared.
func (gs *GameState) Copy() *GameState {
	agents := make([]*AgentState, len(gs.Agents))
	for i, a := range gs.Agents {
		agents[i] = a.Copy()
	}
	return &GameState{
		Board:       gs.Board.Copy(),
		Agents:      agents,
		AgentToMove: gs.AgentToMove,
	}
}

func (gs *GameState) NumAgents() int {
	return len(gs.Agents)
}

func (gs *GameState) NextAgent(id int) int {
	return (id + 1) % len(gs.Agents)
}

// Play applies action for the agent to move on a copy of gs and returns the copy.
func (gs *GameState) Play(action Action) *GameState {
	return ApplyAction(gs.Copy(), action, gs.AgentToMove)
}

// GameEnds reports whether the game is over: someone reached the winning score and the
// round has come back to the first agent, or every agent passed on its last turn.
func (gs *GameState) GameEnds() bool {
	deadlock := 0
	for _, agent := range gs.Agents {
		if agent.Passed {
			deadlock++
		}
		if agent.Score >= meta.WIN_SCORE && gs.AgentToMove == 0 {
			return true
		}
	}
	return deadlock == len(gs.Agents)
}

// CalScore is the agent's final score. A tied leader with the fewest bought cards among
// the tied leaders gets an extra half point.
func (gs *GameState) CalScore(agentID int) float64 {
	best := 0
	for _, agent := range gs.Agents {
		best = max(best, agent.Score)
	}
	score := float64(gs.Agents[agentID].Score)
	if gs.Agents[agentID].Score != best {
		return score
	}

	victors := 0
	fewest := -1
	for _, agent := range gs.Agents {
		if agent.Score != best {
			continue
		}
		victors++
		if bought := agent.BoughtCards(); fewest < 0 || bought < fewest {
			fewest = bought
		}
	}
	if victors > 1 && gs.Agents[agentID].BoughtCards() == fewest {
		return score + 0.5
	}
	return score
}

// Winners returns the agents with the highest final score.
func (gs *GameState) Winners() []int {
	var winners []int
	best := -1.0
	for i := range gs.Agents {
		score := gs.CalScore(i)
		switch {
		case score > best:
			best = score
			winners = []int{i}
		case score == best:
			winners = append(winners, i)
		}
	}
	return winners
}

func (gs *GameState) Hash() StateHash {
	hasher := fnv.New64a()
	write := func(v int) {
		binary.Write(hasher, binary.LittleEndian, int64(v))
	}
	writeCode := func(code string) {
		hasher.Write([]byte(code))
		hasher.Write([]byte{0})
	}

	write(gs.AgentToMove)
	for _, n := range gs.Board.Gems {
		write(n)
	}
	for tier := range gs.Board.Dealt {
		write(len(gs.Board.Decks[tier]))
		for _, card := range gs.Board.Dealt[tier] {
			if card == nil {
				writeCode("-")
				continue
			}
			writeCode(card.Code)
		}
	}
	for _, noble := range gs.Board.Nobles {
		writeCode(noble.Code)
	}

	for _, agent := range gs.Agents {
		write(agent.Score)
		for _, n := range agent.Gems {
			write(n)
		}
		for _, bucket := range agent.Cards {
			write(len(bucket))
			for _, card := range bucket {
				writeCode(card.Code)
			}
		}
		for _, noble := range agent.Nobles {
			writeCode(noble.Code)
		}
		if agent.Passed {
			write(1)
		} else {
			write(0)
		}
	}
	return StateHash(hasher.Sum64())
}

func (gs *GameState) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "to move: %d, bank: %v\n", gs.AgentToMove, gs.Board.Gems)
	for tier := NumTiers - 1; tier >= 0; tier-- {
		fmt.Fprintf(&sb, "tier %d (%d left):", tier+1, len(gs.Board.Decks[tier]))
		for _, card := range gs.Board.Dealt[tier] {
			if card == nil {
				sb.WriteString(" [empty]")
				continue
			}
			fmt.Fprintf(&sb, " [%s %s %dp]", card.Colour, card.Code, card.Points)
		}
		sb.WriteString("\n")
	}
	for _, agent := range gs.Agents {
		sb.WriteString(agent.String() + "\n")
	}
	return sb.String()
}
