package game

import (
	"fmt"

	"splendor/meta"
	"splendor/utils"
)

// AgentState is everything a player owns. Cards[Yellow] is the reserved bucket.
type AgentState struct {
	ID         int
	Score      int
	Gems       Gems
	Cards      [NumColours][]*Card
	Nobles     []*Noble
	Passed     bool    // true iff the last action was a pass
	LastAction *Action // nil before the first action
}

func NewAgentState(id int) *AgentState {
	return &AgentState{ID: id}
}

// Copy shares the card and noble slices; every write to them goes through appendCard,
// which never writes into a shared backing array.
func (a *AgentState) Copy() *AgentState {
	c := *a
	return &c
}

func (a *AgentState) Reserved() []*Card {
	return a.Cards[Yellow]
}

// OwnedCounts returns the number of bought cards per colour.
func (a *AgentState) OwnedCounts() Gems {
	var counts Gems
	for _, c := range CardColours {
		counts[c] = len(a.Cards[c])
	}
	return counts
}

// BoughtCards counts bought cards, reserved cards excluded.
func (a *AgentState) BoughtCards() int {
	return a.OwnedCounts().Total()
}

func (a *AgentState) appendCard(colour Colour, card *Card) {
	bucket := a.Cards[colour]
	a.Cards[colour] = append(bucket[:len(bucket):len(bucket)], card)
}

func (a *AgentState) removeReserved(card *Card) {
	i := utils.FindIndexFunc(a.Cards[Yellow], func(r *Card) bool { return r.Code == card.Code })
	if i == -1 {
		panic(fmt.Sprintf("card %s is not reserved by agent %d", card.Code, a.ID))
	}
	a.Cards[Yellow] = utils.RemoveAt(a.Cards[Yellow], i)
}

func (a *AgentState) addNoble(noble *Noble) {
	a.Nobles = append(a.Nobles[:len(a.Nobles):len(a.Nobles)], noble)
	a.Score += meta.NOBLE_BONUS
}

func (a *AgentState) String() string {
	return fmt.Sprintf("agent %d: score=%d gems=%v cards=%v reserved=%d nobles=%d",
		a.ID, a.Score, a.Gems, a.OwnedCounts(), len(a.Reserved()), len(a.Nobles))
}
