package game

import (
	"fmt"

	"golang.org/x/exp/rand"

	"splendor/meta"
	"splendor/utils"
)

const SlotsPerTier = 4

// Board holds everything not owned by a player.
type Board struct {
	Decks  [NumTiers][]*Card             // Undealt cards per tier, top of the deck is the last element
	Dealt  [NumTiers][SlotsPerTier]*Card // Face-up cards, nil once a slot cannot be refilled
	Gems   Gems                          // Bank supply
	Nobles []*Noble                      // Nobles still available
}

// gemSupply is the per-colour starting supply for a player count.
func gemSupply(numPlayers int) int {
	switch numPlayers {
	case 2:
		return 4
	case 3:
		return 5
	case 4:
		return 7
	default:
		panic(fmt.Sprintf("unsupported number of players %d", numPlayers))
	}
}

// NewBoard shuffles the decks and nobles with rng, deals the face-up grid and draws
// numPlayers+1 nobles.
func NewBoard(numPlayers int, rng *rand.Rand) *Board {
	b := &Board{}
	n := gemSupply(numPlayers)
	for _, c := range CardColours {
		b.Gems[c] = n
	}
	b.Gems[Yellow] = meta.WILDCARD_SUPPLY

	nobles := AllNobles()
	rng.Shuffle(len(nobles), func(i, j int) {
		nobles[i], nobles[j] = nobles[j], nobles[i]
	})
	b.Nobles = nobles[:numPlayers+1]

	for _, card := range AllCards() {
		b.Decks[card.Tier-1] = append(b.Decks[card.Tier-1], card)
	}
	for tier := range b.Decks {
		deck := b.Decks[tier]
		rng.Shuffle(len(deck), func(i, j int) {
			deck[i], deck[j] = deck[j], deck[i]
		})
		for slot := range b.Dealt[tier] {
			b.Dealt[tier][slot] = b.Deal(tier)
		}
	}
	return b
}

// Deal pops the top card of the tier's deck, or returns nil when the deck is exhausted.
func (b *Board) Deal(tier int) *Card {
	deck := b.Decks[tier]
	if len(deck) == 0 {
		return nil
	}
	card := deck[len(deck)-1]
	b.Decks[tier] = deck[:len(deck)-1]
	return card
}

// DealtList returns the face-up cards in tier then slot order, skipping empty slots.
func (b *Board) DealtList() []*Card {
	cards := make([]*Card, 0, NumTiers*SlotsPerTier)
	for tier := range b.Dealt {
		for _, card := range b.Dealt[tier] {
			if card != nil {
				cards = append(cards, card)
			}
		}
	}
	return cards
}

// replaceDealt refills the slot holding card with a fresh deal. It panics if the card is not face up.
func (b *Board) replaceDealt(card *Card) {
	tier := card.Tier - 1
	for slot, dealt := range b.Dealt[tier] {
		if dealt != nil && dealt.Code == card.Code {
			b.Dealt[tier][slot] = b.Deal(tier)
			return
		}
	}
	panic(fmt.Sprintf("card %s is not dealt on the board", card.Code))
}

func (b *Board) removeNoble(noble *Noble) {
	i := utils.FindIndexFunc(b.Nobles, func(n *Noble) bool { return n.Code == noble.Code })
	if i == -1 {
		panic(fmt.Sprintf("noble %s is not on the board", noble.Code))
	}
	b.Nobles = utils.RemoveAt(b.Nobles, i)
}

// Copy shares the deck and noble slices with b. Neither is ever written in place after
// NewBoard: Deal only reslices and removeNoble always allocates through utils.RemoveAt.
func (b *Board) Copy() *Board {
	c := *b
	return &c
}
