package game

import (
	"fmt"
	"strconv"
)

const NumTiers = 3

// Card is a development card. Cards are immutable once built from the reference table
// and are shared by pointer between copies of a GameState.
type Card struct {
	Colour Colour
	Code   string
	Cost   Gems
	Tier   int // 1..3
	Points int
}

// Equal compares cards by code and re-validates the points against the reference table.
func (c *Card) Equal(other *Card) bool {
	if c == nil || other == nil {
		return c == other
	}
	if c.Code != other.Code {
		return false
	}
	entry, ok := cardsByCode[c.Code]
	if !ok {
		return false
	}
	return c.Points == entry.points && other.Points == entry.points
}

func (c *Card) String() string {
	return fmt.Sprintf("%s %s (tier %d, %d pts)", c.Colour, c.Code, c.Tier, c.Points)
}

// Noble is claimed automatically once a player owns enough cards of each required colour.
type Noble struct {
	Code        string
	Requirement Gems
}

func (n *Noble) Equal(other *Noble) bool {
	if n == nil || other == nil {
		return n == other
	}
	return n.Code == other.Code
}

func (n *Noble) String() string {
	return "noble " + n.Code
}

type cardEntry struct {
	code   string
	colour Colour
	tier   int
	points int
}

var codeLetters = map[byte]Colour{
	'B': Black,
	'r': Red,
	'y': Yellow,
	'g': Green,
	'b': Blue,
	'w': White,
}

var cardsByCode = func() map[string]cardEntry {
	m := make(map[string]cardEntry, len(cardTable))
	for _, e := range cardTable {
		if _, dup := m[e.code]; dup {
			panic("duplicate card code " + e.code)
		}
		m[e.code] = e
	}
	return m
}()

// ParseCost reads a code such as "3g2B3w" into a gem map.
func ParseCost(code string) (Gems, error) {
	var cost Gems
	i := 0
	for i < len(code) {
		j := i
		for j < len(code) && code[j] >= '0' && code[j] <= '9' {
			j++
		}
		if j == i || j == len(code) {
			return Gems{}, fmt.Errorf("malformed code %q at offset %d", code, i)
		}
		n, err := strconv.Atoi(code[i:j])
		if err != nil {
			return Gems{}, fmt.Errorf("malformed code %q: %w", code, err)
		}
		colour, ok := codeLetters[code[j]]
		if !ok {
			return Gems{}, fmt.Errorf("malformed code %q: unknown colour letter %q", code, code[j])
		}
		cost[colour] += n
		i = j + 1
	}
	return cost, nil
}

func mustParseCost(code string) Gems {
	cost, err := ParseCost(code)
	if err != nil {
		panic(err)
	}
	return cost
}

// AllCards builds a fresh card for every entry of the reference table, in table order.
func AllCards() []*Card {
	cards := make([]*Card, 0, len(cardTable))
	for _, e := range cardTable {
		cards = append(cards, &Card{
			Colour: e.colour,
			Code:   e.code,
			Cost:   mustParseCost(e.code),
			Tier:   e.tier,
			Points: e.points,
		})
	}
	return cards
}

func AllNobles() []*Noble {
	nobles := make([]*Noble, 0, len(nobleTable))
	for _, code := range nobleTable {
		nobles = append(nobles, &Noble{Code: code, Requirement: mustParseCost(code)})
	}
	return nobles
}

// CardByCode returns a reference copy of the card with the given code.
func CardByCode(code string) (*Card, bool) {
	e, ok := cardsByCode[code]
	if !ok {
		return nil, false
	}
	return &Card{Colour: e.colour, Code: e.code, Cost: mustParseCost(e.code), Tier: e.tier, Points: e.points}, true
}
