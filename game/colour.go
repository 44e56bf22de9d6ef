package game

import (
	"fmt"
	"strings"
)

// Colour is a gem colour. Yellow is the wildcard (gold) and never appears on a card.
type Colour int

const (
	Black Colour = iota
	Red
	Yellow
	Green
	Blue
	White
	NumColours
)

// CardColours are the five colours a card can have or cost.
var CardColours = []Colour{Black, Red, Green, Blue, White}

var colourNames = [NumColours]string{"black", "red", "yellow", "green", "blue", "white"}

func (c Colour) String() string {
	if c < 0 || c >= NumColours {
		return fmt.Sprintf("Colour(%d)", int(c))
	}
	return colourNames[c]
}

// Gems maps each colour to a count. The zero value is the empty map.
type Gems [NumColours]int

func (g Gems) Total() int {
	total := 0
	for _, n := range g {
		total += n
	}
	return total
}

func (g Gems) IsEmpty() bool {
	return g == Gems{}
}

func (g Gems) Add(other Gems) Gems {
	for c := range g {
		g[c] += other[c]
	}
	return g
}

func (g Gems) Sub(other Gems) Gems {
	for c := range g {
		g[c] -= other[c]
	}
	return g
}

// Covers reports whether g holds at least other in every colour.
func (g Gems) Covers(other Gems) bool {
	for c := range g {
		if g[c] < other[c] {
			return false
		}
	}
	return true
}

func (g Gems) String() string {
	var parts []string
	for c, n := range g {
		if n != 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", Colour(c), n))
		}
	}
	return "{" + strings.Join(parts, ",") + "}"
}

// mustBeNonNegative panics when a gem count went below zero, which means the state is corrupt.
func (g Gems) mustBeNonNegative(owner string) {
	for c, n := range g {
		if n < 0 {
			panic(fmt.Sprintf("negative %s gem count %d on %s", Colour(c), n, owner))
		}
	}
}
