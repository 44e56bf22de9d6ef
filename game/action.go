package game

import (
	"fmt"
	"strings"
)

// ActionType represents the type of action a player can perform.
type ActionType int

const (
	CollectDiff ActionType = iota
	CollectSame
	Reserve
	BuyFromBoard
	BuyFromReserve
	Pass
)

var actionTypeNames = []string{"collect_diff", "collect_same", "reserve", "buy_available", "buy_reserve", "pass"}

func (t ActionType) String() string {
	if t < 0 || int(t) >= len(actionTypeNames) {
		return fmt.Sprintf("ActionType(%d)", int(t))
	}
	return actionTypeNames[t]
}

func (t ActionType) IsCollect() bool {
	return t == CollectDiff || t == CollectSame
}

func (t ActionType) IsBuy() bool {
	return t == BuyFromBoard || t == BuyFromReserve
}

// Action is a value object. Two actions are the same move when Equal says so, regardless
// of which Card or Noble instance they point at.
type Action struct {
	Type      ActionType
	Collected Gems   // gems taken from the bank; empty unless collecting or reserving with a wildcard
	Returned  Gems   // gems given back, either over-cap returns or the payment for a card
	Card      *Card  // target of reserve and buy actions
	Noble     *Noble // noble claimed at the end of the turn, if any
}

func (a Action) Equal(other Action) bool {
	return a.Type == other.Type &&
		a.Collected == other.Collected &&
		a.Returned == other.Returned &&
		a.Card.Equal(other.Card) &&
		a.Noble.Equal(other.Noble)
}

// ActionKey is a comparable identity for an action, usable as a map key.
type ActionKey struct {
	Type      ActionType
	Collected Gems
	Returned  Gems
	Card      string
	Noble     string
}

func (a Action) Key() ActionKey {
	k := ActionKey{Type: a.Type, Collected: a.Collected, Returned: a.Returned}
	if a.Card != nil {
		k.Card = a.Card.Code
	}
	if a.Noble != nil {
		k.Noble = a.Noble.Code
	}
	return k
}

func (a Action) String() string {
	var sb strings.Builder
	sb.WriteString(a.Type.String())
	if a.Card != nil {
		sb.WriteString(" " + a.Card.Code)
	}
	if !a.Collected.IsEmpty() {
		sb.WriteString(" collect=" + a.Collected.String())
	}
	if !a.Returned.IsEmpty() {
		sb.WriteString(" return=" + a.Returned.String())
	}
	if a.Noble != nil {
		sb.WriteString(" noble=" + a.Noble.Code)
	}
	return sb.String()
}

// ContainsAction reports whether action is a member of actions by value.
func ContainsAction(actions []Action, action Action) bool {
	for _, a := range actions {
		if a.Equal(action) {
			return true
		}
	}
	return false
}
