package game

import "fmt"

type ActionType int

const (
	TakeCoins ActionType = iota
	Buy
	Reserve
	BuyReserve
)

var actionTypeNames = [...]string{"takeCoins", "buy", "reserve", "buyReserve"}

func (t ActionType) String() string {
	if t < 0 || int(t) >= len(actionTypeNames) {
		return "unknown"
	}
	return actionTypeNames[t]
}

// Action is one legal move. Coins is the signed change to the acting player's
// coins; the bank receives the negation.
type Action struct {
	Type   ActionType `json:"type"`
	Coins  CoinSet    `json:"coins"`
	CardID int        `json:"cardId,omitempty"`
	Tier   int        `json:"tier,omitempty"`
}

func (a Action) String() string {
	if a.Type == TakeCoins {
		return fmt.Sprintf("%s(%s)", a.Type, a.Coins)
	}
	return fmt.Sprintf("%s(card=%d tier=%d coins=%s)", a.Type, a.CardID, a.Tier, a.Coins)
}
