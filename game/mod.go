package game

const (
	NumTiers      = 3
	TableSlots    = 4 // Face-up cards per tier
	MaxReserved   = 3
	MaxCoins      = 10 // Enforced by callers, not by TakeAction
	WinningPoints = 15
	NoblePoints   = 3
	GoldCoins     = 5
	MinPlayers    = 2
	MaxPlayers    = 4
)

// CoinsPerColor returns the starting bank stack of each real color.
func CoinsPerColor(numPlayers int) int {
	switch {
	case numPlayers <= 2:
		return 4
	case numPlayers == 3:
		return 5
	default:
		return 7
	}
}
