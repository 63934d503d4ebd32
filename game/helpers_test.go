package game

import "golang.org/x/exp/rand"

func coins(pairs ...int) CoinSet {
	var cs CoinSet
	for i := 0; i+1 < len(pairs); i += 2 {
		cs[pairs[i]] = pairs[i+1]
	}
	return cs
}

func fullBank(numPlayers int) CoinSet {
	var bank CoinSet
	for c := Color(0); c < NumRealColors; c++ {
		bank[c] = CoinsPerColor(numPlayers)
	}
	bank[Gold] = GoldCoins
	return bank
}

// emptyGame has players and a full bank but no cards or nobles.
func emptyGame(numPlayers int) *Game {
	g := &Game{Players: make([]Player, numPlayers), Bank: fullBank(numPlayers)}
	for i := range g.Players {
		g.Players[i].ID = i
	}
	return g
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func countByType(actions []Action) map[ActionType]int {
	counts := map[ActionType]int{}
	for _, a := range actions {
		counts[a.Type]++
	}
	return counts
}
