package engine

import "splendor/game"

// DiscardExcess returns coins of player p above game.MaxCoins to the bank and
// reports what was returned. Coins leave the largest real stack first, lowest
// color on ties; gold goes last.
func DiscardExcess(g *game.Game, p int) game.CoinSet {
	var discarded game.CoinSet
	player := &g.Players[p]
	for excess := player.Coins.Total() - game.MaxCoins; excess > 0; excess-- {
		c := largestStack(player.Coins)
		player.Coins[c]--
		g.Bank[c]++
		discarded[c]++
	}
	return discarded
}

func largestStack(coins game.CoinSet) game.Color {
	best := game.Gold
	for c := game.Color(0); c < game.NumRealColors; c++ {
		if coins[c] > 0 && (best == game.Gold || coins[c] > coins[best]) {
			best = c
		}
	}
	return best
}
