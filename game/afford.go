package game

// CanAfford reports whether p can buy c. The returned set is the exact payment,
// gold included, to deduct from the player.
func CanAfford(p *Player, c Card) (CoinSet, bool) {
	return payment(p.Coins, p.Discounts(), c)
}

func payment(coins, discounts CoinSet, c Card) (CoinSet, bool) {
	var pay CoinSet
	gold := coins[Gold]
	for color := Color(0); color < NumRealColors; color++ {
		owed := c.Cost[color] - discounts[color]
		if owed <= 0 {
			continue
		}
		fromColor := min(owed, coins[color])
		pay[color] = fromColor
		shortfall := owed - fromColor
		if shortfall > gold {
			return CoinSet{}, false
		}
		gold -= shortfall
		pay[Gold] += shortfall
	}
	return pay, true
}
