package game

import "iter"

// PossibleActions returns every legal action of the player to move. An empty
// result is a valid outcome the caller must handle.
func PossibleActions(g *Game) []Action {
	return g.AppendActions(nil)
}

// AppendActions appends the legal actions of the player to move to dst, in the
// order take coins, buy (table, then reserved), reserve.
func (g *Game) AppendActions(dst []Action) []Action {
	dst = appendCoinActions(dst, g.Bank)
	dst = g.appendBuyActions(dst)
	dst = g.appendReserveActions(dst)
	return dst
}

// ThreeCoinCombinations returns one set per distinct combination of three
// nonempty real-color stacks in the bank.
func ThreeCoinCombinations(bank CoinSet) []CoinSet {
	return appendThreeCoinCombinations(nil, bank)
}

func appendThreeCoinCombinations(dst []CoinSet, bank CoinSet) []CoinSet {
	for take := range threeCoinTakes(bank) {
		dst = append(dst, take)
	}
	return dst
}

func threeCoinTakes(bank CoinSet) iter.Seq[CoinSet] {
	return func(yield func(CoinSet) bool) {
		for a := Color(0); a < NumRealColors; a++ {
			for b := a + 1; b < NumRealColors; b++ {
				for c := b + 1; c < NumRealColors; c++ {
					if bank[a] == 0 || bank[b] == 0 || bank[c] == 0 {
						continue
					}
					var take CoinSet
					take[a], take[b], take[c] = 1, 1, 1
					if !yield(take) {
						return
					}
				}
			}
		}
	}
}

func appendCoinActions(dst []Action, bank CoinSet) []Action {
	stocked := 0
	var rest CoinSet
	for c := Color(0); c < NumRealColors; c++ {
		if bank[c] > 0 {
			stocked++
			rest[c] = 1
		}
	}

	switch {
	case stocked >= 3:
		for take := range threeCoinTakes(bank) {
			dst = append(dst, Action{Type: TakeCoins, Coins: take})
		}
	case stocked > 0:
		dst = append(dst, Action{Type: TakeCoins, Coins: rest})
	}

	for c := Color(0); c < NumRealColors; c++ {
		if bank[c] >= 4 {
			var take CoinSet
			take[c] = 2
			dst = append(dst, Action{Type: TakeCoins, Coins: take})
		}
	}
	return dst
}

func (g *Game) appendBuyActions(dst []Action) []Action {
	p := g.Active()
	discounts := p.Discounts()
	for tier := range g.Table {
		for _, card := range g.Table[tier] {
			if pay, ok := payment(p.Coins, discounts, card); ok {
				dst = append(dst, Action{Type: Buy, Coins: pay.Neg(), CardID: card.ID, Tier: card.Tier})
			}
		}
	}
	for _, card := range p.Reserved {
		if pay, ok := payment(p.Coins, discounts, card); ok {
			dst = append(dst, Action{Type: BuyReserve, Coins: pay.Neg(), CardID: card.ID, Tier: card.Tier})
		}
	}
	return dst
}

func (g *Game) appendReserveActions(dst []Action) []Action {
	p := g.Active()
	if len(p.Reserved) >= MaxReserved {
		return dst
	}
	var grant CoinSet
	if g.Bank[Gold] > 0 {
		grant[Gold] = 1
	}
	for tier := range g.Table {
		for _, card := range g.Table[tier] {
			dst = append(dst, Action{Type: Reserve, Coins: grant, CardID: card.ID, Tier: card.Tier})
		}
	}
	return dst
}
