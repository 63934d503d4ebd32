package game

// TakeAction applies a for the player to move and advances the turn by one.
// It mutates g in place and returns it; clone g first to keep the prior state.
// The action is trusted to come from AppendActions for this state.
func TakeAction(g *Game, a Action) *Game {
	p := g.Active()
	p.Coins = p.Coins.Add(a.Coins)
	g.Bank = g.Bank.Sub(a.Coins)

	switch a.Type {
	case Buy:
		if card, ok := g.takeFromTable(a.Tier, a.CardID); ok {
			p.buy(card)
			g.awardNoble(p)
		}
	case BuyReserve:
		if card, ok := p.takeReserved(a.CardID); ok {
			p.buy(card)
			g.awardNoble(p)
		}
	case Reserve:
		if card, ok := g.takeFromTable(a.Tier, a.CardID); ok {
			p.Reserved = append(p.Reserved, card)
		}
	}

	g.Turn++
	return g
}

// Play is TakeAction as a method.
func (g *Game) Play(a Action) {
	TakeAction(g, a)
}

func (p *Player) buy(c Card) {
	p.Cards = append(p.Cards, c)
	p.Points += c.Points
}

func (p *Player) takeReserved(id int) (Card, bool) {
	for i, c := range p.Reserved {
		if c.ID == id {
			p.Reserved = append(p.Reserved[:i], p.Reserved[i+1:]...)
			return c, true
		}
	}
	return Card{}, false
}

// takeFromTable removes a face-up card and refills its slot from the tier's
// deck. With the deck exhausted the slot disappears.
func (g *Game) takeFromTable(tier, id int) (Card, bool) {
	if tier < 1 || tier > NumTiers {
		return Card{}, false
	}
	row := g.Table[tier-1]
	for i, c := range row {
		if c.ID != id {
			continue
		}
		deck := g.Decks[tier-1]
		if len(deck) > 0 {
			row[i] = deck[0]
			g.Decks[tier-1] = deck[1:]
		} else {
			g.Table[tier-1] = append(row[:i], row[i+1:]...)
		}
		return c, true
	}
	return Card{}, false
}

// awardNoble gives p the first noble in table order whose cost its discounts
// cover. Simultaneously qualifying nobles are not arbitrated.
func (g *Game) awardNoble(p *Player) {
	discounts := p.Discounts()
	for i, n := range g.Nobles {
		if !covers(discounts, n.Cost) {
			continue
		}
		g.Nobles = append(g.Nobles[:i], g.Nobles[i+1:]...)
		p.Nobles = append(p.Nobles, n)
		p.Points += n.Points
		return
	}
}

func covers(have, cost CoinSet) bool {
	for c := Color(0); c < NumRealColors; c++ {
		if have[c] < cost[c] {
			return false
		}
	}
	return true
}

// Pass ends the active player's turn without acting. Callers use it when
// AppendActions yields nothing.
func (g *Game) Pass() {
	g.Turn++
}
