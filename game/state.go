package game

import (
	"fmt"

	"golang.org/x/exp/rand"
)

type Player struct {
	ID       int     `json:"id"`
	Coins    CoinSet `json:"coins"`
	Cards    []Card  `json:"cards"`    // Bought
	Reserved []Card  `json:"reserved"` // At most MaxReserved
	Nobles   []Noble `json:"nobles"`
	Points   int     `json:"points"`
}

// Discounts counts bought cards per color.
func (p *Player) Discounts() CoinSet {
	var d CoinSet
	for i := range p.Cards {
		d[p.Cards[i].Color]++
	}
	return d
}

// Game is the full state of a match. TakeAction mutates it in place; clone it
// before looking ahead.
type Game struct {
	Players []Player         `json:"players"`
	Decks   [NumTiers][]Card `json:"decks"`
	Table   [NumTiers][]Card `json:"table"`
	Nobles  []Noble          `json:"nobles"`
	Bank    CoinSet          `json:"bank"`
	Turn    int              `json:"turn"`
}

// NewGame shuffles the decks, deals the table, draws numPlayers+1 nobles and
// seeds the bank for the given player count.
func NewGame(numPlayers int, rng *rand.Rand) *Game {
	if numPlayers < MinPlayers || numPlayers > MaxPlayers {
		panic(fmt.Sprintf("unsupported player count %d", numPlayers))
	}

	g := &Game{Players: make([]Player, numPlayers)}
	for i := range g.Players {
		g.Players[i].ID = i
	}

	decks := Catalog()
	for tier := range decks {
		deck := decks[tier]
		rng.Shuffle(len(deck), func(i, j int) {
			deck[i], deck[j] = deck[j], deck[i]
		})
		dealt := min(TableSlots, len(deck))
		g.Table[tier] = append(make([]Card, 0, TableSlots), deck[:dealt]...)
		g.Decks[tier] = deck[dealt:]
	}

	nobles := NobleCatalog()
	rng.Shuffle(len(nobles), func(i, j int) {
		nobles[i], nobles[j] = nobles[j], nobles[i]
	})
	g.Nobles = nobles[:min(numPlayers+1, len(nobles))]

	perColor := CoinsPerColor(numPlayers)
	for c := Color(0); c < NumRealColors; c++ {
		g.Bank[c] = perColor
	}
	g.Bank[Gold] = GoldCoins

	return g
}

// Player returns the index of the player to move.
func (g *Game) Player() int {
	return g.Turn % len(g.Players)
}

func (g *Game) NumPlayers() int {
	return len(g.Players)
}

func (g *Game) Active() *Player {
	return &g.Players[g.Player()]
}

// Over reports whether any player reached WinningPoints.
func (g *Game) Over() bool {
	for i := range g.Players {
		if g.Players[i].Points >= WinningPoints {
			return true
		}
	}
	return false
}

// Terminal is Over under the name the searcher expects.
func (g *Game) Terminal() bool {
	return g.Over()
}

// Leader returns the player with the most points; fewer bought cards breaks ties,
// then seat order.
func (g *Game) Leader() int {
	best := 0
	for i := 1; i < len(g.Players); i++ {
		p, b := &g.Players[i], &g.Players[best]
		if p.Points > b.Points || (p.Points == b.Points && len(p.Cards) < len(b.Cards)) {
			best = i
		}
	}
	return best
}

// CoinTotals sums bank and player coins per color. It is constant for the life
// of a game.
func (g *Game) CoinTotals() CoinSet {
	total := g.Bank
	for i := range g.Players {
		total = total.Add(g.Players[i].Coins)
	}
	return total
}

// TableCards returns the face-up cards of all tiers in table order.
func (g *Game) TableCards() []Card {
	cards := make([]Card, 0, NumTiers*TableSlots)
	for tier := range g.Table {
		cards = append(cards, g.Table[tier]...)
	}
	return cards
}

func (g *Game) Clone() *Game {
	c := &Game{}
	c.CopyFrom(g)
	return c
}

// CopyFrom deep-copies src into g, reusing g's slices where capacity allows.
func (g *Game) CopyFrom(src *Game) {
	if cap(g.Players) < len(src.Players) {
		g.Players = make([]Player, len(src.Players))
	}
	g.Players = g.Players[:len(src.Players)]
	for i := range src.Players {
		dst, p := &g.Players[i], &src.Players[i]
		dst.ID = p.ID
		dst.Coins = p.Coins
		dst.Points = p.Points
		dst.Cards = append(dst.Cards[:0], p.Cards...)
		dst.Reserved = append(dst.Reserved[:0], p.Reserved...)
		dst.Nobles = append(dst.Nobles[:0], p.Nobles...)
	}
	for tier := range src.Decks {
		g.Decks[tier] = append(g.Decks[tier][:0], src.Decks[tier]...)
		g.Table[tier] = append(g.Table[tier][:0], src.Table[tier]...)
	}
	g.Nobles = append(g.Nobles[:0], src.Nobles...)
	g.Bank = src.Bank
	g.Turn = src.Turn
}
