package game

// Components of PlayerValue, most significant first. Each is clamped to two
// decimal digits so earlier components dominate comparisons.
const (
	digitBase  = 100
	maxDigit   = digitBase - 1
	components = 4
)

// PlayerValue ranks player p by points, then cards bought, then cards they can
// currently afford (table and reserved), then coins held.
func PlayerValue(g *Game, p int) int {
	player := &g.Players[p]
	discounts := player.Discounts()

	affordable := 0
	for tier := range g.Table {
		for _, card := range g.Table[tier] {
			if _, ok := payment(player.Coins, discounts, card); ok {
				affordable++
			}
		}
	}
	for _, card := range player.Reserved {
		if _, ok := payment(player.Coins, discounts, card); ok {
			affordable++
		}
	}

	digits := [components]int{player.Points, len(player.Cards), affordable, player.Coins.Total()}
	value := 0
	for _, d := range digits {
		value = value*digitBase + min(max(d, 0), maxDigit)
	}
	return value
}

// GameValue scores the position for the player to move: their value minus the
// best value among the others.
func GameValue(g *Game) int {
	return GameValueFor(g, g.Player())
}

// GameValueFor is GameValue seen from player p regardless of whose turn it is.
func GameValueFor(g *Game, p int) int {
	own := PlayerValue(g, p)
	best, found := 0, false
	for i := range g.Players {
		if i == p {
			continue
		}
		if v := PlayerValue(g, i); !found || v > best {
			best, found = v, true
		}
	}
	return own - best
}

// GameValueForAllPlayers writes one score per player into dst: the player's
// value minus the best value among the others. For the top scorer that is the
// margin over the runner-up.
func GameValueForAllPlayers(g *Game, dst []int) []int {
	dst = dst[:0]
	first, second := -1, -1
	var values [MaxPlayers]int
	for i := range g.Players {
		values[i] = PlayerValue(g, i)
		switch {
		case first < 0 || values[i] > values[first]:
			second, first = first, i
		case second < 0 || values[i] > values[second]:
			second = i
		}
	}
	for i, v := range values[:len(g.Players)] {
		if i == first {
			if second < 0 {
				dst = append(dst, v)
				continue
			}
			dst = append(dst, v-values[second])
			continue
		}
		dst = append(dst, v-values[first])
	}
	return dst
}
